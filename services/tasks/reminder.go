package tasks

import (
	"encoding/json"
	"time"

	"slotwise/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "booking:reminder"

// NewReminderTask builds the scheduled pre-appointment reminder task. The
// task fires at fireAt via asynq's delayed processing rather than a poll
// loop on the reservation store.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
