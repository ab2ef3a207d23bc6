package notification

import (
	"encoding/json"
	"fmt"

	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/services/tasks"

	"github.com/hibiken/asynq"
)

// TypeBookingConfirmed is the asynq task type for confirmation notices.
const TypeBookingConfirmed = "booking:confirmed"

// NotificationService enqueues outbound notices about accepted bookings.
// Delivery itself happens asynchronously in the worker.
type NotificationService interface {
	EnqueueBookingConfirmation(payload models.ConfirmationPayload) error
	EnqueueBookingReminder(payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqNotificationService enqueues notices onto the Redis-backed queue.
type AsynqNotificationService struct {
	client *asynq.Client
}

// NewAsynqNotificationService builds the enqueue client from app config.
func NewAsynqNotificationService() *AsynqNotificationService {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqNotificationService{client: client}
}

// EnqueueBookingConfirmation queues one confirmation notice task.
func (s *AsynqNotificationService) EnqueueBookingConfirmation(payload models.ConfirmationPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	task := asynq.NewTask(TypeBookingConfirmed, data)
	if _, err := s.client.Enqueue(task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation task: %w", err)
	}
	return nil
}

// EnqueueBookingReminder schedules a pre-appointment reminder for fireAt.
func (s *AsynqNotificationService) EnqueueBookingReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqNotificationService) Close() error {
	return s.client.Close()
}
