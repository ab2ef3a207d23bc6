package cron

import (
	"context"
	"encoding/json"
	"time"

	"slotwise/config"
	"slotwise/models"
	"slotwise/services/notification"
	"slotwise/services/tasks"
	"slotwise/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitNotificationWorker runs the async worker in background, consuming
// confirmation and reminder tasks enqueued by the notification service.
func InitNotificationWorker() {
	logger := utils.GetLogger()

	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeBookingConfirmed, handleConfirmationTask)
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask)

	// Start async worker with retry logic.
	go func() {
		logger.Info("notification worker starting")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("notification worker failed to start",
					zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
				if attempts == maxAttempts {
					logger.Fatal("notification worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("confirmation task has invalid payload", zap.Error(err))
		return err
	}

	// Outbound delivery (push, email) is an external collaborator; the
	// worker records the dispatch.
	logger.Info("booking confirmation dispatched",
		zap.String("bookingId", p.BookingID),
		zap.String("serviceId", p.ServiceID),
		zap.String("userId", p.UserID),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	logger := utils.GetLogger()

	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		logger.Error("reminder task has invalid payload", zap.Error(err))
		return err
	}

	logger.Info("booking reminder dispatched",
		zap.String("bookingId", p.BookingID),
		zap.String("serviceId", p.ServiceID),
		zap.String("userId", p.UserID),
		zap.String("date", p.Date),
		zap.String("time", p.Time),
	)
	return nil
}
