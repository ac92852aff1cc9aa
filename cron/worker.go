package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/SSMShehan/serendibgo-v2-sub005/config"
	"github.com/SSMShehan/serendibgo-v2-sub005/models"
	"github.com/SSMShehan/serendibgo-v2-sub005/services/booking"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	// TypeBookingReminder fires the pre-arrival reminder for one booking.
	TypeBookingReminder = "booking:reminder"
	// TypeBookingSweep closes out confirmed bookings whose stay has ended.
	TypeBookingSweep = "booking:sweep"
	// TypeReminderScan catches reminders the scheduled tasks missed.
	TypeReminderScan = "booking:reminder-scan"

	// reminderLead is how long before check-in the reminder fires.
	reminderLead = 24 * time.Hour
)

// ReminderPayload is the task payload for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// AsynqReminderScheduler schedules reminder tasks on the asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Logger *zap.Logger
}

// NewAsynqReminderScheduler creates a scheduler backed by the shared queue DB.
func NewAsynqReminderScheduler(logger *zap.Logger) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(redisOpts()),
		Logger: logger,
	}
}

// ScheduleReminder enqueues a reminder task to run 24 hours before check-in.
// Reminders for stays starting sooner than the lead time fire immediately.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, b *models.Booking) error {
	payload, err := json.Marshal(ReminderPayload{BookingID: b.ID})
	if err != nil {
		return err
	}

	fireAt := b.CheckIn.Add(-reminderLead)
	opts := []asynq.Option{asynq.TaskID("reminder:" + b.ID), asynq.MaxRetry(3)}
	if fireAt.After(time.Now()) {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}
	s.Logger.Info("reminder scheduled",
		zap.String("booking", b.ID),
		zap.String("taskId", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

// InitBookingWorker runs the async worker and the periodic sweep in background.
func InitBookingWorker(svc booking.BookingService, logger *zap.Logger) {
	srv := asynq.NewServer(redisOpts(), asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			"default": 1,
		},
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeBookingReminder, handleReminderTask(svc, logger))
	mux.HandleFunc(TypeBookingSweep, handleSweepTask(svc, logger))
	mux.HandleFunc(TypeReminderScan, handleReminderScan(svc, logger))

	go startScheduler(logger)

	go func() {
		logger.Info("starting booking worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("booking worker failed to start",
					zap.Int("attempt", attempts), zap.Error(err))
				if attempts == maxAttempts {
					log.Fatal("booking worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// startScheduler registers the periodic sweep task.
func startScheduler(logger *zap.Logger) {
	scheduler := asynq.NewScheduler(redisOpts(), &asynq.SchedulerOpts{})

	if _, err := scheduler.Register("@every 1h", asynq.NewTask(TypeBookingSweep, nil)); err != nil {
		logger.Error("failed to register booking sweep", zap.Error(err))
		return
	}
	if _, err := scheduler.Register("@every 15m", asynq.NewTask(TypeReminderScan, nil)); err != nil {
		logger.Error("failed to register reminder scan", zap.Error(err))
		return
	}

	if err := scheduler.Run(); err != nil {
		logger.Error("booking scheduler stopped", zap.Error(err))
	}
}

func handleReminderTask(svc booking.BookingService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid reminder payload", zap.Error(err))
			return err
		}

		if err := svc.MarkReminderSent(ctx, p.BookingID, time.Now()); err != nil {
			logger.Error("failed to record reminder", zap.String("booking", p.BookingID), zap.Error(err))
			return err
		}
		logger.Info("check-in reminder sent", zap.String("booking", p.BookingID))
		return nil
	}
}

func handleReminderScan(svc booking.BookingService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		sent, err := svc.SendDueReminders(ctx, time.Now())
		if err != nil {
			logger.Error("reminder scan failed", zap.Error(err))
			return err
		}
		if sent > 0 {
			logger.Info("reminder scan caught up", zap.Int("sent", sent))
		}
		return nil
	}
}

func handleSweepTask(svc booking.BookingService, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		closed, noShows, err := svc.SweepEndedStays(ctx, time.Now())
		if err != nil {
			logger.Error("booking sweep failed", zap.Error(err))
			return err
		}
		logger.Info("booking sweep finished",
			zap.Int("completed", closed), zap.Int("noShows", noShows))
		return nil
	}
}
