// Package jobs runs the background simulation work: the pretend kitchen
// that moves orders along their lifecycle and the notification retention
// sweep.
package jobs

import (
	"time"

	"github.com/robfig/cron/v3"

	"kopikita/internal/service"
	"kopikita/pkg/logger"
)

// Scheduler owns the cron instance and the periodic jobs.
type Scheduler struct {
	cron                *cron.Cron
	orderService        service.OrderServiceInterface
	notificationService service.NotificationServiceInterface
	logger              *logger.Logger
}

// NewScheduler creates a scheduler wired to the order and notification
// services.
func NewScheduler(orderService service.OrderServiceInterface, notificationService service.NotificationServiceInterface, logger *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:                cron.New(),
		orderService:        orderService,
		notificationService: notificationService,
		logger:              logger.WithComponent("scheduler"),
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@every 30s", s.advanceOrders); err != nil {
		s.logger.Error("Failed to register order progression job", "error", err)
		return err
	}

	if _, err := s.cron.AddFunc("@hourly", s.purgeNotifications); err != nil {
		s.logger.Error("Failed to register notification purge job", "error", err)
		return err
	}

	s.cron.Start()
	s.logger.Info("Scheduler started")
	return nil
}

// Stop stops the cron loop and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) advanceOrders() {
	if _, err := s.orderService.AdvanceDueOrders(time.Now()); err != nil {
		s.logger.Error("Order progression job failed", "error", err)
	}
}

func (s *Scheduler) purgeNotifications() {
	cutoff := time.Now().Add(-service.ReadNotificationRetention)
	if _, err := s.notificationService.PurgeRead(cutoff); err != nil {
		s.logger.Error("Notification purge job failed", "error", err)
	}
}
