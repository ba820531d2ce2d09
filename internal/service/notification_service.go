package service

import (
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"

	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// ReadNotificationRetention is how long read notifications are kept before
// the scheduler purges them.
const ReadNotificationRetention = 30 * 24 * time.Hour

// NotificationServiceInterface exposes in-app notification operations.
type NotificationServiceInterface interface {
	Create(title, message string, kind models.NotificationType) (*models.Notification, error)
	GetAll() ([]*models.Notification, error)
	MarkRead(id string) error
	MarkAllRead() (int, error)
	UnreadCount() (int, error)
	PurgeRead(olderThan time.Time) (int, error)
}

// NotificationService creates and manages notifications. It subscribes to
// the order topics so every placement and status transition produces a
// notification without the order side knowing about this package's rules.
type NotificationService struct {
	notificationRepo repositories.NotificationRepositoryInterface
	logger           *logger.Logger
}

// NewNotificationService creates a new NotificationService and subscribes
// it to the order event topics.
func NewNotificationService(notificationRepo repositories.NotificationRepositoryInterface, bus EventBus.Bus, logger *logger.Logger) *NotificationService {
	s := &NotificationService{
		notificationRepo: notificationRepo,
		logger:           logger.WithComponent("notification_service"),
	}

	if err := bus.Subscribe(TopicOrderPlaced, s.onOrderPlaced); err != nil {
		s.logger.Error("Failed to subscribe to order placed events", "error", err)
	}
	if err := bus.Subscribe(TopicOrderStatusChanged, s.onOrderStatusChanged); err != nil {
		s.logger.Error("Failed to subscribe to order status events", "error", err)
	}

	return s
}

// Create stores a new unread notification.
func (s *NotificationService) Create(title, message string, kind models.NotificationType) (*models.Notification, error) {
	if title == "" {
		return nil, fmt.Errorf("notification title is required")
	}

	notification := &models.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      kind,
		CreatedAt: time.Now(),
		IsRead:    false,
	}

	if err := s.notificationRepo.Add(notification); err != nil {
		s.logger.Error("Failed to create notification", "title", title, "error", err)
		return nil, err
	}

	s.logger.Info("Notification created", "notification_id", notification.ID, "type", kind)
	return notification, nil
}

// GetAll retrieves all notifications, newest first.
func (s *NotificationService) GetAll() ([]*models.Notification, error) {
	notifications, err := s.notificationRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch notifications", "error", err)
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags a single notification as read.
func (s *NotificationService) MarkRead(id string) error {
	notification, err := s.notificationRepo.GetByID(id)
	if err != nil {
		s.logger.Warn("Notification not found", "notification_id", id, "error", err)
		return err
	}

	if notification.IsRead {
		return nil
	}

	notification.IsRead = true
	return s.notificationRepo.Update(id, notification)
}

// MarkAllRead flags every unread notification as read and returns how many
// changed.
func (s *NotificationService) MarkAllRead() (int, error) {
	notifications, err := s.notificationRepo.GetAll()
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, notification := range notifications {
		if notification.IsRead {
			continue
		}
		notification.IsRead = true
		if err := s.notificationRepo.Update(notification.ID, notification); err != nil {
			s.logger.Warn("Failed to mark notification read", "notification_id", notification.ID, "error", err)
			continue
		}
		marked++
	}

	s.logger.Info("Marked notifications read", "count", marked)
	return marked, nil
}

// UnreadCount returns the number of unread notifications, used for the
// badge.
func (s *NotificationService) UnreadCount() (int, error) {
	notifications, err := s.notificationRepo.GetAll()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, notification := range notifications {
		if !notification.IsRead {
			count++
		}
	}
	return count, nil
}

// PurgeRead deletes read notifications created before the cutoff and
// returns how many were removed. Called by the background scheduler.
func (s *NotificationService) PurgeRead(olderThan time.Time) (int, error) {
	notifications, err := s.notificationRepo.GetAll()
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, notification := range notifications {
		if !notification.IsRead || notification.CreatedAt.After(olderThan) {
			continue
		}
		if err := s.notificationRepo.Delete(notification.ID); err != nil {
			s.logger.Warn("Failed to purge notification", "notification_id", notification.ID, "error", err)
			continue
		}
		purged++
	}

	if purged > 0 {
		s.logger.Info("Purged read notifications", "count", purged)
	}
	return purged, nil
}

// Event handlers

func (s *NotificationService) onOrderPlaced(order *models.Order) {
	title := "Order placed"
	message := fmt.Sprintf("Your order is confirmed. Total Rp %d.", order.Total)
	if order.Payment.PickupCode != "" {
		message = fmt.Sprintf("%s Show code %s at the counter.", message, order.Payment.PickupCode)
	}

	if _, err := s.Create(title, message, models.NotificationSuccess); err != nil {
		s.logger.Error("Failed to create order placed notification", "order_id", order.ID, "error", err)
	}
}

func (s *NotificationService) onOrderStatusChanged(order *models.Order) {
	var title, message string
	kind := models.NotificationInfo

	switch order.Status {
	case models.StatusReady:
		title = "Order ready"
		message = "Your order is ready for pickup."
		kind = models.NotificationSuccess
	case models.StatusServed:
		title = "Order served"
		message = "Enjoy your coffee!"
	case models.StatusDone:
		title = "Order completed"
		message = "Thanks for ordering. Tell us how it was."
	default:
		title = "Order update"
		message = fmt.Sprintf("Your order is now %s.", order.Status)
	}

	if _, err := s.Create(title, message, kind); err != nil {
		s.logger.Error("Failed to create status notification", "order_id", order.ID, "error", err)
	}
}
