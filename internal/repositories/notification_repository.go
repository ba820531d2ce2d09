package repositories

import (
	"fmt"
	"sort"

	"kopikita/models"
	"kopikita/pkg/localstore"
	"kopikita/pkg/logger"
)

// NotificationRepositoryInterface persists in-app notifications.
type NotificationRepositoryInterface interface {
	Add(notification *models.Notification) error
	GetAll() ([]*models.Notification, error)
	GetByID(id string) (*models.Notification, error)
	Update(id string, notification *models.Notification) error
	Delete(id string) error
}

// NotificationRepository stores notifications as JSON records in the local
// store.
type NotificationRepository struct {
	logger *logger.Logger
	store  *localstore.Store
}

// NewNotificationRepository creates a new NotificationRepository backed by
// the store.
func NewNotificationRepository(logger *logger.Logger, store *localstore.Store) *NotificationRepository {
	return &NotificationRepository{
		logger: logger.WithComponent("notification_repository"),
		store:  store,
	}
}

// Add - persists a new notification
func (r *NotificationRepository) Add(notification *models.Notification) error {
	if notification.ID == "" {
		return fmt.Errorf("notification ID is required")
	}
	notification.SchemaVersion = 1

	if err := r.store.Put(localstore.BucketNotifications, notification.ID, notification); err != nil {
		r.logger.Error("Failed to persist notification", "notification_id", notification.ID, "error", err)
		return fmt.Errorf("failed to persist notification: %v", err)
	}
	return nil
}

// GetAll - retrieves all notifications, newest first
func (r *NotificationRepository) GetAll() ([]*models.Notification, error) {
	notifications := []*models.Notification{}

	err := r.store.ForEach(localstore.BucketNotifications, func(key string, value []byte) error {
		var notification models.Notification
		if err := localstore.Decode(value, &notification); err != nil {
			r.logger.Warn("Skipping malformed notification record", "key", key, "error", err)
			return nil
		}
		notifications = append(notifications, &notification)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read notifications", "error", err)
		return nil, fmt.Errorf("failed to read notifications: %v", err)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})

	return notifications, nil
}

// GetByID - retrieves a single notification
func (r *NotificationRepository) GetByID(id string) (*models.Notification, error) {
	var notification models.Notification
	found, err := r.store.Get(localstore.BucketNotifications, id, &notification)
	if err != nil {
		r.logger.Warn("Failed to load notification record", "notification_id", id, "error", err)
		return nil, fmt.Errorf("notification %s not found", id)
	}
	if !found {
		return nil, fmt.Errorf("notification %s not found", id)
	}
	return &notification, nil
}

// Update - replaces a stored notification record
func (r *NotificationRepository) Update(id string, notification *models.Notification) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	notification.ID = id
	notification.SchemaVersion = 1
	if err := r.store.Put(localstore.BucketNotifications, id, notification); err != nil {
		r.logger.Error("Failed to update notification", "notification_id", id, "error", err)
		return fmt.Errorf("failed to update notification: %v", err)
	}
	return nil
}

// Delete - removes a notification record
func (r *NotificationRepository) Delete(id string) error {
	if err := r.store.Delete(localstore.BucketNotifications, id); err != nil {
		r.logger.Error("Failed to delete notification", "notification_id", id, "error", err)
		return fmt.Errorf("failed to delete notification: %v", err)
	}
	return nil
}
