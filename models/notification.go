package models

import "time"

// NotificationType matches the severity styling used by the client.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is an in-app message shown on the notifications screen.
type Notification struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Message       string           `json:"message"`
	Type          NotificationType `json:"type"`
	CreatedAt     time.Time        `json:"timestamp"`
	IsRead        bool             `json:"is_read"`
	SchemaVersion int              `json:"schema_version"`
}
