package handler

import (
	"net/http"
	"strings"

	"kopikita/internal/service"
	"kopikita/pkg/logger"
)

// NotificationHandler serves the notification endpoints.
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
	logger              *logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler with the given service and logger
func NewNotificationHandler(notificationService service.NotificationServiceInterface, logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		logger:              logger.WithComponent("notification_handler"),
	}
}

// GetAllNotifications handles GET /api/v1/notifications
func (h *NotificationHandler) GetAllNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationService.GetAll()
	if err != nil {
		h.logger.Error("Failed to get notifications", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to fetch notifications")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, notifications)
}

// MarkRead handles POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.notificationService.MarkRead(id); err != nil {
		statusCode := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			statusCode = http.StatusNotFound
		}
		writeErrorResponse(h.logger, w, statusCode, err.Error())
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]string{"status": "read"})
}

// MarkAllRead handles POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	marked, err := h.notificationService.MarkAllRead()
	if err != nil {
		h.logger.Error("Failed to mark all notifications read", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to mark notifications read")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]int{"marked": marked})
}

// UnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.notificationService.UnreadCount()
	if err != nil {
		h.logger.Error("Failed to count unread notifications", "error", err)
		writeErrorResponse(h.logger, w, http.StatusInternalServerError, "Failed to count notifications")
		return
	}

	writeJSONResponse(h.logger, w, http.StatusOK, map[string]int{"unread": count})
}
