package service

// Event bus topics. Publishers pass the affected *models.Order; handlers
// are subscribed synchronously so a checkout response never races its own
// notification.
const (
	TopicOrderPlaced        = "order:placed"
	TopicOrderStatusChanged = "order:status_changed"
)
