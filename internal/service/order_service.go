package service

import (
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"

	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// How long an order sits in each stage before the simulated kitchen moves
// it forward.
var statusHoldTimes = map[models.OrderStatus]time.Duration{
	models.StatusPreparing: 2 * time.Minute,
	models.StatusReady:     3 * time.Minute,
	models.StatusServed:    5 * time.Minute,
}

// OrderServiceInterface exposes order history and lifecycle operations.
type OrderServiceInterface interface {
	GetAllOrders() ([]*models.Order, error)
	GetOrderByID(id string) (*models.Order, error)
	AdvanceOrder(id string) (*models.Order, error)
	AdvanceDueOrders(now time.Time) (int, error)
	MarkFeedbackGiven(id string) error
}

// OrderService implements order history and the linear status lifecycle.
type OrderService struct {
	orderRepo repositories.OrderRepositoryInterface
	bus       EventBus.Bus
	logger    *logger.Logger
}

// NewOrderService creates a new OrderService with the given repository, bus and logger
func NewOrderService(orderRepo repositories.OrderRepositoryInterface, bus EventBus.Bus, logger *logger.Logger) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		bus:       bus,
		logger:    logger.WithComponent("order_service"),
	}
}

// GetAllOrders retrieves the order history, newest first.
func (s *OrderService) GetAllOrders() ([]*models.Order, error) {
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to fetch orders from repository", "error", err)
		return nil, err
	}

	s.logger.Info("Fetched orders", "count", len(orders))
	return orders, nil
}

// GetOrderByID retrieves a specific order by ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	if id == "" {
		s.logger.Warn("Order ID cannot be empty")
		return nil, fmt.Errorf("order ID is required")
	}

	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		s.logger.Warn("Order not found", "order_id", id, "error", err)
		return nil, err
	}
	return order, nil
}

// AdvanceOrder moves an order one step along the lifecycle. Orders in the
// terminal state cannot move.
func (s *OrderService) AdvanceOrder(id string) (*models.Order, error) {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return nil, err
	}

	next, ok := order.Status.Next()
	if !ok {
		s.logger.Warn("Order already in terminal state", "order_id", id, "status", order.Status)
		return nil, fmt.Errorf("order %s is already %s", id, order.Status)
	}

	previous := order.Status
	order.Status = next
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(id, order); err != nil {
		s.logger.Error("Failed to persist status transition", "order_id", id, "error", err)
		return nil, err
	}

	s.bus.Publish(TopicOrderStatusChanged, order)
	s.logger.Info("Order status advanced",
		"order_id", id,
		"from", previous,
		"to", next)
	return order, nil
}

// AdvanceDueOrders moves every active order whose stage hold time has
// elapsed one step forward. Returns the number of transitions made. Called
// by the background scheduler to simulate the kitchen.
func (s *OrderService) AdvanceDueOrders(now time.Time) (int, error) {
	orders, err := s.orderRepo.GetActive()
	if err != nil {
		s.logger.Error("Failed to fetch active orders", "error", err)
		return 0, err
	}

	advanced := 0
	for _, order := range orders {
		hold, ok := statusHoldTimes[order.Status]
		if !ok || now.Sub(order.UpdatedAt) < hold {
			continue
		}

		if _, err := s.AdvanceOrder(order.ID); err != nil {
			s.logger.Warn("Failed to advance due order", "order_id", order.ID, "error", err)
			continue
		}
		advanced++
	}

	if advanced > 0 {
		s.logger.Info("Advanced due orders", "count", advanced)
	}
	return advanced, nil
}

// MarkFeedbackGiven flags an order as having received feedback. The flag
// can only be set once, and only after the order has been served.
func (s *OrderService) MarkFeedbackGiven(id string) error {
	order, err := s.GetOrderByID(id)
	if err != nil {
		return err
	}

	if order.Status != models.StatusServed && order.Status != models.StatusDone {
		s.logger.Warn("Feedback rejected: order not served yet", "order_id", id, "status", order.Status)
		return fmt.Errorf("feedback requires a served order")
	}
	if order.FeedbackGiven {
		s.logger.Warn("Feedback rejected: already given", "order_id", id)
		return fmt.Errorf("feedback already given for order %s", id)
	}

	order.FeedbackGiven = true
	order.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(id, order); err != nil {
		s.logger.Error("Failed to persist feedback flag", "order_id", id, "error", err)
		return err
	}

	s.logger.Info("Feedback recorded", "order_id", id)
	return nil
}
