package repositories

import (
	"fmt"
	"sort"

	"kopikita/models"
	"kopikita/pkg/localstore"
	"kopikita/pkg/logger"
)

// OrderRepositoryInterface persists order history records.
type OrderRepositoryInterface interface {
	Add(order *models.Order) error
	GetAll() ([]*models.Order, error)
	GetByID(id string) (*models.Order, error)
	Update(id string, order *models.Order) error
	GetActive() ([]*models.Order, error)
}

// OrderRepository stores orders as JSON records in the local store.
type OrderRepository struct {
	logger *logger.Logger
	store  *localstore.Store
}

// NewOrderRepository creates a new OrderRepository backed by the store.
func NewOrderRepository(logger *logger.Logger, store *localstore.Store) *OrderRepository {
	return &OrderRepository{
		logger: logger.WithComponent("order_repository"),
		store:  store,
	}
}

// Add - persists a new order
func (r *OrderRepository) Add(order *models.Order) error {
	if order.ID == "" {
		return fmt.Errorf("order ID is required")
	}
	order.SchemaVersion = 1

	if err := r.store.Put(localstore.BucketOrders, order.ID, order); err != nil {
		r.logger.Error("Failed to persist order", "order_id", order.ID, "error", err)
		return fmt.Errorf("failed to persist order: %v", err)
	}

	r.logger.Info("Order persisted", "order_id", order.ID, "total", order.Total)
	return nil
}

// GetAll - retrieves all orders, newest first. Records that cannot be
// decoded are skipped with a warning rather than failing the whole read.
func (r *OrderRepository) GetAll() ([]*models.Order, error) {
	orders := []*models.Order{}

	err := r.store.ForEach(localstore.BucketOrders, func(key string, value []byte) error {
		var order models.Order
		if err := localstore.Decode(value, &order); err != nil {
			r.logger.Warn("Skipping malformed order record", "key", key, "error", err)
			return nil
		}
		orders = append(orders, &order)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to read orders", "error", err)
		return nil, fmt.Errorf("failed to read orders: %v", err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

// GetByID - retrieves a single order
func (r *OrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	found, err := r.store.Get(localstore.BucketOrders, id, &order)
	if err != nil {
		r.logger.Warn("Failed to load order record", "order_id", id, "error", err)
		return nil, fmt.Errorf("order %s not found", id)
	}
	if !found {
		return nil, fmt.Errorf("order %s not found", id)
	}
	return &order, nil
}

// Update - replaces a stored order record
func (r *OrderRepository) Update(id string, order *models.Order) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}

	order.ID = id
	order.SchemaVersion = 1
	if err := r.store.Put(localstore.BucketOrders, id, order); err != nil {
		r.logger.Error("Failed to update order", "order_id", id, "error", err)
		return fmt.Errorf("failed to update order: %v", err)
	}
	return nil
}

// GetActive - retrieves orders that have not reached the terminal state
func (r *OrderRepository) GetActive() ([]*models.Order, error) {
	orders, err := r.GetAll()
	if err != nil {
		return nil, err
	}

	active := []*models.Order{}
	for _, order := range orders {
		if order.Status != models.StatusDone {
			active = append(active, order)
		}
	}
	return active, nil
}
