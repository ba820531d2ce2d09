package service

import (
	"context"
	"fmt"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"

	"kopikita/internal/engine"
	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// CheckoutRequest carries the client's checkout choices.
type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"payment_method"`
}

// CheckoutServiceInterface turns the current cart into an order.
type CheckoutServiceInterface interface {
	Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error)
}

// CheckoutService orchestrates payment, order creation and cart reset.
type CheckoutService struct {
	cartService CartServiceInterface
	orderRepo   repositories.OrderRepositoryInterface
	gateway     PaymentGatewayInterface
	bus         EventBus.Bus
	logger      *logger.Logger
}

// NewCheckoutService creates a new CheckoutService with the given dependencies and logger
func NewCheckoutService(cartService CartServiceInterface, orderRepo repositories.OrderRepositoryInterface, gateway PaymentGatewayInterface, bus EventBus.Bus, logger *logger.Logger) *CheckoutService {
	return &CheckoutService{
		cartService: cartService,
		orderRepo:   orderRepo,
		gateway:     gateway,
		bus:         bus,
		logger:      logger.WithComponent("checkout_service"),
	}
}

// Checkout snapshots the cart, runs the simulated payment and persists the
// resulting order. The cart is only reset after the order is stored, so a
// failed payment leaves it intact.
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	if !req.PaymentMethod.IsValid() {
		s.logger.Warn("Checkout failed: invalid payment method", "method", req.PaymentMethod)
		return nil, fmt.Errorf("unsupported payment method: %s", req.PaymentMethod)
	}

	cart, applied := s.cartService.Snapshot()
	if cart.IsEmpty() {
		s.logger.Warn("Checkout failed: cart is empty")
		return nil, fmt.Errorf("cart is empty")
	}

	subtotal := engine.Subtotal(cart)

	var voucher *models.Voucher
	voucherCode := ""
	if applied != nil {
		v := applied.Voucher
		voucher = &v
		voucherCode = v.Code
	}
	discount := engine.ComputeDiscount(subtotal, voucher)
	total := engine.Total(subtotal, discount)

	s.logger.Info("Starting checkout",
		"method", req.PaymentMethod,
		"subtotal", subtotal,
		"discount", discount,
		"total", total,
		"voucher", voucherCode)

	receipt, err := s.gateway.Process(ctx, req.PaymentMethod)
	if err != nil {
		s.logger.Warn("Checkout failed: payment not completed", "error", err)
		return nil, err
	}

	now := time.Now()
	order := &models.Order{
		ID:          uuid.NewString(),
		Lines:       cart.Lines,
		Subtotal:    subtotal,
		Discount:    discount,
		Total:       total,
		VoucherCode: voucherCode,
		Status:      models.StatusPreparing,
		Payment: models.PaymentInfo{
			Method:        req.PaymentMethod,
			TransactionID: receipt.TransactionID,
			PickupCode:    receipt.PickupCode,
			PaidAt:        receipt.PaidAt,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orderRepo.Add(order); err != nil {
		s.logger.Error("Failed to persist order after payment", "order_id", order.ID, "error", err)
		return nil, err
	}

	s.cartService.Reset()
	s.bus.Publish(TopicOrderPlaced, order)

	s.logger.Info("Checkout completed",
		"order_id", order.ID,
		"total", total,
		"transaction_id", receipt.TransactionID)
	return order, nil
}
