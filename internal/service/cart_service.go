package service

import (
	"fmt"
	"sync"

	"kopikita/internal/engine"
	"kopikita/internal/repositories"
	"kopikita/models"
	"kopikita/pkg/logger"
)

// CartView is the cart as presented to clients: lines plus all derived
// amounts, recomputed from the engine on every read.
type CartView struct {
	Lines      []models.CartLine `json:"lines"`
	ItemCount  int               `json:"item_count"`
	Subtotal   int               `json:"subtotal"`
	Discount   int               `json:"discount"`
	ServiceFee int               `json:"service_fee"`
	Total      int               `json:"total"`
	Voucher    *models.Voucher   `json:"voucher,omitempty"`
}

// CartServiceInterface exposes cart and voucher operations.
type CartServiceInterface interface {
	GetCart() CartView
	AddItem(itemID string, quantity int, customization *models.Customization) (CartView, error)
	UpdateQuantity(itemID string, customization models.Customization, quantity int) (CartView, error)
	RemoveItem(itemID string, customization models.Customization) (CartView, error)
	Clear() CartView
	ApplyVoucher(code string) (CartView, error)
	RemoveVoucher() CartView
	Snapshot() (models.Cart, *models.AppliedVoucher)
	Reset()
}

// CartService owns the authoritative cart. The engine functions are pure;
// this service guards the shared cart value and recomputes totals on every
// read.
type CartService struct {
	catalogRepo repositories.CatalogRepositoryInterface
	voucherRepo repositories.VoucherRepositoryInterface
	logger      *logger.Logger

	mu      sync.RWMutex
	cart    models.Cart
	applied *models.AppliedVoucher
}

// NewCartService creates a new CartService with the given repositories and logger
func NewCartService(catalogRepo repositories.CatalogRepositoryInterface, voucherRepo repositories.VoucherRepositoryInterface, logger *logger.Logger) *CartService {
	return &CartService{
		catalogRepo: catalogRepo,
		voucherRepo: voucherRepo,
		logger:      logger.WithComponent("cart_service"),
	}
}

// GetCart returns the current cart with computed totals.
func (s *CartService) GetCart() CartView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view()
}

// AddItem adds quantity of the item to the cart, merging with an existing
// line when the customization matches. A nil customization means the
// explicit defaults (Regular size, Regular milk).
func (s *CartService) AddItem(itemID string, quantity int, customization *models.Customization) (CartView, error) {
	item, err := s.catalogRepo.GetByID(itemID)
	if err != nil {
		s.logger.Warn("Add failed: unknown menu item", "item_id", itemID, "error", err)
		return CartView{}, err
	}

	cust := engine.DefaultCustomization()
	if customization != nil {
		cust = *customization
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = engine.AddItem(s.cart, item, quantity, cust)
	s.logger.Info("Item added to cart",
		"item_id", itemID,
		"quantity", quantity,
		"customization", cust.Key(),
		"item_count", engine.ItemCount(s.cart))

	return s.view(), nil
}

// UpdateQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartService) UpdateQuantity(itemID string, customization models.Customization, quantity int) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = engine.UpdateQuantity(s.cart, itemID, customization, quantity)
	s.clearVoucherIfEmpty()

	s.logger.Info("Cart quantity updated", "item_id", itemID, "quantity", quantity)
	return s.view(), nil
}

// RemoveItem removes the matching line. Removing an absent line is a no-op.
func (s *CartService) RemoveItem(itemID string, customization models.Customization) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = engine.RemoveItem(s.cart, itemID, customization)
	s.clearVoucherIfEmpty()

	s.logger.Info("Item removed from cart", "item_id", itemID)
	return s.view(), nil
}

// Clear empties the cart and drops any applied voucher.
func (s *CartService) Clear() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = models.Cart{}
	s.applied = nil

	s.logger.Info("Cart cleared")
	return s.view()
}

// ApplyVoucher validates and attaches a voucher to the cart. An unknown
// code and an unmet minimum produce the same rejection.
func (s *CartService) ApplyVoucher(code string) (CartView, error) {
	vouchers, err := s.voucherRepo.GetAll()
	if err != nil {
		s.logger.Error("Failed to load voucher catalog", "error", err)
		return CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal := engine.Subtotal(s.cart)
	voucher := engine.TryApplyVoucher(code, subtotal, vouchers)
	if voucher == nil {
		s.logger.Warn("Voucher rejected", "code", code, "subtotal", subtotal)
		return s.view(), fmt.Errorf("invalid code or minimum order not met")
	}

	s.applied = &models.AppliedVoucher{Voucher: *voucher, SubtotalApplied: subtotal}
	s.logger.Info("Voucher applied", "code", voucher.Code, "subtotal", subtotal)
	return s.view(), nil
}

// RemoveVoucher detaches the applied voucher, if any.
func (s *CartService) RemoveVoucher() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.applied != nil {
		s.logger.Info("Voucher removed", "code", s.applied.Voucher.Code)
	}
	s.applied = nil
	return s.view()
}

// Snapshot returns a copy of the cart and applied voucher for checkout.
func (s *CartService) Snapshot() (models.Cart, *models.AppliedVoucher) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var applied *models.AppliedVoucher
	if s.applied != nil {
		a := *s.applied
		applied = &a
	}
	return s.cart.Clone(), applied
}

// Reset empties the cart after a successful checkout.
func (s *CartService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = models.Cart{}
	s.applied = nil
	s.logger.Info("Cart reset after checkout")
}

// view assumes the caller holds at least a read lock.
func (s *CartService) view() CartView {
	subtotal := engine.Subtotal(s.cart)

	var voucher *models.Voucher
	if s.applied != nil {
		v := s.applied.Voucher
		voucher = &v
	}

	// The discount tracks the current subtotal, not the snapshot taken at
	// apply time.
	discount := engine.ComputeDiscount(subtotal, voucher)

	return CartView{
		Lines:      s.cart.Clone().Lines,
		ItemCount:  engine.ItemCount(s.cart),
		Subtotal:   subtotal,
		Discount:   discount,
		ServiceFee: engine.ServiceFee,
		Total:      engine.Total(subtotal, discount),
		Voucher:    voucher,
	}
}

// clearVoucherIfEmpty drops the applied voucher once the cart empties.
// Caller must hold the write lock.
func (s *CartService) clearVoucherIfEmpty() {
	if s.cart.IsEmpty() && s.applied != nil {
		s.logger.Info("Cart emptied, dropping applied voucher", "code", s.applied.Voucher.Code)
		s.applied = nil
	}
}
