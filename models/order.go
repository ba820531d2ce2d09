package models

import "time"

// OrderStatus is the linear order lifecycle. There are no backward
// transitions and no cancellation; "done" is terminal.
type OrderStatus string

const (
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
	StatusDone      OrderStatus = "done"
)

// Next returns the status following s. ok is false when s is terminal or
// unknown.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusServed, true
	case StatusServed:
		return StatusDone, true
	default:
		return s, false
	}
}

// IsValid reports whether s is one of the known lifecycle states.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPreparing, StatusReady, StatusServed, StatusDone:
		return true
	}
	return false
}

// PaymentMethod enumerates the checkout payment options.
type PaymentMethod string

const (
	PaymentCard    PaymentMethod = "card"
	PaymentEWallet PaymentMethod = "ewallet"
	PaymentCash    PaymentMethod = "cash"
)

// IsValid reports whether m is a supported payment method.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentEWallet, PaymentCash:
		return true
	}
	return false
}

// PaymentInfo is the payment metadata captured at checkout. PickupCode is
// only set for cash payments (shown at the counter).
type PaymentInfo struct {
	Method        PaymentMethod `json:"method"`
	TransactionID string        `json:"transaction_id"`
	PickupCode    string        `json:"pickup_code,omitempty"`
	PaidAt        time.Time     `json:"paid_at"`
}

// Order is the immutable snapshot taken at checkout completion. Only
// Status, FeedbackGiven and UpdatedAt change afterwards.
type Order struct {
	ID            string      `json:"order_id"`
	Lines         []CartLine  `json:"items"`
	Subtotal      int         `json:"subtotal"`
	Discount      int         `json:"discount"`
	Total         int         `json:"total"`
	VoucherCode   string      `json:"voucher_code,omitempty"`
	Status        OrderStatus `json:"status"`
	Payment       PaymentInfo `json:"payment"`
	FeedbackGiven bool        `json:"feedback_given"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
	SchemaVersion int         `json:"schema_version"`
}
