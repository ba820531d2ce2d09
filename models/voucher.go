package models

// DiscountType distinguishes percentage vouchers from fixed-amount ones.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Voucher is read-only reference data. Codes are unique in the catalog and
// matched case-insensitively.
type Voucher struct {
	Code        string       `json:"code"`
	Discount    int          `json:"discount"`
	Type        DiscountType `json:"type"`
	MinOrder    int          `json:"min_order"`
	Description string       `json:"description"`
	IsActive    bool         `json:"is_active"`
}

// AppliedVoucher records the voucher attached to the current cart together
// with the subtotal snapshot it was validated against. At most one voucher
// is applied at a time; it is cleared on removal or when the cart empties.
type AppliedVoucher struct {
	Voucher         Voucher `json:"voucher"`
	SubtotalApplied int     `json:"subtotal_applied"`
}
