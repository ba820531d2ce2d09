package engine

import (
	"strings"

	"kopikita/models"
)

// ServiceFee is added unconditionally at checkout, independent of any
// voucher (rupiah minor units).
const ServiceFee = 2000

// TryApplyVoucher finds the voucher matching code for the given subtotal.
// The match is case-insensitive and exact; the voucher must be active and
// the subtotal must meet its minimum order. Returns nil when no voucher
// qualifies. An invalid code and an unmet minimum are deliberately not
// distinguished; callers surface both as one rejection.
func TryApplyVoucher(code string, subtotal int, catalog []models.Voucher) *models.Voucher {
	for i := range catalog {
		candidate := &catalog[i]
		if !strings.EqualFold(candidate.Code, code) {
			continue
		}
		if !candidate.IsActive || subtotal < candidate.MinOrder {
			return nil
		}
		// Codes are unique in the catalog; first match wins.
		v := *candidate
		return &v
	}
	return nil
}

// ComputeDiscount returns the discount amount for the voucher against the
// subtotal. Percentage vouchers floor to whole minor units; fixed vouchers
// apply verbatim and may exceed the subtotal (Total clamps the difference).
func ComputeDiscount(subtotal int, voucher *models.Voucher) int {
	if voucher == nil {
		return 0
	}
	switch voucher.Type {
	case models.DiscountPercentage:
		return subtotal * voucher.Discount / 100
	case models.DiscountFixed:
		return voucher.Discount
	default:
		return 0
	}
}

// Total computes the amount due: the discounted subtotal, clamped at zero,
// plus the service fee. The final total is therefore never below ServiceFee.
func Total(subtotal, discount int) int {
	discounted := subtotal - discount
	if discounted < 0 {
		discounted = 0
	}
	return discounted + ServiceFee
}
