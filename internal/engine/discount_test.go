package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/models"
)

func testVouchers() []models.Voucher {
	return []models.Voucher{
		{Code: "FIRST10", Discount: 10, Type: models.DiscountPercentage, MinOrder: 50000, IsActive: true},
		{Code: "SAVE15K", Discount: 15000, Type: models.DiscountFixed, MinOrder: 100000, IsActive: true},
		{Code: "STUDENT", Discount: 15, Type: models.DiscountPercentage, MinOrder: 30000, IsActive: true},
		{Code: "EXPIRED", Discount: 50, Type: models.DiscountPercentage, MinOrder: 0, IsActive: false},
	}
}

func TestTryApplyVoucher(t *testing.T) {
	catalog := testVouchers()

	tests := []struct {
		name     string
		code     string
		subtotal int
		want     string // expected code, "" means nil
	}{
		{"exact match", "FIRST10", 60000, "FIRST10"},
		{"case-insensitive match", "first10", 60000, "FIRST10"},
		{"mixed case match", "StUdEnT", 35000, "STUDENT"},
		{"unknown code", "NOPE", 999999, ""},
		{"below minimum order", "FIRST10", 49999, ""},
		{"exactly at minimum order", "FIRST10", 50000, "FIRST10"},
		{"inactive voucher", "EXPIRED", 100000, ""},
		{"fixed voucher below minimum", "SAVE15K", 99999, ""},
		{"fixed voucher at minimum", "SAVE15K", 100000, "SAVE15K"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TryApplyVoucher(tt.code, tt.subtotal, catalog)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.Code)
		})
	}
}

func TestTryApplyVoucherThresholdHoldsForWholeCatalog(t *testing.T) {
	catalog := testVouchers()
	for _, v := range catalog {
		if v.MinOrder == 0 {
			continue
		}
		got := TryApplyVoucher(v.Code, v.MinOrder-1, catalog)
		assert.Nilf(t, got, "voucher %s must not apply below its minimum", v.Code)
	}
}

func TestComputeDiscount(t *testing.T) {
	percentage := &models.Voucher{Code: "FIRST10", Discount: 10, Type: models.DiscountPercentage}
	fixed := &models.Voucher{Code: "SAVE15K", Discount: 15000, Type: models.DiscountFixed}

	assert.Equal(t, 0, ComputeDiscount(60000, nil))
	assert.Equal(t, 6000, ComputeDiscount(60000, percentage))
	// Integer floor: 10% of 55555 is 5555.5, floored.
	assert.Equal(t, 5555, ComputeDiscount(55555, percentage))
	assert.Equal(t, 15000, ComputeDiscount(60000, fixed))
	// Fixed amount is not capped at the subtotal here; Total does the clamp.
	assert.Equal(t, 15000, ComputeDiscount(10000, fixed))
}

func TestTotalClampsAtServiceFee(t *testing.T) {
	assert.Equal(t, 56000, Total(60000, 6000))
	assert.Equal(t, ServiceFee, Total(0, 0))
	// Over-discounted carts still owe the service fee, never a negative total.
	assert.Equal(t, ServiceFee, Total(10000, 15000))
	assert.Equal(t, ServiceFee, Total(10000, 10000))
}

// Worked example from the reference data: Large Americano x2 with FIRST10.
func TestCheckoutScenario(t *testing.T) {
	item := testItem()
	catalog := testVouchers()

	cart := AddItem(models.Cart{}, item, 2, models.Customization{Size: "Large", Milk: "Regular"})
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 30000, cart.Lines[0].UnitPrice)

	subtotal := Subtotal(cart)
	assert.Equal(t, 60000, subtotal)

	voucher := TryApplyVoucher("FIRST10", subtotal, catalog)
	require.NotNil(t, voucher)

	discount := ComputeDiscount(subtotal, voucher)
	assert.Equal(t, 6000, discount)
	assert.Equal(t, 56000, Total(subtotal, discount))
}
