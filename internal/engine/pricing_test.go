package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kopikita/models"
)

func testItem() *models.MenuItem {
	return &models.MenuItem{
		ID:        "americano",
		Name:      "Americano",
		BasePrice: 25000,
		Variants: &models.VariantPricing{
			Sizes: map[string]int{"Small": -5000, "Regular": 0, "Large": 5000},
			Milk:  map[string]int{"Regular": 0, "OatMilk": 5000, "AlmondMilk": 6000, "SoyMilk": 4000},
		},
	}
}

func TestResolvePrice(t *testing.T) {
	tests := []struct {
		name          string
		item          *models.MenuItem
		customization models.Customization
		want          int
	}{
		{
			name:          "default customization yields base price",
			item:          testItem(),
			customization: DefaultCustomization(),
			want:          25000,
		},
		{
			name:          "large size adds delta",
			item:          testItem(),
			customization: models.Customization{Size: "Large", Milk: "Regular"},
			want:          30000,
		},
		{
			name:          "small size subtracts delta",
			item:          testItem(),
			customization: models.Customization{Size: "Small", Milk: "Regular"},
			want:          20000,
		},
		{
			name:          "size and milk deltas combine",
			item:          testItem(),
			customization: models.Customization{Size: "Large", Milk: "AlmondMilk"},
			want:          36000,
		},
		{
			name:          "unrecognized keys are zero delta",
			item:          testItem(),
			customization: models.Customization{Size: "Venti", Milk: "CoconutMilk"},
			want:          25000,
		},
		{
			name:          "no variant tables means base price",
			item:          &models.MenuItem{ID: "croissant", BasePrice: 18000},
			customization: models.Customization{Size: "Large", Milk: "OatMilk"},
			want:          18000,
		},
		{
			name: "negative result clamps to zero",
			item: &models.MenuItem{
				ID:        "sample",
				BasePrice: 3000,
				Variants:  &models.VariantPricing{Sizes: map[string]int{"Small": -5000}},
			},
			customization: models.Customization{Size: "Small", Milk: "Regular"},
			want:          0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePrice(tt.item, tt.customization))
		})
	}
}

func TestResolvePriceIsDeterministic(t *testing.T) {
	item := testItem()
	customization := models.Customization{Size: "Large", Milk: "OatMilk", Toppings: []string{"caramel"}}

	first := ResolvePrice(item, customization)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ResolvePrice(item, customization))
	}
}

func TestDefaultCustomization(t *testing.T) {
	def := DefaultCustomization()
	assert.Equal(t, "Regular", def.Size)
	assert.Equal(t, "Regular", def.Milk)
	assert.Empty(t, def.Toppings)
	assert.Empty(t, def.Notes)
}
