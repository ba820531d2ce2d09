package models

// VariantPricing holds signed price deltas keyed by variant option name.
// A missing table means the item has no choices for that dimension and
// the base price applies as-is.
type VariantPricing struct {
	Sizes map[string]int `json:"sizes,omitempty"`
	Milk  map[string]int `json:"milk,omitempty"`
}

// MenuItem is an immutable catalog product. Prices are in currency minor
// units (Indonesian rupiah in the seed data).
type MenuItem struct {
	ID            string          `json:"product_id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	BasePrice     int             `json:"base_price"`
	Variants      *VariantPricing `json:"variants,omitempty"`
	Category      MenuCategory    `json:"category"`
	Image         string          `json:"image,omitempty"`
	IsNew         bool            `json:"is_new,omitempty"`
	IsRecommended bool            `json:"is_recommended,omitempty"`
	OrderCount    int             `json:"order_count,omitempty"`
	ComboWith     []string        `json:"combo_with,omitempty"`
}

type MenuCategory string

const (
	CategoryCoffee     MenuCategory = "Coffee"
	CategoryLatte      MenuCategory = "Latte"
	CategoryCappuccino MenuCategory = "Cappuccino"
	CategoryMocha      MenuCategory = "Mocha"
	CategoryColdBrew   MenuCategory = "Cold Brew"
)

// Categories lists the browsable menu categories in display order.
func Categories() []MenuCategory {
	return []MenuCategory{
		CategoryCoffee,
		CategoryLatte,
		CategoryCappuccino,
		CategoryMocha,
		CategoryColdBrew,
	}
}
