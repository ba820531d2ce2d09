package repositories

import "kopikita/models"

// Variant price deltas shared by the whole menu: sizes swing the base
// price by 5000 either way, alternative milks add a surcharge.
func sizeDeltas() map[string]int {
	return map[string]int{"Small": -5000, "Regular": 0, "Large": 5000}
}

func milkDeltas() map[string]int {
	return map[string]int{"Regular": 0, "OatMilk": 5000, "AlmondMilk": 6000, "SoyMilk": 4000}
}

func drinkVariants(withMilk bool) *models.VariantPricing {
	v := &models.VariantPricing{Sizes: sizeDeltas()}
	if withMilk {
		v.Milk = milkDeltas()
	}
	return v
}

// seedMenuItems returns the catalog reference data.
func seedMenuItems() []*models.MenuItem {
	return []*models.MenuItem{
		{
			ID: "1", Name: "Americano", Description: "Strong coffee with hot water",
			BasePrice: 25000, Variants: drinkVariants(false), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 128, ComboWith: []string{"2", "6"},
		},
		{
			ID: "2", Name: "Latte", Description: "Espresso with steamed milk and foam",
			BasePrice: 30000, Variants: drinkVariants(true), Category: models.CategoryLatte,
			Image: "coffee.png", IsRecommended: true, OrderCount: 215, ComboWith: []string{"4"},
		},
		{
			ID: "3", Name: "Cappuccino", Description: "Espresso topped with thick foam and steamed milk",
			BasePrice: 32000, Variants: drinkVariants(true), Category: models.CategoryCappuccino,
			Image: "coffee.png", IsRecommended: true, OrderCount: 187,
		},
		{
			ID: "4", Name: "Mocha", Description: "Espresso with chocolate and steamed milk",
			BasePrice: 35000, Variants: drinkVariants(true), Category: models.CategoryMocha,
			Image: "coffee.png", OrderCount: 94,
		},
		{
			ID: "5", Name: "Flat White", Description: "A velvety blend of espresso and microfoam",
			BasePrice: 28000, Variants: drinkVariants(true), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 76,
		},
		{
			ID: "6", Name: "Espresso", Description: "Concentrated coffee brewed by forcing hot water",
			BasePrice: 20000, Variants: drinkVariants(false), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 143, ComboWith: []string{"8"},
		},
		{
			ID: "7", Name: "Macchiato", Description: "Espresso with a dash of foamed milk",
			BasePrice: 27000, Variants: drinkVariants(true), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 58,
		},
		{
			ID: "8", Name: "Affogato", Description: "Vanilla ice cream topped with a shot of espresso",
			BasePrice: 40000, Variants: drinkVariants(false), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 41,
		},
		{
			ID: "9", Name: "Irish Coffee", Description: "Coffee with whiskey, sugar, and cream",
			BasePrice: 45000, Variants: drinkVariants(false), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 23,
		},
		{
			ID: "10", Name: "Cold Brew", Description: "Coffee brewed with cold water over 12 hours",
			BasePrice: 30000, Variants: drinkVariants(true), Category: models.CategoryColdBrew,
			Image: "coffee.png", OrderCount: 112, ComboWith: []string{"11"},
		},
		{
			ID: "11", Name: "Nitro Coffee", Description: "Cold brew infused with nitrogen for creaminess",
			BasePrice: 38000, Variants: drinkVariants(true), Category: models.CategoryColdBrew,
			Image: "coffee.png", IsNew: true, OrderCount: 37,
		},
		{
			ID: "12", Name: "Ristretto", Description: "A short shot of espresso with a rich flavor",
			BasePrice: 22000, Variants: drinkVariants(false), Category: models.CategoryCoffee,
			Image: "coffee.png", OrderCount: 19,
		},
	}
}

// seedVouchers returns the voucher reference data.
func seedVouchers() []models.Voucher {
	return []models.Voucher{
		{
			Code: "FIRST10", Discount: 10, Type: models.DiscountPercentage,
			MinOrder: 50000, Description: "10% off for first-time customers", IsActive: true,
		},
		{
			Code: "SAVE15K", Discount: 15000, Type: models.DiscountFixed,
			MinOrder: 100000, Description: "Rp 15,000 off for orders above Rp 100,000", IsActive: true,
		},
		{
			Code: "STUDENT", Discount: 15, Type: models.DiscountPercentage,
			MinOrder: 30000, Description: "15% student discount", IsActive: true,
		},
	}
}
