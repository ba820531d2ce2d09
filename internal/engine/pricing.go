// Package engine holds the pure cart, pricing and discount computations.
// Every function here is a transform over explicitly passed values: no
// state, no I/O, no clocks. Callers own the authoritative cart and guard
// concurrent access themselves.
package engine

import "kopikita/models"

// Default variant names. "Regular" carries a zero delta in every variant
// table, so resolving an item with no explicit choice yields the base price.
const (
	DefaultSize = "Regular"
	DefaultMilk = "Regular"
)

// DefaultCustomization returns the customization assumed when the customer
// makes no choices.
func DefaultCustomization() models.Customization {
	return models.Customization{
		Size: DefaultSize,
		Milk: DefaultMilk,
	}
}

// ResolvePrice computes the unit price for an item with the given
// customization: base price plus the signed size and milk deltas.
// Unrecognized variant keys contribute nothing. The result is clamped at
// zero so extreme negative deltas can never produce a negative price.
func ResolvePrice(item *models.MenuItem, customization models.Customization) int {
	price := item.BasePrice

	if item.Variants != nil {
		if delta, ok := item.Variants.Sizes[customization.Size]; ok {
			price += delta
		}
		if delta, ok := item.Variants.Milk[customization.Milk]; ok {
			price += delta
		}
	}

	if price < 0 {
		price = 0
	}
	return price
}
