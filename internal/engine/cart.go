package engine

import "kopikita/models"

// AddItem returns a new cart with quantity of the given item and
// customization added. Lines merge by (item ID, customization): adding the
// same pair again raises the existing line's quantity instead of appending
// a duplicate. The unit price is resolved once at first insertion and kept
// for the life of the line. Non-positive quantities are clamped to 1.
func AddItem(cart models.Cart, item *models.MenuItem, quantity int, customization models.Customization) models.Cart {
	if quantity < 1 {
		quantity = 1
	}

	next := cart.Clone()
	if i := findLine(next, item.ID, customization); i >= 0 {
		next.Lines[i].Quantity += quantity
		return next
	}

	next.Lines = append(next.Lines, models.CartLine{
		ItemID:        item.ID,
		Name:          item.Name,
		UnitPrice:     ResolvePrice(item, customization),
		Quantity:      quantity,
		Customization: customization,
	})
	return next
}

// UpdateQuantity returns a new cart with the matching line's quantity
// replaced. A quantity of zero or less removes the line. Lines are unique
// by key by construction, so no re-merge is needed.
func UpdateQuantity(cart models.Cart, itemID string, customization models.Customization, quantity int) models.Cart {
	if quantity <= 0 {
		return RemoveItem(cart, itemID, customization)
	}

	next := cart.Clone()
	if i := findLine(next, itemID, customization); i >= 0 {
		next.Lines[i].Quantity = quantity
	}
	return next
}

// RemoveItem returns a new cart without the matching line. Removing an
// absent key is a no-op.
func RemoveItem(cart models.Cart, itemID string, customization models.Customization) models.Cart {
	i := findLine(cart, itemID, customization)
	if i < 0 {
		return cart.Clone()
	}

	next := models.Cart{Lines: make([]models.CartLine, 0, len(cart.Lines)-1)}
	next.Lines = append(next.Lines, cart.Lines[:i]...)
	next.Lines = append(next.Lines, cart.Lines[i+1:]...)
	return next
}

// Subtotal sums unit price times quantity over all lines. Zero for an
// empty cart.
func Subtotal(cart models.Cart) int {
	total := 0
	for _, line := range cart.Lines {
		total += line.LineTotal()
	}
	return total
}

// ItemCount sums quantities over all lines, used for the cart badge.
func ItemCount(cart models.Cart) int {
	count := 0
	for _, line := range cart.Lines {
		count += line.Quantity
	}
	return count
}

func findLine(cart models.Cart, itemID string, customization models.Customization) int {
	for i, line := range cart.Lines {
		if line.ItemID == itemID && line.Customization.Equal(customization) {
			return i
		}
	}
	return -1
}
