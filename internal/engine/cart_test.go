package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kopikita/models"
)

func TestAddItemMergesByKey(t *testing.T) {
	item := testItem()
	large := models.Customization{Size: "Large", Milk: "Regular"}

	cart := AddItem(models.Cart{}, item, 1, large)
	cart = AddItem(cart, item, 3, large)

	require.Len(t, cart.Lines, 1, "same (item, customization) must merge into one line")
	assert.Equal(t, 4, cart.Lines[0].Quantity)
	assert.Equal(t, 30000, cart.Lines[0].UnitPrice)
}

func TestAddItemMergeIgnoresToppingOrder(t *testing.T) {
	item := testItem()
	a := models.Customization{Size: "Regular", Milk: "Regular", Toppings: []string{"caramel", "vanilla"}}
	b := models.Customization{Size: "Regular", Milk: "Regular", Toppings: []string{"vanilla", "caramel"}}

	cart := AddItem(models.Cart{}, item, 1, a)
	cart = AddItem(cart, item, 1, b)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestAddItemDifferentCustomizationsStaySeparate(t *testing.T) {
	item := testItem()

	cart := AddItem(models.Cart{}, item, 1, models.Customization{Size: "Small", Milk: "Regular"})
	cart = AddItem(cart, item, 1, models.Customization{Size: "Large", Milk: "Regular"})

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 20000, cart.Lines[0].UnitPrice)
	assert.Equal(t, 30000, cart.Lines[1].UnitPrice)
}

func TestAddItemKeepsFirstInsertedPrice(t *testing.T) {
	item := testItem()
	cust := DefaultCustomization()

	cart := AddItem(models.Cart{}, item, 1, cust)

	// A later catalog price change must not touch the stored snapshot.
	item.BasePrice = 99000
	cart = AddItem(cart, item, 1, cust)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 25000, cart.Lines[0].UnitPrice)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
}

func TestAddItemClampsNonPositiveQuantity(t *testing.T) {
	item := testItem()

	cart := AddItem(models.Cart{}, item, 0, DefaultCustomization())
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)

	cart = AddItem(models.Cart{}, item, -3, DefaultCustomization())
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	item := testItem()
	original := AddItem(models.Cart{}, item, 2, DefaultCustomization())

	_ = AddItem(original, item, 5, DefaultCustomization())

	assert.Equal(t, 2, original.Lines[0].Quantity)
}

func TestUpdateQuantity(t *testing.T) {
	item := testItem()
	cust := DefaultCustomization()
	cart := AddItem(models.Cart{}, item, 2, cust)

	cart = UpdateQuantity(cart, item.ID, cust, 5)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)

	// Zero or negative behaves as removal; a zero-quantity line never persists.
	cart = UpdateQuantity(cart, item.ID, cust, 0)
	assert.True(t, cart.IsEmpty())

	cart = AddItem(models.Cart{}, item, 2, cust)
	cart = UpdateQuantity(cart, item.ID, cust, -1)
	assert.True(t, cart.IsEmpty())
}

func TestUpdateQuantityUnknownKeyIsNoOp(t *testing.T) {
	item := testItem()
	cart := AddItem(models.Cart{}, item, 2, DefaultCustomization())

	updated := UpdateQuantity(cart, "unknown", DefaultCustomization(), 7)
	assert.Equal(t, cart, updated)
}

func TestRemoveItemIsIdempotent(t *testing.T) {
	item := testItem()
	cust := DefaultCustomization()
	cart := AddItem(models.Cart{}, item, 2, cust)

	cart = RemoveItem(cart, item.ID, cust)
	assert.True(t, cart.IsEmpty())

	// Removing an absent key returns an equal cart.
	again := RemoveItem(cart, item.ID, cust)
	assert.Equal(t, cart.Lines, again.Lines)

	withLine := AddItem(models.Cart{}, item, 1, cust)
	unchanged := RemoveItem(withLine, "no-such-item", cust)
	assert.Equal(t, withLine.Lines, unchanged.Lines)
}

func TestSubtotalAndItemCount(t *testing.T) {
	assert.Equal(t, 0, Subtotal(models.Cart{}), "empty cart subtotal must be zero")
	assert.Equal(t, 0, ItemCount(models.Cart{}))

	item := testItem()
	cart := AddItem(models.Cart{}, item, 2, models.Customization{Size: "Large", Milk: "Regular"})
	cart = AddItem(cart, item, 1, models.Customization{Size: "Small", Milk: "Regular"})

	// 2*30000 + 1*20000
	assert.Equal(t, 80000, Subtotal(cart))
	assert.Equal(t, 3, ItemCount(cart))

	// Subtotal additivity: equals the sum over lines.
	sum := 0
	for _, line := range cart.Lines {
		sum += line.UnitPrice * line.Quantity
	}
	assert.Equal(t, sum, Subtotal(cart))
}

func TestMergeInvariantOverAddSequence(t *testing.T) {
	item := testItem()
	cust := models.Customization{Size: "Large", Milk: "SoyMilk", Notes: "extra hot"}

	cart := models.Cart{}
	quantities := []int{1, 4, 2, 3, 1}
	total := 0
	for _, q := range quantities {
		cart = AddItem(cart, item, q, cust)
		total += q
	}

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, total, cart.Lines[0].Quantity)
}
