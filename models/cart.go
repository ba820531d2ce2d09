package models

import (
	"sort"
	"strings"
)

// Customization is the value object that distinguishes cart lines for the
// same product. Two customizations are equal iff their size, milk, notes
// and topping multiset match; field order and topping order never matter.
type Customization struct {
	Size     string   `json:"size"`
	Milk     string   `json:"milk"`
	Toppings []string `json:"toppings,omitempty"`
	Notes    string   `json:"notes,omitempty"`
}

// Equal reports whether two customizations are the same merge key.
func (c Customization) Equal(other Customization) bool {
	if c.Size != other.Size || c.Milk != other.Milk || c.Notes != other.Notes {
		return false
	}
	if len(c.Toppings) != len(other.Toppings) {
		return false
	}
	a := sortedToppings(c.Toppings)
	b := sortedToppings(other.Toppings)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Key returns a canonical string form, used for logging and as a stable
// duplicate check in favorites. Toppings are sorted so incidental order
// never changes the key.
func (c Customization) Key() string {
	parts := []string{"size=" + c.Size, "milk=" + c.Milk}
	if len(c.Toppings) > 0 {
		parts = append(parts, "toppings="+strings.Join(sortedToppings(c.Toppings), ","))
	}
	if c.Notes != "" {
		parts = append(parts, "notes="+c.Notes)
	}
	return strings.Join(parts, "|")
}

func sortedToppings(toppings []string) []string {
	out := make([]string, len(toppings))
	copy(out, toppings)
	sort.Strings(out)
	return out
}

// CartLine is one cart entry. UnitPrice is the resolved price snapshot
// taken when the line was first inserted; later catalog changes do not
// affect it. Quantity is always >= 1 for a stored line.
type CartLine struct {
	ItemID        string        `json:"item_id"`
	Name          string        `json:"name"`
	UnitPrice     int           `json:"unit_price"`
	Quantity      int           `json:"quantity"`
	Customization Customization `json:"customization"`
}

// LineTotal returns the extended price of the line.
func (l CartLine) LineTotal() int {
	return l.UnitPrice * l.Quantity
}

// Cart is a plain value holding the current order-in-progress. The engine
// package operates on carts by value and returns new snapshots; callers
// that share a cart are responsible for guarding the authoritative copy.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Clone returns a deep-enough copy for value-semantics updates.
func (c Cart) Clone() Cart {
	lines := make([]CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return Cart{Lines: lines}
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}
