// Package cart contains the ordered, mutable cart and its consolidation
// into a final bill. Pure in-memory logic; price lookup and session
// sequencing live in the app layer.
package cart

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry. ID is a stable opaque identifier assigned
// at insert time; edits and removals reference it instead of a position.
type LineItem struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	Qty       int
}

// LineTotal returns unit price times quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Qty)))
}

// Cart is an ordered sequence of line items, newest first. A second scan
// of the same product creates a second line; nothing merges until Consolidate.
type Cart struct {
	items []LineItem
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{}
}

// Insert prepends a new line item with quantity 1 and a fresh id,
// and returns the created item.
func (c *Cart) Insert(name string, unitPrice decimal.Decimal) LineItem {
	item := LineItem{
		ID:        uuid.NewString(),
		Name:      name,
		UnitPrice: unitPrice,
		Qty:       1,
	}
	c.items = append([]LineItem{item}, c.items...)
	return item
}

// Remove deletes the line item with the given id. Unknown ids are a no-op.
func (c *Cart) Remove(id string) bool {
	for i, item := range c.items {
		if item.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// SetQuantity updates the quantity of the line with the given id.
// Non-positive quantities and unknown ids leave the cart unchanged.
func (c *Cart) SetQuantity(id string, qty int) bool {
	if qty <= 0 {
		return false
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Qty = qty
			return true
		}
	}
	return false
}

// Get returns the line item with the given id.
func (c *Cart) Get(id string) (LineItem, bool) {
	for _, item := range c.items {
		if item.ID == id {
			return item, true
		}
	}
	return LineItem{}, false
}

// Items returns a copy of the cart contents, newest first.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of lines.
func (c *Cart) Len() int {
	return len(c.items)
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.items) == 0
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.items = nil
}

// Total is the running total across all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ParseQuantity parses accumulated keypad digits into a quantity.
// Only positive integers are accepted; anything else reports false and
// the caller keeps the prior quantity.
func ParseQuantity(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
