package domain

import "github.com/shopspring/decimal"

// Cart is a customer's in-progress selection of menu items. Entries keep
// insertion order and the same item may appear more than once.
type Cart struct {
	entries []MenuItem
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends an entry. There is no quantity aggregation; adding the same
// item twice yields two entries.
func (c *Cart) Add(item MenuItem) {
	c.entries = append(c.entries, item)
}

// Items returns a copy of the current entries in insertion order.
func (c *Cart) Items() []MenuItem {
	out := make([]MenuItem, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total sums the prices of every entry, duplicates included.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.entries {
		total = total.Add(item.Price)
	}
	return total
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

func (c *Cart) Clear() {
	c.entries = nil
}

// Checkout takes a value snapshot of the entries and empties the cart.
// The cart is cleared if and only if a snapshot is produced; an empty cart
// returns ErrEmptyCart and stays untouched. The snapshot does not alias the
// live cart, so later mutations never reach an order built from it.
func (c *Cart) Checkout() ([]MenuItem, error) {
	if len(c.entries) == 0 {
		return nil, ErrEmptyCart
	}
	snapshot := make([]MenuItem, len(c.entries))
	copy(snapshot, c.entries)
	c.entries = nil
	return snapshot, nil
}
