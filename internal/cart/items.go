package cart

import "github.com/begzodnazarov/mebelhub-backend/pkg/types"

// Item is one cart line. Price and display fields are snapshotted when the
// line is added and never re-fetched afterwards.
type Item struct {
	ProductID  string              `json:"product_id"`
	Slug       string              `json:"slug"`
	Name       types.BilingualText `json:"name"`
	PriceCents int                 `json:"price_cents"`
	ImageURL   string              `json:"image_url,omitempty"`
	Quantity   int                 `json:"quantity"`
}

// Items is the cart aggregate. At most one line per product id, insertion
// order preserved.
type Items struct {
	lines []Item
}

// NewItems builds an aggregate from persisted lines, dropping any with a
// non-positive quantity.
func NewItems(lines []Item) *Items {
	items := &Items{}
	for _, line := range lines {
		if line.Quantity > 0 {
			items.lines = append(items.lines, line)
		}
	}
	return items
}

// Add merges the item into the cart. An existing line for the same product
// has its quantity incremented; there is no upper bound.
func (c *Items) Add(item Item, qty int) {
	if qty <= 0 {
		qty = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == item.ProductID {
			c.lines[i].Quantity += qty
			return
		}
	}
	item.Quantity = qty
	c.lines = append(c.lines, item)
}

// Remove deletes the line for the product; absent lines are a no-op.
func (c *Items) Remove(productID string) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity for a line. A quantity of zero or less
// deletes the line.
func (c *Items) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = qty
			return
		}
	}
}

// Clear drops every line.
func (c *Items) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Items) Lines() []Item {
	out := make([]Item, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Items) Len() int {
	return len(c.lines)
}

// TotalItems sums line quantities. Always derived, never stored.
func (c *Items) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalCents sums price times quantity across lines.
func (c *Items) TotalCents() int {
	total := 0
	for _, line := range c.lines {
		total += line.PriceCents * line.Quantity
	}
	return total
}
