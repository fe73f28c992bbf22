// Package domain holds the cart types and the pure aggregation logic.
package domain

import "time"

// Line is one cart entry: a product snapshot paired with a quantity.
// At most one line exists per product ID.
type Line struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Cart is an ordered list of lines for one shopper session.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add increments the quantity for the product if a line exists,
// otherwise appends a new line with quantity 1.
func (c *Cart) Add(productID, name string, priceCents int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines[i].Quantity++
			return
		}
	}

	c.Lines = append(c.Lines, Line{
		ProductID:  productID,
		Name:       name,
		PriceCents: priceCents,
		Quantity:   1,
	})
}

// SetQuantity replaces the line's quantity. A quantity below one
// removes the line. Returns false if no line exists for the product.
func (c *Cart) SetQuantity(productID string, quantity int) bool {
	for i := range c.Lines {
		if c.Lines[i].ProductID != productID {
			continue
		}

		if quantity < 1 {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
		} else {
			c.Lines[i].Quantity = quantity
		}
		return true
	}

	return false
}

// Remove deletes the line for the product. Returns false if absent.
func (c *Cart) Remove(productID string) bool {
	return c.SetQuantity(productID, 0)
}

// TotalCents sums price times quantity over all lines.
func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.PriceCents * int64(l.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount sums the quantities over all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// PendingOrder is the post-checkout snapshot rendered on the
// confirmation page. Read once, then discarded.
type PendingOrder struct {
	Cart       Cart      `json:"cart"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}
