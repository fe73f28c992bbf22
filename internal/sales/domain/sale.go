// Package domain holds the sales log types.
package domain

import "time"

// Item is one line of a sale, copied by value from the cart at
// checkout time so later catalog edits never alter the record.
type Item struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Quantity   int    `json:"quantity"`
}

// Sale is an immutable snapshot of one completed checkout.
type Sale struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"session_id"`
	IP         string    `json:"ip"`
	Location   string    `json:"location"`
	Items      []Item    `json:"items"`
	TotalCents int64     `json:"total_cents"`
	CreatedAt  time.Time `json:"created_at"`
}
