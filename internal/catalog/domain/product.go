// Package domain holds the catalog types and the pure query pipeline
// (filtering, seasonal ranking and paging) used by the storefront.
package domain

import "time"

// Product is a catalog item. Prices are stored in euro cents.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	PriceCents  int64     `json:"price_cents"`
	SoldTimes   int       `json:"sold_times"`
	Active      bool      `json:"active"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryLabel returns the display label for the product's category,
// or "Desconocido" when the key is not in the category table.
func (p Product) CategoryLabel() string {
	if c, ok := CategoryByKey(p.Category); ok {
		return c.Label
	}
	return "Desconocido"
}
