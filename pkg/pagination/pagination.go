// Package pagination implements fixed-size page slicing for list endpoints.
package pagination

import (
	"net/http"
	"strconv"
)

// DefaultPerPage is the storefront page size.
const DefaultPerPage = 12

// Page describes a single page request.
type Page struct {
	Number  int
	PerPage int
}

// FromRequest reads the "page" query parameter. A missing, malformed or
// non-positive value yields page 1.
func FromRequest(r *http.Request) Page {
	return FromRequestWithSize(r, DefaultPerPage)
}

// FromRequestWithSize reads the "page" query parameter with a custom page size.
func FromRequestWithSize(r *http.Request, perPage int) Page {
	n, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || n < 1 {
		n = 1
	}
	return Page{Number: n, PerPage: perPage}
}

// Slice returns the elements of items belonging to the page. Pages past the
// end of the data return an empty slice rather than an error.
func Slice[T any](items []T, p Page) []T {
	start := (p.Number - 1) * p.PerPage
	if start >= len(items) {
		return []T{}
	}

	end := start + p.PerPage
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// TotalPages returns the number of pages needed to hold totalItems.
func TotalPages(totalItems, perPage int) int {
	if totalItems == 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}
