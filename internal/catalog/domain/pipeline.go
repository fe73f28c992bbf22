package domain

import (
	"sort"
	"strings"
)

// SortMode selects the ordering applied by Rank.
type SortMode string

const (
	SortFeatured     SortMode = "featured"
	SortPopular      SortMode = "popular"
	SortPriceLowHigh SortMode = "price-low-high"
	SortPriceHighLow SortMode = "price-high-low"
	SortFavorites    SortMode = "favorites"
)

// ValidSortMode reports whether mode is one of the supported sort modes.
func ValidSortMode(mode SortMode) bool {
	switch mode {
	case SortFeatured, SortPopular, SortPriceLowHigh, SortPriceHighLow, SortFavorites:
		return true
	}
	return false
}

// Filter describes the storefront filter criteria. Zero values mean
// "no restriction" for their field.
type Filter struct {
	Query         string
	Category      string
	MaxPriceCents int64
}

// Match reports whether the product satisfies every criterion.
//
// Text matching is deliberately asymmetric: the query must be a prefix
// of the name or category key, but only a substring of the description.
func (f Filter) Match(p Product) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)

		if !strings.HasPrefix(name, q) &&
			!strings.HasPrefix(p.Category, q) &&
			!strings.Contains(desc, q) {
			return false
		}
	}

	if f.Category != "" && p.Category != f.Category {
		return false
	}

	if f.MaxPriceCents > 0 && p.PriceCents > f.MaxPriceCents {
		return false
	}

	return true
}

// Apply returns the products matching the filter, preserving input order.
// Unmatched input yields an empty non-nil slice.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

// Rank orders products by the given sort mode. The sort is stable, so
// ties preserve input order. The favorites mode additionally filters
// to products whose ID is in the favorites set.
//
// Featured ranking prefers the month's seasonal categories: products
// in two seasonal categories compare by priority position, a product
// in a seasonal category beats one that is not, and products outside
// the seasonal list compare by descending sold count.
func Rank(products []Product, mode SortMode, month int, favorites map[string]bool) []Product {
	out := make([]Product, len(products))
	copy(out, products)

	switch mode {
	case SortPriceLowHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceCents < out[j].PriceCents
		})
	case SortPriceHighLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].PriceCents > out[j].PriceCents
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].SoldTimes > out[j].SoldTimes
		})
	case SortFavorites:
		kept := out[:0]
		for _, p := range out {
			if favorites[p.ID] {
				kept = append(kept, p)
			}
		}
		out = kept
	case SortFeatured:
		season := SeasonFor(month)

		rank := make(map[string]int, len(season.Priority))
		for i, key := range season.Priority {
			rank[key] = i
		}

		sort.SliceStable(out, func(i, j int) bool {
			ri, iok := rank[out[i].Category]
			rj, jok := rank[out[j].Category]

			switch {
			case iok && jok:
				return ri < rj
			case iok:
				return true
			case jok:
				return false
			default:
				return out[i].SoldTimes > out[j].SoldTimes
			}
		})
	}

	return out
}
