package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want int
	}{
		{"missing defaults to 1", "/products", 1},
		{"explicit page", "/products?page=3", 3},
		{"zero clamps to 1", "/products?page=0", 1},
		{"negative clamps to 1", "/products?page=-2", 1},
		{"garbage clamps to 1", "/products?page=abc", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			p := FromRequest(r)
			assert.Equal(t, tt.want, p.Number)
			assert.Equal(t, DefaultPerPage, p.PerPage)
		})
	}
}

func TestSlice(t *testing.T) {
	items := make([]int, 0, 30)
	for i := 0; i < 30; i++ {
		items = append(items, i)
	}

	t.Run("first page", func(t *testing.T) {
		got := Slice(items, Page{Number: 1, PerPage: 12})
		assert.Len(t, got, 12)
		assert.Equal(t, 0, got[0])
		assert.Equal(t, 11, got[11])
	})

	t.Run("partial last page", func(t *testing.T) {
		got := Slice(items, Page{Number: 3, PerPage: 12})
		assert.Len(t, got, 6)
		assert.Equal(t, 24, got[0])
	})

	t.Run("single trailing item", func(t *testing.T) {
		got := Slice(items[:25], Page{Number: 3, PerPage: 12})
		assert.Equal(t, []int{24}, got)
		assert.Equal(t, 3, TotalPages(25, 12))
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		got := Slice(items, Page{Number: 4, PerPage: 12})
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})

	t.Run("empty input", func(t *testing.T) {
		got := Slice([]int{}, Page{Number: 1, PerPage: 12})
		assert.Empty(t, got)
	})
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 3, TotalPages(30, 12))
}
