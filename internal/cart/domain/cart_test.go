package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartAdd(t *testing.T) {
	var c Cart

	c.Add("1", "Osito", 1000)
	c.Add("1", "Osito", 1000)

	assert.Len(t, c.Lines, 1)
	assert.Equal(t, 2, c.Lines[0].Quantity)
	assert.Equal(t, int64(2000), c.TotalCents())
}

func TestCartSetQuantity(t *testing.T) {
	var c Cart
	c.Add("1", "Osito", 1000)
	c.Add("2", "Ramo", 2500)

	t.Run("replaces quantity", func(t *testing.T) {
		assert.True(t, c.SetQuantity("2", 4))
		assert.Equal(t, 4, c.Lines[1].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		assert.True(t, c.SetQuantity("1", 0))
		assert.Len(t, c.Lines, 1)
		assert.Equal(t, "2", c.Lines[0].ProductID)
	})

	t.Run("negative removes the line", func(t *testing.T) {
		assert.True(t, c.SetQuantity("2", -3))
		assert.True(t, c.IsEmpty())
	})

	t.Run("unknown product", func(t *testing.T) {
		assert.False(t, c.SetQuantity("9", 1))
	})
}

func TestCartRemove(t *testing.T) {
	var c Cart
	c.Add("1", "Osito", 1000)

	assert.True(t, c.Remove("1"))
	assert.False(t, c.Remove("1"))
	assert.True(t, c.IsEmpty())
}

func TestCartTotal(t *testing.T) {
	t.Run("empty cart totals zero", func(t *testing.T) {
		var c Cart
		assert.Equal(t, int64(0), c.TotalCents())
	})

	t.Run("sums price times quantity", func(t *testing.T) {
		var c Cart
		c.Add("1", "Osito", 1050)
		c.SetQuantity("1", 3)
		c.Add("2", "Ramo", 2500)

		assert.Equal(t, int64(3*1050+2500), c.TotalCents())
		assert.Equal(t, 4, c.ItemCount())
	})
}

func TestCartInvariants(t *testing.T) {
	var c Cart
	c.Add("1", "A", 100)
	c.Add("2", "B", 200)
	c.Add("1", "A", 100)
	c.SetQuantity("2", 5)
	c.Add("3", "C", 300)
	c.Remove("1")
	c.SetQuantity("3", -1)

	seen := map[string]bool{}
	for _, l := range c.Lines {
		assert.False(t, seen[l.ProductID], "duplicate line for %s", l.ProductID)
		seen[l.ProductID] = true
		assert.Positive(t, l.Quantity)
	}
}
