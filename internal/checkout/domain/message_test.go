package domain

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartdomain "github.com/miguelangelabou/globosanabell/internal/cart/domain"
)

func TestBuildOrderMessage(t *testing.T) {
	cart := &cartdomain.Cart{}
	cart.Add("p1", "Osito", 1000)
	cart.SetQuantity("p1", 2)
	cart.Add("p2", "Ramo de Rosas", 2550)

	msg := BuildOrderMessage(cart, "+34612345678")

	want := "Hola, me gustaría realizar el siguiente pedido:\n\n" +
		"1. Osito (ID: p1)\n" +
		"   Cantidad: 2\n" +
		"   Precio unitario: €10.00\n\n" +
		"2. Ramo de Rosas (ID: p2)\n" +
		"   Cantidad: 1\n" +
		"   Precio unitario: €25.50\n\n" +
		"Total: €45.50\n\n" +
		"Deseo personalizarle lo siguiente:"

	assert.Equal(t, want, msg.Text)
}

func TestBuildOrderMessageURL(t *testing.T) {
	cart := &cartdomain.Cart{}
	cart.Add("p1", "Osito", 1000)

	msg := BuildOrderMessage(cart, "+34612345678")

	assert.True(t, strings.HasPrefix(msg.URL, "https://wa.me/34612345678?text="))

	u, err := url.Parse(msg.URL)
	require.NoError(t, err)
	assert.Equal(t, msg.Text, u.Query().Get("text"))
}

func TestFormatEuros(t *testing.T) {
	assert.Equal(t, "0.00", formatEuros(0))
	assert.Equal(t, "0.05", formatEuros(5))
	assert.Equal(t, "10.00", formatEuros(1000))
	assert.Equal(t, "25.50", formatEuros(2550))
	assert.Equal(t, "1234.99", formatEuros(123499))
}

func TestBuildOrderMessageEmptyCart(t *testing.T) {
	msg := BuildOrderMessage(&cartdomain.Cart{}, "+34612345678")

	assert.Contains(t, msg.Text, "Total: €0.00")
	assert.NotContains(t, msg.Text, "1.")
}
