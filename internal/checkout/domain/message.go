// Package domain builds the WhatsApp order message and deep link.
package domain

import (
	"fmt"
	"net/url"
	"strings"

	cartdomain "github.com/miguelangelabou/globosanabell/internal/cart/domain"
)

const (
	greeting      = "Hola, me gustaría realizar el siguiente pedido:"
	customization = "Deseo personalizarle lo siguiente:"
)

// OrderMessage is the rendered checkout output.
type OrderMessage struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// BuildOrderMessage renders the cart as a numbered Spanish order
// summary and a wa.me deep link for the given contact phone.
func BuildOrderMessage(cart *cartdomain.Cart, phone string) OrderMessage {
	var b strings.Builder

	b.WriteString(greeting)
	b.WriteString("\n\n")

	for i, line := range cart.Lines {
		fmt.Fprintf(&b, "%d. %s (ID: %s)\n", i+1, line.Name, line.ProductID)
		fmt.Fprintf(&b, "   Cantidad: %d\n", line.Quantity)
		fmt.Fprintf(&b, "   Precio unitario: €%s\n\n", formatEuros(line.PriceCents))
	}

	fmt.Fprintf(&b, "Total: €%s\n\n", formatEuros(cart.TotalCents()))
	b.WriteString(customization)

	text := b.String()

	return OrderMessage{
		Text: text,
		URL:  deepLink(phone, text),
	}
}

// deepLink builds https://wa.me/<digits>?text=<encoded text>.
func deepLink(phone, text string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + digitsOnly(phone),
	}

	q := url.Values{}
	q.Set("text", text)
	u.RawQuery = q.Encode()

	return u.String()
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func formatEuros(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
