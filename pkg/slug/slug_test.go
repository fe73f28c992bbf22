package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ramo de Rosas", "ramo-de-rosas"},
		{"Cumpleaños Feliz", "cumpleanos-feliz"},
		{"  Globo   Metálico  ", "globo-metalico"},
		{"Peluche 30cm", "peluche-30cm"},
		{"Cesta & Dulces", "cesta-dulces"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Make(tt.in), "input %q", tt.in)
	}
}
