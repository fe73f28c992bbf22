package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientIP(t *testing.T) {
	t.Run("forwarded single", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")

		assert.Equal(t, "203.0.113.9", clientIP(req))
	})

	t.Run("forwarded chain takes first hop", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1, 10.0.0.2")

		assert.Equal(t, "203.0.113.9", clientIP(req))
	})

	t.Run("remote addr fallback", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/checkout", nil)
		req.RemoteAddr = "198.51.100.7:52114"

		assert.Equal(t, "198.51.100.7", clientIP(req))
	})
}
