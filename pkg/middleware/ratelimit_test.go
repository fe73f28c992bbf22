package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	handler := RateLimit(1, 2, slog.Default())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	do := func(ip string) int {
		req := httptest.NewRequest("GET", "/products", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	// Burst of 2 passes, the third is rejected.
	require.Equal(t, http.StatusOK, do("192.0.2.1"))
	require.Equal(t, http.StatusOK, do("192.0.2.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1"))

	// Other clients keep their own bucket.
	assert.Equal(t, http.StatusOK, do("192.0.2.2"))
}

func TestVisitorStoreCleanup(t *testing.T) {
	s := &visitorStore{
		visitors: make(map[string]*visitor),
		rps:      1,
		burst:    1,
		ttl:      time.Minute,
	}

	now := time.Now()
	s.now = func() time.Time { return now }

	s.limiterFor("192.0.2.1")
	s.limiterFor("192.0.2.2")
	require.Equal(t, 2, s.len())

	now = now.Add(2 * time.Minute)
	s.limiterFor("192.0.2.2")
	s.cleanup()

	assert.Equal(t, 1, s.len())
}

func TestLimiterKey(t *testing.T) {
	t.Run("forwarded header wins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

		assert.Equal(t, "203.0.113.9", limiterKey(req))
	})

	t.Run("garbage forwarded header falls back", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Forwarded-For", "not-an-ip")
		req.RemoteAddr = "198.51.100.7:52114"

		assert.Equal(t, "198.51.100.7", limiterKey(req))
	})
}
