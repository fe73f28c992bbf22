// Package httpclient provides an HTTP client with retries and a circuit breaker
// for calls to external services.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

// Config controls retry and breaker behavior.
type Config struct {
	Name          string
	Timeout       time.Duration
	MaxRetries    int
	RetryBaseWait time.Duration
	BreakerOpenAt uint32
}

// DefaultConfig returns sensible defaults for the named client.
func DefaultConfig(name string) Config {
	return Config{
		Name:          name,
		Timeout:       10 * time.Second,
		MaxRetries:    3,
		RetryBaseWait: 200 * time.Millisecond,
		BreakerOpenAt: 5,
	}
}

// Client wraps http.Client with retry and circuit breaker logic.
type Client struct {
	http    *http.Client
	breaker *gobreaker.CircuitBreaker[*http.Response]
	cfg     Config
	logger  *slog.Logger
}

// New creates a Client with the given configuration.
func New(cfg Config, l *slog.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerOpenAt
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warn("circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		breaker: gobreaker.NewCircuitBreaker[*http.Response](settings),
		cfg:     cfg,
		logger:  l,
	}
}

// Get performs a GET request with retries and returns the response body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := c.cfg.RetryBaseWait * time.Duration(1<<(attempt-1))
			wait += time.Duration(rand.Int63n(int64(c.cfg.RetryBaseWait)))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		body, err := c.doGet(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if errors.Is(err, gobreaker.ErrOpenState) || ctx.Err() != nil {
			break
		}
	}

	return nil, fmt.Errorf("%s: request failed after retries: %w", c.cfg.Name, lastErr)
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			resp.Body.Close()
			return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("upstream returned %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, 1<<20))
}
