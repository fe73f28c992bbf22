// Package health provides liveness and readiness HTTP handlers.
package health

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/miguelangelabou/globosanabell/pkg/httputil"
)

// Checker verifies a single dependency is reachable.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckerFunc adapts a function into a named Checker.
type CheckerFunc struct {
	CheckerName string
	Fn          func(ctx context.Context) error
}

func (c CheckerFunc) Name() string                    { return c.CheckerName }
func (c CheckerFunc) Check(ctx context.Context) error { return c.Fn(ctx) }

// Handler serves liveness and readiness probes.
type Handler struct {
	checkers []Checker
	timeout  time.Duration
}

// NewHandler creates a health handler running the given dependency checks.
func NewHandler(checkers ...Checker) *Handler {
	return &Handler{
		checkers: checkers,
		timeout:  5 * time.Second,
	}
}

type status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Liveness reports that the process is running.
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, status{Status: "ok"})
}

// Readiness runs all dependency checks concurrently and reports 503
// when any fails.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		checks = make(map[string]string, len(h.checkers))
		ready  = true
	)

	for _, c := range h.checkers {
		wg.Add(1)
		go func(c Checker) {
			defer wg.Done()
			err := c.Check(ctx)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				checks[c.Name()] = err.Error()
				ready = false
			} else {
				checks[c.Name()] = "ok"
			}
		}(c)
	}
	wg.Wait()

	code := http.StatusOK
	st := status{Status: "ready", Checks: checks}
	if !ready {
		code = http.StatusServiceUnavailable
		st.Status = "not ready"
	}

	httputil.WriteJSON(w, code, st)
}
