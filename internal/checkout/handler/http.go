// Package handler exposes the checkout endpoint over HTTP.
package handler

import (
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/miguelangelabou/globosanabell/internal/checkout/service"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
	"github.com/miguelangelabou/globosanabell/pkg/middleware"
)

// Handler serves the checkout endpoint.
type Handler struct {
	service *service.Service
}

// New creates a checkout handler.
func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the checkout route behind the session middleware.
func (h *Handler) Routes(r chi.Router) {
	r.With(middleware.RequireSession).Post("/checkout", h.checkout)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	sid, _ := middleware.SessionFromContext(r.Context())

	result, err := h.service.Checkout(r.Context(), sid, clientIP(r))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, result)
}

// clientIP prefers the forwarded address set by the reverse proxy.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
