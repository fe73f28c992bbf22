// Package handler exposes the company profile over HTTP.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miguelangelabou/globosanabell/internal/company/service"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
)

// Handler serves the public and admin company profile endpoints.
type Handler struct {
	service *service.Service
}

// New creates a company handler.
func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// PublicRoutes mounts the storefront-facing profile route.
func (h *Handler) PublicRoutes(r chi.Router) {
	r.Get("/company", h.get)
}

// AdminRoutes mounts the profile management route.
func (h *Handler) AdminRoutes(r chi.Router) {
	r.Get("/company", h.get)
	r.Put("/company", h.update)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	c, err := h.service.Get(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	c, err := h.service.Update(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, c)
}
