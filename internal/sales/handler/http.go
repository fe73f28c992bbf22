// Package handler exposes the sales log to the admin panel.
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/miguelangelabou/globosanabell/internal/sales/service"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
)

// Handler serves the admin sales endpoints.
type Handler struct {
	service *service.Service
}

// New creates a sales handler.
func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the admin sales routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/sales", h.list)
	r.Get("/sales/{id}", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sale, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, sale)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset, _ := strconv.Atoi(q.Get("offset"))
	if offset < 0 {
		offset = 0
	}

	result, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteList(w, http.StatusOK, result.Sales, httputil.Meta{
		Page:       offset/limit + 1,
		PerPage:    limit,
		TotalItems: result.Total,
		TotalPages: (result.Total + limit - 1) / limit,
	})
}
