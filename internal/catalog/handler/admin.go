package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/miguelangelabou/globosanabell/internal/catalog/service"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
	"github.com/miguelangelabou/globosanabell/pkg/pagination"
)

// AdminHandler serves the admin panel's product management endpoints.
type AdminHandler struct {
	service *service.Service
}

// NewAdmin creates an admin catalog handler.
func NewAdmin(s *service.Service) *AdminHandler {
	return &AdminHandler{service: s}
}

// Routes mounts the admin product routes. Authentication is applied by
// the caller when mounting.
func (h *AdminHandler) Routes(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/{id}", h.getProduct)
	r.Patch("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
}

func (h *AdminHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := pagination.FromRequestWithSize(r, 20)
	params := service.AdminListParams{
		Search:   q.Get("q"),
		Category: q.Get("category"),
		Page:     page.Number,
		PerPage:  page.PerPage,
	}
	if raw := q.Get("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			httputil.WriteError(w, r, apperrors.NewInvalidInput("active must be a boolean"))
			return
		}
		params.Active = &active
	}

	result, err := h.service.ListAllProducts(r.Context(), params)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteList(w, http.StatusOK, result.Products, httputil.Meta{
		Page:       page.Number,
		PerPage:    page.PerPage,
		TotalItems: result.Total,
		TotalPages: pagination.TotalPages(result.Total, page.PerPage),
	})
}

func (h *AdminHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var input service.CreateProductInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	p, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, p)
}

func (h *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var input service.UpdateProductInput
	if err := httputil.DecodeJSON(r, &input); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), input)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, p)
}

func (h *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteNoContent(w)
}
