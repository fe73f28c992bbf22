// Package handler exposes catalog endpoints over HTTP.
package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	"github.com/miguelangelabou/globosanabell/internal/catalog/service"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
	"github.com/miguelangelabou/globosanabell/pkg/middleware"
	"github.com/miguelangelabou/globosanabell/pkg/pagination"
)

// Handler serves the public storefront catalog endpoints.
type Handler struct {
	service *service.Service
}

// New creates a catalog handler.
func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the public catalog routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/categories", h.listCategories)
}

type productView struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Slug          string  `json:"slug"`
	Description   string  `json:"description"`
	Category      string  `json:"category"`
	CategoryLabel string  `json:"category_label"`
	Price         float64 `json:"price"`
	SoldTimes     int     `json:"sold_times"`
	ImageURL      string  `json:"image_url"`
}

func toProductView(p domain.Product) productView {
	return productView{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description,
		Category:      p.Category,
		CategoryLabel: p.CategoryLabel(),
		Price:         float64(p.PriceCents) / 100,
		SoldTimes:     p.SoldTimes,
		ImageURL:      p.ImageURL,
	}
}

type browseView struct {
	Products []productView `json:"products"`
	Season   domain.Season `json:"season"`
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	maxPriceCents, err := parsePriceCents(q.Get("max_price"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	page := pagination.FromRequest(r)
	params := service.BrowseParams{
		Query:         q.Get("q"),
		Category:      q.Get("category"),
		MaxPriceCents: maxPriceCents,
		Sort:          domain.SortMode(q.Get("sort")),
		Page:          page,
		SessionID:     r.Header.Get(middleware.SessionIDHeader),
	}

	result, err := h.service.Browse(r.Context(), params)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	views := make([]productView, 0, len(result.Products))
	for _, p := range result.Products {
		views = append(views, toProductView(p))
	}

	httputil.WriteList(w, http.StatusOK, browseView{Products: views, Season: result.Season}, httputil.Meta{
		Page:       page.Number,
		PerPage:    page.PerPage,
		TotalItems: result.TotalItems,
		TotalPages: result.TotalPages,
	})
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toProductView(*p))
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, h.service.Categories(r.Context()))
}

// parsePriceCents converts a decimal euro amount like "25.50" to cents.
// An empty value means no ceiling.
func parsePriceCents(raw string) (int64, error) {
	if raw == "" {
		return 0, nil
	}

	euros, err := strconv.ParseFloat(raw, 64)
	if err != nil || euros < 0 {
		return 0, apperrors.NewInvalidInput("max_price must be a non-negative number")
	}

	return int64(math.Round(euros * 100)), nil
}
