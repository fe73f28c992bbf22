// Package handler exposes the cart and wishlist endpoints over HTTP.
// All routes require the shopper session header.
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/miguelangelabou/globosanabell/internal/cart/domain"
	"github.com/miguelangelabou/globosanabell/internal/cart/service"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
	"github.com/miguelangelabou/globosanabell/pkg/middleware"
)

// Handler serves cart and wishlist endpoints.
type Handler struct {
	service *service.Service
}

// New creates a cart handler.
func New(s *service.Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the cart routes behind the session middleware.
func (h *Handler) Routes(r chi.Router) {
	r.Use(middleware.RequireSession)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Put("/cart/items/{productID}", h.setQuantity)
	r.Delete("/cart/items/{productID}", h.removeItem)
	r.Delete("/cart", h.clearCart)

	r.Get("/wishlist", h.getWishlist)
	r.Put("/wishlist/{productID}", h.toggleWishlist)

	r.Get("/orders/pending", h.pendingOrder)
}

type cartView struct {
	Lines      []domain.Line `json:"lines"`
	TotalCents int64         `json:"total_cents"`
	ItemCount  int           `json:"item_count"`
}

func toCartView(c *domain.Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []domain.Line{}
	}
	return cartView{
		Lines:      lines,
		TotalCents: c.TotalCents(),
		ItemCount:  c.ItemCount(),
	}
}

func sessionID(r *http.Request) string {
	sid, _ := middleware.SessionFromContext(r.Context())
	return sid
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCartView(cart))
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if req.ProductID == "" {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("product_id is required"))
		return
	}

	cart, err := h.service.AddItem(r.Context(), sessionID(r), req.ProductID)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCartView(cart))
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) setQuantity(w http.ResponseWriter, r *http.Request) {
	var req setQuantityRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	cart, err := h.service.SetQuantity(r.Context(), sessionID(r), chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCartView(cart))
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.RemoveItem(r.Context(), sessionID(r), chi.URLParam(r, "productID"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, toCartView(cart))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Clear(r.Context(), sessionID(r)); err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteNoContent(w)
}

type wishlistView struct {
	ProductIDs []string `json:"product_ids"`
}

func (h *Handler) getWishlist(w http.ResponseWriter, r *http.Request) {
	ids, err := h.service.Wishlist(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	httputil.WriteJSON(w, http.StatusOK, wishlistView{ProductIDs: ids})
}

func (h *Handler) toggleWishlist(w http.ResponseWriter, r *http.Request) {
	added, err := h.service.ToggleWishlist(r.Context(), sessionID(r), chi.URLParam(r, "productID"))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]bool{"wishlisted": added})
}

func (h *Handler) pendingOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.TakePendingOrder(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, order)
}
