package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
)

// Handler serves the admin authentication endpoints.
type Handler struct {
	service *Service
}

// NewHandler creates an auth handler.
func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

// Routes mounts the public auth routes.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
	r.Post("/refresh", h.refresh)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("email and password are required"))
		return
	}

	pair, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pair)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, r, err)
		return
	}
	if req.RefreshToken == "" {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("refresh_token is required"))
		return
	}

	pair, err := h.service.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, pair)
}
