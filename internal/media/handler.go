package media

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	catalogdomain "github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
)

const uploadFolder = "globosanabell/products"

// ImageAttacher stores an uploaded image URL on a product.
type ImageAttacher interface {
	SetProductImage(ctx context.Context, id, url string) (*catalogdomain.Product, error)
}

// Handler serves the admin image upload endpoints.
type Handler struct {
	uploader Uploader
	products ImageAttacher
}

// NewHandler creates a media handler.
func NewHandler(u Uploader, products ImageAttacher) *Handler {
	return &Handler{uploader: u, products: products}
}

// Routes mounts the admin media routes.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/images", h.upload)
	r.Post("/products/{id}/image", h.uploadProductImage)
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	url, ok := h.uploadFromForm(w, r)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, uploadResponse{URL: url})
}

// uploadProductImage uploads the image and stores its URL on the product.
func (h *Handler) uploadProductImage(w http.ResponseWriter, r *http.Request) {
	url, ok := h.uploadFromForm(w, r)
	if !ok {
		return
	}

	p, err := h.products.SetProductImage(r.Context(), chi.URLParam(r, "id"), url)
	if err != nil {
		httputil.WriteError(w, r, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, p)
}

// uploadFromForm validates the multipart form and pushes the file to
// the uploader. On failure it writes the error response itself.
func (h *Handler) uploadFromForm(w http.ResponseWriter, r *http.Request) (string, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxImageBytes+4096)

	if err := r.ParseMultipartForm(MaxImageBytes); err != nil {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("image must be at most 2MB"))
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("missing image file"))
		return "", false
	}
	defer file.Close()

	if !validUpload(w, r, header) {
		return "", false
	}

	url, err := h.uploader.Upload(r.Context(), file, uploadFolder)
	if err != nil {
		httputil.WriteError(w, r, err)
		return "", false
	}

	return url, true
}

func validUpload(w http.ResponseWriter, r *http.Request, header *multipart.FileHeader) bool {
	if header.Size > MaxImageBytes {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("image must be at most 2MB"))
		return false
	}

	if !AllowedType(header.Header.Get("Content-Type")) {
		httputil.WriteError(w, r, apperrors.NewInvalidInput("image must be png, jpeg or webp"))
		return false
	}

	return true
}
