package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	"github.com/miguelangelabou/globosanabell/internal/catalog/event"
	"github.com/miguelangelabou/globosanabell/internal/catalog/repository"
	"github.com/miguelangelabou/globosanabell/internal/catalog/service"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/httputil"
	"github.com/miguelangelabou/globosanabell/pkg/kafka"
	"github.com/miguelangelabou/globosanabell/pkg/validator"
)

type stubRepo struct {
	products []domain.Product
	byID     map[string]*domain.Product
}

func (s *stubRepo) Create(context.Context, *domain.Product) error { return nil }

func (s *stubRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s.byID[id]; ok {
		return p, nil
	}
	return nil, apperrors.NewNotFound("product")
}

func (s *stubRepo) ListActive(context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubRepo) ListFiltered(context.Context, repository.AdminFilter) ([]domain.Product, int, error) {
	return s.products, len(s.products), nil
}

func (s *stubRepo) Update(context.Context, *domain.Product) error { return nil }
func (s *stubRepo) Delete(context.Context, string) error          { return nil }

func (s *stubRepo) IncrementSoldTimes(context.Context, string, int) error { return nil }

type stubWishlists struct {
	mock.Mock
}

func (s *stubWishlists) ProductIDs(ctx context.Context, sessionID string) ([]string, error) {
	args := s.Called(ctx, sessionID)
	return args.Get(0).([]string), args.Error(1)
}

func newTestRouter(repo *stubRepo) http.Handler {
	events := event.NewPublisher(kafka.NopPublisher{}, slog.Default())
	svc := service.New(repo, new(stubWishlists), events, validator.New())
	h := New(svc)

	r := chi.NewRouter()
	r.Group(h.Routes)
	return r
}

func TestListProducts(t *testing.T) {
	repo := &stubRepo{
		products: []domain.Product{
			{ID: "1", Name: "Ramo de Rosas", Category: "ramos", PriceCents: 2999, Active: true},
			{ID: "2", Name: "Osito", Category: "peluches", PriceCents: 1500, Active: true},
		},
	}
	router := newTestRouter(repo)

	t.Run("default listing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Products []productView `json:"products"`
				Season   domain.Season `json:"season"`
			} `json:"data"`
			Meta *httputil.Meta `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Len(t, resp.Data.Products, 2)
		assert.NotEmpty(t, resp.Data.Season.Priority)
		require.NotNil(t, resp.Meta)
		assert.Equal(t, 2, resp.Meta.TotalItems)
		assert.Equal(t, 12, resp.Meta.PerPage)
	})

	t.Run("query filter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products?q=osi", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data struct {
				Products []productView `json:"products"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Products, 1)
		assert.Equal(t, "Osito", resp.Data.Products[0].Name)
	})

	t.Run("max price in euros", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products?max_price=20", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var resp struct {
			Data struct {
				Products []productView `json:"products"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Data.Products, 1)
		assert.Equal(t, "2", resp.Data.Products[0].ID)
		assert.Equal(t, 15.0, resp.Data.Products[0].Price)
	})

	t.Run("invalid max price", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products?max_price=abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid sort mode", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products?sort=newest", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetProduct(t *testing.T) {
	repo := &stubRepo{
		byID: map[string]*domain.Product{
			"1": {ID: "1", Name: "Ramo de Rosas", Category: "ramos", PriceCents: 2999, CreatedAt: time.Now()},
		},
	}
	router := newTestRouter(repo)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Data productView `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Ramo de Rosas", resp.Data.Name)
		assert.Equal(t, "Ramos", resp.Data.CategoryLabel)
		assert.Equal(t, 29.99, resp.Data.Price)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/products/404", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp struct {
			Error *httputil.ErrorBody `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}

func TestListCategories(t *testing.T) {
	router := newTestRouter(&stubRepo{})

	req := httptest.NewRequest("GET", "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data struct {
			Categories []domain.Category `json:"categories"`
			Season     domain.Season     `json:"season"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data.Categories, 17)
	assert.NotEmpty(t, resp.Data.Season.BackgroundColor)
}
