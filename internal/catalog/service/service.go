// Package service implements catalog use cases for the storefront and
// the admin panel.
package service

import (
	"context"
	"time"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	"github.com/miguelangelabou/globosanabell/internal/catalog/event"
	"github.com/miguelangelabou/globosanabell/internal/catalog/repository"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/pagination"
	"github.com/miguelangelabou/globosanabell/pkg/validator"
)

// WishlistProvider resolves a shopper session's wishlist product IDs.
// Used only by the favorites sort mode.
type WishlistProvider interface {
	ProductIDs(ctx context.Context, sessionID string) ([]string, error)
}

// Service implements catalog operations.
type Service struct {
	repo      repository.ProductRepository
	wishlists WishlistProvider
	events    *event.Publisher
	validate  *validator.Validator
	now       func() time.Time
}

// New creates a catalog service.
func New(repo repository.ProductRepository, wishlists WishlistProvider, events *event.Publisher, v *validator.Validator) *Service {
	return &Service{
		repo:      repo,
		wishlists: wishlists,
		events:    events,
		validate:  v,
		now:       time.Now,
	}
}

// BrowseParams describes one storefront catalog query.
type BrowseParams struct {
	Query         string
	Category      string
	MaxPriceCents int64
	Sort          domain.SortMode
	Page          pagination.Page
	SessionID     string
}

// BrowseResult is one page of the filtered, ranked catalog plus the
// season metadata the storefront highlights.
type BrowseResult struct {
	Products   []domain.Product
	TotalItems int
	TotalPages int
	Season     domain.Season
}

// Browse runs the full storefront pipeline: fetch active products,
// filter, rank by the requested sort mode and slice the page.
func (s *Service) Browse(ctx context.Context, params BrowseParams) (*BrowseResult, error) {
	if params.Sort == "" {
		params.Sort = domain.SortFeatured
	}
	if !domain.ValidSortMode(params.Sort) {
		return nil, apperrors.NewInvalidInput("unknown sort mode")
	}
	if params.Category != "" && !domain.ValidCategory(params.Category) {
		return nil, apperrors.NewInvalidInput("unknown category")
	}

	products, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	filter := domain.Filter{
		Query:         params.Query,
		Category:      params.Category,
		MaxPriceCents: params.MaxPriceCents,
	}
	matched := filter.Apply(products)

	var favorites map[string]bool
	if params.Sort == domain.SortFavorites {
		favorites, err = s.favoritesFor(ctx, params.SessionID)
		if err != nil {
			return nil, err
		}
	}

	month := int(s.now().Month())
	ranked := domain.Rank(matched, params.Sort, month, favorites)

	return &BrowseResult{
		Products:   pagination.Slice(ranked, params.Page),
		TotalItems: len(ranked),
		TotalPages: pagination.TotalPages(len(ranked), params.Page.PerPage),
		Season:     domain.SeasonFor(month),
	}, nil
}

func (s *Service) favoritesFor(ctx context.Context, sessionID string) (map[string]bool, error) {
	if sessionID == "" {
		return map[string]bool{}, nil
	}

	ids, err := s.wishlists.ProductIDs(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	favorites := make(map[string]bool, len(ids))
	for _, id := range ids {
		favorites[id] = true
	}
	return favorites, nil
}

// GetProduct returns a single product. Inactive products stay visible
// here so cart lines referencing them can still render.
func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// CategoryView is the category table entry enriched with its group,
// returned by the categories endpoint together with the season.
type CategoryView struct {
	Categories []domain.Category `json:"categories"`
	Season     domain.Season     `json:"season"`
}

// Categories returns the fixed category table and the current season.
func (s *Service) Categories(_ context.Context) CategoryView {
	return CategoryView{
		Categories: domain.Categories,
		Season:     domain.SeasonFor(int(s.now().Month())),
	}
}
