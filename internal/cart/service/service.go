// Package service implements cart and wishlist use cases.
package service

import (
	"context"

	"github.com/miguelangelabou/globosanabell/internal/cart/domain"
	"github.com/miguelangelabou/globosanabell/internal/cart/event"
	catalogdomain "github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

// ProductGetter resolves a product for cart snapshots.
type ProductGetter interface {
	GetProduct(ctx context.Context, id string) (*catalogdomain.Product, error)
}

// SessionRepository is the persistence boundary for session state.
type SessionRepository interface {
	GetCart(ctx context.Context, sessionID string) (*domain.Cart, error)
	SaveCart(ctx context.Context, sessionID string, cart *domain.Cart) error
	ClearCart(ctx context.Context, sessionID string) error
	GetWishlist(ctx context.Context, sessionID string) ([]string, error)
	ToggleWishlist(ctx context.Context, sessionID, productID string) (bool, error)
	SavePendingOrder(ctx context.Context, sessionID string, order *domain.PendingOrder) error
	TakePendingOrder(ctx context.Context, sessionID string) (*domain.PendingOrder, error)
}

// Service implements cart operations for one shopper session.
type Service struct {
	repo     SessionRepository
	products ProductGetter
	events   *event.Publisher
}

// New creates a cart service.
func New(repo SessionRepository, products ProductGetter, events *event.Publisher) *Service {
	return &Service{repo: repo, products: products, events: events}
}

// GetCart returns the session's cart.
func (s *Service) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.repo.GetCart(ctx, sessionID)
}

// AddItem adds one unit of the product to the cart, snapshotting its
// name and price. Inactive products cannot be added.
func (s *Service) AddItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Active {
		return nil, apperrors.NewConflict("product is no longer available")
	}

	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Add(product.ID, product.Name, product.PriceCents)

	if err := s.repo.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	s.events.ItemAdded(ctx, sessionID, product.ID, quantityOf(cart, product.ID))

	return cart, nil
}

// SetQuantity changes a line's quantity. Quantities below one remove
// the line, matching the storefront's stepper behavior.
func (s *Service) SetQuantity(ctx context.Context, sessionID, productID string, quantity int) (*domain.Cart, error) {
	cart, err := s.repo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(productID, quantity) {
		return nil, apperrors.NewNotFound("cart line")
	}

	if err := s.repo.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, err
	}

	if quantity < 1 {
		s.events.ItemRemoved(ctx, sessionID, productID)
	} else {
		s.events.ItemAdded(ctx, sessionID, productID, quantity)
	}

	return cart, nil
}

// RemoveItem deletes a line from the cart.
func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (*domain.Cart, error) {
	return s.SetQuantity(ctx, sessionID, productID, 0)
}

// Clear empties the session's cart.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.repo.ClearCart(ctx, sessionID); err != nil {
		return err
	}

	s.events.CartCleared(ctx, sessionID)

	return nil
}

// ToggleWishlist flips the product's wishlist membership and returns
// whether it is now wishlisted.
func (s *Service) ToggleWishlist(ctx context.Context, sessionID, productID string) (bool, error) {
	if _, err := s.products.GetProduct(ctx, productID); err != nil {
		return false, err
	}

	return s.repo.ToggleWishlist(ctx, sessionID, productID)
}

// Wishlist returns the session's wishlisted product IDs.
func (s *Service) Wishlist(ctx context.Context, sessionID string) ([]string, error) {
	return s.repo.GetWishlist(ctx, sessionID)
}

// ProductIDs implements the catalog's wishlist lookup for the
// favorites sort mode.
func (s *Service) ProductIDs(ctx context.Context, sessionID string) ([]string, error) {
	return s.repo.GetWishlist(ctx, sessionID)
}

// SavePendingOrder stores the post-checkout snapshot for the
// confirmation page.
func (s *Service) SavePendingOrder(ctx context.Context, sessionID string, order *domain.PendingOrder) error {
	return s.repo.SavePendingOrder(ctx, sessionID, order)
}

// TakePendingOrder returns the post-checkout snapshot exactly once.
func (s *Service) TakePendingOrder(ctx context.Context, sessionID string) (*domain.PendingOrder, error) {
	return s.repo.TakePendingOrder(ctx, sessionID)
}

func quantityOf(cart *domain.Cart, productID string) int {
	for _, l := range cart.Lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}
