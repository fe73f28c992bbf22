// Package repository persists shopper session state (cart, wishlist,
// pending order) in Redis, keyed by session ID.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/miguelangelabou/globosanabell/internal/cart/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

const (
	cartKeyPrefix         = "cart:"
	wishlistKeyPrefix     = "wishlist:"
	pendingOrderKeyPrefix = "pendingorder:"
)

// SessionTTL is how long idle session state survives.
const SessionTTL = 30 * 24 * time.Hour

// PendingOrderTTL is how long a post-checkout snapshot stays readable.
const PendingOrderTTL = time.Hour

// RedisSessionRepository stores per-session shopper state in Redis.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a session repository backed by client.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

// GetCart loads the session's cart. A missing key yields an empty cart.
func (r *RedisSessionRepository) GetCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	data, err := r.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return &domain.Cart{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading cart for session %s: %w", sessionID, err)
	}

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("decoding cart for session %s: %w", sessionID, err)
	}

	return &cart, nil
}

// SaveCart persists the session's cart, refreshing its TTL.
func (r *RedisSessionRepository) SaveCart(ctx context.Context, sessionID string, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKeyPrefix+sessionID, data, SessionTTL).Err(); err != nil {
		return fmt.Errorf("saving cart for session %s: %w", sessionID, err)
	}

	return nil
}

// ClearCart deletes the session's cart.
func (r *RedisSessionRepository) ClearCart(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("clearing cart for session %s: %w", sessionID, err)
	}
	return nil
}

// GetWishlist loads the session's wishlist product IDs.
func (r *RedisSessionRepository) GetWishlist(ctx context.Context, sessionID string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, wishlistKeyPrefix+sessionID).Result()
	if err != nil {
		return nil, fmt.Errorf("loading wishlist for session %s: %w", sessionID, err)
	}
	return ids, nil
}

// ToggleWishlist adds the product to the wishlist if absent and removes
// it if present. Returns true if the product ended up in the wishlist.
func (r *RedisSessionRepository) ToggleWishlist(ctx context.Context, sessionID, productID string) (bool, error) {
	key := wishlistKeyPrefix + sessionID

	member, err := r.client.SIsMember(ctx, key, productID).Result()
	if err != nil {
		return false, fmt.Errorf("checking wishlist for session %s: %w", sessionID, err)
	}

	if member {
		if err := r.client.SRem(ctx, key, productID).Err(); err != nil {
			return false, fmt.Errorf("removing from wishlist: %w", err)
		}
		return false, nil
	}

	pipe := r.client.TxPipeline()
	pipe.SAdd(ctx, key, productID)
	pipe.Expire(ctx, key, SessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("adding to wishlist: %w", err)
	}

	return true, nil
}

// SavePendingOrder stores the post-checkout snapshot.
func (r *RedisSessionRepository) SavePendingOrder(ctx context.Context, sessionID string, order *domain.PendingOrder) error {
	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("encoding pending order: %w", err)
	}

	if err := r.client.Set(ctx, pendingOrderKeyPrefix+sessionID, data, PendingOrderTTL).Err(); err != nil {
		return fmt.Errorf("saving pending order for session %s: %w", sessionID, err)
	}

	return nil
}

// TakePendingOrder reads and deletes the snapshot in one round trip so
// the confirmation page renders it exactly once.
func (r *RedisSessionRepository) TakePendingOrder(ctx context.Context, sessionID string) (*domain.PendingOrder, error) {
	data, err := r.client.GetDel(ctx, pendingOrderKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NewNotFound("pending order")
	}
	if err != nil {
		return nil, fmt.Errorf("taking pending order for session %s: %w", sessionID, err)
	}

	var order domain.PendingOrder
	if err := json.Unmarshal(data, &order); err != nil {
		return nil, fmt.Errorf("decoding pending order for session %s: %w", sessionID, err)
	}

	return &order, nil
}
