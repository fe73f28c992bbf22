package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miguelangelabou/globosanabell/internal/cart/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

func newRepo(t *testing.T) (*RedisSessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisSessionRepository(client), mr
}

func TestCartRoundTrip(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	t.Run("missing cart is empty", func(t *testing.T) {
		cart, err := repo.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, cart.IsEmpty())
	})

	t.Run("save and load", func(t *testing.T) {
		cart := &domain.Cart{}
		cart.Add("p1", "Osito", 1000)
		cart.Add("p1", "Osito", 1000)

		require.NoError(t, repo.SaveCart(ctx, "s1", cart))

		got, err := repo.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.Len(t, got.Lines, 1)
		assert.Equal(t, 2, got.Lines[0].Quantity)
		assert.Equal(t, int64(2000), got.TotalCents())
	})

	t.Run("clear", func(t *testing.T) {
		require.NoError(t, repo.ClearCart(ctx, "s1"))

		got, err := repo.GetCart(ctx, "s1")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		cart := &domain.Cart{}
		cart.Add("p9", "Ramo", 2500)
		require.NoError(t, repo.SaveCart(ctx, "a", cart))

		got, err := repo.GetCart(ctx, "b")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})
}

func TestWishlistToggle(t *testing.T) {
	repo, _ := newRepo(t)
	ctx := context.Background()

	added, err := repo.ToggleWishlist(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.True(t, added)

	ids, err := repo.GetWishlist(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, ids)

	added, err = repo.ToggleWishlist(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.False(t, added)

	ids, err = repo.GetWishlist(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestPendingOrder(t *testing.T) {
	repo, mr := newRepo(t)
	ctx := context.Background()

	cart := domain.Cart{}
	cart.Add("p1", "Osito", 1000)

	order := &domain.PendingOrder{
		Cart:       cart,
		TotalCents: cart.TotalCents(),
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, repo.SavePendingOrder(ctx, "s1", order))

	t.Run("read once", func(t *testing.T) {
		got, err := repo.TakePendingOrder(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, int64(1000), got.TotalCents)

		_, err = repo.TakePendingOrder(ctx, "s1")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("expires", func(t *testing.T) {
		require.NoError(t, repo.SavePendingOrder(ctx, "s2", order))
		mr.FastForward(PendingOrderTTL + time.Minute)

		_, err := repo.TakePendingOrder(ctx, "s2")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
