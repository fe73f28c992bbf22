package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminUser), args.Error(1)
}

func (m *mockAdminRepo) GetByID(ctx context.Context, id string) (*AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*AdminUser), args.Error(1)
}

func seedUser(t *testing.T) *AdminUser {
	t.Helper()

	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)

	return &AdminUser{
		ID:           "u1",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         "admin",
	}
}

func TestLogin(t *testing.T) {
	tokens := NewJWTManager("secret", "globosanabell", 15*time.Minute, 24*time.Hour)
	user := seedUser(t)

	t.Run("valid credentials", func(t *testing.T) {
		repo := new(mockAdminRepo)
		repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(user, nil)
		svc := NewService(repo, tokens)

		pair, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
		require.NoError(t, err)

		claims, err := tokens.Verify(pair.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(mockAdminRepo)
		repo.On("GetByEmail", mock.Anything, "admin@example.com").Return(user, nil)
		svc := NewService(repo, tokens)

		_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("unknown email maps to the same error", func(t *testing.T) {
		repo := new(mockAdminRepo)
		repo.On("GetByEmail", mock.Anything, "ghost@example.com").
			Return(nil, apperrors.NewNotFound("admin user"))
		svc := NewService(repo, tokens)

		_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestRefresh(t *testing.T) {
	tokens := NewJWTManager("secret", "globosanabell", 15*time.Minute, 24*time.Hour)
	user := seedUser(t)

	t.Run("valid refresh token", func(t *testing.T) {
		repo := new(mockAdminRepo)
		repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
		repo.On("GetByID", mock.Anything, "u1").Return(user, nil)
		svc := NewService(repo, tokens)

		pair, err := svc.Login(context.Background(), user.Email, "correct-horse")
		require.NoError(t, err)

		fresh, err := svc.Refresh(context.Background(), pair.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, fresh.AccessToken)
	})

	t.Run("access token is not accepted", func(t *testing.T) {
		repo := new(mockAdminRepo)
		repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
		svc := NewService(repo, tokens)

		pair, err := svc.Login(context.Background(), user.Email, "correct-horse")
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("deleted account", func(t *testing.T) {
		repo := new(mockAdminRepo)
		repo.On("GetByEmail", mock.Anything, user.Email).Return(user, nil)
		repo.On("GetByID", mock.Anything, "u1").Return(nil, apperrors.NewNotFound("admin user"))
		svc := NewService(repo, tokens)

		pair, err := svc.Login(context.Background(), user.Email, "correct-horse")
		require.NoError(t, err)

		_, err = svc.Refresh(context.Background(), pair.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
