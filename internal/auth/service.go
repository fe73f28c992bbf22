package auth

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/logger"
)

// Service implements admin login and token refresh.
type Service struct {
	repo   AdminRepository
	tokens *JWTManager
}

// NewService creates an auth service.
func NewService(repo AdminRepository, tokens *JWTManager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login verifies the credentials and issues a token pair. Unknown
// emails and wrong passwords return the same error so the endpoint
// does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.FromContext(ctx).Warn("failed login attempt", "email", email)
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	return s.tokens.Issue(user.ID, user.Email, user.Role)
}

// Refresh exchanges a valid refresh token for a fresh pair, verifying
// the account still exists.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid refresh token")
	}

	user, err := s.repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("account no longer exists")
		}
		return nil, err
	}

	return s.tokens.Issue(user.ID, user.Email, user.Role)
}

// HashPassword hashes a password for seeding admin accounts.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
