// Package service implements company profile use cases.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/miguelangelabou/globosanabell/internal/company/domain"
	"github.com/miguelangelabou/globosanabell/internal/company/repository"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/validator"
)

// Service implements company profile operations.
type Service struct {
	repo     repository.CompanyRepository
	validate *validator.Validator
	now      func() time.Time
}

// New creates a company service.
func New(repo repository.CompanyRepository, v *validator.Validator) *Service {
	return &Service{repo: repo, validate: v, now: time.Now}
}

// Get returns the shop profile.
func (s *Service) Get(ctx context.Context) (*domain.Company, error) {
	return s.repo.Get(ctx)
}

// UpdateInput is the admin panel's company profile payload.
type UpdateInput struct {
	Name        string `json:"name" validate:"required,max=60"`
	Description string `json:"description" validate:"max=300"`
	Phone       string `json:"phone" validate:"required,intlphone"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address" validate:"max=200"`
	Instagram   string `json:"instagram" validate:"omitempty,url"`
	Facebook    string `json:"facebook" validate:"omitempty,url"`
	LogoURL     string `json:"logo_url" validate:"omitempty,url"`
}

// Update validates and writes the shop profile, creating it on first use.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Company, error) {
	if fields := s.validate.Validate(input); fields != nil {
		return nil, apperrors.NewInvalidInput("invalid company profile").WithFields(fields)
	}

	c, err := s.repo.Get(ctx)
	if err != nil {
		if apperrors.AsAppError(err).Code != "NOT_FOUND" {
			return nil, err
		}
		c = &domain.Company{ID: uuid.NewString()}
	}

	c.Name = input.Name
	c.Description = input.Description
	c.Phone = input.Phone
	c.Email = input.Email
	c.Address = input.Address
	c.Instagram = input.Instagram
	c.Facebook = input.Facebook
	c.LogoURL = input.LogoURL
	c.UpdatedAt = s.now().UTC()

	if err := s.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}
