package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	"github.com/miguelangelabou/globosanabell/internal/catalog/repository"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
	"github.com/miguelangelabou/globosanabell/pkg/slug"
)

// CreateProductInput is the admin panel's product creation payload.
type CreateProductInput struct {
	Name        string `json:"name" validate:"required,max=30"`
	Description string `json:"description" validate:"max=300"`
	Category    string `json:"category" validate:"required"`
	PriceCents  int64  `json:"price_cents" validate:"gte=0"`
	Active      bool   `json:"active"`
	ImageURL    string `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductInput is a partial update; nil fields are left unchanged.
type UpdateProductInput struct {
	Name        *string `json:"name" validate:"omitempty,max=30"`
	Description *string `json:"description" validate:"omitempty,max=300"`
	Category    *string `json:"category"`
	PriceCents  *int64  `json:"price_cents" validate:"omitempty,gte=0"`
	Active      *bool   `json:"active"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
}

// CreateProduct validates the input and stores a new product.
func (s *Service) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	if fields := s.validate.Validate(input); fields != nil {
		return nil, apperrors.NewInvalidInput("invalid product").WithFields(fields)
	}
	if !domain.ValidCategory(input.Category) {
		return nil, apperrors.NewInvalidInput("unknown category")
	}

	now := s.now().UTC()
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Slug:        slug.Make(input.Name),
		Description: input.Description,
		Category:    input.Category,
		PriceCents:  input.PriceCents,
		Active:      input.Active,
		ImageURL:    input.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.events.ProductCreated(ctx, p)

	return p, nil
}

// UpdateProduct applies a partial update to an existing product.
func (s *Service) UpdateProduct(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error) {
	if fields := s.validate.Validate(input); fields != nil {
		return nil, apperrors.NewInvalidInput("invalid product").WithFields(fields)
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		p.Name = *input.Name
		p.Slug = slug.Make(*input.Name)
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.Category != nil {
		if !domain.ValidCategory(*input.Category) {
			return nil, apperrors.NewInvalidInput("unknown category")
		}
		p.Category = *input.Category
	}
	if input.PriceCents != nil {
		p.PriceCents = *input.PriceCents
	}
	if input.Active != nil {
		p.Active = *input.Active
	}
	if input.ImageURL != nil {
		p.ImageURL = *input.ImageURL
	}
	p.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.events.ProductUpdated(ctx, p)

	return p, nil
}

// SetProductImage stores the uploaded image URL on the product.
func (s *Service) SetProductImage(ctx context.Context, id, url string) (*domain.Product, error) {
	return s.UpdateProduct(ctx, id, UpdateProductInput{ImageURL: &url})
}

// DeleteProduct removes a product permanently.
func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.events.ProductDeleted(ctx, p)

	return nil
}

// AdminListParams narrows the admin product listing.
type AdminListParams struct {
	Search   string
	Category string
	Active   *bool
	Page     int
	PerPage  int
}

// AdminListResult is one page of the admin product listing.
type AdminListResult struct {
	Products []domain.Product
	Total    int
}

// ListAllProducts returns products for the admin panel, including
// inactive ones, filtered and paged in SQL.
func (s *Service) ListAllProducts(ctx context.Context, params AdminListParams) (*AdminListResult, error) {
	if params.Category != "" && !domain.ValidCategory(params.Category) {
		return nil, apperrors.NewInvalidInput("unknown category")
	}

	filter := repository.AdminFilter{
		Active:  params.Active,
		Page:    params.Page,
		PerPage: params.PerPage,
	}
	if params.Search != "" {
		filter.Search = &params.Search
	}
	if params.Category != "" {
		filter.Category = &params.Category
	}

	products, total, err := s.repo.ListFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AdminListResult{Products: products, Total: total}, nil
}

// RecordSold bumps the sold counter after a checkout. Failures are the
// caller's to handle; the checkout flow treats them as non-fatal.
func (s *Service) RecordSold(ctx context.Context, productID string, quantity int) error {
	return s.repo.IncrementSoldTimes(ctx, productID, quantity)
}
