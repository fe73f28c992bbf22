// Package service implements sales log use cases.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/miguelangelabou/globosanabell/internal/sales/domain"
	"github.com/miguelangelabou/globosanabell/internal/sales/repository"
)

// Service implements sales recording and listing.
type Service struct {
	repo repository.SaleRepository
	now  func() time.Time
}

// New creates a sales service.
func New(repo repository.SaleRepository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Record writes one immutable sale snapshot.
func (s *Service) Record(ctx context.Context, sessionID, ip, location string, items []domain.Item, totalCents int64) (*domain.Sale, error) {
	sale := &domain.Sale{
		ID:         uuid.NewString(),
		SessionID:  sessionID,
		IP:         ip,
		Location:   location,
		Items:      items,
		TotalCents: totalCents,
		CreatedAt:  s.now().UTC(),
	}

	if err := s.repo.Create(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// Get returns one sale by ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Sale, error) {
	return s.repo.GetByID(ctx, id)
}

// ListResult is one page of the sales log.
type ListResult struct {
	Sales []domain.Sale
	Total int
}

// List returns sales newest first for the admin panel.
func (s *Service) List(ctx context.Context, limit, offset int) (*ListResult, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	sales, total, err := s.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &ListResult{Sales: sales, Total: total}, nil
}
