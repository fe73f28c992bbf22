// Package repository defines persistence interfaces for the catalog.
package repository

import (
	"context"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
)

// AdminFilter narrows the admin product listing. Nil fields are
// ignored; filtering happens in SQL.
type AdminFilter struct {
	Search   *string
	Category *string
	Active   *bool
	Page     int
	PerPage  int
}

// ProductRepository is the persistence boundary for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListActive(ctx context.Context) ([]domain.Product, error)
	ListFiltered(ctx context.Context, filter AdminFilter) ([]domain.Product, int, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	IncrementSoldTimes(ctx context.Context, id string, by int) error
}
