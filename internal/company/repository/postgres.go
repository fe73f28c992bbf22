// Package repository persists the company profile in PostgreSQL.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miguelangelabou/globosanabell/internal/company/domain"
	"github.com/miguelangelabou/globosanabell/pkg/database"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

// CompanyRepository is the persistence boundary for the shop profile.
type CompanyRepository interface {
	Get(ctx context.Context) (*domain.Company, error)
	Upsert(ctx context.Context, c *domain.Company) error
}

// PostgresCompanyRepository stores the single company row in PostgreSQL.
type PostgresCompanyRepository struct {
	db database.DBTX
}

// NewPostgresCompanyRepository creates a company repository backed by db.
func NewPostgresCompanyRepository(db database.DBTX) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

// Get returns the shop profile. The table holds at most one row.
func (r *PostgresCompanyRepository) Get(ctx context.Context) (*domain.Company, error) {
	query := `
		SELECT id, name, description, phone, email, address, instagram, facebook, logo_url, updated_at
		FROM company
		LIMIT 1`

	var c domain.Company
	err := r.db.QueryRow(ctx, query).Scan(
		&c.ID, &c.Name, &c.Description, &c.Phone, &c.Email,
		&c.Address, &c.Instagram, &c.Facebook, &c.LogoURL, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company profile")
		}
		return nil, fmt.Errorf("fetching company profile: %w", err)
	}

	return &c, nil
}

// Upsert writes the shop profile, replacing any existing row.
func (r *PostgresCompanyRepository) Upsert(ctx context.Context, c *domain.Company) error {
	query := `
		INSERT INTO company (id, name, description, phone, email, address, instagram, facebook, logo_url, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, description = EXCLUDED.description,
		    phone = EXCLUDED.phone, email = EXCLUDED.email,
		    address = EXCLUDED.address, instagram = EXCLUDED.instagram,
		    facebook = EXCLUDED.facebook, logo_url = EXCLUDED.logo_url,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.Name, c.Description, c.Phone, c.Email,
		c.Address, c.Instagram, c.Facebook, c.LogoURL, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting company profile: %w", err)
	}

	return nil
}
