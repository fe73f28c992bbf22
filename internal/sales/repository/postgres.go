// Package repository persists sale records in PostgreSQL.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/miguelangelabou/globosanabell/internal/sales/domain"
	"github.com/miguelangelabou/globosanabell/pkg/database"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

// SaleRepository is the persistence boundary for the sales log.
type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
	List(ctx context.Context, limit, offset int) ([]domain.Sale, int, error)
}

// PostgresSaleRepository stores sales in PostgreSQL with line items
// as a JSONB column.
type PostgresSaleRepository struct {
	db database.DBTX
}

// NewPostgresSaleRepository creates a sale repository backed by db.
func NewPostgresSaleRepository(db database.DBTX) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("encoding sale items: %w", err)
	}

	query := `
		INSERT INTO sales (id, session_id, ip, location, items, total_cents, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err = r.db.Exec(ctx, query,
		sale.ID, sale.SessionID, sale.IP, sale.Location,
		items, sale.TotalCents, sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting sale: %w", err)
	}

	return nil
}

// GetByID returns a single sale.
func (r *PostgresSaleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query := `
		SELECT id, session_id, ip, location, items, total_cents, created_at
		FROM sales
		WHERE id = $1`

	var (
		s     domain.Sale
		items []byte
	)
	err := r.db.QueryRow(ctx, query, id).
		Scan(&s.ID, &s.SessionID, &s.IP, &s.Location, &items, &s.TotalCents, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("sale")
		}
		return nil, fmt.Errorf("fetching sale: %w", err)
	}

	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("decoding sale items: %w", err)
	}

	return &s, nil
}

// List returns sales newest first, with the total count for paging.
func (r *PostgresSaleRepository) List(ctx context.Context, limit, offset int) ([]domain.Sale, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM sales`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting sales: %w", err)
	}

	query := `
		SELECT id, session_id, ip, location, items, total_cents, created_at
		FROM sales
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("listing sales: %w", err)
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var (
			s     domain.Sale
			items []byte
		)
		err := rows.Scan(&s.ID, &s.SessionID, &s.IP, &s.Location, &items, &s.TotalCents, &s.CreatedAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning sale row: %w", err)
		}

		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, 0, fmt.Errorf("decoding sale items: %w", err)
		}

		sales = append(sales, s)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating sale rows: %w", err)
	}

	return sales, total, nil
}
