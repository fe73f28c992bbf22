package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	"github.com/miguelangelabou/globosanabell/pkg/database"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

// PostgresProductRepository stores products in PostgreSQL.
type PostgresProductRepository struct {
	db database.DBTX
}

// NewPostgresProductRepository creates a product repository backed by db.
func NewPostgresProductRepository(db database.DBTX) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, slug, description, category, price_cents, sold_times, active, image_url, created_at, updated_at`

func (r *PostgresProductRepository) Create(ctx context.Context, p *domain.Product) error {
	query := `
		INSERT INTO products (id, name, slug, description, category, price_cents, sold_times, active, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Category,
		p.PriceCents, p.SoldTimes, p.Active, p.ImageURL,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAlreadyExists("product")
		}
		return fmt.Errorf("inserting product: %w", err)
	}

	return nil
}

func (r *PostgresProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product")
		}
		return nil, fmt.Errorf("fetching product %s: %w", id, err)
	}

	return p, nil
}

func (r *PostgresProductRepository) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE active = true ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListFiltered returns products matching the admin filter with the
// total match count, using count(*) OVER() to avoid a second query.
func (r *PostgresProductRepository) ListFiltered(ctx context.Context, filter AdminFilter) ([]domain.Product, int, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+*filter.Search+"%")
		argIndex++
	}
	if filter.Category != nil {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, *filter.Category)
		argIndex++
	}
	if filter.Active != nil {
		conditions = append(conditions, fmt.Sprintf("active = $%d", argIndex))
		args = append(args, *filter.Active)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	perPage := filter.PerPage
	if perPage < 1 {
		perPage = 20
	}
	offset := 0
	if filter.Page > 1 {
		offset = (filter.Page - 1) * perPage
	}

	query := fmt.Sprintf(`SELECT %s, count(*) OVER() AS total_count FROM products %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		productColumns, whereClause, argIndex, argIndex+1,
	)
	args = append(args, perPage, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var total int
	products := make([]domain.Product, 0)
	for rows.Next() {
		var p domain.Product
		err := rows.Scan(
			&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category,
			&p.PriceCents, &p.SoldTimes, &p.Active, &p.ImageURL,
			&p.CreatedAt, &p.UpdatedAt, &total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, total, nil
}

func (r *PostgresProductRepository) list(ctx context.Context, query string) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating product rows: %w", err)
	}

	return products, nil
}

func (r *PostgresProductRepository) Update(ctx context.Context, p *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, slug = $3, description = $4, category = $5,
		    price_cents = $6, active = $7, image_url = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Slug, p.Description, p.Category,
		p.PriceCents, p.Active, p.ImageURL, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating product %s: %w", p.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("product")
	}

	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("product")
	}

	return nil
}

func (r *PostgresProductRepository) IncrementSoldTimes(ctx context.Context, id string, by int) error {
	query := `UPDATE products SET sold_times = sold_times + $2, updated_at = now() WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, by)
	if err != nil {
		return fmt.Errorf("incrementing sold times for %s: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFound("product")
	}

	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Description, &p.Category,
		&p.PriceCents, &p.SoldTimes, &p.Active, &p.ImageURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
