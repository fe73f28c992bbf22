package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miguelangelabou/globosanabell/internal/catalog/domain"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock
}

func productRows(products ...domain.Product) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "name", "slug", "description", "category",
		"price_cents", "sold_times", "active", "image_url",
		"created_at", "updated_at",
	})
	for _, p := range products {
		rows.AddRow(
			p.ID, p.Name, p.Slug, p.Description, p.Category,
			p.PriceCents, p.SoldTimes, p.Active, p.ImageURL,
			p.CreatedAt, p.UpdatedAt,
		)
	}
	return rows
}

func TestPostgresProductRepository_GetByID(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresProductRepository(mock)

	now := time.Now()
	want := domain.Product{
		ID: "p1", Name: "Ramo de Rosas", Slug: "ramo-de-rosas",
		Description: "Doce rosas", Category: "ramos",
		PriceCents: 2500, SoldTimes: 3, Active: true,
		ImageURL: "https://img.example/r.jpg", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
		WithArgs("p1").
		WillReturnRows(productRows(want))

	got, err := repo.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.PriceCents, got.PriceCents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_GetByID_NotFound(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresProductRepository(mock)

	mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgresProductRepository_ListActive(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresProductRepository(mock)

	now := time.Now()
	mock.ExpectQuery(`SELECT .+ FROM products WHERE active = true`).
		WillReturnRows(productRows(
			domain.Product{ID: "p1", Active: true, CreatedAt: now, UpdatedAt: now},
			domain.Product{ID: "p2", Active: true, CreatedAt: now, UpdatedAt: now},
		))

	got, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_ListFiltered(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresProductRepository(mock)

	now := time.Now()
	rows := pgxmock.NewRows([]string{
		"id", "name", "slug", "description", "category",
		"price_cents", "sold_times", "active", "image_url",
		"created_at", "updated_at", "total_count",
	}).AddRow(
		"p1", "Osito", "osito", "", "peluches",
		int64(1500), 0, true, "",
		now, now, 7,
	)

	search := "osi"
	active := true
	mock.ExpectQuery(`SELECT .+ FROM products WHERE \(name ILIKE \$1 OR description ILIKE \$1\) AND active = \$2`).
		WithArgs("%osi%", true, 20, 20).
		WillReturnRows(rows)

	got, total, err := repo.ListFiltered(context.Background(), AdminFilter{
		Search:  &search,
		Active:  &active,
		Page:    2,
		PerPage: 20,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, total)
	assert.Equal(t, "Osito", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresProductRepository_Delete(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresProductRepository(mock)

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), "p1"))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := repo.Delete(context.Background(), "missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestPostgresProductRepository_IncrementSoldTimes(t *testing.T) {
	mock := newMock(t)
	repo := NewPostgresProductRepository(mock)

	mock.ExpectExec(`UPDATE products SET sold_times = sold_times \+ \$2`).
		WithArgs("p1", 2).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.IncrementSoldTimes(context.Background(), "p1", 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
