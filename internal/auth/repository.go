package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/miguelangelabou/globosanabell/pkg/database"
	apperrors "github.com/miguelangelabou/globosanabell/pkg/errors"
)

// AdminUser is an account allowed into the admin panel.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// AdminRepository is the persistence boundary for admin accounts.
type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*AdminUser, error)
	GetByID(ctx context.Context, id string) (*AdminUser, error)
}

// PostgresAdminRepository stores admin accounts in PostgreSQL.
type PostgresAdminRepository struct {
	db database.DBTX
}

// NewPostgresAdminRepository creates an admin repository backed by db.
func NewPostgresAdminRepository(db database.DBTX) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func (r *PostgresAdminRepository) GetByEmail(ctx context.Context, email string) (*AdminUser, error) {
	return r.get(ctx, `SELECT id, email, password_hash, role, created_at FROM admins WHERE email = $1`, email)
}

func (r *PostgresAdminRepository) GetByID(ctx context.Context, id string) (*AdminUser, error) {
	return r.get(ctx, `SELECT id, email, password_hash, role, created_at FROM admins WHERE id = $1`, id)
}

func (r *PostgresAdminRepository) get(ctx context.Context, query, arg string) (*AdminUser, error) {
	var u AdminUser
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("admin user")
		}
		return nil, fmt.Errorf("fetching admin user: %w", err)
	}

	return &u, nil
}
