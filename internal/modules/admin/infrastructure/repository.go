package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"

	"addisKitchen/internal/modules/admin/domain"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/auth"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password_hash, created_at
		FROM admin_users WHERE username = $1`, username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("admin %s: %w", username, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("get admin user", err)
	}
	return &user, nil
}

// EnsureUser creates the admin account if the username is absent. Used at
// startup to seed the initial owner account from the environment.
func (r *Repository) EnsureUser(ctx context.Context, username, password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO admin_users (id, username, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (username) DO NOTHING`,
		cuid.New(), username, hash,
	)
	if err != nil {
		return apperr.Storage("ensure admin user", err)
	}
	return nil
}
