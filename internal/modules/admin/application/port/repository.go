package port

import (
	"context"

	"addisKitchen/internal/modules/admin/domain"
)

// Repository looks up admin accounts for sign-in.
type Repository interface {
	GetByUsername(ctx context.Context, username string) (*domain.AdminUser, error)
}
