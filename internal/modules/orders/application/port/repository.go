package port

import (
	"context"

	"addisKitchen/internal/modules/orders/domain"
)

// Repository is the storage contract for orders. CreateHeader and CreateLines
// are deliberately separate operations: the submission flow issues the line
// insert only after the header insert succeeds, and a line failure after a
// persisted header is surfaced as a partial submission rather than rolled
// back.
type Repository interface {
	CreateHeader(ctx context.Context, order *domain.Order) error
	CreateLines(ctx context.Context, orderID string, lines []domain.Line) error
	List(ctx context.Context) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) error
	Delete(ctx context.Context, id string) error
}
