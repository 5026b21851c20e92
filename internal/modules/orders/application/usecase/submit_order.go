package usecase

import (
	"context"
	"fmt"
	"log/slog"

	cart "addisKitchen/internal/modules/cart/domain"
	"addisKitchen/internal/modules/orders/application/port"
	"addisKitchen/internal/modules/orders/domain"
	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/notify"
)

// SubmitOrderInput carries the cart snapshot and customer fields for one
// submission attempt.
type SubmitOrderInput struct {
	Cart     *cart.Cart
	Customer domain.Customer
}

// SubmitOrderUseCase turns a non-empty cart into a persisted order. Writes are
// sequenced: lines are inserted only after the header insert succeeds. On
// success the cart is cleared; on any failure the cart keeps its prior state.
// Exactly one notification is emitted per terminal outcome.
type SubmitOrderUseCase struct {
	Repo     port.Repository
	Notifier notify.Notifier
}

func NewSubmitOrderUseCase(repo port.Repository, notifier notify.Notifier) *SubmitOrderUseCase {
	return &SubmitOrderUseCase{Repo: repo, Notifier: notifier}
}

func (uc *SubmitOrderUseCase) Execute(ctx context.Context, input SubmitOrderInput) (*domain.Order, error) {
	if input.Cart == nil || input.Cart.IsEmpty() {
		err := apperr.Validation("cart is empty")
		uc.Notifier.Notify(ctx, notify.Failure("order", "submit", "", "cart is empty"))
		return nil, err
	}
	if err := input.Customer.Validate(); err != nil {
		uc.Notifier.Notify(ctx, notify.Failure("order", "submit", "", err.Error()))
		return nil, err
	}

	lines := input.Cart.Lines()
	inputs := make([]domain.LineInput, 0, len(lines))
	for _, line := range lines {
		inputs = append(inputs, domain.LineInput{
			ItemID:    line.ItemID,
			ItemName:  line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}
	order := domain.NewOrder(input.Customer, inputs)

	if err := uc.Repo.CreateHeader(ctx, order); err != nil {
		wrapped := apperr.Storage("insert order header", err)
		slog.Error("order header insert failed", slog.String("orderId", order.ID), slog.Any("error", err))
		uc.Notifier.Notify(ctx, notify.Failure("order", "submit", order.ID, "order could not be saved"))
		return nil, wrapped
	}

	if err := uc.Repo.CreateLines(ctx, order.ID, order.Lines); err != nil {
		// The header is already persisted; no compensation is attempted.
		wrapped := fmt.Errorf("%w: insert order lines: %v", apperr.ErrPartialSubmission, err)
		slog.Error("order lines insert failed after header", slog.String("orderId", order.ID), slog.Any("error", err))
		uc.Notifier.Notify(ctx, notify.Failure("order", "submit", order.ID, "order could not be completed"))
		return nil, wrapped
	}

	input.Cart.Clear()
	slog.Info("order submitted",
		slog.String("orderId", order.ID),
		slog.Int("lines", len(order.Lines)),
		slog.Float64("total", order.Total),
	)
	uc.Notifier.Notify(ctx, notify.Success("order", "submit", order.ID, "order placed"))
	return order, nil
}
