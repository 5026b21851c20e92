package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"addisKitchen/internal/modules/orders/domain"
	"addisKitchen/internal/shared/apperr"
)

// Repository persists orders in Postgres. Header and lines are written by
// separate calls; the submission usecase sequences them.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) CreateHeader(ctx context.Context, order *domain.Order) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO orders (
			id, customer_name, customer_email, customer_phone,
			customer_address, notes, total, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		order.ID,
		order.Customer.Name,
		order.Customer.Email,
		order.Customer.Phone,
		order.Customer.Address,
		order.Customer.Notes,
		order.Total,
		order.Status,
		order.CreatedAt,
	)
	return err
}

func (r *Repository) CreateLines(ctx context.Context, orderID string, lines []domain.Line) error {
	for _, line := range lines {
		_, err := r.pool.Exec(ctx, `
			INSERT INTO order_lines (id, order_id, item_id, item_name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			line.ID, orderID, line.ItemID, line.ItemName, line.UnitPrice, line.Quantity,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, customer_name, customer_email, customer_phone,
		       customer_address, notes, total, status, created_at
		FROM orders
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, apperr.Storage("list orders", err)
	}
	defer rows.Close()

	var orders []domain.Order
	index := make(map[string]int)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID,
			&o.Customer.Name,
			&o.Customer.Email,
			&o.Customer.Phone,
			&o.Customer.Address,
			&o.Customer.Notes,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, apperr.Storage("scan order", err)
		}
		index[o.ID] = len(orders)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list orders", err)
	}

	lineRows, err := r.pool.Query(ctx, `
		SELECT id, order_id, item_id, item_name, unit_price, quantity
		FROM order_lines`)
	if err != nil {
		return nil, apperr.Storage("list order lines", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var l domain.Line
		if err := lineRows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.ItemName, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, apperr.Storage("scan order line", err)
		}
		if i, ok := index[l.OrderID]; ok {
			orders[i].Lines = append(orders[i].Lines, l)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, apperr.Storage("list order lines", err)
	}

	return orders, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `
		SELECT id, customer_name, customer_email, customer_phone,
		       customer_address, notes, total, status, created_at
		FROM orders WHERE id = $1`, id,
	).Scan(
		&o.ID,
		&o.Customer.Name,
		&o.Customer.Email,
		&o.Customer.Phone,
		&o.Customer.Address,
		&o.Customer.Notes,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("get order", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, order_id, item_id, item_name, unit_price, quantity
		FROM order_lines WHERE order_id = $1`, id)
	if err != nil {
		return nil, apperr.Storage("get order lines", err)
	}
	defer rows.Close()

	for rows.Next() {
		var l domain.Line
		if err := rows.Scan(&l.ID, &l.OrderID, &l.ItemID, &l.ItemName, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, apperr.Storage("scan order line", err)
		}
		o.Lines = append(o.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("get order lines", err)
	}

	return &o, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return apperr.Storage("update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("delete order", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
