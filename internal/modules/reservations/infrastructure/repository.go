package infrastructure

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"addisKitchen/internal/modules/reservations/domain"
	"addisKitchen/internal/shared/apperr"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, res *domain.Reservation) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO table_reservations (
			id, guest_name, guest_email, guest_phone, party_size,
			reservation_date, reservation_time, special_requests, status, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.ID,
		res.GuestName,
		res.GuestEmail,
		res.GuestPhone,
		res.PartySize,
		res.ReservationDate,
		res.ReservationTime,
		res.SpecialRequests,
		res.Status,
		res.CreatedAt,
	)
	if err != nil {
		return apperr.Storage("insert reservation", err)
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.Reservation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, guest_name, guest_email, guest_phone, party_size,
		       to_char(reservation_date, 'YYYY-MM-DD'), reservation_time,
		       special_requests, status, created_at
		FROM table_reservations
		ORDER BY reservation_date, reservation_time`)
	if err != nil {
		return nil, apperr.Storage("list reservations", err)
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		var res domain.Reservation
		if err := rows.Scan(
			&res.ID,
			&res.GuestName,
			&res.GuestEmail,
			&res.GuestPhone,
			&res.PartySize,
			&res.ReservationDate,
			&res.ReservationTime,
			&res.SpecialRequests,
			&res.Status,
			&res.CreatedAt,
		); err != nil {
			return nil, apperr.Storage("scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage("list reservations", err)
	}
	return reservations, nil
}

func (r *Repository) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.pool.QueryRow(ctx, `
		SELECT id, guest_name, guest_email, guest_phone, party_size,
		       to_char(reservation_date, 'YYYY-MM-DD'), reservation_time,
		       special_requests, status, created_at
		FROM table_reservations WHERE id = $1`, id,
	).Scan(
		&res.ID,
		&res.GuestName,
		&res.GuestEmail,
		&res.GuestPhone,
		&res.PartySize,
		&res.ReservationDate,
		&res.ReservationTime,
		&res.SpecialRequests,
		&res.Status,
		&res.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("reservation %s: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("get reservation", err)
	}
	return &res, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	tag, err := r.pool.Exec(ctx, `UPDATE table_reservations SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return apperr.Storage("update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM table_reservations WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage("delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s: %w", id, apperr.ErrNotFound)
	}
	return nil
}
