package domain

import (
	"strings"
	"time"

	"github.com/lucsky/cuid"

	"addisKitchen/internal/shared/apperr"
)

// Reservation represents one table booking request.
type Reservation struct {
	ID              string    `json:"id"`
	GuestName       string    `json:"guestName"`
	GuestEmail      string    `json:"guestEmail"`
	GuestPhone      string    `json:"guestPhone,omitempty"`
	PartySize       int       `json:"partySize"`
	ReservationDate string    `json:"reservationDate"`
	ReservationTime string    `json:"reservationTime"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingRequest carries the public booking form fields.
type BookingRequest struct {
	GuestName       string `json:"guestName"`
	GuestEmail      string `json:"guestEmail"`
	GuestPhone      string `json:"guestPhone"`
	PartySize       int    `json:"partySize"`
	ReservationDate string `json:"reservationDate"`
	ReservationTime string `json:"reservationTime"`
	SpecialRequests string `json:"specialRequests"`
}

func (r BookingRequest) Validate() error {
	if strings.TrimSpace(r.GuestName) == "" {
		return apperr.Validation("guest name is required")
	}
	if strings.TrimSpace(r.GuestEmail) == "" {
		return apperr.Validation("guest email is required")
	}
	if r.PartySize < 1 {
		return apperr.Validation("party size must be at least 1")
	}
	if _, err := time.Parse("2006-01-02", r.ReservationDate); err != nil {
		return apperr.Validation("reservation date must be YYYY-MM-DD")
	}
	if strings.TrimSpace(r.ReservationTime) == "" {
		return apperr.Validation("reservation time is required")
	}
	return nil
}

// NewReservation builds a reservation from a validated public booking. Public
// bookings are confirmed immediately; the pending state is reserved for
// requests the staff still has to triage.
func NewReservation(req BookingRequest) *Reservation {
	return &Reservation{
		ID:              cuid.New(),
		GuestName:       req.GuestName,
		GuestEmail:      req.GuestEmail,
		GuestPhone:      req.GuestPhone,
		PartySize:       req.PartySize,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		SpecialRequests: req.SpecialRequests,
		Status:          StatusConfirmed,
		CreatedAt:       time.Now().UTC(),
	}
}
