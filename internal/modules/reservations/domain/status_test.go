package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Status
	}{
		{name: "pending", input: " pending ", expected: StatusPending},
		{name: "uppercase", input: "SEATED", expected: StatusSeated},
		{name: "cancelled", input: "cancelled", expected: StatusCancelled},
		{name: "unknown", input: "no_show", expected: StatusUnknown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseStatus(tc.input); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{name: "pending to confirmed", from: StatusPending, to: StatusConfirmed, allowed: true},
		{name: "confirmed to seated", from: StatusConfirmed, to: StatusSeated, allowed: true},
		{name: "seated to completed", from: StatusSeated, to: StatusCompleted, allowed: true},
		{name: "skip a step", from: StatusPending, to: StatusSeated, allowed: false},
		{name: "backwards", from: StatusSeated, to: StatusConfirmed, allowed: false},
		{name: "cancel pending", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "cancel seated", from: StatusSeated, to: StatusCancelled, allowed: true},
		{name: "cancel completed", from: StatusCompleted, to: StatusCancelled, allowed: false},
		{name: "leave cancelled", from: StatusCancelled, to: StatusConfirmed, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestBookingRequestValidate(t *testing.T) {
	valid := BookingRequest{
		GuestName:       "Mike Johnson",
		GuestEmail:      "mike@example.com",
		PartySize:       4,
		ReservationDate: "2026-09-16",
		ReservationTime: "19:00",
	}

	cases := []struct {
		name    string
		mutate  func(*BookingRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(*BookingRequest) {}},
		{name: "phone optional", mutate: func(r *BookingRequest) { r.GuestPhone = "" }},
		{name: "missing name", mutate: func(r *BookingRequest) { r.GuestName = "" }, wantErr: true},
		{name: "missing email", mutate: func(r *BookingRequest) { r.GuestEmail = " " }, wantErr: true},
		{name: "zero party", mutate: func(r *BookingRequest) { r.PartySize = 0 }, wantErr: true},
		{name: "bad date", mutate: func(r *BookingRequest) { r.ReservationDate = "tomorrow" }, wantErr: true},
		{name: "missing time", mutate: func(r *BookingRequest) { r.ReservationTime = "" }, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestNewReservationConfirmsImmediately(t *testing.T) {
	res := NewReservation(BookingRequest{
		GuestName:       "Mike Johnson",
		GuestEmail:      "mike@example.com",
		PartySize:       4,
		ReservationDate: "2026-09-16",
		ReservationTime: "19:00",
	})
	if res.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", res.Status)
	}
	if res.ID == "" {
		t.Fatal("expected a generated id")
	}
}
