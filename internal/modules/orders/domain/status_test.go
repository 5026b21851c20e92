package domain

import "testing"

func TestParseStatus(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected Status
	}{
		{name: "pending", input: " pending ", expected: StatusPending},
		{name: "uppercase", input: "DELIVERED", expected: StatusDelivered},
		{name: "cancelled", input: "cancelled", expected: StatusCancelled},
		{name: "unknown", input: "delayed", expected: StatusUnknown},
		{name: "empty", input: "", expected: StatusUnknown},
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
		{name: "confirmed to preparing", from: StatusConfirmed, to: StatusPreparing, allowed: true},
		{name: "preparing to ready", from: StatusPreparing, to: StatusReady, allowed: true},
		{name: "ready to delivered", from: StatusReady, to: StatusDelivered, allowed: true},
		{name: "skip a step", from: StatusPending, to: StatusPreparing, allowed: false},
		{name: "backwards", from: StatusReady, to: StatusConfirmed, allowed: false},
		{name: "cancel pending", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "cancel ready", from: StatusReady, to: StatusCancelled, allowed: true},
		{name: "cancel delivered", from: StatusDelivered, to: StatusCancelled, allowed: false},
		{name: "cancel cancelled", from: StatusCancelled, to: StatusCancelled, allowed: false},
		{name: "leave cancelled", from: StatusCancelled, to: StatusConfirmed, allowed: false},
		{name: "leave delivered", from: StatusDelivered, to: StatusPending, allowed: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanTransition(tc.from, tc.to); got != tc.allowed {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.allowed)
			}
		})
	}
}

func TestNewOrderComputesTotal(t *testing.T) {
	order := NewOrder(
		Customer{Name: "John Doe", Email: "john@example.com", Phone: "555-0100", Address: "1 Main St"},
		[]LineInput{
			{ItemID: "item-1", ItemName: "Doro Wot", UnitPrice: 18.99, Quantity: 2},
			{ItemID: "item-2", ItemName: "Ethiopian Coffee", UnitPrice: 4.99, Quantity: 1},
		},
	)

	if order.Status != StatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.Total != 42.97 {
		t.Fatalf("expected total 42.97, got %v", order.Total)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
	for _, line := range order.Lines {
		if line.OrderID != order.ID {
			t.Fatalf("line %s not bound to order", line.ID)
		}
	}
}

func TestCustomerValidate(t *testing.T) {
	valid := Customer{Name: "John", Email: "john@example.com", Phone: "555", Address: "1 Main St"}

	cases := []struct {
		name    string
		mutate  func(*Customer)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Customer) {}},
		{name: "missing name", mutate: func(c *Customer) { c.Name = "" }, wantErr: true},
		{name: "missing email", mutate: func(c *Customer) { c.Email = "" }, wantErr: true},
		{name: "bad email", mutate: func(c *Customer) { c.Email = "not-an-email" }, wantErr: true},
		{name: "missing phone", mutate: func(c *Customer) { c.Phone = " " }, wantErr: true},
		{name: "missing address", mutate: func(c *Customer) { c.Address = "" }, wantErr: true},
		{name: "notes optional", mutate: func(c *Customer) { c.Notes = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			customer := valid
			tc.mutate(&customer)
			err := customer.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
