package domain

import (
	"math"
	"strings"
	"time"

	"github.com/lucsky/cuid"

	"addisKitchen/internal/shared/apperr"
)

// Customer holds the contact fields collected with an order.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Line is one ordered item with its name and unit price snapshotted at
// submission time.
type Line struct {
	ID        string  `json:"id"`
	OrderID   string  `json:"orderId"`
	ItemID    string  `json:"itemId"`
	ItemName  string  `json:"itemName"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Order is one submitted order header plus its lines.
type Order struct {
	ID        string    `json:"id"`
	Customer  Customer  `json:"customer"`
	Total     float64   `json:"total"`
	Status    Status    `json:"status"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate checks the contact fields required before submission.
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return apperr.Validation("name is required")
	}
	if strings.TrimSpace(c.Email) == "" {
		return apperr.Validation("email is required")
	}
	if !strings.Contains(c.Email, "@") {
		return apperr.Validation("email is not valid")
	}
	if strings.TrimSpace(c.Phone) == "" {
		return apperr.Validation("phone is required")
	}
	if strings.TrimSpace(c.Address) == "" {
		return apperr.Validation("address is required")
	}
	return nil
}

// LineInput is the cart-shaped input used to build order lines.
type LineInput struct {
	ItemID    string
	ItemName  string
	UnitPrice float64
	Quantity  int
}

// NewOrder builds a pending order from the customer fields and cart lines,
// computing the total from the lines.
func NewOrder(customer Customer, lines []LineInput) *Order {
	order := &Order{
		ID:        cuid.New(),
		Customer:  customer,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	var total float64
	for _, in := range lines {
		order.Lines = append(order.Lines, Line{
			ID:        cuid.New(),
			OrderID:   order.ID,
			ItemID:    in.ItemID,
			ItemName:  in.ItemName,
			UnitPrice: in.UnitPrice,
			Quantity:  in.Quantity,
		})
		total += in.UnitPrice * float64(in.Quantity)
	}
	order.Total = math.Round(total*100) / 100
	return order
}
