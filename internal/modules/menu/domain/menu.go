package domain

import (
	"strings"

	"addisKitchen/internal/shared/apperr"
)

// MenuItem is one dish or drink on the menu. Availability gates visibility in
// every consumer-facing view; display order controls presentation sequence.
type MenuItem struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	ImageURL     string   `json:"imageUrl"`
	IsVegetarian bool     `json:"isVegetarian"`
	IsSpicy      bool     `json:"isSpicy"`
	IsAvailable  bool     `json:"isAvailable"`
	Ingredients  []string `json:"ingredients"`
	CategoryID   string   `json:"categoryId"`
	DisplayOrder int      `json:"displayOrder"`
}

// MenuCategory groups items; display order defines the total render order.
type MenuCategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

// Validate enforces the invariants required before an item is persisted.
func (m MenuItem) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return apperr.Validation("name is required")
	}
	if m.Price < 0 {
		return apperr.Validation("price must not be negative")
	}
	if strings.TrimSpace(m.CategoryID) == "" {
		return apperr.Validation("category is required")
	}
	return nil
}
