package domain

import "time"

// AdminUser is one owner-level account for the management panel.
type AdminUser struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
