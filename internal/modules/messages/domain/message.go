package domain

import (
	"strings"
	"time"

	"github.com/lucsky/cuid"

	"addisKitchen/internal/shared/apperr"
)

// Status is a two-value toggle: messages move freely between unread and read.
type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

// ParseStatus returns the canonical Status, or empty for unknown values.
func ParseStatus(raw string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusUnread:
		return StatusUnread
	case StatusRead:
		return StatusRead
	default:
		return ""
	}
}

// Toggle returns the opposite read state.
func (s Status) Toggle() Status {
	if s == StatusRead {
		return StatusUnread
	}
	return StatusRead
}

// Message is one contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactRequest carries the public contact form fields.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r ContactRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return apperr.Validation("name is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		return apperr.Validation("email is required")
	}
	if strings.TrimSpace(r.Body) == "" {
		return apperr.Validation("message is required")
	}
	return nil
}

// NewMessage builds an unread message from a validated contact request.
func NewMessage(req ContactRequest) *Message {
	return &Message{
		ID:        cuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		Status:    StatusUnread,
		CreatedAt: time.Now().UTC(),
	}
}
