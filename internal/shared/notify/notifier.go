// Package notify defines the notification collaborator contract: exactly one
// event per terminal outcome of a mutating operation, fire-and-forget.
package notify

import (
	"context"
	"log/slog"
	"time"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Event describes the terminal outcome of one mutating operation.
type Event struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ResourceID string    `json:"resourceId,omitempty"`
	Outcome    Outcome   `json:"outcome"`
	Message    string    `json:"message,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Notifier delivers events best-effort. Implementations never block the caller
// beyond a short internal timeout and never return delivery errors.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// LogNotifier writes events to the application log. Used when no broker is
// configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event Event) {
	slog.Info("notification",
		slog.String("entity", event.Entity),
		slog.String("action", event.Action),
		slog.String("resourceId", event.ResourceID),
		slog.String("outcome", string(event.Outcome)),
		slog.String("message", event.Message),
	)
}

// Success builds a success event stamped now.
func Success(entity, action, resourceID, message string) Event {
	return Event{Entity: entity, Action: action, ResourceID: resourceID, Outcome: OutcomeSuccess, Message: message, Timestamp: time.Now().UTC()}
}

// Failure builds a failure event stamped now.
func Failure(entity, action, resourceID, message string) Event {
	return Event{Entity: entity, Action: action, ResourceID: resourceID, Outcome: OutcomeFailure, Message: message, Timestamp: time.Now().UTC()}
}
