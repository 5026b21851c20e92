package domain

import "strings"

// Status tracks an order through its kitchen lifecycle. The forward chain is
// pending, confirmed, preparing, ready, delivered; cancellation is allowed at
// any point before delivery.
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusPreparing: 2,
	StatusReady:     3,
	StatusDelivered: 4,
}

// ParseStatus returns the canonical Status for the given input, or
// StatusUnknown when the value names no known status.
func ParseStatus(raw string) Status {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := statusRank[s]; ok {
		return s
	}
	if s == StatusCancelled {
		return s
	}
	return StatusUnknown
}

// CanTransition reports whether from may move to to: one step forward along
// the chain, or to cancelled from any state before delivered.
func CanTransition(from, to Status) bool {
	if to == StatusCancelled {
		return from != StatusDelivered && from != StatusCancelled
	}
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank == fromRank+1
}
