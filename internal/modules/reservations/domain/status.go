package domain

import "strings"

// Status tracks a reservation from request to seated guests. The forward chain
// is pending, confirmed, seated, completed; cancellation is allowed at any
// point before completion.
type Status string

const (
	StatusUnknown   Status = ""
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var statusRank = map[Status]int{
	StatusPending:   0,
	StatusConfirmed: 1,
	StatusSeated:    2,
	StatusCompleted: 3,
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
// the chain, or to cancelled from any state before completed.
func CanTransition(from, to Status) bool {
	if to == StatusCancelled {
		return from != StatusCompleted && from != StatusCancelled
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
