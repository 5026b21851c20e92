// Package apperr defines the error taxonomy shared across modules. Handlers
// classify failures with errors.Is against these sentinels.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks failures caught before any storage call.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks lookups that matched no record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition marks a status change the lifecycle does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
	// ErrStorage wraps failures reported by the storage collaborator.
	ErrStorage = errors.New("storage failure")
	// ErrPartialSubmission marks an order whose header persisted but whose
	// lines did not. The header is left in place; see DESIGN.md.
	ErrPartialSubmission = errors.New("order partially submitted")
)

// Validation wraps a field-level message as a validation error.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Storage wraps a storage-layer error with context.
func Storage(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorage, op, err)
}
