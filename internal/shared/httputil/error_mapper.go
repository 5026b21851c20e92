package httputil

import (
	"context"
	"errors"
	"net/http"

	"addisKitchen/internal/shared/apperr"
	"addisKitchen/internal/shared/auth"
)

// HTTPErrorInfo contains the HTTP status code and message for an error.
type HTTPErrorInfo struct {
	Status  int
	Message string
}

// ErrorMapping represents a single error to HTTP status/message mapping.
type ErrorMapping struct {
	Error   error
	Status  int
	Message string
}

// ErrorMapper maps domain errors to HTTP status codes and messages. Handlers
// extend the default taxonomy with module-specific sentinels via WithMapping.
type ErrorMapper struct {
	mappings       []ErrorMapping
	defaultStatus  int
	defaultMessage string
}

// NewErrorMapper creates a mapper preloaded with the shared taxonomy.
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		mappings: []ErrorMapping{
			{Error: apperr.ErrValidation, Status: http.StatusBadRequest, Message: "validation failed"},
			{Error: apperr.ErrNotFound, Status: http.StatusNotFound, Message: "not found"},
			{Error: apperr.ErrInvalidTransition, Status: http.StatusUnprocessableEntity, Message: "invalid status transition"},
			{Error: apperr.ErrPartialSubmission, Status: http.StatusBadGateway, Message: "order partially submitted"},
			{Error: apperr.ErrStorage, Status: http.StatusBadGateway, Message: "storage failure"},
			{Error: auth.ErrMissingToken, Status: http.StatusUnauthorized, Message: "missing token"},
			{Error: auth.ErrInvalidToken, Status: http.StatusUnauthorized, Message: "invalid token"},
		},
		defaultStatus:  http.StatusInternalServerError,
		defaultMessage: "internal server error",
	}
}

// WithMapping adds an error mapping, taking precedence over the defaults.
func (m *ErrorMapper) WithMapping(err error, status int, message string) *ErrorMapper {
	m.mappings = append([]ErrorMapping{{Error: err, Status: status, Message: message}}, m.mappings...)
	return m
}

// Map converts an error to HTTP status and message.
func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if err == nil {
		return HTTPErrorInfo{Status: http.StatusOK}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Message: "request timeout"}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Message: "request cancelled"}
	}

	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			return HTTPErrorInfo{Status: mapping.Status, Message: mapping.Message}
		}
	}

	return HTTPErrorInfo{Status: m.defaultStatus, Message: m.defaultMessage}
}
