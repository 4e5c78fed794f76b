// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import "errors"

// Sentinel domain errors. Services return these (possibly wrapped); handlers
// translate them into the matching HTTP status.
var (
	// ErrNotFound is returned by update/delete/lookup against a missing id.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is returned by login for an unknown email or a
	// wrong password — callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldErrors carries per-field validation failures out of the service layer.
// It satisfies error so services can return it through ordinary error paths.
type FieldErrors map[string]string

func (f FieldErrors) Error() string { return "validation failed" }

// ValidationError wraps multiple field errors for the response body.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}
