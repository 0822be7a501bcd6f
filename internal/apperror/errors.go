// Package apperror holds the error taxonomy shared by the store, the
// repositories and the HTTP layer.
package apperror

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an id has no matching row.
	ErrNotFound = errors.New("not found")

	// ErrConstraint is returned when a foreign key or uniqueness
	// constraint is violated.
	ErrConstraint = errors.New("constraint violation")

	// ErrUnauthorized is returned for bad credentials, inactive accounts
	// and missing or invalid tokens.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when an authenticated user lacks the role
	// an operation requires.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError reports a missing or malformed field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("missing %s parameter", e.Field)
	}
	return fmt.Sprintf("invalid %s parameter: %s", e.Field, e.Reason)
}

// Missing returns a ValidationError for a required field that was not supplied.
func Missing(field string) error {
	return &ValidationError{Field: field}
}

// Invalid returns a ValidationError for a field whose value was rejected.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFound wraps ErrNotFound with the entity name, e.g. "question not found".
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// reasonError carries a client-facing message for one of the sentinels.
type reasonError struct {
	reason string
	kind   error
}

func (e *reasonError) Error() string { return e.reason }
func (e *reasonError) Unwrap() error { return e.kind }

// Conflict wraps ErrConstraint with a description of the clash.
func Conflict(format string, args ...any) error {
	return &reasonError{reason: fmt.Sprintf(format, args...), kind: ErrConstraint}
}

// Unauthorized wraps ErrUnauthorized with a client-facing reason.
func Unauthorized(reason string) error {
	return &reasonError{reason: reason, kind: ErrUnauthorized}
}

// Forbidden wraps ErrForbidden with a client-facing reason.
func Forbidden(reason string) error {
	return &reasonError{reason: reason, kind: ErrForbidden}
}

// IsValidation reports whether err carries a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
