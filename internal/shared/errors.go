package shared

import (
	"errors"
	"fmt"
)

// ErrInvalidEntity is the sentinel every entity validation failure wraps.
// Callers can match the whole family with errors.Is.
var ErrInvalidEntity = errors.New("invalid entity state")

// ValidationError reports a rejected construction input or an illegal
// state transition. It is always raised synchronously at the entity
// boundary and never partially applied.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError builds a ValidationError for a single field or
// transition.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidEntity
}
