package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entity does not exist or belongs to a
// different user. Both cases are deliberately indistinguishable so that one
// user can never probe for the existence of another user's records.
var ErrNotFound = errors.New("not found")

// ValidationError reports a rejected field value on a domain entity or
// operation argument.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s %s", e.Field, e.Reason)
}

// NewValidationError constructs a ValidationError for a field.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
