package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned whenever a constructor or an AddArticle call
// receives a value that violates a field constraint. Every *ValidationError
// produced by this package matches it under errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrRegistryRequired is returned when an Article is built without an article
// registry. It reports a wiring mistake, not bad input, and does not match
// ErrInvalidArgument.
var ErrRegistryRequired = errors.New("article registry is required")

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap exposes ErrInvalidArgument so callers can match on the sentinel.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}
