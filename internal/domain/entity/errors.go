package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
// Handlers translate them to HTTP status codes with errors.Is.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate indicates that an entity with the same natural key already exists
	ErrDuplicate = errors.New("already exists")

	// ErrPersistenceFailure indicates that a write did not affect any record
	ErrPersistenceFailure = errors.New("persistence failure")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and matches ErrInvalidInput with errors.Is.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports whether target is ErrInvalidInput.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
