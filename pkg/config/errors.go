package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingRequiredVar indicates a required environment variable is unset
	ErrMissingRequiredVar = errors.New("missing required environment variable")

	// ErrInvalidValue indicates a variable has an invalid value
	ErrInvalidValue = errors.New("invalid configuration value")
)

// ValidationError wraps configuration validation errors with the
// offending variable name.
type ValidationError struct {
	Var string // Environment variable name
	Err error  // Underlying error
}

// Error returns formatted error message
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Var, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(varName string, err error) *ValidationError {
	return &ValidationError{Var: varName, Err: err}
}
