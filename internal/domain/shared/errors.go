// Package shared contains common domain errors used across all packages.
// This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Precondition errors
	ErrMissingCredential = errors.New("credential not configured")

	// Validation errors
	ErrValidation = errors.New("validation error")

	// External service errors
	ErrExternalService = errors.New("external service error")
	ErrFetchFailed     = errors.New("fetch failed")

	// Output errors
	ErrWriteFailed = errors.New("write failed")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "config", "wanikani", "export"
	Op      string // Operation that failed, e.g., "Validate", "Fetch"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// IsMissingCredential checks if the error is the credential precondition.
func IsMissingCredential(err error) bool {
	return errors.Is(err, ErrMissingCredential)
}

// IsFetchFailure checks if the error came from the remote API.
func IsFetchFailure(err error) bool {
	return errors.Is(err, ErrFetchFailed) || errors.Is(err, ErrExternalService)
}

// IsWriteFailure checks if the error came from persisting an artifact.
func IsWriteFailure(err error) bool {
	return errors.Is(err, ErrWriteFailed)
}
