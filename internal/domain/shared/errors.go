package shared

import (
	"errors"
	"fmt"
)

// DomainError is the base error type for all domain errors
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}

// Rejection is the uniform, recoverable refusal returned by an action's
// CanExecute and Execute. State is never mutated when a rejection is returned.
type Rejection struct {
	*DomainError
}

// NewRejection creates a rejection with a formatted human-readable reason
func NewRejection(format string, args ...interface{}) *Rejection {
	return &Rejection{DomainError: NewDomainError(fmt.Sprintf(format, args...))}
}

// Reason returns the rejection message
func (r *Rejection) Reason() string {
	return r.Message
}

// IsRejection reports whether err is (or wraps) a Rejection
func IsRejection(err error) bool {
	var r *Rejection
	return errors.As(err, &r)
}

// InsufficientError is a rejection caused by a shortfall of some quantity
// (fuel, credits, capacity...). The message always states both sides.
type InsufficientError struct {
	*Rejection
	What      string
	Required  int
	Available int
}

func NewInsufficientError(what string, available, required int) *InsufficientError {
	return &InsufficientError{
		Rejection: NewRejection("insufficient %s: have %d, need %d", what, available, required),
		What:      what,
		Required:  required,
		Available: available,
	}
}

// Unwrap exposes the embedded rejection to errors.As
func (e *InsufficientError) Unwrap() error {
	return e.Rejection
}

// Validation error

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
