package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrEligibility   = errors.New("not eligible")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// EligibilityError is returned when a state-machine action is attempted
// outside its legal state (self-approval, double approval, publish before
// quorum). It carries the classification that denied the action so callers
// can show the exact reason instead of a blanket "forbidden".
type EligibilityError struct {
	Status EligibilityStatus
	Reason string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("eligibility: %s", e.Reason)
}

func (e *EligibilityError) Unwrap() error { return ErrEligibility }

// NewEligibilityError creates an EligibilityError for a status and reason.
func NewEligibilityError(status EligibilityStatus, reason string) *EligibilityError {
	return &EligibilityError{Status: status, Reason: reason}
}
