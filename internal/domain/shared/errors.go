// Package shared contains the error taxonomy used across all domain packages
// of the university records hub. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrValueOutOfRange = errors.New("value out of range")

	// Business rule errors
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrWrongVariant     = errors.New("operation not supported by record variant")
)

// Category tags a domain error with the business area that rejected it.
// The zero value is the untagged base category.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryEnrollment
	CategoryGrade
	CategoryPayment
)

// Prefix returns the label rendered in front of the error message.
func (c Category) Prefix() string {
	switch c {
	case CategoryEnrollment:
		return "Enrollment Error: "
	case CategoryGrade:
		return "Grade Error: "
	case CategoryPayment:
		return "Payment Error: "
	default:
		return ""
	}
}

// String returns the category name for logging.
func (c Category) String() string {
	switch c {
	case CategoryEnrollment:
		return "enrollment"
	case CategoryGrade:
		return "grade"
	case CategoryPayment:
		return "payment"
	default:
		return "general"
	}
}

// DomainError represents a business-rule violation with context.
type DomainError struct {
	Domain   string   // e.g., "person", "course", "grading"
	Op       string   // Operation that failed, e.g., "New", "EnrollStudent"
	Kind     error    // Base error type for errors.Is() checking
	Category Category // Rendered as a message prefix
	Message  string   // Human-readable message
	Err      error    // Underlying error (optional)
}

// Error renders the category label followed by the message.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s%s: %v", e.Category.Prefix(), e.Message, e.Err)
	}
	return e.Category.Prefix() + e.Message
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

// Location returns "domain.op" for structured logging.
func (e *DomainError) Location() string {
	return e.Domain + "." + e.Op
}

// NewDomainError creates a new untagged domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// NewEnrollmentError creates an error tagged "Enrollment Error: ".
func NewEnrollmentError(domain, op string, kind error, message string) *DomainError {
	e := NewDomainError(domain, op, kind, message)
	e.Category = CategoryEnrollment
	return e
}

// NewGradeError creates an error tagged "Grade Error: ".
func NewGradeError(domain, op string, kind error, message string) *DomainError {
	e := NewDomainError(domain, op, kind, message)
	e.Category = CategoryGrade
	return e
}

// NewPaymentError creates an error tagged "Payment Error: ".
func NewPaymentError(domain, op string, kind error, message string) *DomainError {
	e := NewDomainError(domain, op, kind, message)
	e.Category = CategoryPayment
	return e
}

// AsDomainError extracts the first DomainError in the chain.
func AsDomainError(err error) (*DomainError, bool) {
	var de *DomainError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CategoryOf returns the category of a domain error, CategoryGeneral otherwise.
func CategoryOf(err error) Category {
	if de, ok := AsDomainError(err); ok {
		return de.Category
	}
	return CategoryGeneral
}

// IsDomain reports whether err carries a DomainError anywhere in its chain.
func IsDomain(err error) bool {
	_, ok := AsDomainError(err)
	return ok
}

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrValueOutOfRange)
}
