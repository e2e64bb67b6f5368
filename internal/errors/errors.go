// Package errors provides a lightweight structured error type (PetalError)
// for category-based classification across the build pipeline and CLI.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCategory represents the category of a petal error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// Content pipeline errors
	CategoryContent  ErrorCategory = "content"
	CategoryConvert  ErrorCategory = "convert"
	CategoryMetadata ErrorCategory = "metadata"
	CategoryTemplate ErrorCategory = "template"
	CategoryRender   ErrorCategory = "render"
	CategoryIndex    ErrorCategory = "index"

	// Runtime and infrastructure errors
	CategoryFileSystem ErrorCategory = "filesystem"
	CategoryInternal   ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// PetalError is a structured error with category, severity, and context
type PetalError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for PetalError
type ContextFields map[string]any

// Error implements the error interface
func (e *PetalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *PetalError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *PetalError) WithContext(key string, value any) *PetalError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new PetalError
func New(category ErrorCategory, severity ErrorSeverity, message string) *PetalError {
	return &PetalError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new PetalError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *PetalError {
	return &PetalError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// IsCategory checks if an error belongs to a specific category anywhere in its chain
func IsCategory(err error, category ErrorCategory) bool {
	var pe *PetalError
	if stderrors.As(err, &pe) {
		return pe.Category == category
	}
	return false
}
