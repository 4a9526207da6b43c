package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryInput    Category = "input"
	CategoryConfig   Category = "config"
	CategoryFS       Category = "fs"
	CategoryManifest Category = "manifest"
	CategoryCLI      Category = "cli"
)

// ScaffoldError is a structured error with a registered code and an
// actionable suggestion.
type ScaffoldError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (input, config, fs, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ScaffoldError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ScaffoldError) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a detailed explanation to the error.
func (e *ScaffoldError) WithDetail(d string) *ScaffoldError {
	e.Detail = d
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ScaffoldError) WithSuggestion(s string) *ScaffoldError {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *ScaffoldError) Wrap(err error) *ScaffoldError {
	e.Wrapped = err
	return e
}

// New creates a ScaffoldError from a registered error code.
func New(code string) *ScaffoldError {
	template, ok := registry[code]
	if !ok {
		return &ScaffoldError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ScaffoldError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new ScaffoldError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ScaffoldError {
	return &ScaffoldError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a ScaffoldError.
func FromError(err error, code string) *ScaffoldError {
	if err == nil {
		return nil
	}
	if se, ok := err.(*ScaffoldError); ok {
		return se
	}
	return New(code).Wrap(err)
}
