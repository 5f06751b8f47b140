package errors

import (
	"fmt"
)

// InvalidSeedError reports a seed color that could not be parsed as a
// 6-digit hex value.
type InvalidSeedError struct {
	Seed string
	Err  error
}

// NewInvalidSeedError constructs an InvalidSeedError.
func NewInvalidSeedError(seed string, err error) error {
	return &InvalidSeedError{Seed: seed, Err: err}
}

func (e *InvalidSeedError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid seed color %q: %v", e.Seed, e.Err)
	}
	return fmt.Sprintf("invalid seed color %q", e.Seed)
}

// Unwrap exposes the underlying error.
func (e *InvalidSeedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SchemeError reports a scheme value that does not match the expected
// two-theme structure. It is an integration error, not a runtime
// condition to recover from.
type SchemeError struct {
	Field   string
	Message string
}

// NewSchemeError constructs a SchemeError.
func NewSchemeError(field, message string) error {
	return &SchemeError{Field: field, Message: message}
}

func (e *SchemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("malformed scheme: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("malformed scheme: %s", e.Message)
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
