package errors

import (
	"fmt"
)

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

// RouteError indicates navigation to a route the catalog does not know.
type RouteError struct {
	Route   string
	Message string
	Err     error
}

// NewRouteError constructs a RouteError for the given route name.
func NewRouteError(route string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RouteError{Route: route, Message: message, Err: err}
}

func (e *RouteError) Error() string {
	if e == nil {
		return ""
	}
	if e.Route != "" {
		return fmt.Sprintf("route error [%s]: %s", e.Route, e.Message)
	}
	return fmt.Sprintf("route error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RouteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
