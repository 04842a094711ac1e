package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Catalog errors
var (
	ErrNotFound        = errors.New("input file not found")
	ErrSchema          = errors.New("input file is missing required columns")
	ErrCatalogNotReady = errors.New("course data is not loaded")
)

// Request errors
var (
	ErrBadTimeFormat = errors.New("time must be formatted as HH:MM")
	ErrBadRequest    = errors.New("bad request")
)

// SchemaError reports which required columns a source file lacks
type SchemaError struct {
	Source  string
	Missing []string // sorted
}

// Error implements error interface
func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s missing columns: [%s]", e.Source, strings.Join(e.Missing, ", "))
}

// Unwrap lets errors.Is match ErrSchema
func (e *SchemaError) Unwrap() error {
	return ErrSchema
}

// NewNotFoundError creates a not found error for the given path
func NewNotFoundError(path string, cause error) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s: %s", ErrNotFound.Error(), path),
		Details: map[string]interface{}{"path": path, "cause": fmt.Sprint(cause)},
	}
}

// NewBadTimeFormatError creates an error for a filter time that is not HH:MM
func NewBadTimeFormatError(field, value string) error {
	return &CustomError{
		Err:     ErrBadTimeFormat,
		Message: fmt.Sprintf("invalid %s %q: %s", field, value, ErrBadTimeFormat.Error()),
		Details: map[string]interface{}{"field": field, "value": value},
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
