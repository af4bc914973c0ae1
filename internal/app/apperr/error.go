// Package apperr defines the application-layer error shared by the resource
// services and the HTTP adapter.
package apperr

import (
	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
)

// Error is an application-layer error that can be mapped to an HTTP response.
type Error struct {
	Status  int
	Code    string
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Code
}

// Unwrap lets errors.Is match the source taxonomy (source.ErrValidation, source.ErrNotFound).
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	switch e.Code {
	case CodeValidation:
		return source.ErrValidation
	case CodeNotFound:
		return source.ErrNotFound
	default:
		return nil
	}
}

// Validation returns a 422 VALIDATION_ERROR.
func Validation(message string, details map[string]any) *Error {
	return &Error{Status: 422, Code: CodeValidation, Message: message, Details: details}
}
