package gateway

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/nu-student-clubs/clubs-admin/internal/ports/out/source"
)

// Error describes a failed backend call. It unwraps to one of the source
// sentinels (ErrUnavailable, ErrNotFound, ErrValidation, ErrUnauthorized) and,
// for transport failures, to the underlying cause.
type Error struct {
	Method string
	Path   string
	// Status is 0 when no response was received.
	Status int

	Code      string
	Message   string
	RequestID string
	Details   map[string]any

	kind  error
	cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" {
		msg = e.kind.Error()
	}
	if e.Status == 0 {
		return fmt.Sprintf("%s %s: %s", e.Method, e.Path, msg)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s %s: %d %s: %s", e.Method, e.Path, e.Status, e.Code, msg)
	}
	return fmt.Sprintf("%s %s: %d: %s", e.Method, e.Path, e.Status, msg)
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}

// kindForStatus maps an HTTP status to the source error class.
func kindForStatus(status int) error {
	switch {
	case status == http.StatusNotFound:
		return source.ErrNotFound
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity, status == http.StatusConflict:
		return source.ErrValidation
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return source.ErrUnauthorized
	default:
		return source.ErrUnavailable
	}
}

// IsUnavailable reports whether err is a network or server failure.
func IsUnavailable(err error) bool {
	return errors.Is(err, source.ErrUnavailable)
}
