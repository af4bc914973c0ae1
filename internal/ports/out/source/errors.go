// Package source holds the error taxonomy shared by every data source port.
//
// Entity ports wrap these sentinels (e.g. clubsource.ErrNotFound), so callers can
// match either the entity-specific error or the generic class with errors.Is.
package source

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnavailable indicates a network or server failure talking to the backend.
	ErrUnavailable = errors.New("backend unavailable")

	// ErrValidation indicates the request was rejected as invalid.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates the backend rejected the caller's credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
