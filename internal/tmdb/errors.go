package tmdb

import (
	"errors"
	"fmt"
)

// ErrNoCredential indicates the bearer credential is missing. The client
// fails with this before attempting any network I/O.
var ErrNoCredential = errors.New("tmdb access token not configured")

// StatusError represents a non-2xx response from the TMDb API.
type StatusError struct {
	StatusCode int
	Status     string // e.g. "401 Unauthorized"
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb API error: %s", e.Status)
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *StatusError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// TransportError represents a network failure or a malformed response body.
type TransportError struct {
	Op  string // "request" or "decode"
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tmdb %s failed: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// UserMessage returns a short, user-facing description of a fetch failure.
func UserMessage(err error) string {
	var statusErr *StatusError
	var transportErr *TransportError
	switch {
	case errors.Is(err, ErrNoCredential):
		return "TMDb access token not configured"
	case errors.As(err, &statusErr):
		return fmt.Sprintf("TMDb returned %s", statusErr.Status)
	case errors.As(err, &transportErr):
		return "could not reach TMDb"
	default:
		return err.Error()
	}
}
