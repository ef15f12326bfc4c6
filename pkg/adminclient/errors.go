package adminclient

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the client-observable failure classes. Callers
// branch with errors.Is; the server's message stays available through
// *APIError.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServer       = errors.New("server error")
	ErrTimeout      = errors.New("request timed out, check your connection")

	// Local guard failures: no request is sent.
	ErrEmptyReason   = errors.New("a non-empty reason is required")
	ErrInvalidParams = errors.New("invalid parameters")
)

// APIError is any failure reported by the backend, including a 2xx
// response whose body carries success=false. Message is the server's
// text verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *APIError) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return ErrForbidden
	case e.Status == http.StatusNotFound:
		return ErrNotFound
	case e.Status >= 500:
		return ErrServer
	}
	return nil
}
