package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors for errors.Is matching. Every error the SDK returns
// for a failed call unwraps to one of these (or is a TimeoutError /
// NetworkError, which carry their own detail).
var (
	// ErrValidation marks requests rejected locally, before any network call.
	ErrValidation = errors.New("invalid request")
	// ErrAuth marks HTTP 401 responses.
	ErrAuth = errors.New("unauthorized")
	// ErrPaymentRequired marks HTTP 402 responses (credits exhausted).
	ErrPaymentRequired = errors.New("payment required")
	// ErrNotFound marks HTTP 404 responses (e.g. unknown app id).
	ErrNotFound = errors.New("not found")
)

// ValidationError is returned when a request fails the documented local
// constraints. It unwraps to ErrValidation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// SchemaError is returned when a caller-supplied schema representation
// cannot be converted to a canonical JSON Schema document. It is a
// subtype of validation failure: errors.Is(err, ErrValidation) reports
// true, and errors.As with *SchemaError recovers the detail.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("unsupported schema: %s", e.Reason)
}

func (e *SchemaError) Unwrap() error {
	return ErrValidation
}

// APIError is returned for any non-2xx response. The status code alone
// selects the error kind; the raw body is kept for diagnostics, not
// parsed.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Body)
}

// Unwrap maps well-known status codes to their sentinel errors so
// callers can match with errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrAuth
	case http.StatusPaymentRequired:
		return ErrPaymentRequired
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// TimeoutError is returned when the configured timeout elapsed before a
// response arrived.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("request timed out after %s", e.Timeout)
}

// NetworkError is returned when the service could not be reached at all
// (DNS failure, connection refused, TLS failure).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to reach service: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
