package adapter

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them via [errors.Is].
var (
	// ErrNetwork covers connection failures, timeouts and broken streams.
	ErrNetwork = errors.New("network error")

	// ErrUnauthenticated is returned before any request is sent when no
	// session token is stored.
	ErrUnauthenticated = errors.New("not logged in")

	// ErrRejected means the service refused the credential (401/403).
	ErrRejected = errors.New("credential rejected by the service")

	// ErrNotFound means the addressed resource does not exist (404).
	ErrNotFound = errors.New("resource not found")

	// ErrServerError means the service failed to handle the request (5xx).
	ErrServerError = errors.New("service error")

	// ErrMalformed means the response violated the request/response
	// contract: an undecodable body, a success response missing required
	// fields, or an unexpected status.
	ErrMalformed = errors.New("malformed response")
)

// APIError is the classified failure of a remote call.
type APIError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Status is the HTTP status, or 0 when no response was received.
	Status int
	// Message is the service-provided or transport description.
	Message string
	// Cause is the underlying transport or decoding error, if any.
	Cause error
}

func newAPIError(kind error, status int, message string) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message}
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%v (http %d): %s", e.Kind, e.Status, e.Message)
	}
	if e.Message == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
