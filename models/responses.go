package models

// ErrorResponse is the envelope the service uses to report a failure,
// both as an HTTP error body and as an in-band record on the live feed.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a single failure reported by the service.
type ErrorDetail struct {
	// Status mirrors the HTTP status class of the failure (e.g. 500).
	Status int `json:"status"`

	// Message is a human-readable description.
	Message string `json:"message"`
}

// SessionResponse is the body returned by the session endpoint.
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at,omitempty"`
}
