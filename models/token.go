package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [Session.ClaimsExpiry] when the token is an opaque
// string rather than a compact JWS.
var ErrNotJWT = errors.New("token is not a JWT")

// Credentials is the login payload sent to the session endpoint.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the result of a successful login exchange. Only Token is
// persisted; ExpiresAt is informational.
type Session struct {
	// Token is the opaque bearer credential issued by the service.
	Token string `json:"token"`

	// ExpiresAt is the expiry reported by the service, if any.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ClaimsExpiry extracts the "exp" claim from Token without verifying the
// signature. The client never holds the signing key, so the value is only
// used for display.
func (s Session) ClaimsExpiry() (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(s.Token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrNotJWT, err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("error reading exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, errors.New("token has no exp claim")
	}

	return exp.Time, nil
}

// Expired reports whether the session has a known expiry that lies before now.
func (s Session) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && now.After(*s.ExpiresAt)
}
