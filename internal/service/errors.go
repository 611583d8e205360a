package service

import "errors"

var (
	// ErrInvalidHashtag is returned before any request when a hashtag is
	// empty after normalisation.
	ErrInvalidHashtag = errors.New("invalid hashtag")

	// ErrInvalidCredentials is returned before any request when the email
	// or password is empty.
	ErrInvalidCredentials = errors.New("email and password are required")
)
