package store

import "errors"

// Sentinel errors returned by [TokenStore] implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStorageIO is returned when the token file cannot be written or
	// removed (for example, permission denied or a read-only filesystem).
	ErrStorageIO = errors.New("token storage i/o error")

	// ErrEmptyToken is returned by Save when asked to persist a blank token.
	// Use Clear to remove the stored value.
	ErrEmptyToken = errors.New("empty token")
)
