package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TokenStore owns the single persisted session token.
//
// Load never fails: missing or unreadable storage yields ok == false, so a
// first run behaves as logged out. Save replaces the token atomically and
// Clear removes it; both wrap [ErrStorageIO] on failure.
type TokenStore interface {
	Load() (token string, ok bool)
	Save(token string) error
	Clear() error
}
