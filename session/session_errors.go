package session

import "errors"

var (
	// ErrRecordNotFound is returned by Storage implementations when no
	// session record exists under the requested key.
	ErrRecordNotFound = errors.New("session record not found")

	// ErrStorageUnavailable wraps backend failures from Storage
	// implementations.
	ErrStorageUnavailable = errors.New("session storage unavailable")
)
