package session

import "context"

// Storage is the client-local key-value collaborator the session record is
// persisted to. Implementations must return ErrRecordNotFound from Get when
// the key is absent, and must treat Remove of an absent key as a no-op.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
