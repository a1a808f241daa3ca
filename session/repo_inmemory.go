package session

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryStorage is an in-memory Storage implementation. It backs tests
// and single-process deployments that don't need persistence across
// restarts.
type InMemoryStorage struct {
	mu      sync.RWMutex
	records map[string][]byte
}

// NewInMemoryStorage creates an empty in-memory storage.
func NewInMemoryStorage() *InMemoryStorage {
	return &InMemoryStorage{
		records: make(map[string][]byte),
	}
}

// Get retrieves the value stored under key.
func (s *InMemoryStorage) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is required")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.records[key]
	if !ok {
		return nil, ErrRecordNotFound
	}

	// Copy so callers can't mutate the stored record
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

// Set stores value under key, replacing any previous value.
func (s *InMemoryStorage) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.records[key] = stored
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is a
// no-op.
func (s *InMemoryStorage) Remove(ctx context.Context, key string) error {
	if key == "" {
		return fmt.Errorf("key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, key)
	return nil
}

var _ Storage = (*InMemoryStorage)(nil)
