package orders

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryRepo is an in-memory Repo implementation.
type InMemoryRepo struct {
	mu     sync.RWMutex
	orders []Order
}

// NewInMemoryRepo creates an empty in-memory order repository.
func NewInMemoryRepo() *InMemoryRepo {
	return &InMemoryRepo{}
}

// Insert appends an order to the log.
func (r *InMemoryRepo) Insert(ctx context.Context, order Order) error {
	if order.ID == "" {
		return fmt.Errorf("order ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

// List returns up to limit orders in insertion order.
func (r *InMemoryRepo) List(ctx context.Context, limit int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.orders)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]Order, n)
	copy(out, r.orders[:n])
	return out, nil
}

var _ Repo = (*InMemoryRepo)(nil)

// InMemoryStatusRepo is an in-memory StatusRepo implementation.
type InMemoryStatusRepo struct {
	mu     sync.RWMutex
	checks []StatusCheck
}

// NewInMemoryStatusRepo creates an empty in-memory status-check repository.
func NewInMemoryStatusRepo() *InMemoryStatusRepo {
	return &InMemoryStatusRepo{}
}

// Insert appends a status check to the log.
func (r *InMemoryStatusRepo) Insert(ctx context.Context, check StatusCheck) error {
	if check.ID == "" {
		return fmt.Errorf("status check ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.checks = append(r.checks, check)
	return nil
}

// List returns up to limit status checks in insertion order.
func (r *InMemoryStatusRepo) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.checks)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]StatusCheck, n)
	copy(out, r.checks[:n])
	return out, nil
}

var _ StatusRepo = (*InMemoryStatusRepo)(nil)
