package orders

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	ordersListKey = "orders"
	statusListKey = "status_checks"
)

// RedisRepo is a Redis-backed Repo. Each record is JSON-encoded and pushed
// onto a list, preserving insertion order across restarts.
type RedisRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisRepo creates a Redis-backed order repository. prefix namespaces
// the keys; it defaults to "storefront:" when empty.
func NewRedisRepo(client redis.UniversalClient, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = "storefront:"
	}
	return &RedisRepo{client: client, prefix: prefix}
}

// Insert appends an order to the log.
func (r *RedisRepo) Insert(ctx context.Context, order Order) error {
	if order.ID == "" {
		return fmt.Errorf("order ID is required")
	}

	data, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("orders: failed to marshal: %w", err)
	}

	return r.client.RPush(ctx, r.prefix+ordersListKey, data).Err()
}

// List returns up to limit orders in insertion order.
func (r *RedisRepo) List(ctx context.Context, limit int) ([]Order, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	values, err := r.client.LRange(ctx, r.prefix+ordersListKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	out := make([]Order, 0, len(values))
	for _, v := range values {
		var order Order
		if err := json.Unmarshal([]byte(v), &order); err != nil {
			return nil, fmt.Errorf("orders: failed to unmarshal: %w", err)
		}
		out = append(out, order)
	}
	return out, nil
}

var _ Repo = (*RedisRepo)(nil)

// RedisStatusRepo is a Redis-backed StatusRepo.
type RedisStatusRepo struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStatusRepo creates a Redis-backed status-check repository.
func NewRedisStatusRepo(client redis.UniversalClient, prefix string) *RedisStatusRepo {
	if prefix == "" {
		prefix = "storefront:"
	}
	return &RedisStatusRepo{client: client, prefix: prefix}
}

// Insert appends a status check to the log.
func (r *RedisStatusRepo) Insert(ctx context.Context, check StatusCheck) error {
	if check.ID == "" {
		return fmt.Errorf("status check ID is required")
	}

	data, err := json.Marshal(check)
	if err != nil {
		return fmt.Errorf("orders: failed to marshal: %w", err)
	}

	return r.client.RPush(ctx, r.prefix+statusListKey, data).Err()
}

// List returns up to limit status checks in insertion order.
func (r *RedisStatusRepo) List(ctx context.Context, limit int) ([]StatusCheck, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}

	values, err := r.client.LRange(ctx, r.prefix+statusListKey, 0, stop).Result()
	if err != nil {
		return nil, err
	}

	out := make([]StatusCheck, 0, len(values))
	for _, v := range values {
		var check StatusCheck
		if err := json.Unmarshal([]byte(v), &check); err != nil {
			return nil, fmt.Errorf("orders: failed to unmarshal: %w", err)
		}
		out = append(out, check)
	}
	return out, nil
}

var _ StatusRepo = (*RedisStatusRepo)(nil)
