package orders

import "context"

// Repo stores the order log in insertion order.
type Repo interface {
	Insert(ctx context.Context, order Order) error
	List(ctx context.Context, limit int) ([]Order, error)
}

// StatusRepo stores status checks in insertion order.
type StatusRepo interface {
	Insert(ctx context.Context, check StatusCheck) error
	List(ctx context.Context, limit int) ([]StatusCheck, error)
}
