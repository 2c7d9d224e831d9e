package repository

import (
	"context"
	"slices"
	"sync"

	"artisan-bazaar/internal/domain"
)

// OrderRepository defines the interface for the admin order list. It starts
// from the seed fixtures and grows as simulated payments complete.
type OrderRepository interface {
	List(ctx context.Context) ([]domain.Order, error)
	Append(ctx context.Context, order domain.Order) error
	Count(ctx context.Context) (int, error)
}

type orderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewOrderRepository creates an OrderRepository pre-populated with the given
// orders. The input is display order (newest first); internally orders are
// kept oldest first so appends stay O(1).
func NewOrderRepository(orders []domain.Order) OrderRepository {
	stored := slices.Clone(orders)
	slices.Reverse(stored)
	return &orderRepository{orders: stored}
}

// List returns the orders, most recently appended first.
func (r *orderRepository) List(ctx context.Context) ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, 0, len(r.orders))
	for i := len(r.orders) - 1; i >= 0; i-- {
		out = append(out, r.orders[i])
	}
	return out, nil
}

// Append records a new order.
func (r *orderRepository) Append(ctx context.Context, order domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}

// Count reports how many orders have been recorded.
func (r *orderRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.orders), nil
}
