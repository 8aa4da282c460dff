package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its lines are stored and loaded atomically.
type OrderRepository interface {
	// Add persists a new order together with all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Lines never change after
	// placement, so only the order row is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines by identifier.
	// Returns an ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
