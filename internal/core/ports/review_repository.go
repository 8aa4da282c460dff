package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for reviews.
type ReviewRepository interface {
	// Add persists a new review. Returns a ConflictError when the customer
	// has already reviewed the order; the database's unique constraint on
	// (order, customer) backs this up under concurrency.
	Add(ctx context.Context, aggregate *review.Review) error

	// ExistsForOrderAndCustomer reports whether the customer already
	// reviewed the order.
	ExistsForOrderAndCustomer(ctx context.Context, orderID, customerID kernel.UUID) (bool, error)
}
