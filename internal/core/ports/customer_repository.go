package ports

import (
	"context"

	"eats/internal/core/domain/model/customer"
	"eats/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. Returns a ConflictError when the email
	// address is already registered.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer. Returns a
	// ConflictError when an email change collides with another customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by identifier.
	// Returns an ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Delete removes the customer together with their orders and reviews.
	Delete(ctx context.Context, id kernel.UUID) error
}
