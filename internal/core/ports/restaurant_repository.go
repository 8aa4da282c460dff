// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, the order event publisher,
// and the analytics cache. Adapters implement them; handlers depend on them.
package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant
// aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant. Returns a ConflictError when the
	// restaurant name is already taken.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant by identifier.
	// Returns an ObjectNotFoundError when no such restaurant exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetForUpdate retrieves a restaurant and locks its row for the rest of
	// the transaction. The review workflow takes this lock before inserting,
	// so concurrent reviews serialize and the recomputed rating reflects
	// every accepted review.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// RefreshRating recomputes the restaurant's mean review rating inside the
	// database and writes it to the restaurant row. Restaurants with no
	// reviews get a zero rating.
	RefreshRating(ctx context.Context, id kernel.UUID) error

	// Delete removes the restaurant together with its menu items, orders,
	// and reviews.
	Delete(ctx context.Context, id kernel.UUID) error
}
