package ports

import (
	"context"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// MenuItemRepository defines the persistence contract for menu items.
type MenuItemRepository interface {
	// Add persists a new menu item.
	Add(ctx context.Context, aggregate *restaurant.MenuItem) error

	// Update persists changes to an existing menu item.
	Update(ctx context.Context, aggregate *restaurant.MenuItem) error

	// Get retrieves a menu item by identifier.
	// Returns an ObjectNotFoundError when no such item exists.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error)

	// FindForOrder retrieves the subset of the given menu items that belong
	// to the restaurant. Items missing from the result either do not exist
	// or belong to another restaurant; the order intake service treats both
	// the same way.
	FindForOrder(ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID) ([]*restaurant.MenuItem, error)

	// Delete removes the menu item. Order lines keep their snapshot of it.
	Delete(ctx context.Context, id kernel.UUID) error
}
