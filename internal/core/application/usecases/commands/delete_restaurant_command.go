package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrDeleteRestaurantCommandIsNotConstructed = errors.New(
	"DeleteRestaurantCommand must be created via NewDeleteRestaurantCommand constructor",
)

// DeleteRestaurantCommand represents a request to remove a restaurant and
// everything hanging off it: menu items, orders, and reviews.
type DeleteRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteRestaurantCommand creates a command to delete a restaurant.
func NewDeleteRestaurantCommand(restaurantID kernel.UUID) (DeleteRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return DeleteRestaurantCommand{}, err
	}

	return DeleteRestaurantCommand{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrDeleteRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the restaurant to delete.
func (c DeleteRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}
