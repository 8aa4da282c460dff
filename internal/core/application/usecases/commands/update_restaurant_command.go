package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrUpdateRestaurantCommandIsNotConstructed = errors.New(
	"UpdateRestaurantCommand must be created via NewUpdateRestaurantCommand constructor",
)

// UpdateRestaurantCommand represents a request to replace a restaurant's
// mutable attributes. The rating is deliberately not part of the payload: it
// is derived from reviews and cannot be set through the update path.
type UpdateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	description  string
	cuisineType  string
	address      string
	phoneNumber  string
	location     string
	openingTime  kernel.TimeOfDay
	closingTime  kernel.TimeOfDay
	isActive     bool

	guard guard.ConstructorGuard
}

// NewUpdateRestaurantCommand creates a command to update a restaurant.
func NewUpdateRestaurantCommand(
	restaurantID kernel.UUID,
	name, description, cuisineType, address, phoneNumber, location string,
	openingTime, closingTime kernel.TimeOfDay,
	isActive bool,
) (UpdateRestaurantCommand, error) {
	if err := restaurantID.Validate(); err != nil {
		return UpdateRestaurantCommand{}, err
	}

	return UpdateRestaurantCommand{
		restaurantID: restaurantID,
		name:         name,
		description:  description,
		cuisineType:  cuisineType,
		address:      address,
		phoneNumber:  phoneNumber,
		location:     location,
		openingTime:  openingTime,
		closingTime:  closingTime,
		isActive:     isActive,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrUpdateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the restaurant to update.
func (c UpdateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the new restaurant name.
func (c UpdateRestaurantCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdateRestaurantCommand) Description() string {
	return c.description
}

// CuisineType returns the new cuisine classification.
func (c UpdateRestaurantCommand) CuisineType() string {
	return c.cuisineType
}

// Address returns the new street address.
func (c UpdateRestaurantCommand) Address() string {
	return c.address
}

// PhoneNumber returns the new contact phone number.
func (c UpdateRestaurantCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Location returns the new location string.
func (c UpdateRestaurantCommand) Location() string {
	return c.location
}

// OpeningTime returns the new start of the operating window.
func (c UpdateRestaurantCommand) OpeningTime() kernel.TimeOfDay {
	return c.openingTime
}

// ClosingTime returns the new end of the operating window.
func (c UpdateRestaurantCommand) ClosingTime() kernel.TimeOfDay {
	return c.closingTime
}

// IsActive returns the new active flag.
func (c UpdateRestaurantCommand) IsActive() bool {
	return c.isActive
}
