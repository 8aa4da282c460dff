package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrCreateRestaurantCommandIsNotConstructed = errors.New(
	"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
)

// CreateRestaurantCommand represents a request to register a new restaurant.
// Detailed field validation happens in the restaurant aggregate; the command
// only guards identity and the operating window shape.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID
	name         string
	description  string
	cuisineType  string
	address      string
	phoneNumber  string
	location     string
	openingTime  kernel.TimeOfDay
	closingTime  kernel.TimeOfDay

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand creates a command to register a restaurant.
func NewCreateRestaurantCommand(
	restaurantID kernel.UUID,
	name, description, cuisineType, address, phoneNumber, location string,
	openingTime, closingTime kernel.TimeOfDay,
) (CreateRestaurantCommand, error) {
	cmd := CreateRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := restaurantID.Validate(); err != nil {
		return CreateRestaurantCommand{}, err
	}
	if name == "" {
		return CreateRestaurantCommand{}, errs.NewValueIsRequiredError("name")
	}

	cmd.restaurantID = restaurantID
	cmd.name = name
	cmd.description = description
	cmd.cuisineType = cuisineType
	cmd.address = address
	cmd.phoneNumber = phoneNumber
	cmd.location = location
	cmd.openingTime = openingTime
	cmd.closingTime = closingTime
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier assigned to the new restaurant.
func (c CreateRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant name.
func (c CreateRestaurantCommand) Name() string {
	return c.name
}

// Description returns the free-text description.
func (c CreateRestaurantCommand) Description() string {
	return c.description
}

// CuisineType returns the cuisine classification.
func (c CreateRestaurantCommand) CuisineType() string {
	return c.cuisineType
}

// Address returns the street address.
func (c CreateRestaurantCommand) Address() string {
	return c.address
}

// PhoneNumber returns the contact phone number.
func (c CreateRestaurantCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Location returns the coarse location string.
func (c CreateRestaurantCommand) Location() string {
	return c.location
}

// OpeningTime returns the start of the operating window.
func (c CreateRestaurantCommand) OpeningTime() kernel.TimeOfDay {
	return c.openingTime
}

// ClosingTime returns the end of the operating window.
func (c CreateRestaurantCommand) ClosingTime() kernel.TimeOfDay {
	return c.closingTime
}
