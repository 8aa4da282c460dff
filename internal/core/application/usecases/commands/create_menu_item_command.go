package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand represents a request to add a dish to a restaurant's
// menu.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID         kernel.UUID
	restaurantID       kernel.UUID
	name               string
	description        string
	price              kernel.Money
	category           string
	isVegetarian       bool
	isVegan            bool
	preparationMinutes int

	guard guard.ConstructorGuard
}

// NewCreateMenuItemCommand creates a command to add a menu item.
func NewCreateMenuItemCommand(
	menuItemID, restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	isVegetarian, isVegan bool,
	preparationMinutes int,
) (CreateMenuItemCommand, error) {
	if err := errors.Join(menuItemID.Validate(), restaurantID.Validate()); err != nil {
		return CreateMenuItemCommand{}, err
	}

	return CreateMenuItemCommand{
		menuItemID:         menuItemID,
		restaurantID:       restaurantID,
		name:               name,
		description:        description,
		price:              price,
		category:           category,
		isVegetarian:       isVegetarian,
		isVegan:            isVegan,
		preparationMinutes: preparationMinutes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the identifier assigned to the new item.
func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// RestaurantID returns the owning restaurant.
func (c CreateMenuItemCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the dish name.
func (c CreateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the dish description.
func (c CreateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the menu price.
func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the menu category.
func (c CreateMenuItemCommand) Category() string {
	return c.category
}

// IsVegetarian returns the vegetarian dietary flag.
func (c CreateMenuItemCommand) IsVegetarian() bool {
	return c.isVegetarian
}

// IsVegan returns the vegan dietary flag.
func (c CreateMenuItemCommand) IsVegan() bool {
	return c.isVegan
}

// PreparationMinutes returns the kitchen preparation time.
func (c CreateMenuItemCommand) PreparationMinutes() int {
	return c.preparationMinutes
}
