package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand represents a request to replace a menu item's mutable
// attributes, including price and availability. Price changes never touch
// existing order lines, which keep their snapshot.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID         kernel.UUID
	name               string
	description        string
	price              kernel.Money
	category           string
	isVegetarian       bool
	isVegan            bool
	isAvailable        bool
	preparationMinutes int

	guard guard.ConstructorGuard
}

// NewUpdateMenuItemCommand creates a command to update a menu item.
func NewUpdateMenuItemCommand(
	menuItemID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	isVegetarian, isVegan, isAvailable bool,
	preparationMinutes int,
) (UpdateMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return UpdateMenuItemCommand{}, err
	}

	return UpdateMenuItemCommand{
		menuItemID:         menuItemID,
		name:               name,
		description:        description,
		price:              price,
		category:           category,
		isVegetarian:       isVegetarian,
		isVegan:            isVegan,
		isAvailable:        isAvailable,
		preparationMinutes: preparationMinutes,
		guard:              guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the menu item to update.
func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

// Name returns the new dish name.
func (c UpdateMenuItemCommand) Name() string {
	return c.name
}

// Description returns the new dish description.
func (c UpdateMenuItemCommand) Description() string {
	return c.description
}

// Price returns the new menu price.
func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

// Category returns the new menu category.
func (c UpdateMenuItemCommand) Category() string {
	return c.category
}

// IsVegetarian returns the new vegetarian flag.
func (c UpdateMenuItemCommand) IsVegetarian() bool {
	return c.isVegetarian
}

// IsVegan returns the new vegan flag.
func (c UpdateMenuItemCommand) IsVegan() bool {
	return c.isVegan
}

// IsAvailable returns the new availability flag.
func (c UpdateMenuItemCommand) IsAvailable() bool {
	return c.isAvailable
}

// PreparationMinutes returns the new preparation time.
func (c UpdateMenuItemCommand) PreparationMinutes() int {
	return c.preparationMinutes
}
