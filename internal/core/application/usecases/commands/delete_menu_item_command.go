package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand represents a request to remove a dish from a menu.
// Past order lines keep their snapshot of the item.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteMenuItemCommand creates a command to delete a menu item.
func NewDeleteMenuItemCommand(menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := menuItemID.Validate(); err != nil {
		return DeleteMenuItemCommand{}, err
	}

	return DeleteMenuItemCommand{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

// MenuItemID returns the menu item to delete.
func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
