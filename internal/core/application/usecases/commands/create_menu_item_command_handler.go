package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
)

// CreateMenuItemCommandHandler handles adding dishes to a restaurant's menu.
type CreateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewCreateMenuItemCommandHandler creates a handler for menu item creation.
func NewCreateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the owning restaurant exists, builds the menu item, and
// persists it.
func (h *CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	aggregate, err := restaurant.NewMenuItem(
		cmd.MenuItemID(), cmd.RestaurantID(), cmd.Name(), cmd.Description(),
		cmd.Price(), cmd.Category(), cmd.IsVegetarian(), cmd.IsVegan(),
		cmd.PreparationMinutes())
	if err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
