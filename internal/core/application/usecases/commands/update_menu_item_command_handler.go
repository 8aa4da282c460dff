package commands

import (
	"context"
)

// UpdateMenuItemCommandHandler handles menu item updates.
type UpdateMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewUpdateMenuItemCommandHandler creates a handler for menu item updates.
func NewUpdateMenuItemCommandHandler(uowFactory MenuItemUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the menu item, applies the new attribute set, and persists it.
func (h *UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	repo := uow.MenuItemRepository()
	aggregate, err := repo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(),
		cmd.IsVegetarian(), cmd.IsVegan(), cmd.IsAvailable(),
		cmd.PreparationMinutes()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
