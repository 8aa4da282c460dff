package commands

import (
	"context"
)

// DeleteMenuItemCommandHandler handles menu item removal.
type DeleteMenuItemCommandHandler struct {
	uowFactory MenuItemUoWFactory
}

// NewDeleteMenuItemCommandHandler creates a handler for menu item removal.
func NewDeleteMenuItemCommandHandler(uowFactory MenuItemUoWFactory) DeleteMenuItemCommandHandler {
	return DeleteMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the menu item exists and removes it.
func (h *DeleteMenuItemCommandHandler) Handle(ctx context.Context, cmd DeleteMenuItemCommand) error {
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
	if _, err := repo.Get(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.MenuItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
