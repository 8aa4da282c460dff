package commands

import (
	"context"
)

// DeleteRestaurantCommandHandler handles restaurant removal.
type DeleteRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewDeleteRestaurantCommandHandler creates a handler for restaurant removal.
func NewDeleteRestaurantCommandHandler(uowFactory RestaurantUoWFactory) DeleteRestaurantCommandHandler {
	return DeleteRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the restaurant exists and removes it with its dependents.
func (h *DeleteRestaurantCommandHandler) Handle(ctx context.Context, cmd DeleteRestaurantCommand) error {
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

	repo := uow.RestaurantRepository()
	if _, err := repo.Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	if err := repo.Delete(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
