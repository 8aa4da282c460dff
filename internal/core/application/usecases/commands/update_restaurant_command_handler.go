package commands

import (
	"context"
)

// UpdateRestaurantCommandHandler handles restaurant attribute updates.
type UpdateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewUpdateRestaurantCommandHandler creates a handler for restaurant updates.
func NewUpdateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) UpdateRestaurantCommandHandler {
	return UpdateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the restaurant, applies the new attribute set, and persists it.
func (h *UpdateRestaurantCommandHandler) Handle(ctx context.Context, cmd UpdateRestaurantCommand) error {
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
	aggregate, err := repo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.Name(), cmd.Description(), cmd.CuisineType(), cmd.Address(),
		cmd.PhoneNumber(), cmd.Location(),
		cmd.OpeningTime(), cmd.ClosingTime(), cmd.IsActive()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
