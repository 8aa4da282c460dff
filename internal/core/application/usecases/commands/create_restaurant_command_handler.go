package commands

import (
	"context"

	"eats/internal/core/domain/model/restaurant"
)

// CreateRestaurantCommandHandler handles restaurant registration.
type CreateRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
}

// NewCreateRestaurantCommandHandler creates a handler for restaurant registration.
func NewCreateRestaurantCommandHandler(uowFactory RestaurantUoWFactory) CreateRestaurantCommandHandler {
	return CreateRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle builds the restaurant aggregate and persists it. A duplicate name
// surfaces as a ConflictError from the repository.
func (h *CreateRestaurantCommandHandler) Handle(ctx context.Context, cmd CreateRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := restaurant.NewRestaurant(
		cmd.RestaurantID(), cmd.Name(), cmd.Description(), cmd.CuisineType(),
		cmd.Address(), cmd.PhoneNumber(), cmd.Location(),
		cmd.OpeningTime(), cmd.ClosingTime())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RestaurantRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
