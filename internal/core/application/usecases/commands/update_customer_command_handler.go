package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles partial customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, applies the provided fields, and persists the
// result. An email change colliding with another account surfaces as a
// ConflictError from the repository.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	repo := uow.CustomerRepository()
	aggregate, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = aggregate.ApplyUpdate(
		cmd.Name(), cmd.Email(), cmd.PhoneNumber(), cmd.Address(), cmd.IsActive()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
