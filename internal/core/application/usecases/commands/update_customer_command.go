package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a partial customer update. Nil fields are
// left untouched, which is what lets a caller change just the address or
// just the active flag.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        *string
	email       *string
	phoneNumber *string
	address     *string
	isActive    *bool

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to partially update a customer.
func NewUpdateCustomerCommand(
	customerID kernel.UUID,
	name, email, phoneNumber, address *string,
	isActive *bool,
) (UpdateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return UpdateCustomerCommand{
		customerID:  customerID,
		name:        name,
		email:       email,
		phoneNumber: phoneNumber,
		address:     address,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new name, or nil to keep the current one.
func (c UpdateCustomerCommand) Name() *string {
	return c.name
}

// Email returns the new email, or nil to keep the current one.
func (c UpdateCustomerCommand) Email() *string {
	return c.email
}

// PhoneNumber returns the new phone number, or nil to keep the current one.
func (c UpdateCustomerCommand) PhoneNumber() *string {
	return c.phoneNumber
}

// Address returns the new address, or nil to keep the current one.
func (c UpdateCustomerCommand) Address() *string {
	return c.address
}

// IsActive returns the new active flag, or nil to keep the current one.
func (c UpdateCustomerCommand) IsActive() *bool {
	return c.isActive
}
