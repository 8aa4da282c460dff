package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer account.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	email       string
	phoneNumber string
	address     string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name, email, phoneNumber, address string,
) (CreateCustomerCommand, error) {
	if err := customerID.Validate(); err != nil {
		return CreateCustomerCommand{}, err
	}

	return CreateCustomerCommand{
		customerID:  customerID,
		name:        name,
		email:       email,
		phoneNumber: phoneNumber,
		address:     address,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier assigned to the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the unique email address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

// PhoneNumber returns the contact phone number.
func (c CreateCustomerCommand) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the default delivery address.
func (c CreateCustomerCommand) Address() string {
	return c.address
}
