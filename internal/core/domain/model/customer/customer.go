// Package customer provides the customer aggregate: the ordering and
// reviewing party. Email is unique across customers; the partial-update
// method enumerates exactly the fields a caller may change.
package customer

import (
	"fmt"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
	"Customer must be created via NewCustomer or RestoreCustomer")

// Customer is the aggregate root for an ordering party.
type Customer struct {
	id          kernel.UUID
	name        string
	email       string
	phoneNumber string
	address     string
	isActive    bool

	isConstructed bool
}

// NewCustomer creates an active customer.
func NewCustomer(
	id kernel.UUID,
	name string,
	email string,
	phoneNumber string,
	address string,
) (*Customer, error) {
	c := &Customer{
		isActive:      true,
		isConstructed: true,
	}

	if err := c.setAttributes(id, name, email, phoneNumber, address); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCustomer rehydrates a customer from persistence.
func RestoreCustomer(
	id kernel.UUID,
	name string,
	email string,
	phoneNumber string,
	address string,
	isActive bool,
) (*Customer, error) {
	c := &Customer{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := c.setAttributes(id, name, email, phoneNumber, address); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Customer) setAttributes(id kernel.UUID, name, email, phoneNumber, address string) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.id = id
	c.name = name
	c.email = email
	c.phoneNumber = phoneNumber
	c.address = address
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%q is not an email address", email))
	}
	return nil
}

// Validate ensures the Customer was created through a factory method.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the unique email address.
func (c *Customer) Email() string {
	return c.email
}

// PhoneNumber returns the contact phone number.
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// Address returns the default delivery address.
func (c *Customer) Address() string {
	return c.address
}

// IsActive reports whether the account is active.
func (c *Customer) IsActive() bool {
	return c.isActive
}

// ApplyUpdate applies a partial update: nil fields stay untouched.
// This is the only mutation path, so the mutable field set is explicit.
func (c *Customer) ApplyUpdate(name, email, phoneNumber, address *string, isActive *bool) error {
	next := *c
	if name != nil {
		next.name = *name
	}
	if email != nil {
		next.email = *email
	}
	if phoneNumber != nil {
		next.phoneNumber = *phoneNumber
	}
	if address != nil {
		next.address = *address
	}
	if isActive != nil {
		next.isActive = *isActive
	}

	if err := next.setAttributes(next.id, next.name, next.email, next.phoneNumber, next.address); err != nil {
		return err
	}

	*c = next
	return nil
}
