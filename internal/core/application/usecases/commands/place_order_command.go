package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place an order at a restaurant.
// Lines carry menu item references and quantities only; prices are
// snapshotted from the menu during intake and never accepted from callers.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(kernel.NewUUID(), customerID, restaurantID,
//	    "5 Delivery St", "ring twice", []services.OrderLine{
//	        {MenuItemID: pastaID, Quantity: 2},
//	    })
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	deliveryAddress     string
	specialInstructions string
	lines               []services.OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order. The delivery
// address may be empty, in which case the customer's default address is used.
func NewPlaceOrderCommand(
	orderID, customerID, restaurantID kernel.UUID,
	deliveryAddress, specialInstructions string,
	lines []services.OrderLine,
) (PlaceOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
		restaurantID.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	if len(lines) == 0 {
		return PlaceOrderCommand{}, errs.NewValueIsRequiredError("order items")
	}

	return PlaceOrderCommand{
		orderID:             orderID,
		customerID:          customerID,
		restaurantID:        restaurantID,
		deliveryAddress:     deliveryAddress,
		specialInstructions: specialInstructions,
		lines:               append([]services.OrderLine(nil), lines...),
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the ordering customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// RestaurantID returns the restaurant to order from.
func (c PlaceOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// DeliveryAddress returns the requested delivery address, possibly empty.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// SpecialInstructions returns the optional order-level note.
func (c PlaceOrderCommand) SpecialInstructions() string {
	return c.specialInstructions
}

// Lines returns the requested order lines.
func (c PlaceOrderCommand) Lines() []services.OrderLine {
	return append([]services.OrderLine(nil), c.lines...)
}
