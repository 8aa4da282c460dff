package commands

import (
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to the next
// lifecycle status. Whether the move is legal is decided by the order
// aggregate's transition table, not here. A new delivery estimate and a
// replacement for the special instructions may ride along; nil keeps the
// current values.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID             kernel.UUID
	status              order.Status
	estimatedDelivery   *time.Time
	specialInstructions *string

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
func NewUpdateOrderStatusCommand(
	orderID kernel.UUID,
	status order.Status,
	estimatedDelivery *time.Time,
	specialInstructions *string,
) (UpdateOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}
	if err := status.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		orderID:             orderID,
		status:              status,
		estimatedDelivery:   estimatedDelivery,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the order to move.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the requested next status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// EstimatedDelivery returns the new delivery estimate, or nil to keep the
// current one.
func (c UpdateOrderStatusCommand) EstimatedDelivery() *time.Time {
	return c.estimatedDelivery
}

// SpecialInstructions returns the replacement note, or nil to keep the
// current one.
func (c UpdateOrderStatusCommand) SpecialInstructions() *string {
	return c.specialInstructions
}
