package order

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errs.NewValueIsRequiredError(
	"Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root for a customer's order at a restaurant. It
// manages the order lifecycle from placement through the status workflow to
// a terminal state.
//
// Order maintains these invariants:
//   - Must reference a valid customer and restaurant
//   - Must contain at least one order line
//   - The total amount equals the sum of its lines' snapshot price x quantity
//     and is computed exactly once, at construction
//   - Status transitions follow the closed table in Status
//   - Customer, restaurant, lines, and total are immutable after creation;
//     only status, estimated delivery time, and special instructions may change
type Order struct {
	id                  kernel.UUID
	customerID          kernel.UUID
	restaurantID        kernel.UUID
	status              Status
	totalAmount         kernel.Money
	deliveryAddress     string
	specialInstructions string
	orderedAt           time.Time
	estimatedDelivery   time.Time
	items               []OrderItem

	isConstructed bool
}

// NewOrder creates a freshly placed order. The total amount is derived from
// the given lines and the initial status is Placed.
//
// Callers are expected to have resolved and priced the lines already; the
// order intake domain service is the usual entry point.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	specialInstructions string,
	items []OrderItem,
	orderedAt time.Time,
	estimatedDelivery time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := o.init(id, customerID, restaurantID, deliveryAddress, items); err != nil {
		return nil, err
	}

	o.specialInstructions = specialInstructions
	o.orderedAt = orderedAt
	o.estimatedDelivery = estimatedDelivery
	o.totalAmount = sumItems(items)
	return o, nil
}

// RestoreOrder rehydrates an order from persistence, including its persisted
// status and total. The stored total is kept as-is and never recomputed, so
// menu price edits after the fact cannot change it.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	status Status,
	totalAmount kernel.Money,
	deliveryAddress string,
	specialInstructions string,
	items []OrderItem,
	orderedAt time.Time,
	estimatedDelivery time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := o.init(id, customerID, restaurantID, deliveryAddress, items); err != nil {
		return nil, err
	}

	o.specialInstructions = specialInstructions
	o.orderedAt = orderedAt
	o.estimatedDelivery = estimatedDelivery
	o.totalAmount = totalAmount
	return o, nil
}

func (o *Order) init(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	items []OrderItem,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := customerID.Validate(); err != nil {
		return err
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.id = id
	o.customerID = customerID
	o.restaurantID = restaurantID
	o.deliveryAddress = deliveryAddress
	o.items = append([]OrderItem(nil), items...)
	return nil
}

func sumItems(items []OrderItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Validate ensures the Order instance was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// RestaurantID returns the restaurant the order was placed at.
func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalAmount returns the immutable order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// DeliveryAddress returns the delivery destination.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// SpecialInstructions returns the optional order-level note.
func (o *Order) SpecialInstructions() string {
	return o.specialInstructions
}

// OrderedAt returns the placement timestamp.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// EstimatedDelivery returns the current delivery estimate.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// ChangeStatus moves the order to the next lifecycle status.
// The transition is checked against the closed table in Status; illegal
// moves return a BusinessRuleError naming both states.
func (o *Order) ChangeStatus(next Status) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// Reschedule updates the estimated delivery time.
// Delivery time is part of the small mutable field set; the total, parties,
// and lines stay frozen.
func (o *Order) Reschedule(estimatedDelivery time.Time) {
	o.estimatedDelivery = estimatedDelivery
}

// UpdateSpecialInstructions replaces the order-level note.
func (o *Order) UpdateSpecialInstructions(instructions string) {
	o.specialInstructions = instructions
}

// EnsureReviewableBy checks whether the given customer may review this order.
// Returns a NotAuthorizedError when the customer does not own the order and a
// BusinessRuleError unless the order has been delivered. The duplicate-review
// check is a persistence concern and lives with the review repository.
func (o *Order) EnsureReviewableBy(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if !o.customerID.IsEqual(customerID) {
		return errs.NewNotAuthorizedError("customers can only review their own orders")
	}
	if o.status != Delivered {
		return errs.NewBusinessRuleError("reviews can only be added for delivered orders")
	}
	return nil
}
