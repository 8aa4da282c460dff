package order

import (
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// OrderItem is an order line: a menu item reference, the quantity ordered,
// and the price snapshot taken at order-creation time. The snapshot price is
// immune to later menu price edits, which is what keeps an order's total
// stable for its whole lifetime.
type OrderItem struct {
	id              kernel.UUID
	menuItemID      kernel.UUID
	quantity        int
	price           kernel.Money
	specialRequests string

	isConstructed bool
}

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
// through NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem")

// NewOrderItem creates an order line with a snapshot price.
// Quantity must be at least 1 and the price must be positive.
func NewOrderItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	price kernel.Money,
	specialRequests string,
) (OrderItem, error) {
	if err := id.Validate(); err != nil {
		return OrderItem{}, err
	}
	if err := menuItemID.Validate(); err != nil {
		return OrderItem{}, err
	}
	if quantity < 1 {
		return OrderItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is less than 1", quantity))
	}
	if price.IsZero() {
		return OrderItem{}, errs.NewValueIsRequiredError("item price")
	}

	return OrderItem{
		id:              id,
		menuItemID:      menuItemID,
		quantity:        quantity,
		price:           price,
		specialRequests: specialRequests,
		isConstructed:   true,
	}, nil
}

// RestoreOrderItem rehydrates an order line from persistence.
func RestoreOrderItem(
	id kernel.UUID,
	menuItemID kernel.UUID,
	quantity int,
	price kernel.Money,
	specialRequests string,
) (OrderItem, error) {
	return NewOrderItem(id, menuItemID, quantity, price, specialRequests)
}

// Validate ensures the item was created through a constructor.
func (i OrderItem) Validate() error {
	if !i.isConstructed {
		return ErrOrderItemIsNotConstructed
	}
	return nil
}

// ID returns the order line identifier.
func (i OrderItem) ID() kernel.UUID {
	return i.id
}

// MenuItemID returns the referenced menu item.
func (i OrderItem) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// Quantity returns the ordered quantity.
func (i OrderItem) Quantity() int {
	return i.quantity
}

// Price returns the snapshot price per unit.
func (i OrderItem) Price() kernel.Money {
	return i.price
}

// SpecialRequests returns the optional per-line note.
func (i OrderItem) SpecialRequests() string {
	return i.specialRequests
}

// Subtotal returns snapshot price multiplied by quantity.
func (i OrderItem) Subtotal() kernel.Money {
	return i.price.MulInt(i.quantity)
}
