// Package services holds domain services: rules that span more than one
// aggregate and therefore cannot live inside any single one of them.
package services

import (
	"fmt"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"
)

// baseDeliveryBufferMinutes is added on top of the slowest line's kitchen
// preparation time to produce the initial delivery estimate.
const baseDeliveryBufferMinutes = 30

// OrderLine is a requested order line before resolution: a menu item
// reference plus quantity. Prices are never accepted from callers; they are
// snapshotted from the menu during intake.
type OrderLine struct {
	MenuItemID      kernel.UUID
	Quantity        int
	SpecialRequests string
}

// OrderIntake turns a raw order request into an Order aggregate. It spans
// the restaurant aggregate (operating window, menu) and the order aggregate,
// which is why it is a domain service rather than a method on either.
type OrderIntake struct{}

// NewOrderIntake creates the intake service.
func NewOrderIntake() *OrderIntake {
	return &OrderIntake{}
}

// PlaceOrder validates a request against the restaurant and its menu and
// produces a freshly placed order.
//
// The checks run in a fixed sequence: the line set must be non-empty and free
// of duplicate menu items, the restaurant must be open at the placement
// instant, and every line must resolve to an available item on this
// restaurant's menu. Line resolution is a single pass that collects every
// problem before failing, so a request with three bad lines reports all
// three. Each resolved line snapshots the current menu price; the estimated
// delivery is the placement instant plus the slowest line's preparation time
// plus a fixed buffer.
func (s *OrderIntake) PlaceOrder(
	orderID kernel.UUID,
	rest *restaurant.Restaurant,
	menu []*restaurant.MenuItem,
	customerID kernel.UUID,
	deliveryAddress string,
	specialInstructions string,
	lines []OrderLine,
	now time.Time,
) (*order.Order, error) {
	if err := rest.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("order items")
	}

	seen := make(map[kernel.UUID]bool, len(lines))
	for _, line := range lines {
		if seen[line.MenuItemID] {
			return nil, errs.NewValueIsInvalidErrorWithCause("order items",
				fmt.Errorf("menu item %s appears more than once", line.MenuItemID))
		}
		seen[line.MenuItemID] = true
	}

	if err := rest.EnsureOpenAt(now); err != nil {
		return nil, err
	}

	menuByID := make(map[kernel.UUID]*restaurant.MenuItem, len(menu))
	for _, item := range menu {
		menuByID[item.ID()] = item
	}

	var problems []string
	maxPreparation := 0
	items := make([]order.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, ok := menuByID[line.MenuItemID]
		switch {
		case !ok || !item.RestaurantID().IsEqual(rest.ID()):
			problems = append(problems,
				fmt.Sprintf("menu item %s is not on this restaurant's menu", line.MenuItemID))
			continue
		case !item.IsAvailable():
			problems = append(problems,
				fmt.Sprintf("menu item %q is not available", item.Name()))
			continue
		}

		orderItem, err := order.NewOrderItem(
			kernel.NewUUID(), item.ID(), line.Quantity, item.Price(), line.SpecialRequests)
		if err != nil {
			return nil, err
		}
		items = append(items, orderItem)

		if item.PreparationMinutes() > maxPreparation {
			maxPreparation = item.PreparationMinutes()
		}
	}
	if len(problems) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order items",
			fmt.Errorf("%s", strings.Join(problems, "; ")))
	}

	estimatedDelivery := now.Add(time.Duration(maxPreparation+baseDeliveryBufferMinutes) * time.Minute)

	return order.NewOrder(
		orderID, customerID, rest.ID(), deliveryAddress,
		specialInstructions, items, now, estimatedDelivery)
}
