package commands

import (
	"context"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles order placement. It resolves the customer,
// the restaurant, and the requested menu items, delegates validation and
// pricing to the order intake domain service, and persists the result in one
// transaction. After a successful commit it announces the new order; a
// publish failure is logged and swallowed because the database is the source
// of truth.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
	intake     *services.OrderIntake
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(
	uowFactory PlaceOrderUoWFactory,
	intake *services.OrderIntake,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		intake:     intake,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	buyer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if !buyer.IsActive() {
		return errs.NewBusinessRuleError("customer account is inactive")
	}

	rest, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	lines := cmd.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.MenuItemID)
	}
	menu, err := uow.MenuItemRepository().FindForOrder(ctx, cmd.RestaurantID(), ids)
	if err != nil {
		return err
	}

	deliveryAddress := cmd.DeliveryAddress()
	if deliveryAddress == "" {
		deliveryAddress = buyer.Address()
	}

	placed, err := h.intake.PlaceOrder(
		cmd.OrderID(), rest, menu, cmd.CustomerID(), deliveryAddress,
		cmd.SpecialInstructions(), lines, time.Now().UTC())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, placed); err != nil {
		slog.Warn("order event publish failed",
			"order_id", placed.ID().String(), "error", err)
	}
	return nil
}
