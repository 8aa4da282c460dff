package commands

import (
	"context"
	"log/slog"

	"eats/internal/core/ports"
)

// UpdateOrderStatusCommandHandler moves orders through the status workflow.
//
// Example:
//
//	cmd, _ := NewUpdateOrderStatusCommand(orderID, order.Confirmed)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err // BusinessRuleError for an illegal transition
//	}
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for order status changes.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle loads the order, applies the transition, and persists the result.
// The new status is announced after commit; a publish failure is logged and
// swallowed.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}
	if estimate := cmd.EstimatedDelivery(); estimate != nil {
		aggregate.Reschedule(*estimate)
	}
	if note := cmd.SpecialInstructions(); note != nil {
		aggregate.UpdateSpecialInstructions(*note)
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderChanged(ctx, aggregate); err != nil {
		slog.Warn("order event publish failed",
			"order_id", aggregate.ID().String(), "error", err)
	}
	return nil
}
