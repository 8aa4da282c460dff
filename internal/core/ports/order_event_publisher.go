package ports

import (
	"context"

	"eats/internal/core/domain/model/order"
)

// OrderEventPublisher announces order lifecycle changes to interested
// consumers. Handlers publish after a successful commit; a publish failure is
// logged but never rolls the transaction back, the database state is the
// source of truth.
type OrderEventPublisher interface {
	// PublishOrderChanged emits an event carrying the order's id, status,
	// and total.
	PublishOrderChanged(ctx context.Context, aggregate *order.Order) error
}
