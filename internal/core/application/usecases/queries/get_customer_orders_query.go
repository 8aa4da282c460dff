package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

// GetCustomerOrdersQuery retrieves one customer's order history, newest
// first, with an optional status filter.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	status     *order.Status
	page       Page

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for a customer's order history.
func NewGetCustomerOrdersQuery(
	customerID kernel.UUID,
	status *order.Status,
	skip, limit int,
) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetCustomerOrdersQuery{}, err
		}
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		status:     status,
		page:       NewPage(skip, limit),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// GetCustomerOrdersQueryHandler serves a customer's order history.
type GetCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerOrdersQueryHandler creates a handler for customer order history.
func NewGetCustomerOrdersQueryHandler(db *gorm.DB) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{db: db}
}

// Handle returns the customer's order summaries, newest first. The customer
// must exist; an unknown id is an ObjectNotFoundError rather than an empty
// page.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	if err := h.db.WithContext(ctx).Raw(
		`SELECT EXISTS (SELECT 1 FROM customers WHERE id = ?)`,
		query.customerID.String()).Scan(&exists).Error; err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", query.customerID)
	}

	var status any
	if query.status != nil {
		status = query.status.String()
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			c.name,
			o.restaurant_id,
			r.name,
			o.status,
			o.total_amount,
			o.ordered_at,
			o.estimated_delivery
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = ?
		  AND (?::text IS NULL OR o.status = ?)
		ORDER BY o.ordered_at DESC
		OFFSET ? LIMIT ?
	`, query.customerID.String(),
		status, status,
		query.page.Skip, query.page.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		summary, scanErr := scanOrderSummaryRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, summary)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
