package queries

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves order summaries with optional filters: lifecycle
// status, restaurant, customer, and a placement date range. Nil filters
// match everything.
type GetOrdersQuery struct {
	status       *order.Status
	restaurantID *kernel.UUID
	customerID   *kernel.UUID
	from         *time.Time
	to           *time.Time
	page         Page

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a filtered order listing query.
func NewGetOrdersQuery(
	status *order.Status,
	restaurantID, customerID *kernel.UUID,
	from, to *time.Time,
	skip, limit int,
) (GetOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		status:       status,
		restaurantID: restaurantID,
		customerID:   customerID,
		from:         from,
		to:           to,
		page:         NewPage(skip, limit),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderSummaryResponse is the order listing read model: one row per order,
// with the parties' names joined in and no lines.
type OrderSummaryResponse struct {
	ID                kernel.UUID
	CustomerID        kernel.UUID
	CustomerName      string
	RestaurantID      kernel.UUID
	RestaurantName    string
	Status            order.Status
	TotalAmount       kernel.Money
	OrderedAt         time.Time
	EstimatedDelivery time.Time
}

// GetOrdersQueryHandler serves the order listing read model.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle returns order summaries matching the filters, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]OrderSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var status any
	if query.status != nil {
		status = query.status.String()
	}
	var restaurantID, customerID any
	if query.restaurantID != nil {
		restaurantID = query.restaurantID.String()
	}
	if query.customerID != nil {
		customerID = query.customerID.String()
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
		WHERE (?::text IS NULL OR o.status = ?)
		  AND (?::uuid IS NULL OR o.restaurant_id = ?)
		  AND (?::uuid IS NULL OR o.customer_id = ?)
		  AND (?::timestamptz IS NULL OR o.ordered_at >= ?)
		  AND (?::timestamptz IS NULL OR o.ordered_at <= ?)
		ORDER BY o.ordered_at DESC
		OFFSET ? LIMIT ?
	`, status, status,
		restaurantID, restaurantID,
		customerID, customerID,
		query.from, query.from,
		query.to, query.to,
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

func scanOrderSummaryRow(scan func(dest ...any) error) (OrderSummaryResponse, error) {
	var (
		summary      OrderSummaryResponse
		id           uuid.UUID
		customerID   uuid.UUID
		restaurantID uuid.UUID
		status       string
		total        string
	)

	if err := scan(
		&id,
		&customerID,
		&summary.CustomerName,
		&restaurantID,
		&summary.RestaurantName,
		&status,
		&total,
		&summary.OrderedAt,
		&summary.EstimatedDelivery,
	); err != nil {
		return OrderSummaryResponse{}, err
	}

	var err error
	if summary.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.Status, err = order.StatusFromString(status); err != nil {
		return OrderSummaryResponse{}, err
	}
	if summary.TotalAmount, err = kernel.MoneyFromString(total); err != nil {
		return OrderSummaryResponse{}, err
	}
	return summary, nil
}
