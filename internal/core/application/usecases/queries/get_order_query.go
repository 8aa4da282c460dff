package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order in full: the summary row plus every line
// with its snapshot price and the dish name as currently on the menu.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's full detail.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderLineResponse is one order line in the detail read model. MenuItemName
// is empty when the dish has been removed from the menu since placement; the
// snapshot price and quantity survive regardless.
type OrderLineResponse struct {
	ID              kernel.UUID
	MenuItemID      kernel.UUID
	MenuItemName    string
	Quantity        int
	Price           kernel.Money
	Subtotal        kernel.Money
	SpecialRequests string
}

// OrderDetailResponse is the full order read model.
type OrderDetailResponse struct {
	OrderSummaryResponse
	DeliveryAddress     string
	SpecialInstructions string
	Items               []OrderLineResponse
}

// GetOrderQueryHandler serves the order detail read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail lookup.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the order with its lines or an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailResponse{}, err
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
			o.estimated_delivery,
			o.delivery_address,
			o.special_instructions
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.orderID.String()).Rows()
	if err != nil {
		return OrderDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetailResponse{}, err
		}
		return OrderDetailResponse{}, errs.NewObjectNotFoundError("order", query.orderID)
	}

	var detail OrderDetailResponse
	if detail.OrderSummaryResponse, err = scanOrderSummaryRow(func(dest ...any) error {
		dest = append(dest, &detail.DeliveryAddress, &detail.SpecialInstructions)
		return rows.Scan(dest...)
	}); err != nil {
		return OrderDetailResponse{}, err
	}
	rows.Close()

	if detail.Items, err = h.loadLines(ctx, query.orderID); err != nil {
		return OrderDetailResponse{}, err
	}
	return detail, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.menu_item_id,
			COALESCE(mi.name, ''),
			oi.quantity,
			oi.price,
			oi.special_requests
		FROM order_items oi
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]OrderLineResponse, 0)
	for rows.Next() {
		var (
			line       OrderLineResponse
			id         uuid.UUID
			menuItemID uuid.UUID
			price      string
		)
		if err = rows.Scan(
			&id,
			&menuItemID,
			&line.MenuItemName,
			&line.Quantity,
			&price,
			&line.SpecialRequests,
		); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}
		if line.Price, err = kernel.MoneyFromString(price); err != nil {
			return nil, err
		}
		line.Subtotal = line.Price.MulInt(line.Quantity)
		lines = append(lines, line)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
