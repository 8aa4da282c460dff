package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCustomerReviewsQueryIsNotConstructed = errors.New(
	"GetCustomerReviewsQuery must be created via NewGetCustomerReviewsQuery constructor",
)

// GetCustomerReviewsQuery retrieves every review a customer has written,
// newest first, with the restaurant's name joined in.
type GetCustomerReviewsQuery struct {
	customerID kernel.UUID
	page       Page

	guard guard.ConstructorGuard
}

// NewGetCustomerReviewsQuery creates a query for a customer's reviews.
func NewGetCustomerReviewsQuery(customerID kernel.UUID, skip, limit int) (GetCustomerReviewsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerReviewsQuery{}, err
	}

	return GetCustomerReviewsQuery{
		customerID: customerID,
		page:       NewPage(skip, limit),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerReviewsQueryIsNotConstructed)
}

// GetCustomerReviewsQueryHandler serves a customer's review list.
type GetCustomerReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerReviewsQueryHandler creates a handler for customer reviews.
func NewGetCustomerReviewsQueryHandler(db *gorm.DB) GetCustomerReviewsQueryHandler {
	return GetCustomerReviewsQueryHandler{db: db}
}

// Handle returns the customer's reviews, newest first.
func (h GetCustomerReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rv.id,
			rv.customer_id,
			rv.restaurant_id,
			r.name,
			rv.order_id,
			rv.rating,
			rv.comment,
			rv.created_at
		FROM reviews rv
		JOIN restaurants r ON r.id = rv.restaurant_id
		WHERE rv.customer_id = ?
		ORDER BY rv.created_at DESC
		OFFSET ? LIMIT ?
	`, query.customerID.String(), query.page.Skip, query.page.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]ReviewResponse, 0)
	for rows.Next() {
		var (
			rev          ReviewResponse
			id           uuid.UUID
			customerID   uuid.UUID
			restaurantID uuid.UUID
			orderID      uuid.UUID
		)
		if err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&rev.RestaurantName,
			&orderID,
			&rev.Rating,
			&rev.Comment,
			&rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		if rev.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if rev.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
			return nil, err
		}
		if rev.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
			return nil, err
		}
		if rev.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reviews, nil
}
