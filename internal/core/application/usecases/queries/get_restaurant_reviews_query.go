package queries

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetRestaurantReviewsQueryIsNotConstructed = errors.New(
	"GetRestaurantReviewsQuery must be created via NewGetRestaurantReviewsQuery constructor",
)

// GetRestaurantReviewsQuery retrieves a restaurant's reviews, newest first,
// with the reviewer's name joined in.
type GetRestaurantReviewsQuery struct {
	restaurantID kernel.UUID
	page         Page

	guard guard.ConstructorGuard
}

// NewGetRestaurantReviewsQuery creates a query for a restaurant's reviews.
func NewGetRestaurantReviewsQuery(restaurantID kernel.UUID, skip, limit int) (GetRestaurantReviewsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantReviewsQuery{}, err
	}

	return GetRestaurantReviewsQuery{
		restaurantID: restaurantID,
		page:         NewPage(skip, limit),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantReviewsQueryIsNotConstructed)
}

// ReviewResponse is the review read model. CustomerName and RestaurantName
// are filled by the queries that join the respective tables.
type ReviewResponse struct {
	ID             kernel.UUID
	CustomerID     kernel.UUID
	CustomerName   string
	RestaurantID   kernel.UUID
	RestaurantName string
	OrderID        kernel.UUID
	Rating         int
	Comment        string
	CreatedAt      time.Time
}

// GetRestaurantReviewsQueryHandler serves a restaurant's review list.
type GetRestaurantReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantReviewsQueryHandler creates a handler for restaurant reviews.
func NewGetRestaurantReviewsQueryHandler(db *gorm.DB) GetRestaurantReviewsQueryHandler {
	return GetRestaurantReviewsQueryHandler{db: db}
}

// Handle returns the restaurant's reviews, newest first.
func (h GetRestaurantReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantReviewsQuery,
) ([]ReviewResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rv.id,
			rv.customer_id,
			c.name,
			rv.restaurant_id,
			rv.order_id,
			rv.rating,
			rv.comment,
			rv.created_at
		FROM reviews rv
		JOIN customers c ON c.id = rv.customer_id
		WHERE rv.restaurant_id = ?
		ORDER BY rv.created_at DESC
		OFFSET ? LIMIT ?
	`, query.restaurantID.String(), query.page.Skip, query.page.Limit).Rows()
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
			&rev.CustomerName,
			&restaurantID,
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
