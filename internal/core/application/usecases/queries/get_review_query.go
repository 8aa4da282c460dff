package queries

import (
	"context"
	"errors"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetReviewQueryIsNotConstructed = errors.New(
	"GetReviewQuery must be created via NewGetReviewQuery constructor",
)

// GetReviewQuery retrieves a single review together with short summaries of
// the reviewing customer, the restaurant, and the order it is tied to.
type GetReviewQuery struct {
	reviewID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetReviewQuery creates a query for one review's detail.
func NewGetReviewQuery(reviewID kernel.UUID) (GetReviewQuery, error) {
	if err := reviewID.Validate(); err != nil {
		return GetReviewQuery{}, err
	}

	return GetReviewQuery{
		reviewID: reviewID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetReviewQuery) Validate() error {
	return q.guard.Validate(ErrGetReviewQueryIsNotConstructed)
}

// ReviewDetailResponse is a review with its surrounding context.
type ReviewDetailResponse struct {
	ReviewResponse
	CustomerEmail    string
	RestaurantRating float64
	OrderStatus      order.Status
	OrderTotal       kernel.Money
	OrderedAt        time.Time
}

// GetReviewQueryHandler serves the review detail read model.
type GetReviewQueryHandler struct {
	db *gorm.DB
}

// NewGetReviewQueryHandler creates a handler for review detail lookup.
func NewGetReviewQueryHandler(db *gorm.DB) GetReviewQueryHandler {
	return GetReviewQueryHandler{db: db}
}

// Handle returns the review with nested summaries or an ObjectNotFoundError.
func (h GetReviewQueryHandler) Handle(
	ctx context.Context,
	query GetReviewQuery,
) (ReviewDetailResponse, error) {
	if err := query.Validate(); err != nil {
		return ReviewDetailResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			rv.id,
			rv.customer_id,
			c.name,
			c.email,
			rv.restaurant_id,
			r.name,
			r.rating,
			rv.order_id,
			o.status,
			o.total_amount,
			o.ordered_at,
			rv.rating,
			rv.comment,
			rv.created_at
		FROM reviews rv
		JOIN customers c ON c.id = rv.customer_id
		JOIN restaurants r ON r.id = rv.restaurant_id
		JOIN orders o ON o.id = rv.order_id
		WHERE rv.id = ?
	`, query.reviewID.String()).Rows()
	if err != nil {
		return ReviewDetailResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return ReviewDetailResponse{}, err
		}
		return ReviewDetailResponse{}, errs.NewObjectNotFoundError("review", query.reviewID)
	}

	var (
		detail       ReviewDetailResponse
		id           uuid.UUID
		customerID   uuid.UUID
		restaurantID uuid.UUID
		orderID      uuid.UUID
		orderStatus  string
		orderTotal   string
	)
	if err = rows.Scan(
		&id,
		&customerID,
		&detail.CustomerName,
		&detail.CustomerEmail,
		&restaurantID,
		&detail.RestaurantName,
		&detail.RestaurantRating,
		&orderID,
		&orderStatus,
		&orderTotal,
		&detail.OrderedAt,
		&detail.Rating,
		&detail.Comment,
		&detail.CreatedAt,
	); err != nil {
		return ReviewDetailResponse{}, err
	}

	if detail.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return ReviewDetailResponse{}, err
	}
	if detail.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return ReviewDetailResponse{}, err
	}
	if detail.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return ReviewDetailResponse{}, err
	}
	if detail.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return ReviewDetailResponse{}, err
	}
	if detail.OrderStatus, err = order.StatusFromString(orderStatus); err != nil {
		return ReviewDetailResponse{}, err
	}
	if detail.OrderTotal, err = kernel.MoneyFromString(orderTotal); err != nil {
		return ReviewDetailResponse{}, err
	}
	return detail, nil
}
