// Package review provides the review aggregate. A review belongs to exactly
// one delivered order; the (order, customer) pair is unique, and every
// accepted review drives a recomputation of the restaurant's mean rating.
package review

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrReviewIsNotConstructed is returned when a Review instance was not created
// through NewReview or RestoreReview.
var ErrReviewIsNotConstructed = errs.NewValueIsRequiredError(
	"Review must be created via NewReview or RestoreReview")

// Review is a customer's rating of a restaurant, tied to a specific order.
type Review struct {
	id           kernel.UUID
	customerID   kernel.UUID
	restaurantID kernel.UUID
	orderID      kernel.UUID
	rating       int
	comment      string
	createdAt    time.Time

	isConstructed bool
}

// NewReview creates a review with an integer rating between 1 and 5.
func NewReview(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if rating < 1 || rating > 5 {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	return &Review{
		id:            id,
		customerID:    customerID,
		restaurantID:  restaurantID,
		orderID:       orderID,
		rating:        rating,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreReview rehydrates a review from persistence.
func RestoreReview(
	id kernel.UUID,
	customerID kernel.UUID,
	restaurantID kernel.UUID,
	orderID kernel.UUID,
	rating int,
	comment string,
	createdAt time.Time,
) (*Review, error) {
	return NewReview(id, customerID, restaurantID, orderID, rating, comment, createdAt)
}

// Validate ensures the Review was created through a factory method.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

// ID returns the review identifier.
func (r *Review) ID() kernel.UUID {
	return r.id
}

// CustomerID returns the reviewing customer.
func (r *Review) CustomerID() kernel.UUID {
	return r.customerID
}

// RestaurantID returns the reviewed restaurant.
func (r *Review) RestaurantID() kernel.UUID {
	return r.restaurantID
}

// OrderID returns the order the review is tied to.
func (r *Review) OrderID() kernel.UUID {
	return r.orderID
}

// Rating returns the integer rating, 1 to 5.
func (r *Review) Rating() int {
	return r.rating
}

// Comment returns the optional free-text comment.
func (r *Review) Comment() string {
	return r.comment
}

// CreatedAt returns the submission timestamp.
func (r *Review) CreatedAt() time.Time {
	return r.createdAt
}
