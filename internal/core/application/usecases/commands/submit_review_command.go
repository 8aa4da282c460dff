package commands

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand represents a request to review a delivered order.
type SubmitReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	orderID    kernel.UUID
	customerID kernel.UUID
	rating     int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitReviewCommand creates a command to submit a review.
func NewSubmitReviewCommand(
	reviewID, orderID, customerID kernel.UUID,
	rating int,
	comment string,
) (SubmitReviewCommand, error) {
	if err := errors.Join(
		reviewID.Validate(),
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return SubmitReviewCommand{}, err
	}
	if rating < 1 || rating > 5 {
		return SubmitReviewCommand{}, errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}

	return SubmitReviewCommand{
		reviewID:   reviewID,
		orderID:    orderID,
		customerID: customerID,
		rating:     rating,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier assigned to the new review.
func (c SubmitReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// OrderID returns the reviewed order.
func (c SubmitReviewCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the reviewing customer.
func (c SubmitReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the integer rating, 1 to 5.
func (c SubmitReviewCommand) Rating() int {
	return c.rating
}

// Comment returns the optional free-text comment.
func (c SubmitReviewCommand) Comment() string {
	return c.comment
}
