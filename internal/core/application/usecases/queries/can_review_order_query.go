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

var ErrCanReviewOrderQueryIsNotConstructed = errors.New(
	"CanReviewOrderQuery must be created via NewCanReviewOrderQuery constructor",
)

// CanReviewOrderQuery checks whether a customer may review an order before
// they try: the order must be theirs, delivered, and not yet reviewed.
type CanReviewOrderQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCanReviewOrderQuery creates a review eligibility query.
func NewCanReviewOrderQuery(orderID, customerID kernel.UUID) (CanReviewOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), customerID.Validate()); err != nil {
		return CanReviewOrderQuery{}, err
	}

	return CanReviewOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q CanReviewOrderQuery) Validate() error {
	return q.guard.Validate(ErrCanReviewOrderQueryIsNotConstructed)
}

// CanReviewOrderQueryResponse reports eligibility and, when the answer is
// no, a human-readable reason.
type CanReviewOrderQueryResponse struct {
	CanReview bool
	Reason    string
}

// CanReviewOrderQueryHandler serves the review eligibility read model.
type CanReviewOrderQueryHandler struct {
	db *gorm.DB
}

// NewCanReviewOrderQueryHandler creates a handler for eligibility checks.
func NewCanReviewOrderQueryHandler(db *gorm.DB) CanReviewOrderQueryHandler {
	return CanReviewOrderQueryHandler{db: db}
}

// Handle answers the eligibility question. An unknown order is an
// ObjectNotFoundError; every other failure mode is a negative answer with a
// reason, mirroring what review submission would reject.
func (h CanReviewOrderQueryHandler) Handle(
	ctx context.Context,
	query CanReviewOrderQuery,
) (CanReviewOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CanReviewOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.customer_id = ?::uuid,
			o.status,
			EXISTS (
				SELECT 1 FROM reviews rv
				WHERE rv.order_id = o.id AND rv.customer_id = ?::uuid
			)
		FROM orders o
		WHERE o.id = ?
	`, query.customerID.String(), query.customerID.String(), query.orderID.String()).Rows()
	if err != nil {
		return CanReviewOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return CanReviewOrderQueryResponse{}, err
		}
		return CanReviewOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.orderID)
	}

	var (
		owned           bool
		status          string
		alreadyReviewed bool
	)
	if err = rows.Scan(&owned, &status, &alreadyReviewed); err != nil {
		return CanReviewOrderQueryResponse{}, err
	}

	switch {
	case !owned:
		return CanReviewOrderQueryResponse{
			Reason: "customers can only review their own orders",
		}, nil
	case status != order.Delivered.String():
		return CanReviewOrderQueryResponse{
			Reason: "reviews can only be added for delivered orders",
		}, nil
	case alreadyReviewed:
		return CanReviewOrderQueryResponse{
			Reason: "order already reviewed by this customer",
		}, nil
	}
	return CanReviewOrderQueryResponse{CanReview: true}, nil
}
