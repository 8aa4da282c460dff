package commands

import (
	"context"
	"time"

	"eats/internal/core/domain/model/review"
	"eats/internal/pkg/errs"
)

// SubmitReviewCommandHandler handles review submission.
//
// The whole workflow runs in one transaction: eligibility checks against the
// order, the duplicate check, the insert, and the rating recomputation. The
// restaurant row is locked before the insert so concurrent reviews for the
// same restaurant serialize and each recomputation sees every accepted
// review.
type SubmitReviewCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewSubmitReviewCommandHandler creates a handler for review submission.
func NewSubmitReviewCommandHandler(uowFactory ReviewUoWFactory) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review submission command.
func (h *SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reviewed, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = reviewed.EnsureReviewableBy(cmd.CustomerID()); err != nil {
		return err
	}

	reviewRepo := uow.ReviewRepository()
	exists, err := reviewRepo.ExistsForOrderAndCustomer(ctx, cmd.OrderID(), cmd.CustomerID())
	if err != nil {
		return err
	}
	if exists {
		return errs.NewConflictError("order already reviewed by this customer")
	}

	restaurantRepo := uow.RestaurantRepository()
	rest, err := restaurantRepo.GetForUpdate(ctx, reviewed.RestaurantID())
	if err != nil {
		return err
	}

	aggregate, err := review.NewReview(
		cmd.ReviewID(), cmd.CustomerID(), rest.ID(), cmd.OrderID(),
		cmd.Rating(), cmd.Comment(), time.Now().UTC())
	if err != nil {
		return err
	}

	if err = reviewRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = restaurantRepo.RefreshRating(ctx, rest.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
