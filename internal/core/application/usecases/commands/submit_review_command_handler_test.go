package commands_test

import (
	"testing"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredOrder(t *testing.T, customerID, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), 1, kernel.MustMoneyFromString("10.00"), "")
	require.NoError(t, err)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, restaurantID, order.Delivered,
		kernel.MustMoneyFromString("10.00"), "5 Delivery St", "",
		[]order.OrderItem{item}, now, now.Add(45*time.Minute))
	require.NoError(t, err)
	return o
}

func TestSubmitReviewCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	rest := alwaysOpenRestaurant(t)
	customerID := kernel.NewUUID()
	reviewed := deliveredOrder(t, customerID, rest.ID())

	cmd, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(), reviewed.ID(), customerID, 5, "excellent")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	restaurantRepo := new(MockRestaurantRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("ExistsForOrderAndCustomer", mock.Anything, reviewed.ID(), customerID).
			Return(false, nil).Once(),
		uow.On("RestaurantRepository").Return(restaurantRepo).Once(),
		restaurantRepo.On("GetForUpdate", mock.Anything, rest.ID()).Return(rest, nil).Once(),
		reviewRepo.On("Add", mock.Anything, mock.AnythingOfType("*review.Review")).Return(nil).Once(),
		restaurantRepo.On("RefreshRating", mock.Anything, rest.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	reviewRepo.AssertExpectations(t)
	restaurantRepo.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_DuplicateReview(t *testing.T) {
	ctx := t.Context()
	rest := alwaysOpenRestaurant(t)
	customerID := kernel.NewUUID()
	reviewed := deliveredOrder(t, customerID, rest.ID())

	cmd, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(), reviewed.ID(), customerID, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	reviewRepo := new(MockReviewRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		uow.On("ReviewRepository").Return(reviewRepo).Once(),
		reviewRepo.On("ExistsForOrderAndCustomer", mock.Anything, reviewed.ID(), customerID).
			Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrConflict)
	uow.AssertExpectations(t)
}

func TestSubmitReviewCommandHandler_Handle_NotOwnOrder(t *testing.T) {
	ctx := t.Context()
	rest := alwaysOpenRestaurant(t)
	reviewed := deliveredOrder(t, kernel.NewUUID(), rest.ID())
	stranger := kernel.NewUUID()

	cmd, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(), reviewed.ID(), stranger, 4, "")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockReviewUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, reviewed.ID()).Return(reviewed, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSubmitReviewCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrNotAuthorized)
	uow.AssertExpectations(t)
}

func TestSubmitReviewCommand_RejectsOutOfRangeRating(t *testing.T) {
	_, err := commands.NewSubmitReviewCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 6, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = commands.NewSubmitReviewCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, "")
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
