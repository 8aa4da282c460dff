package commands_test

import (
	"context"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/customer"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/review"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}
func (m *MockRestaurantRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}
func (m *MockRestaurantRepository) RefreshRating(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockMenuItemRepository struct{ mock.Mock }

func (m *MockMenuItemRepository) Add(ctx context.Context, item *restaurant.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockMenuItemRepository) Update(ctx context.Context, item *restaurant.MenuItem) error {
	return m.Called(ctx, item).Error(0)
}
func (m *MockMenuItemRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*restaurant.MenuItem)
	return item, args.Error(1)
}
func (m *MockMenuItemRepository) FindForOrder(ctx context.Context, restaurantID kernel.UUID, ids []kernel.UUID) ([]*restaurant.MenuItem, error) {
	args := m.Called(ctx, restaurantID, ids)
	items, _ := args.Get(0).([]*restaurant.MenuItem)
	return items, args.Error(1)
}
func (m *MockMenuItemRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockReviewRepository struct{ mock.Mock }

func (m *MockReviewRepository) Add(ctx context.Context, r *review.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockReviewRepository) ExistsForOrderAndCustomer(ctx context.Context, orderID, customerID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, customerID)
	return args.Bool(0), args.Error(1)
}

type MockOrderEventPublisher struct{ mock.Mock }

func (m *MockOrderEventPublisher) PublishOrderChanged(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

// txManagerMock embeds the shared Begin/Commit/Rollback expectations.
type txManagerMock struct{ mock.Mock }

func (m *txManagerMock) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *txManagerMock) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *txManagerMock) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockRestaurantUoW struct{ txManagerMock }

func (m *MockRestaurantUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

type MockRestaurantUoWFactory struct{ mock.Mock }

func (m *MockRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return m.Called().Get(0).(commands.RestaurantUoW)
}

type MockOrderUoW struct{ txManagerMock }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockPlaceOrderUoW struct{ txManagerMock }

func (m *MockPlaceOrderUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}
func (m *MockPlaceOrderUoW) MenuItemRepository() ports.MenuItemRepository {
	return m.Called().Get(0).(ports.MenuItemRepository)
}
func (m *MockPlaceOrderUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}
func (m *MockPlaceOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

type MockPlaceOrderUoWFactory struct{ mock.Mock }

func (m *MockPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return m.Called().Get(0).(commands.PlaceOrderUoW)
}

type MockReviewUoW struct{ txManagerMock }

func (m *MockReviewUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}
func (m *MockReviewUoW) ReviewRepository() ports.ReviewRepository {
	return m.Called().Get(0).(ports.ReviewRepository)
}
func (m *MockReviewUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	return m.Called().Get(0).(commands.ReviewUoW)
}
