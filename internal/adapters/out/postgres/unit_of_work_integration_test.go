package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresadapter "eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/customerrepo"
	"eats/internal/adapters/out/postgres/menuitemrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/reviewrepo"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/customer"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/review"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the unit of work and every
// repository against a real PostgreSQL instance.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the repositories map to ConflictError.
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&menuitemrepo.MenuItemDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&reviewrepo.ReviewDTO{},
	))

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE reviews, order_items, orders, menu_items, customers, restaurants").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newRestaurant(name string) *restaurant.Restaurant {
	opening, err := kernel.NewTimeOfDay(9, 0)
	suite.Require().NoError(err)
	closing, err := kernel.NewTimeOfDay(22, 0)
	suite.Require().NoError(err)

	rest, err := restaurant.NewRestaurant(
		kernel.NewUUID(),
		name,
		"Neapolitan pizza and more",
		"Italian",
		"1 Via Roma",
		"+1-555-0101",
		"Downtown",
		opening,
		closing,
	)
	suite.Require().NoError(err)
	return rest
}

func (suite *UnitOfWorkIntegrationTestSuite) newMenuItem(restaurantID kernel.UUID, name, price string) *restaurant.MenuItem {
	item, err := restaurant.NewMenuItem(
		kernel.NewUUID(),
		restaurantID,
		name,
		"House specialty",
		kernel.MustMoneyFromString(price),
		"Mains",
		false,
		false,
		20,
	)
	suite.Require().NoError(err)
	return item
}

func (suite *UnitOfWorkIntegrationTestSuite) newCustomer(email string) *customer.Customer {
	buyer, err := customer.NewCustomer(
		kernel.NewUUID(),
		"Alex Doe",
		email,
		"+1-555-0102",
		"2 Main St",
	)
	suite.Require().NoError(err)
	return buyer
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder(
	customerID, restaurantID, menuItemID kernel.UUID,
) *order.Order {
	item, err := order.NewOrderItem(
		kernel.NewUUID(), menuItemID, 2, kernel.MustMoneyFromString("12.50"), "extra basil")
	suite.Require().NoError(err)

	now := time.Now().UTC().Truncate(time.Microsecond)
	placed, err := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		restaurantID,
		"2 Main St",
		"ring twice",
		[]order.OrderItem{item},
		now,
		now.Add(50*time.Minute),
	)
	suite.Require().NoError(err)
	return placed
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsWrites() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().RestaurantRepository().Get(ctx, rest.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestaurantRoundTrip() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().RestaurantRepository().Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.Equal(rest.Name(), loaded.Name())
	suite.Equal(rest.OpeningTime().Minutes(), loaded.OpeningTime().Minutes())
	suite.Equal(rest.ClosingTime().Minutes(), loaded.ClosingTime().Minutes())
	suite.True(loaded.IsActive())
	suite.Zero(loaded.Rating())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestaurantNameConflict() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, suite.newRestaurant("Trattoria Uno")))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.RestaurantRepository().Add(ctx, suite.newRestaurant("Trattoria Uno"))
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCustomerEmailConflict() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, suite.newCustomer("alex@example.com")))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err := uow.CustomerRepository().Add(ctx, suite.newCustomer("alex@example.com"))
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMenuItemFindForOrder() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	other := suite.newRestaurant("Bistro Due")
	mine := suite.newMenuItem(rest.ID(), "Margherita", "12.50")
	foreign := suite.newMenuItem(other.ID(), "Quiche", "9.00")

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, other))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, mine))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, foreign))
	suite.Require().NoError(uow.Commit(ctx))

	found, err := suite.factory.Create().MenuItemRepository().FindForOrder(
		ctx, rest.ID(), []kernel.UUID{mine.ID(), foreign.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1, "foreign and unknown items are filtered out")
	suite.True(found[0].ID().IsEqual(mine.ID()))
	suite.True(found[0].Price().IsEqual(kernel.MustMoneyFromString("12.50")))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderRoundTrip() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	buyer := suite.newCustomer("alex@example.com")
	dish := suite.newMenuItem(rest.ID(), "Margherita", "12.50")
	placed := suite.newOrder(buyer.ID(), rest.ID(), dish.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, buyer))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, dish))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, loaded.Status())
	suite.True(loaded.TotalAmount().IsEqual(kernel.MustMoneyFromString("25.00")))
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal(2, loaded.Items()[0].Quantity())
	suite.Equal("extra basil", loaded.Items()[0].SpecialRequests())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestOrderStatusUpdatePersists() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	buyer := suite.newCustomer("alex@example.com")
	placed := suite.newOrder(buyer.ID(), rest.ID(), kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, buyer))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(placed.ChangeStatus(order.Confirmed))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, loaded.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestReviewUniquenessAndRatingRefresh() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	buyer := suite.newCustomer("alex@example.com")
	placed := suite.newOrder(buyer.ID(), rest.ID(), kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, buyer))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	first, err := review.NewReview(
		kernel.NewUUID(), buyer.ID(), rest.ID(), placed.ID(), 4, "great", time.Now().UTC())
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ReviewRepository().Add(ctx, first))
	suite.Require().NoError(uow.RestaurantRepository().RefreshRating(ctx, rest.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	exists, err := suite.factory.Create().ReviewRepository().
		ExistsForOrderAndCustomer(ctx, placed.ID(), buyer.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	rated, err := suite.factory.Create().RestaurantRepository().Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.InDelta(4.0, rated.Rating(), 0.001)

	duplicate, err := review.NewReview(
		kernel.NewUUID(), buyer.ID(), rest.ID(), placed.ID(), 5, "even better", time.Now().UTC())
	suite.Require().NoError(err)

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	err = uow.ReviewRepository().Add(ctx, duplicate)
	suite.Require().ErrorIs(err, errs.ErrConflict)
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRestaurantDeleteRemovesDependents() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	buyer := suite.newCustomer("alex@example.com")
	dish := suite.newMenuItem(rest.ID(), "Margherita", "12.50")
	placed := suite.newOrder(buyer.ID(), rest.ID(), dish.ID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, buyer))
	suite.Require().NoError(uow.MenuItemRepository().Add(ctx, dish))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Delete(ctx, rest.ID()))
	suite.Require().NoError(uow.Commit(ctx))

	repos := suite.factory.Create()
	_, err := repos.RestaurantRepository().Get(ctx, rest.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = repos.MenuItemRepository().Get(ctx, dish.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	_, err = repos.OrderRepository().Get(ctx, placed.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentReviewsConvergeOnMeanRating() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	first := suite.newCustomer("alex@example.com")
	second := suite.newCustomer("bo@example.com")
	firstOrder := suite.newOrder(first.ID(), rest.ID(), kernel.NewUUID())
	secondOrder := suite.newOrder(second.ID(), rest.ID(), kernel.NewUUID())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, first))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, second))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, firstOrder))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, secondOrder))
	suite.Require().NoError(uow.Commit(ctx))

	submit := func(buyer *customer.Customer, placed *order.Order, rating int) error {
		entry, err := review.NewReview(
			kernel.NewUUID(), buyer.ID(), rest.ID(), placed.ID(), rating, "fine", time.Now().UTC())
		if err != nil {
			return err
		}

		tx := suite.factory.Create()
		if err = tx.Begin(ctx); err != nil {
			return err
		}
		defer func() {
			_ = tx.Rollback(ctx)
		}()

		// The row lock serializes the rating recompute per restaurant.
		if _, err = tx.RestaurantRepository().GetForUpdate(ctx, rest.ID()); err != nil {
			return err
		}
		if err = tx.ReviewRepository().Add(ctx, entry); err != nil {
			return err
		}
		if err = tx.RestaurantRepository().RefreshRating(ctx, rest.ID()); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	submissions := []struct {
		buyer  *customer.Customer
		placed *order.Order
		rating int
	}{
		{first, firstOrder, 2},
		{second, secondOrder, 4},
	}

	var wg sync.WaitGroup
	results := make(chan error, len(submissions))
	for _, submission := range submissions {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- submit(submission.buyer, submission.placed, submission.rating)
		}()
	}
	wg.Wait()
	close(results)
	for err := range results {
		suite.Require().NoError(err)
	}

	rated, err := suite.factory.Create().RestaurantRepository().Get(ctx, rest.ID())
	suite.Require().NoError(err)
	suite.InDelta(3.0, rated.Rating(), 0.001, "both submissions contribute to the mean")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSearchRestaurantsActiveFilter() {
	ctx := context.Background()
	open := suite.newRestaurant("Trattoria Uno")
	closed := suite.newRestaurant("Bistro Due")
	suite.Require().NoError(closed.UpdateDetails(
		closed.Name(), closed.Description(), closed.CuisineType(),
		closed.Address(), closed.PhoneNumber(), closed.Location(),
		closed.OpeningTime(), closed.ClosingTime(),
		false,
	))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, open))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, closed))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewSearchRestaurantsQueryHandler(suite.db)

	found, err := handler.Handle(ctx, queries.NewSearchRestaurantsQuery("", "", 0, true, 0, 10))
	suite.Require().NoError(err)
	suite.Require().Len(found, 1, "deactivated restaurants are hidden by default")
	suite.Equal("Trattoria Uno", found[0].Name)

	found, err = handler.Handle(ctx, queries.NewSearchRestaurantsQuery("", "", 0, false, 0, 10))
	suite.Require().NoError(err)
	suite.Len(found, 2, "active false includes deactivated restaurants")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCustomerAnalyticsFavoriteSpend() {
	ctx := context.Background()
	rest := suite.newRestaurant("Trattoria Uno")
	buyer := suite.newCustomer("alex@example.com")
	dish := kernel.NewUUID()
	firstOrder := suite.newOrder(buyer.ID(), rest.ID(), dish)
	secondOrder := suite.newOrder(buyer.ID(), rest.ID(), dish)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.RestaurantRepository().Add(ctx, rest))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, buyer))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, firstOrder))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, secondOrder))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewGetCustomerAnalyticsQueryHandler(suite.db, missCache{})
	query, err := queries.NewGetCustomerAnalyticsQuery(buyer.ID())
	suite.Require().NoError(err)

	analytics, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(2, analytics.TotalOrders)
	suite.Equal("50.00", analytics.TotalSpent)

	suite.Require().Len(analytics.FavoriteRestaurants, 1)
	favorite := analytics.FavoriteRestaurants[0]
	suite.Equal(rest.ID().String(), favorite.RestaurantID)
	suite.Equal(rest.Name(), favorite.Name)
	suite.Equal(2, favorite.OrderCount)
	suite.Equal("50.00", favorite.TotalSpent)
}

// missCache never holds an entry, so analytics handlers always hit Postgres.
type missCache struct{}

func (missCache) Get(context.Context, string) ([]byte, error) {
	return nil, ports.ErrCacheMiss
}

func (missCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
