package cmd

import (
	"fmt"

	httpadapter "eats/internal/adapters/in/http"
	kafkaadapter "eats/internal/adapters/out/kafka"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/postgres/customerrepo"
	"eats/internal/adapters/out/postgres/menuitemrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/reviewrepo"
	redisadapter "eats/internal/adapters/out/redis"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"

	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application core. Command handlers
// get narrow unit-of-work factories carved out of the single GORM factory;
// query handlers read through the shared database handle.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      ports.AnalyticsCache
	publisher  ports.OrderEventPublisher
	intake     *services.OrderIntake
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	writer := kafkaadapter.NewWriter(config.KafkaHost, config.KafkaOrderChangedTopic)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      redisadapter.NewAnalyticsCache(redisClient),
		publisher:  kafkaadapter.NewOrderEventPublisher(writer),
		intake:     services.NewOrderIntake(),
	}
}

// OpenDatabase connects to Postgres and migrates the schema. TranslateError
// is required so unique violations surface as gorm.ErrDuplicatedKey, which
// the repositories map to conflicts.
func OpenDatabase(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s options='-c statement_timeout=%s'",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword,
		config.DBName, config.DBSslMode, config.DBStatementTimeoutMs,
	)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&menuitemrepo.MenuItemDTO{},
		&customerrepo.CustomerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&reviewrepo.ReviewDTO{},
	); err != nil {
		return nil, err
	}

	return db, nil
}

// CreateHTTPHandlers builds the full handler set for the HTTP server.
func (c *CompositionRoot) CreateHTTPHandlers() httpadapter.Handlers {
	return httpadapter.Handlers{
		CreateRestaurant:  c.CreateCreateRestaurantCommandHandler(),
		UpdateRestaurant:  c.CreateUpdateRestaurantCommandHandler(),
		DeleteRestaurant:  c.CreateDeleteRestaurantCommandHandler(),
		CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		CreateCustomer:    c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer:    c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer:    c.CreateDeleteCustomerCommandHandler(),
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		UpdateOrderStatus: c.CreateUpdateOrderStatusCommandHandler(),
		SubmitReview:      c.CreateSubmitReviewCommandHandler(),

		GetRestaurants:       c.CreateGetRestaurantsQueryHandler(),
		SearchRestaurants:    c.CreateSearchRestaurantsQueryHandler(),
		GetRestaurant:        c.CreateGetRestaurantQueryHandler(),
		GetMenuItems:         c.CreateGetMenuItemsQueryHandler(),
		SearchMenuItems:      c.CreateSearchMenuItemsQueryHandler(),
		GetMenuItem:          c.CreateGetMenuItemQueryHandler(),
		GetCustomers:         c.CreateGetCustomersQueryHandler(),
		GetCustomer:          c.CreateGetCustomerQueryHandler(),
		GetCustomerOrders:    c.CreateGetCustomerOrdersQueryHandler(),
		GetOrders:            c.CreateGetOrdersQueryHandler(),
		GetOrder:             c.CreateGetOrderQueryHandler(),
		CanReviewOrder:       c.CreateCanReviewOrderQueryHandler(),
		GetRestaurantReviews: c.CreateGetRestaurantReviewsQueryHandler(),
		GetCustomerReviews:   c.CreateGetCustomerReviewsQueryHandler(),
		GetReviewSummary:     c.CreateGetReviewSummaryQueryHandler(),
		GetReview:            c.CreateGetReviewQueryHandler(),
		RestaurantAnalytics:  c.CreateGetRestaurantAnalyticsQueryHandler(),
		CustomerAnalytics:    c.CreateGetCustomerAnalyticsQueryHandler(),
	}
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateRestaurantCommandHandler() commands.UpdateRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	var f commands.RestaurantUoWFactory = FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteRestaurantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	var f commands.MenuItemUoWFactory = FuncMenuItemUoWFactory(func() commands.MenuItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteMenuItemCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlaceOrderUoWFactory = FuncPlaceOrderUoWFactory(func() commands.PlaceOrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.intake, c.publisher)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateSubmitReviewCommandHandler() commands.SubmitReviewCommandHandler {
	var f commands.ReviewUoWFactory = FuncReviewUoWFactory(func() commands.ReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitReviewCommandHandler(f)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchRestaurantsQueryHandler() queries.SearchRestaurantsQueryHandler {
	return queries.NewSearchRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	return queries.NewGetRestaurantQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateSearchMenuItemsQueryHandler() queries.SearchMenuItemsQueryHandler {
	return queries.NewSearchMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomersQueryHandler() queries.GetCustomersQueryHandler {
	return queries.NewGetCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCanReviewOrderQueryHandler() queries.CanReviewOrderQueryHandler {
	return queries.NewCanReviewOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantReviewsQueryHandler() queries.GetRestaurantReviewsQueryHandler {
	return queries.NewGetRestaurantReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerReviewsQueryHandler() queries.GetCustomerReviewsQueryHandler {
	return queries.NewGetCustomerReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewSummaryQueryHandler() queries.GetReviewSummaryQueryHandler {
	return queries.NewGetReviewSummaryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewQueryHandler() queries.GetReviewQueryHandler {
	return queries.NewGetReviewQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantAnalyticsQueryHandler() queries.GetRestaurantAnalyticsQueryHandler {
	return queries.NewGetRestaurantAnalyticsQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetCustomerAnalyticsQueryHandler() queries.GetCustomerAnalyticsQueryHandler {
	return queries.NewGetCustomerAnalyticsQueryHandler(c.gormDB, c.cache)
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncMenuItemUoWFactory func() commands.MenuItemUoW

func (f FuncMenuItemUoWFactory) Create() commands.MenuItemUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPlaceOrderUoWFactory func() commands.PlaceOrderUoW

func (f FuncPlaceOrderUoWFactory) Create() commands.PlaceOrderUoW {
	return f()
}

type FuncReviewUoWFactory func() commands.ReviewUoW

func (f FuncReviewUoWFactory) Create() commands.ReviewUoW {
	return f()
}
