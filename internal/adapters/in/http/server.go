// Package http exposes the application over a REST API. Handlers translate
// between JSON contracts and the command/query layer; no business rules live
// here.
package http

import (
	"net/http"
	"strconv"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	CreateRestaurant  commands.CreateRestaurantCommandHandler
	UpdateRestaurant  commands.UpdateRestaurantCommandHandler
	DeleteRestaurant  commands.DeleteRestaurantCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	CreateCustomer    commands.CreateCustomerCommandHandler
	UpdateCustomer    commands.UpdateCustomerCommandHandler
	DeleteCustomer    commands.DeleteCustomerCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	UpdateOrderStatus commands.UpdateOrderStatusCommandHandler
	SubmitReview      commands.SubmitReviewCommandHandler

	GetRestaurants       queries.GetRestaurantsQueryHandler
	SearchRestaurants    queries.SearchRestaurantsQueryHandler
	GetRestaurant        queries.GetRestaurantQueryHandler
	GetMenuItems         queries.GetMenuItemsQueryHandler
	SearchMenuItems      queries.SearchMenuItemsQueryHandler
	GetMenuItem          queries.GetMenuItemQueryHandler
	GetCustomers         queries.GetCustomersQueryHandler
	GetCustomer          queries.GetCustomerQueryHandler
	GetCustomerOrders    queries.GetCustomerOrdersQueryHandler
	GetOrders            queries.GetOrdersQueryHandler
	GetOrder             queries.GetOrderQueryHandler
	CanReviewOrder       queries.CanReviewOrderQueryHandler
	GetRestaurantReviews queries.GetRestaurantReviewsQueryHandler
	GetCustomerReviews   queries.GetCustomerReviewsQueryHandler
	GetReviewSummary     queries.GetReviewSummaryQueryHandler
	GetReview            queries.GetReviewQueryHandler
	RestaurantAnalytics  queries.GetRestaurantAnalyticsQueryHandler
	CustomerAnalytics    queries.GetCustomerAnalyticsQueryHandler
}

// Server dispatches HTTP requests to the application core.
type Server struct {
	handlers Handlers
}

// NewServer creates a server over the given handler set.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts every route on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/restaurants", s.CreateRestaurant)
	v1.GET("/restaurants", s.GetRestaurants)
	v1.GET("/restaurants/search", s.SearchRestaurants)
	v1.GET("/restaurants/:id", s.GetRestaurant)
	v1.PUT("/restaurants/:id", s.UpdateRestaurant)
	v1.DELETE("/restaurants/:id", s.DeleteRestaurant)
	v1.POST("/restaurants/:id/menu-items", s.CreateMenuItem)
	v1.GET("/restaurants/:id/menu-items", s.GetMenuItems)
	v1.GET("/restaurants/:id/reviews", s.GetRestaurantReviews)
	v1.GET("/restaurants/:id/reviews/summary", s.GetReviewSummary)
	v1.GET("/restaurants/:id/analytics", s.GetRestaurantAnalytics)

	v1.GET("/menu-items/search", s.SearchMenuItems)
	v1.GET("/menu-items/:id", s.GetMenuItem)
	v1.PUT("/menu-items/:id", s.UpdateMenuItem)
	v1.DELETE("/menu-items/:id", s.DeleteMenuItem)

	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers", s.GetCustomers)
	v1.GET("/customers/:id", s.GetCustomer)
	v1.PUT("/customers/:id", s.UpdateCustomer)
	v1.DELETE("/customers/:id", s.DeleteCustomer)
	v1.GET("/customers/:id/orders", s.GetCustomerOrders)
	v1.GET("/customers/:id/reviews", s.GetCustomerReviews)
	v1.GET("/customers/:id/analytics", s.GetCustomerAnalytics)

	v1.POST("/orders", s.PlaceOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/status", s.UpdateOrderStatus)
	v1.GET("/orders/:id/can-review", s.CanReviewOrder)

	v1.POST("/reviews", s.SubmitReview)
	v1.GET("/reviews/:id", s.GetReview)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

func pageParams(ctx echo.Context) (int, int) {
	skip, _ := strconv.Atoi(ctx.QueryParam("skip"))
	limit, _ := strconv.Atoi(ctx.QueryParam("limit"))
	return skip, limit
}

func boolParam(ctx echo.Context, name string) bool {
	return ctx.QueryParam(name) == "true"
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(ctx echo.Context) error {
	var req createRestaurantRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	opening, err := kernel.TimeOfDayFromString(req.OpeningTime)
	if err != nil {
		return respondError(ctx, err)
	}
	closing, err := kernel.TimeOfDayFromString(req.ClosingTime)
	if err != nil {
		return respondError(ctx, err)
	}

	restaurantID := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(
		restaurantID,
		req.Name, req.Description, req.CuisineType,
		req.Address, req.PhoneNumber, req.Location,
		opening, closing,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createdJSON{ID: restaurantID.String()})
}

// GetRestaurants handles GET /api/v1/restaurants.
func (s *Server) GetRestaurants(ctx echo.Context) error {
	skip, limit := pageParams(ctx)
	query := queries.NewGetRestaurantsQuery(skip, limit)

	restaurants, err := s.handlers.GetRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRestaurantListJSON(restaurants))
}

// SearchRestaurants handles GET /api/v1/restaurants/search.
func (s *Server) SearchRestaurants(ctx echo.Context) error {
	minRating := 0.0
	if raw := ctx.QueryParam("min_rating"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return respondBadRequest(ctx, "min_rating must be a number")
		}
		minRating = parsed
	}

	activeOnly := true
	if raw := ctx.QueryParam("active"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(ctx, "active must be a boolean")
		}
		activeOnly = parsed
	}

	skip, limit := pageParams(ctx)
	query := queries.NewSearchRestaurantsQuery(
		ctx.QueryParam("cuisine_type"), ctx.QueryParam("location"),
		minRating, activeOnly, skip, limit)

	restaurants, err := s.handlers.SearchRestaurants.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRestaurantListJSON(restaurants))
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.handlers.GetRestaurant.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRestaurantJSON(found))
}

// UpdateRestaurant handles PUT /api/v1/restaurants/:id.
func (s *Server) UpdateRestaurant(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	var req updateRestaurantRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	opening, err := kernel.TimeOfDayFromString(req.OpeningTime)
	if err != nil {
		return respondError(ctx, err)
	}
	closing, err := kernel.TimeOfDayFromString(req.ClosingTime)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateRestaurantCommand(
		id,
		req.Name, req.Description, req.CuisineType,
		req.Address, req.PhoneNumber, req.Location,
		opening, closing,
		req.IsActive,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRestaurant handles DELETE /api/v1/restaurants/:id.
func (s *Server) DeleteRestaurant(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	cmd, err := commands.NewDeleteRestaurantCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteRestaurant.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateMenuItem handles POST /api/v1/restaurants/:id/menu-items.
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	var req createMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(
		menuItemID, restaurantID,
		req.Name, req.Description, price, req.Category,
		req.IsVegetarian, req.IsVegan, req.PreparationMinutes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createdJSON{ID: menuItemID.String()})
}

// GetMenuItems handles GET /api/v1/restaurants/:id/menu-items.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetMenuItemsQuery(
		restaurantID,
		ctx.QueryParam("category"),
		boolParam(ctx, "vegetarian"), boolParam(ctx, "vegan"), boolParam(ctx, "available_only"),
		skip, limit,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.handlers.GetMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItemListJSON(items))
}

// SearchMenuItems handles GET /api/v1/menu-items/search.
func (s *Server) SearchMenuItems(ctx echo.Context) error {
	skip, limit := pageParams(ctx)
	query := queries.NewSearchMenuItemsQuery(
		ctx.QueryParam("q"),
		boolParam(ctx, "vegetarian"), boolParam(ctx, "vegan"), boolParam(ctx, "available_only"),
		skip, limit,
	)

	items, err := s.handlers.SearchMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItemListJSON(items))
}

// GetMenuItem handles GET /api/v1/menu-items/:id.
func (s *Server) GetMenuItem(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	item, err := s.handlers.GetMenuItem.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toMenuItemJSON(item))
}

// UpdateMenuItem handles PUT /api/v1/menu-items/:id.
func (s *Server) UpdateMenuItem(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	var req updateMenuItemRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateMenuItemCommand(
		id,
		req.Name, req.Description, price, req.Category,
		req.IsVegetarian, req.IsVegan, req.IsAvailable, req.PreparationMinutes,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/:id.
func (s *Server) DeleteMenuItem(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewDeleteMenuItemCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req createCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(
		customerID, req.Name, req.Email, req.PhoneNumber, req.Address)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createdJSON{ID: customerID.String()})
}

// GetCustomers handles GET /api/v1/customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	skip, limit := pageParams(ctx)
	query := queries.NewGetCustomersQuery(skip, limit)

	customers, err := s.handlers.GetCustomers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomerListJSON(customers))
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	found, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toCustomerJSON(found))
}

// UpdateCustomer handles PUT /api/v1/customers/:id. Absent fields keep
// their current values.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var req updateCustomerRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(
		id, req.Name, req.Email, req.PhoneNumber, req.Address, req.IsActive)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetCustomerOrders handles GET /api/v1/customers/:id/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return respondError(ctx, statusErr)
		}
		status = &parsed
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetCustomerOrdersQuery(id, status, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderSummaryListJSON(orders))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var req placeOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}
	restaurantID, err := kernel.UUIDFromString(req.RestaurantID)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]services.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		menuItemID, lineErr := kernel.UUIDFromString(item.MenuItemID)
		if lineErr != nil {
			return respondError(ctx, lineErr)
		}
		lines = append(lines, services.OrderLine{
			MenuItemID:      menuItemID,
			Quantity:        item.Quantity,
			SpecialRequests: item.SpecialRequests,
		})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(
		orderID, customerID, restaurantID,
		req.DeliveryAddress, req.SpecialInstructions, lines)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.PlaceOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createdJSON{ID: orderID.String()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var restaurantID, customerID *kernel.UUID
	if raw := ctx.QueryParam("restaurant_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		restaurantID = &parsed
	}
	if raw := ctx.QueryParam("customer_id"); raw != "" {
		parsed, err := kernel.UUIDFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		customerID = &parsed
	}

	var from, to *time.Time
	if raw := ctx.QueryParam("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondBadRequest(ctx, "from must be an RFC 3339 timestamp")
		}
		from = &parsed
	}
	if raw := ctx.QueryParam("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return respondBadRequest(ctx, "to must be an RFC 3339 timestamp")
		}
		to = &parsed
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetOrdersQuery(status, restaurantID, customerID, from, to, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderSummaryListJSON(orders))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrderDetailJSON(detail))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req updateOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(
		id, status, req.EstimatedDelivery, req.SpecialInstructions)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.UpdateOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// CanReviewOrder handles GET /api/v1/orders/:id/can-review.
func (s *Server) CanReviewOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	customerID, err := kernel.UUIDFromString(ctx.QueryParam("customer_id"))
	if err != nil {
		return respondBadRequest(ctx, "customer_id is required")
	}

	query, err := queries.NewCanReviewOrderQuery(orderID, customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	eligibility, err := s.handlers.CanReviewOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, canReviewJSON{
		CanReview: eligibility.CanReview,
		Reason:    eligibility.Reason,
	})
}

// SubmitReview handles POST /api/v1/reviews.
func (s *Server) SubmitReview(ctx echo.Context) error {
	var req submitReviewRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return respondError(ctx, err)
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	reviewID := kernel.NewUUID()
	cmd, err := commands.NewSubmitReviewCommand(
		reviewID, orderID, customerID, req.Rating, req.Comment)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.handlers.SubmitReview.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, createdJSON{ID: reviewID.String()})
}

// GetReview handles GET /api/v1/reviews/:id.
func (s *Server) GetReview(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid review id")
	}

	query, err := queries.NewGetReviewQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	detail, err := s.handlers.GetReview.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReviewDetailJSON(detail))
}

// GetRestaurantReviews handles GET /api/v1/restaurants/:id/reviews.
func (s *Server) GetRestaurantReviews(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetRestaurantReviewsQuery(id, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	reviews, err := s.handlers.GetRestaurantReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReviewListJSON(reviews))
}

// GetCustomerReviews handles GET /api/v1/customers/:id/reviews.
func (s *Server) GetCustomerReviews(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	skip, limit := pageParams(ctx)
	query, err := queries.NewGetCustomerReviewsQuery(id, skip, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	reviews, err := s.handlers.GetCustomerReviews.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReviewListJSON(reviews))
}

// GetReviewSummary handles GET /api/v1/restaurants/:id/reviews/summary.
func (s *Server) GetReviewSummary(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetReviewSummaryQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	summary, err := s.handlers.GetReviewSummary.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toReviewSummaryJSON(summary))
}

// GetRestaurantAnalytics handles GET /api/v1/restaurants/:id/analytics.
func (s *Server) GetRestaurantAnalytics(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetRestaurantAnalyticsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	analytics, err := s.handlers.RestaurantAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, analytics)
}

// GetCustomerAnalytics handles GET /api/v1/customers/:id/analytics.
func (s *Server) GetCustomerAnalytics(ctx echo.Context) error {
	id, err := pathUUID(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerAnalyticsQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	analytics, err := s.handlers.CustomerAnalytics.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, analytics)
}
