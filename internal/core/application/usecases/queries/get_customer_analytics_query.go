package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetCustomerAnalyticsQueryIsNotConstructed = errors.New(
	"GetCustomerAnalyticsQuery must be created via NewGetCustomerAnalyticsQuery constructor",
)

// GetCustomerAnalyticsQuery retrieves ordering statistics for one customer.
type GetCustomerAnalyticsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerAnalyticsQuery creates a customer analytics query.
func NewGetCustomerAnalyticsQuery(customerID kernel.UUID) (GetCustomerAnalyticsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerAnalyticsQuery{}, err
	}

	return GetCustomerAnalyticsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerAnalyticsQueryIsNotConstructed)
}

// FavoriteRestaurantResponse is one entry of the most-ordered-from list.
type FavoriteRestaurantResponse struct {
	RestaurantID string `json:"restaurant_id"`
	Name         string `json:"name"`
	OrderCount   int    `json:"order_count"`
	TotalSpent   string `json:"total_spent"`
}

// MonthlyOrdersResponse is one month's bucket of the ordering frequency
// series, keyed as "2025-06".
type MonthlyOrdersResponse struct {
	Month      string `json:"month"`
	OrderCount int    `json:"order_count"`
}

// CustomerAnalyticsResponse aggregates a customer's ordering behavior. The
// payload is cached as JSON, so it sticks to plain serializable types.
type CustomerAnalyticsResponse struct {
	CustomerID          string                       `json:"customer_id"`
	TotalOrders         int                          `json:"total_orders"`
	TotalSpent          string                       `json:"total_spent"`
	AverageOrderValue   string                       `json:"average_order_value"`
	FavoriteRestaurants []FavoriteRestaurantResponse `json:"favorite_restaurants"`
	MonthlyOrders       []MonthlyOrdersResponse      `json:"monthly_orders"`
}

// GetCustomerAnalyticsQueryHandler serves customer analytics with the same
// cache-then-snapshot strategy as the restaurant variant: short-TTL cache in
// front, one REPEATABLE READ transaction behind it.
type GetCustomerAnalyticsQueryHandler struct {
	db    *gorm.DB
	cache ports.AnalyticsCache
}

// NewGetCustomerAnalyticsQueryHandler creates a handler for customer analytics.
func NewGetCustomerAnalyticsQueryHandler(db *gorm.DB, cache ports.AnalyticsCache) GetCustomerAnalyticsQueryHandler {
	return GetCustomerAnalyticsQueryHandler{db: db, cache: cache}
}

// Handle returns the analytics payload, from cache when fresh enough.
func (h GetCustomerAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerAnalyticsQuery,
) (CustomerAnalyticsResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerAnalyticsResponse{}, err
	}

	cacheKey := "analytics:customer:" + query.customerID.String()
	if payload, err := h.cache.Get(ctx, cacheKey); err == nil {
		var cached CustomerAnalyticsResponse
		if err = json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	var response CustomerAnalyticsResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		response, txErr = h.compute(tx, query.customerID)
		return txErr
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return CustomerAnalyticsResponse{}, err
	}

	if payload, err := json.Marshal(response); err == nil {
		if err = h.cache.Set(ctx, cacheKey, payload, analyticsCacheTTL); err != nil {
			slog.Debug("analytics cache write failed", "key", cacheKey, "error", err)
		}
	}
	return response, nil
}

func (h GetCustomerAnalyticsQueryHandler) compute(tx *gorm.DB, customerID kernel.UUID) (CustomerAnalyticsResponse, error) {
	response := CustomerAnalyticsResponse{
		CustomerID:          customerID.String(),
		FavoriteRestaurants: make([]FavoriteRestaurantResponse, 0),
		MonthlyOrders:       make([]MonthlyOrdersResponse, 0),
	}

	var exists bool
	if err := tx.Raw(
		`SELECT EXISTS (SELECT 1 FROM customers WHERE id = ?)`,
		customerID.String()).Scan(&exists).Error; err != nil {
		return CustomerAnalyticsResponse{}, err
	}
	if !exists {
		return CustomerAnalyticsResponse{}, errs.NewObjectNotFoundError("customer", customerID)
	}

	row := tx.Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(AVG(total_amount), 0)
		FROM orders
		WHERE customer_id = ?
	`, customerID.String()).Row()

	var totalSpent, averageOrder string
	if err := row.Scan(&response.TotalOrders, &totalSpent, &averageOrder); err != nil {
		return CustomerAnalyticsResponse{}, err
	}
	if err := normalizeAmount(&totalSpent); err != nil {
		return CustomerAnalyticsResponse{}, err
	}
	if err := normalizeAmount(&averageOrder); err != nil {
		return CustomerAnalyticsResponse{}, err
	}
	response.TotalSpent = totalSpent
	response.AverageOrderValue = averageOrder

	rows, err := tx.Raw(`
		SELECT
			o.restaurant_id,
			r.name,
			COUNT(*) AS order_count,
			COALESCE(SUM(o.total_amount), 0) AS total_spent
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.customer_id = ?
		GROUP BY o.restaurant_id, r.name
		ORDER BY order_count DESC, r.name
		LIMIT 5
	`, customerID.String()).Rows()
	if err != nil {
		return CustomerAnalyticsResponse{}, err
	}
	for rows.Next() {
		var (
			favorite     FavoriteRestaurantResponse
			restaurantID uuid.UUID
		)
		if err = rows.Scan(
			&restaurantID, &favorite.Name, &favorite.OrderCount, &favorite.TotalSpent,
		); err != nil {
			rows.Close()
			return CustomerAnalyticsResponse{}, err
		}
		if err = normalizeAmount(&favorite.TotalSpent); err != nil {
			rows.Close()
			return CustomerAnalyticsResponse{}, err
		}
		favorite.RestaurantID = restaurantID.String()
		response.FavoriteRestaurants = append(response.FavoriteRestaurants, favorite)
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return CustomerAnalyticsResponse{}, err
	}
	rows.Close()

	// Trailing year only; months without orders simply have no bucket.
	rows, err = tx.Raw(`
		SELECT
			to_char(date_trunc('month', ordered_at), 'YYYY-MM') AS month,
			COUNT(*)
		FROM orders
		WHERE customer_id = ?
		  AND ordered_at >= now() - interval '365 days'
		GROUP BY month
		ORDER BY month
	`, customerID.String()).Rows()
	if err != nil {
		return CustomerAnalyticsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var bucket MonthlyOrdersResponse
		if err = rows.Scan(&bucket.Month, &bucket.OrderCount); err != nil {
			return CustomerAnalyticsResponse{}, err
		}
		response.MonthlyOrders = append(response.MonthlyOrders, bucket)
	}
	if err = rows.Err(); err != nil {
		return CustomerAnalyticsResponse{}, err
	}

	return response, nil
}
