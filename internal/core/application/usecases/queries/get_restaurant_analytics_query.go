package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// analyticsCacheTTL bounds how stale a cached analytics payload may get.
const analyticsCacheTTL = 60 * time.Second

var ErrGetRestaurantAnalyticsQueryIsNotConstructed = errors.New(
	"GetRestaurantAnalyticsQuery must be created via NewGetRestaurantAnalyticsQuery constructor",
)

// GetRestaurantAnalyticsQuery retrieves order statistics for one restaurant.
type GetRestaurantAnalyticsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantAnalyticsQuery creates a restaurant analytics query.
func NewGetRestaurantAnalyticsQuery(restaurantID kernel.UUID) (GetRestaurantAnalyticsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantAnalyticsQuery{}, err
	}

	return GetRestaurantAnalyticsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantAnalyticsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantAnalyticsQueryIsNotConstructed)
}

// TopItemResponse is one entry of the best-selling dishes list.
type TopItemResponse struct {
	MenuItemID    string `json:"menu_item_id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
}

// RestaurantAnalyticsResponse aggregates a restaurant's whole order history.
// The payload is cached as JSON, so it sticks to plain serializable types.
type RestaurantAnalyticsResponse struct {
	RestaurantID      string            `json:"restaurant_id"`
	TotalOrders       int               `json:"total_orders"`
	TotalRevenue      string            `json:"total_revenue"`
	AverageOrderValue string            `json:"average_order_value"`
	AverageRating     float64           `json:"average_rating"`
	TotalReviews      int               `json:"total_reviews"`
	OrdersByStatus    map[string]int    `json:"orders_by_status"`
	TopItems          []TopItemResponse `json:"top_items"`
}

// GetRestaurantAnalyticsQueryHandler serves restaurant analytics. Results
// are cached for a short TTL; on a miss the aggregates run inside one
// REPEATABLE READ transaction so every figure comes from the same snapshot.
type GetRestaurantAnalyticsQueryHandler struct {
	db    *gorm.DB
	cache ports.AnalyticsCache
}

// NewGetRestaurantAnalyticsQueryHandler creates a handler for restaurant analytics.
func NewGetRestaurantAnalyticsQueryHandler(db *gorm.DB, cache ports.AnalyticsCache) GetRestaurantAnalyticsQueryHandler {
	return GetRestaurantAnalyticsQueryHandler{db: db, cache: cache}
}

// Handle returns the analytics payload, from cache when fresh enough.
// Any cache failure falls through to the database.
func (h GetRestaurantAnalyticsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantAnalyticsQuery,
) (RestaurantAnalyticsResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantAnalyticsResponse{}, err
	}

	cacheKey := "analytics:restaurant:" + query.restaurantID.String()
	if payload, err := h.cache.Get(ctx, cacheKey); err == nil {
		var cached RestaurantAnalyticsResponse
		if err = json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
	}

	var response RestaurantAnalyticsResponse
	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		response, txErr = h.compute(tx, query.restaurantID)
		return txErr
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return RestaurantAnalyticsResponse{}, err
	}

	if payload, err := json.Marshal(response); err == nil {
		if err = h.cache.Set(ctx, cacheKey, payload, analyticsCacheTTL); err != nil {
			slog.Debug("analytics cache write failed", "key", cacheKey, "error", err)
		}
	}
	return response, nil
}

func (h GetRestaurantAnalyticsQueryHandler) compute(tx *gorm.DB, restaurantID kernel.UUID) (RestaurantAnalyticsResponse, error) {
	response := RestaurantAnalyticsResponse{
		RestaurantID:   restaurantID.String(),
		OrdersByStatus: make(map[string]int),
		TopItems:       make([]TopItemResponse, 0),
	}

	var exists bool
	if err := tx.Raw(
		`SELECT EXISTS (SELECT 1 FROM restaurants WHERE id = ?)`,
		restaurantID.String()).Scan(&exists).Error; err != nil {
		return RestaurantAnalyticsResponse{}, err
	}
	if !exists {
		return RestaurantAnalyticsResponse{}, errs.NewObjectNotFoundError("restaurant", restaurantID)
	}

	row := tx.Raw(`
		SELECT
			COUNT(*),
			COALESCE(SUM(total_amount), 0),
			COALESCE(AVG(total_amount), 0)
		FROM orders
		WHERE restaurant_id = ?
	`, restaurantID.String()).Row()

	var totalRevenue, averageOrder string
	if err := row.Scan(&response.TotalOrders, &totalRevenue, &averageOrder); err != nil {
		return RestaurantAnalyticsResponse{}, err
	}
	if err := normalizeAmount(&totalRevenue); err != nil {
		return RestaurantAnalyticsResponse{}, err
	}
	if err := normalizeAmount(&averageOrder); err != nil {
		return RestaurantAnalyticsResponse{}, err
	}
	response.TotalRevenue = totalRevenue
	response.AverageOrderValue = averageOrder

	row = tx.Raw(`
		SELECT COUNT(*), COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE restaurant_id = ?
	`, restaurantID.String()).Row()
	if err := row.Scan(&response.TotalReviews, &response.AverageRating); err != nil {
		return RestaurantAnalyticsResponse{}, err
	}

	rows, err := tx.Raw(`
		SELECT status, COUNT(*)
		FROM orders
		WHERE restaurant_id = ?
		GROUP BY status
	`, restaurantID.String()).Rows()
	if err != nil {
		return RestaurantAnalyticsResponse{}, err
	}
	for rows.Next() {
		var status string
		var count int
		if err = rows.Scan(&status, &count); err != nil {
			rows.Close()
			return RestaurantAnalyticsResponse{}, err
		}
		response.OrdersByStatus[status] = count
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return RestaurantAnalyticsResponse{}, err
	}
	rows.Close()

	rows, err = tx.Raw(`
		SELECT
			oi.menu_item_id,
			COALESCE(mi.name, ''),
			SUM(oi.quantity) AS total_quantity
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.restaurant_id = ?
		GROUP BY oi.menu_item_id, mi.name
		ORDER BY total_quantity DESC
		LIMIT 5
	`, restaurantID.String()).Rows()
	if err != nil {
		return RestaurantAnalyticsResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item       TopItemResponse
			menuItemID uuid.UUID
		)
		if err = rows.Scan(&menuItemID, &item.Name, &item.TotalQuantity); err != nil {
			return RestaurantAnalyticsResponse{}, err
		}
		item.MenuItemID = menuItemID.String()
		response.TopItems = append(response.TopItems, item)
	}
	if err = rows.Err(); err != nil {
		return RestaurantAnalyticsResponse{}, err
	}

	return response, nil
}

// normalizeAmount reformats a database numeric into the canonical two-digit
// form used everywhere else.
func normalizeAmount(amount *string) error {
	money, err := kernel.MoneyFromString(*amount)
	if err != nil {
		return err
	}
	*amount = money.String()
	return nil
}
