package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetRestaurantQueryIsNotConstructed = errors.New(
	"GetRestaurantQuery must be created via NewGetRestaurantQuery constructor",
)

// GetRestaurantQuery retrieves a single restaurant by identifier.
type GetRestaurantQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetRestaurantQuery creates a query for one restaurant.
func NewGetRestaurantQuery(restaurantID kernel.UUID) (GetRestaurantQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetRestaurantQuery{}, err
	}

	return GetRestaurantQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantQueryIsNotConstructed)
}

// GetRestaurantQueryHandler serves the single-restaurant read model.
type GetRestaurantQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantQueryHandler creates a handler for restaurant lookup.
func NewGetRestaurantQueryHandler(db *gorm.DB) GetRestaurantQueryHandler {
	return GetRestaurantQueryHandler{db: db}
}

// Handle returns the restaurant or an ObjectNotFoundError.
func (h GetRestaurantQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantQuery,
) (RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return RestaurantResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			cuisine_type,
			address,
			phone_number,
			location,
			rating,
			is_active,
			opening_minutes,
			closing_minutes
		FROM restaurants
		WHERE id = ?
	`, query.restaurantID.String()).Rows()
	if err != nil {
		return RestaurantResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return RestaurantResponse{}, err
		}
		return RestaurantResponse{}, errs.NewObjectNotFoundError("restaurant", query.restaurantID)
	}
	return scanRestaurantRow(rows.Scan)
}
