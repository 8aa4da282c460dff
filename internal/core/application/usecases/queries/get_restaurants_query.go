package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves a page of restaurants ordered by name.
type GetRestaurantsQuery struct {
	page Page

	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query for a page of restaurants.
func NewGetRestaurantsQuery(skip, limit int) GetRestaurantsQuery {
	return GetRestaurantsQuery{
		page:  NewPage(skip, limit),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// RestaurantResponse is the restaurant read model shared by the list, search,
// and get-by-id queries.
type RestaurantResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	CuisineType string
	Address     string
	PhoneNumber string
	Location    string
	Rating      float64
	IsActive    bool
	OpeningTime kernel.TimeOfDay
	ClosingTime kernel.TimeOfDay
}

// GetRestaurantsQueryHandler serves the restaurant list read model.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant listing.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle returns the requested page of restaurants sorted by name.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		ORDER BY name
		OFFSET ? LIMIT ?
	`, query.page.Skip, query.page.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		restaurant, scanErr := scanRestaurantRow(rows.Scan)
		if scanErr != nil {
			return nil, scanErr
		}
		restaurants = append(restaurants, restaurant)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}

// scanRestaurantRow converts one restaurant row into the read model. The
// column order must match the SELECT lists of the restaurant queries.
func scanRestaurantRow(scan func(dest ...any) error) (RestaurantResponse, error) {
	var (
		restaurant     RestaurantResponse
		id             uuid.UUID
		openingMinutes int
		closingMinutes int
	)

	if err := scan(
		&id,
		&restaurant.Name,
		&restaurant.Description,
		&restaurant.CuisineType,
		&restaurant.Address,
		&restaurant.PhoneNumber,
		&restaurant.Location,
		&restaurant.Rating,
		&restaurant.IsActive,
		&openingMinutes,
		&closingMinutes,
	); err != nil {
		return RestaurantResponse{}, err
	}

	restaurantID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return RestaurantResponse{}, err
	}
	restaurant.ID = restaurantID

	if restaurant.OpeningTime, err = kernel.TimeOfDayFromMinutes(openingMinutes); err != nil {
		return RestaurantResponse{}, err
	}
	if restaurant.ClosingTime, err = kernel.TimeOfDayFromMinutes(closingMinutes); err != nil {
		return RestaurantResponse{}, err
	}
	return restaurant, nil
}
