package queries

import (
	"context"
	"errors"

	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrSearchRestaurantsQueryIsNotConstructed = errors.New(
	"SearchRestaurantsQuery must be created via NewSearchRestaurantsQuery constructor",
)

// SearchRestaurantsQuery finds restaurants by cuisine, location, minimum
// rating, and activity. Text filters are case-insensitive substring matches;
// results come back best-rated first.
type SearchRestaurantsQuery struct {
	cuisineType string
	location    string
	minRating   float64
	activeOnly  bool
	page        Page

	guard guard.ConstructorGuard
}

// NewSearchRestaurantsQuery creates a restaurant search query. Empty text
// filters match everything; activeOnly false includes deactivated
// restaurants.
func NewSearchRestaurantsQuery(
	cuisineType, location string,
	minRating float64,
	activeOnly bool,
	skip, limit int,
) SearchRestaurantsQuery {
	return SearchRestaurantsQuery{
		cuisineType: cuisineType,
		location:    location,
		minRating:   minRating,
		activeOnly:  activeOnly,
		page:        NewPage(skip, limit),
		guard:       guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrSearchRestaurantsQueryIsNotConstructed)
}

// SearchRestaurantsQueryHandler serves the restaurant search read model.
type SearchRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewSearchRestaurantsQueryHandler creates a handler for restaurant search.
func NewSearchRestaurantsQueryHandler(db *gorm.DB) SearchRestaurantsQueryHandler {
	return SearchRestaurantsQueryHandler{db: db}
}

// Handle returns restaurants matching the filters, best rated first.
func (h SearchRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query SearchRestaurantsQuery,
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
		WHERE (NOT ? OR is_active)
		  AND (? = '' OR cuisine_type ILIKE '%' || ? || '%')
		  AND (? = '' OR location ILIKE '%' || ? || '%')
		  AND rating >= ?
		ORDER BY rating DESC, name
		OFFSET ? LIMIT ?
	`, query.activeOnly,
		query.cuisineType, query.cuisineType,
		query.location, query.location,
		query.minRating,
		query.page.Skip, query.page.Limit).Rows()
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
