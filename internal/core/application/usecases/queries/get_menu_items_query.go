package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetMenuItemsQueryIsNotConstructed = errors.New(
	"GetMenuItemsQuery must be created via NewGetMenuItemsQuery constructor",
)

// GetMenuItemsQuery retrieves a restaurant's menu with optional category and
// dietary filters.
type GetMenuItemsQuery struct {
	restaurantID  kernel.UUID
	category      string
	vegetarian    bool
	vegan         bool
	availableOnly bool
	page          Page

	guard guard.ConstructorGuard
}

// NewGetMenuItemsQuery creates a query for a restaurant's menu. An empty
// category matches everything; the boolean filters narrow when set.
func NewGetMenuItemsQuery(
	restaurantID kernel.UUID,
	category string,
	vegetarian, vegan, availableOnly bool,
	skip, limit int,
) (GetMenuItemsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return GetMenuItemsQuery{}, err
	}

	return GetMenuItemsQuery{
		restaurantID:  restaurantID,
		category:      category,
		vegetarian:    vegetarian,
		vegan:         vegan,
		availableOnly: availableOnly,
		page:          NewPage(skip, limit),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemsQueryIsNotConstructed)
}

// MenuItemResponse is the menu item read model. RestaurantName is filled by
// the queries that join the owning restaurant.
type MenuItemResponse struct {
	ID                 kernel.UUID
	RestaurantID       kernel.UUID
	RestaurantName     string
	Name               string
	Description        string
	Price              kernel.Money
	Category           string
	IsVegetarian       bool
	IsVegan            bool
	IsAvailable        bool
	PreparationMinutes int
}

// GetMenuItemsQueryHandler serves the menu listing read model.
type GetMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemsQueryHandler creates a handler for menu listing.
func NewGetMenuItemsQueryHandler(db *gorm.DB) GetMenuItemsQueryHandler {
	return GetMenuItemsQueryHandler{db: db}
}

// Handle returns the restaurant's menu items matching the filters, grouped
// by category and then name.
func (h GetMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			description,
			price,
			category,
			is_vegetarian,
			is_vegan,
			is_available,
			preparation_minutes
		FROM menu_items
		WHERE restaurant_id = ?
		  AND (? = '' OR category ILIKE '%' || ? || '%')
		  AND (NOT ? OR is_vegetarian)
		  AND (NOT ? OR is_vegan)
		  AND (NOT ? OR is_available)
		ORDER BY category, name
		OFFSET ? LIMIT ?
	`, query.restaurantID.String(),
		query.category, query.category,
		query.vegetarian, query.vegan, query.availableOnly,
		query.page.Skip, query.page.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanMenuItemRow(rows.Scan, false)
		if scanErr != nil {
			return nil, scanErr
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// scanMenuItemRow converts one menu item row into the read model. When
// withRestaurantName is set, the row is expected to carry the joined
// restaurant name as its final column.
func scanMenuItemRow(scan func(dest ...any) error, withRestaurantName bool) (MenuItemResponse, error) {
	var (
		item         MenuItemResponse
		id           uuid.UUID
		restaurantID uuid.UUID
		price        string
	)

	dest := []any{
		&id,
		&restaurantID,
		&item.Name,
		&item.Description,
		&price,
		&item.Category,
		&item.IsVegetarian,
		&item.IsVegan,
		&item.IsAvailable,
		&item.PreparationMinutes,
	}
	if withRestaurantName {
		dest = append(dest, &item.RestaurantName)
	}
	if err := scan(dest...); err != nil {
		return MenuItemResponse{}, err
	}

	itemID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return MenuItemResponse{}, err
	}
	item.ID = itemID

	ownerID, err := kernel.UUIDFromBytes(restaurantID[:])
	if err != nil {
		return MenuItemResponse{}, err
	}
	item.RestaurantID = ownerID

	if item.Price, err = kernel.MoneyFromString(price); err != nil {
		return MenuItemResponse{}, err
	}
	return item, nil
}
