package queries

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetMenuItemQueryIsNotConstructed = errors.New(
	"GetMenuItemQuery must be created via NewGetMenuItemQuery constructor",
)

// GetMenuItemQuery retrieves a single menu item with its restaurant's name.
type GetMenuItemQuery struct {
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMenuItemQuery creates a query for one menu item.
func NewGetMenuItemQuery(menuItemID kernel.UUID) (GetMenuItemQuery, error) {
	if err := menuItemID.Validate(); err != nil {
		return GetMenuItemQuery{}, err
	}

	return GetMenuItemQuery{
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMenuItemQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuItemQueryIsNotConstructed)
}

// GetMenuItemQueryHandler serves the single menu item read model.
type GetMenuItemQueryHandler struct {
	db *gorm.DB
}

// NewGetMenuItemQueryHandler creates a handler for menu item lookup.
func NewGetMenuItemQueryHandler(db *gorm.DB) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{db: db}
}

// Handle returns the menu item or an ObjectNotFoundError.
func (h GetMenuItemQueryHandler) Handle(
	ctx context.Context,
	query GetMenuItemQuery,
) (MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return MenuItemResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			mi.id,
			mi.restaurant_id,
			mi.name,
			mi.description,
			mi.price,
			mi.category,
			mi.is_vegetarian,
			mi.is_vegan,
			mi.is_available,
			mi.preparation_minutes,
			r.name
		FROM menu_items mi
		JOIN restaurants r ON r.id = mi.restaurant_id
		WHERE mi.id = ?
	`, query.menuItemID.String()).Rows()
	if err != nil {
		return MenuItemResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return MenuItemResponse{}, err
		}
		return MenuItemResponse{}, errs.NewObjectNotFoundError("menu item", query.menuItemID)
	}
	return scanMenuItemRow(rows.Scan, true)
}
