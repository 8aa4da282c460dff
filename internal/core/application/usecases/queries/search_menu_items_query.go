package queries

import (
	"context"
	"errors"

	"eats/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrSearchMenuItemsQueryIsNotConstructed = errors.New(
	"SearchMenuItemsQuery must be created via NewSearchMenuItemsQuery constructor",
)

// SearchMenuItemsQuery finds dishes across all restaurants by name or
// category, joined with the offering restaurant's name.
type SearchMenuItemsQuery struct {
	term          string
	vegetarian    bool
	vegan         bool
	availableOnly bool
	page          Page

	guard guard.ConstructorGuard
}

// NewSearchMenuItemsQuery creates a cross-restaurant dish search query.
func NewSearchMenuItemsQuery(term string, vegetarian, vegan, availableOnly bool, skip, limit int) SearchMenuItemsQuery {
	return SearchMenuItemsQuery{
		term:          term,
		vegetarian:    vegetarian,
		vegan:         vegan,
		availableOnly: availableOnly,
		page:          NewPage(skip, limit),
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q SearchMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrSearchMenuItemsQueryIsNotConstructed)
}

// SearchMenuItemsQueryHandler serves the dish search read model.
type SearchMenuItemsQueryHandler struct {
	db *gorm.DB
}

// NewSearchMenuItemsQueryHandler creates a handler for dish search.
func NewSearchMenuItemsQueryHandler(db *gorm.DB) SearchMenuItemsQueryHandler {
	return SearchMenuItemsQueryHandler{db: db}
}

// Handle returns dishes whose name or category matches the term, from active
// restaurants only.
func (h SearchMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query SearchMenuItemsQuery,
) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
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
		WHERE r.is_active
		  AND (? = '' OR mi.name ILIKE '%' || ? || '%' OR mi.category ILIKE '%' || ? || '%')
		  AND (NOT ? OR mi.is_vegetarian)
		  AND (NOT ? OR mi.is_vegan)
		  AND (NOT ? OR mi.is_available)
		ORDER BY mi.name
		OFFSET ? LIMIT ?
	`, query.term, query.term, query.term,
		query.vegetarian, query.vegan, query.availableOnly,
		query.page.Skip, query.page.Limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]MenuItemResponse, 0)
	for rows.Next() {
		item, scanErr := scanMenuItemRow(rows.Scan, true)
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
