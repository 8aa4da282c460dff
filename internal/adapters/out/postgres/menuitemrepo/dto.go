// Package menuitemrepo persists menu items, mapping between the domain model
// and the menu_items table.
package menuitemrepo

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItemDTO is the database representation of a menu item. The price is a
// fixed-point numeric so money never round-trips through floats.
type MenuItemDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID       uuid.UUID `gorm:"type:uuid;index"`
	Name               string
	Description        string
	Price              decimal.Decimal `gorm:"type:numeric(10,2)"`
	Category           string
	IsVegetarian       bool
	IsVegan            bool
	IsAvailable        bool
	PreparationMinutes int
}

// TableName specifies the database table name for menu item entities.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(aggregate *restaurant.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:                 aggregate.ID().Bytes(),
		RestaurantID:       aggregate.RestaurantID().Bytes(),
		Name:               aggregate.Name(),
		Description:        aggregate.Description(),
		Price:              aggregate.Price().Decimal(),
		Category:           aggregate.Category(),
		IsVegetarian:       aggregate.IsVegetarian(),
		IsVegan:            aggregate.IsVegan(),
		IsAvailable:        aggregate.IsAvailable(),
		PreparationMinutes: aggregate.PreparationMinutes(),
	}
}

func toDomain(dto MenuItemDTO) (*restaurant.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreMenuItem(
		id,
		restaurantID,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.IsVegetarian,
		dto.IsVegan,
		dto.IsAvailable,
		dto.PreparationMinutes,
	)
}
