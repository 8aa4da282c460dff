// Package orderrepo persists order aggregates. An order maps to one row in
// the orders table plus one row per line in order_items, written and read as
// a unit.
package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the database representation of an order row. The status is
// stored under its wire name and the total is the fixed snapshot computed at
// placement.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID       `gorm:"type:uuid;index"`
	RestaurantID        uuid.UUID       `gorm:"type:uuid;index"`
	Status              string          `gorm:"type:varchar(32);index"`
	TotalAmount         decimal.Decimal `gorm:"type:numeric(10,2)"`
	DeliveryAddress     string
	SpecialInstructions string
	OrderedAt           time.Time `gorm:"type:timestamptz"`
	EstimatedDelivery   time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is the database representation of one order line. The menu
// item reference is a plain column, not a foreign key, so deleting a dish
// leaves historical lines and their price snapshot intact.
type OrderItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID      uuid.UUID `gorm:"type:uuid;index"`
	Quantity        int
	Price           decimal.Decimal `gorm:"type:numeric(10,2)"`
	SpecialRequests string
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	dto := OrderDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		RestaurantID:        aggregate.RestaurantID().Bytes(),
		Status:              aggregate.Status().String(),
		TotalAmount:         aggregate.TotalAmount().Decimal(),
		DeliveryAddress:     aggregate.DeliveryAddress(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		OrderedAt:           aggregate.OrderedAt(),
		EstimatedDelivery:   aggregate.EstimatedDelivery(),
	}

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         dto.ID,
			MenuItemID:      item.MenuItemID().Bytes(),
			Quantity:        item.Quantity(),
			Price:           item.Price().Decimal(),
			SpecialRequests: item.SpecialRequests(),
		})
	}

	return dto, items
}

func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	items := make([]order.OrderItem, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		status,
		total,
		dto.DeliveryAddress,
		dto.SpecialInstructions,
		items,
		dto.OrderedAt,
		dto.EstimatedDelivery,
	)
}

func itemToDomain(dto OrderItemDTO) (order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.OrderItem{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.OrderItem{}, err
	}

	return order.RestoreOrderItem(id, menuItemID, dto.Quantity, price, dto.SpecialRequests)
}
