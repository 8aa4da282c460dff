// Package restaurantrepo persists restaurant aggregates, mapping between the
// domain model and the restaurants table.
package restaurantrepo

import (
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO is the database representation of a restaurant. The operating
// window is stored as minutes since midnight so the wrap-around comparison
// stays in the domain.
type RestaurantDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name           string    `gorm:"uniqueIndex"`
	Description    string
	CuisineType    string
	Address        string
	PhoneNumber    string
	Location       string
	Rating         float64
	IsActive       bool
	OpeningMinutes int `gorm:"type:smallint"`
	ClosingMinutes int `gorm:"type:smallint"`
}

// TableName specifies the database table name for restaurant entities.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:             aggregate.ID().Bytes(),
		Name:           aggregate.Name(),
		Description:    aggregate.Description(),
		CuisineType:    aggregate.CuisineType(),
		Address:        aggregate.Address(),
		PhoneNumber:    aggregate.PhoneNumber(),
		Location:       aggregate.Location(),
		Rating:         aggregate.Rating(),
		IsActive:       aggregate.IsActive(),
		OpeningMinutes: aggregate.OpeningTime().Minutes(),
		ClosingMinutes: aggregate.ClosingTime().Minutes(),
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	opening, err := kernel.TimeOfDayFromMinutes(dto.OpeningMinutes)
	if err != nil {
		return nil, err
	}

	closing, err := kernel.TimeOfDayFromMinutes(dto.ClosingMinutes)
	if err != nil {
		return nil, err
	}

	return restaurant.RestoreRestaurant(
		id,
		dto.Name,
		dto.Description,
		dto.CuisineType,
		dto.Address,
		dto.PhoneNumber,
		dto.Location,
		dto.Rating,
		dto.IsActive,
		opening,
		closing,
	)
}
