// Package reviewrepo persists reviews, mapping between the domain model and
// the reviews table.
package reviewrepo

import (
	"time"

	"eats/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO is the database representation of a review. The unique
// (order, customer) index is the final arbiter of one review per order and
// customer under concurrent submissions.
type ReviewDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_customer"`
	CustomerID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reviews_order_customer"`
	RestaurantID uuid.UUID `gorm:"type:uuid;index"`
	Rating       int       `gorm:"type:smallint"`
	Comment      string
	CreatedAt    time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for review entities.
func (ReviewDTO) TableName() string {
	return "reviews"
}

func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:           aggregate.ID().Bytes(),
		OrderID:      aggregate.OrderID().Bytes(),
		CustomerID:   aggregate.CustomerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		Rating:       aggregate.Rating(),
		Comment:      aggregate.Comment(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}
