package restaurantrepo

import (
	"context"
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant. A name collision surfaces as a ConflictError.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("restaurant name already taken: " + aggregate.Name())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("restaurant name already taken: " + aggregate.Name())
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", aggregate.ID())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a restaurant and takes a row lock for the rest of
// the transaction.
func (r *GormRestaurantRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	return r.get(ctx, id, true)
}

func (r *GormRestaurantRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RestaurantDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// RefreshRating recomputes the mean review rating in the database and writes
// it to the restaurant row. No reviews means a zero rating.
func (r *GormRestaurantRepository) RefreshRating(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		UPDATE restaurants
		SET rating = COALESCE(
			(SELECT AVG(rating) FROM reviews WHERE restaurant_id = ?), 0)
		WHERE id = ?
	`, id.Bytes(), id.Bytes()).Error
}

// Delete removes the restaurant and everything hanging off it: reviews,
// order lines, orders, and menu items.
func (r *GormRestaurantRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Exec(`DELETE FROM reviews WHERE restaurant_id = ?`, id.Bytes()).Error; err != nil {
		return err
	}
	if err := db.Exec(`
		DELETE FROM order_items
		WHERE order_id IN (SELECT id FROM orders WHERE restaurant_id = ?)
	`, id.Bytes()).Error; err != nil {
		return err
	}
	if err := db.Exec(`DELETE FROM orders WHERE restaurant_id = ?`, id.Bytes()).Error; err != nil {
		return err
	}
	if err := db.Exec(`DELETE FROM menu_items WHERE restaurant_id = ?`, id.Bytes()).Error; err != nil {
		return err
	}

	result := db.Delete(&RestaurantDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("restaurant", id.String())
	}
	return nil
}
