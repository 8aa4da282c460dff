// Package postgres provides the GORM-backed persistence adapters: the unit
// of work and the per-aggregate repositories underneath it.
package postgres

import (
	"context"

	"eats/internal/adapters/out/postgres/customerrepo"
	"eats/internal/adapters/out/postgres/menuitemrepo"
	"eats/internal/adapters/out/postgres/orderrepo"
	"eats/internal/adapters/out/postgres/restaurantrepo"
	"eats/internal/adapters/out/postgres/reviewrepo"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates unit of work instances bound to a shared
// database handle. Each command handler gets its own instance.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a new unit of work factory.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a fresh unit of work with no active transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// trackedAggregate pairs an aggregate with its identifier for change tracking
// within the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWork implements the unit of work over a GORM transaction.
// Repositories handed out while a transaction is active are bound to it;
// outside a transaction they run against the plain connection.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB

	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin with a transaction
// already active is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	return uow.tx.Error
}

// Commit commits the active transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback rolls back the active transaction. After Commit it returns
// gorm.ErrInvalidTransaction, which deferred cleanup paths ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// TrackAggregate records an aggregate touched during the unit of work.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) handle() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// RestaurantRepository returns a restaurant repository bound to the current
// transaction.
func (uow *GormUnitOfWork) RestaurantRepository() ports.RestaurantRepository {
	return restaurantrepo.NewGormRestaurantRepository(uow.handle(), uow)
}

// MenuItemRepository returns a menu item repository bound to the current
// transaction.
func (uow *GormUnitOfWork) MenuItemRepository() ports.MenuItemRepository {
	return menuitemrepo.NewGormMenuItemRepository(uow.handle(), uow)
}

// CustomerRepository returns a customer repository bound to the current
// transaction.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.handle(), uow)
}

// OrderRepository returns an order repository bound to the current
// transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.handle(), uow)
}

// ReviewRepository returns a review repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ReviewRepository() ports.ReviewRepository {
	return reviewrepo.NewGormReviewRepository(uow.handle(), uow)
}
