// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches, so a test mock only has to satisfy what the handler really uses.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// MenuItemRepoFactory provides access to the menu item repository within a transaction.
	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ReviewRepoFactory provides access to the review repository within a transaction.
	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	// RestaurantUoW manages transactions for restaurant-only operations.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// MenuItemUoW manages transactions for menu item operations. The
	// restaurant repository is included because menu items can only be
	// created under an existing restaurant.
	MenuItemUoW interface {
		TxManager
		RestaurantRepoFactory
		MenuItemRepoFactory
	}

	// MenuItemUoWFactory creates new menu item unit of work instances.
	MenuItemUoWFactory interface {
		Create() MenuItemUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// OrderUoW manages transactions for order-only operations, such as
	// moving an order through its status workflow.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW manages transactions for order placement, which reads the
	// customer, the restaurant, and its menu before writing the order.
	PlaceOrderUoW interface {
		TxManager
		RestaurantRepoFactory
		MenuItemRepoFactory
		CustomerRepoFactory
		OrderRepoFactory
	}

	// PlaceOrderUoWFactory creates new order placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// ReviewUoW manages transactions for review submission, which checks the
	// order, inserts the review, and recomputes the restaurant rating in one
	// transaction.
	ReviewUoW interface {
		TxManager
		OrderRepoFactory
		ReviewRepoFactory
		RestaurantRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
