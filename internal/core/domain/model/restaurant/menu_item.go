package restaurant

import (
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem instance was not
// created through NewMenuItem or RestoreMenuItem.
var ErrMenuItemIsNotConstructed = errs.NewValueIsRequiredError(
	"MenuItem must be created via NewMenuItem or RestoreMenuItem")

// MenuItem is a dish offered by exactly one restaurant. The menu price is
// the current selling price; orders copy it into their lines at placement
// time, so editing it here never changes past orders.
type MenuItem struct {
	id                 kernel.UUID
	restaurantID       kernel.UUID
	name               string
	description        string
	price              kernel.Money
	category           string
	isVegetarian       bool
	isVegan            bool
	isAvailable        bool
	preparationMinutes int

	isConstructed bool
}

// NewMenuItem creates an available menu item for a restaurant.
func NewMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	isVegetarian bool,
	isVegan bool,
	preparationMinutes int,
) (*MenuItem, error) {
	m := &MenuItem{
		isAvailable:   true,
		isConstructed: true,
	}

	if err := m.setAttributes(id, restaurantID, name, description, price, category, preparationMinutes); err != nil {
		return nil, err
	}

	m.isVegetarian = isVegetarian
	m.isVegan = isVegan
	return m, nil
}

// RestoreMenuItem rehydrates a menu item from persistence.
func RestoreMenuItem(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	isVegetarian bool,
	isVegan bool,
	isAvailable bool,
	preparationMinutes int,
) (*MenuItem, error) {
	m := &MenuItem{
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := m.setAttributes(id, restaurantID, name, description, price, category, preparationMinutes); err != nil {
		return nil, err
	}

	m.isVegetarian = isVegetarian
	m.isVegan = isVegan
	return m, nil
}

func (m *MenuItem) setAttributes(
	id kernel.UUID,
	restaurantID kernel.UUID,
	name, description string,
	price kernel.Money,
	category string,
	preparationMinutes int,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if price.IsZero() {
		return errs.NewValueIsRequiredError("price")
	}
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	if preparationMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("preparation time",
			fmt.Errorf("%d minutes is not greater than 0", preparationMinutes))
	}

	m.id = id
	m.restaurantID = restaurantID
	m.name = name
	m.description = description
	m.price = price
	m.category = category
	m.preparationMinutes = preparationMinutes
	return nil
}

// Validate ensures the MenuItem was created through a factory method.
func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

// ID returns the menu item identifier.
func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

// RestaurantID returns the owning restaurant.
func (m *MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// Name returns the dish name.
func (m *MenuItem) Name() string {
	return m.name
}

// Description returns the dish description.
func (m *MenuItem) Description() string {
	return m.description
}

// Price returns the current menu price.
func (m *MenuItem) Price() kernel.Money {
	return m.price
}

// Category returns the menu category used for search.
func (m *MenuItem) Category() string {
	return m.category
}

// IsVegetarian reports the vegetarian dietary flag.
func (m *MenuItem) IsVegetarian() bool {
	return m.isVegetarian
}

// IsVegan reports the vegan dietary flag.
func (m *MenuItem) IsVegan() bool {
	return m.isVegan
}

// IsAvailable reports whether the item can currently be ordered.
func (m *MenuItem) IsAvailable() bool {
	return m.isAvailable
}

// PreparationMinutes returns the kitchen preparation time in minutes.
func (m *MenuItem) PreparationMinutes() int {
	return m.preparationMinutes
}

// UpdateDetails replaces the mutable attribute set in one validated step.
func (m *MenuItem) UpdateDetails(
	name, description string,
	price kernel.Money,
	category string,
	isVegetarian, isVegan, isAvailable bool,
	preparationMinutes int,
) error {
	if err := m.setAttributes(m.id, m.restaurantID, name, description, price, category, preparationMinutes); err != nil {
		return err
	}
	m.isVegetarian = isVegetarian
	m.isVegan = isVegan
	m.isAvailable = isAvailable
	return nil
}
