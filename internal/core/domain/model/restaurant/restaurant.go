package restaurant

import (
	"fmt"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant instance was not
// created through NewRestaurant or RestoreRestaurant.
var ErrRestaurantIsNotConstructed = errs.NewValueIsRequiredError(
	"Restaurant must be created via NewRestaurant or RestoreRestaurant")

// Restaurant is the aggregate root for a food outlet. It owns the outlet's
// identity, contact attributes, the operating window, and the derived rating.
//
// Invariants:
//   - Name, description, cuisine type, address, phone, and location are
//     required
//   - Rating stays within [0, 5] and is only ever written through SetRating,
//     which the review workflow drives; no generic setter can touch it
//   - The operating window is a pair of times of day and may wrap midnight
type Restaurant struct {
	id          kernel.UUID
	name        string
	description string
	cuisineType string
	address     string
	phoneNumber string
	location    string
	rating      float64
	isActive    bool
	openingTime kernel.TimeOfDay
	closingTime kernel.TimeOfDay

	isConstructed bool
}

// NewRestaurant creates an active restaurant with a zero rating.
func NewRestaurant(
	id kernel.UUID,
	name string,
	description string,
	cuisineType string,
	address string,
	phoneNumber string,
	location string,
	openingTime kernel.TimeOfDay,
	closingTime kernel.TimeOfDay,
) (*Restaurant, error) {
	r := &Restaurant{
		isActive:      true,
		isConstructed: true,
	}

	if err := r.setAttributes(id, name, description, cuisineType, address, phoneNumber, location); err != nil {
		return nil, err
	}

	r.openingTime = openingTime
	r.closingTime = closingTime
	return r, nil
}

// RestoreRestaurant rehydrates a restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	description string,
	cuisineType string,
	address string,
	phoneNumber string,
	location string,
	rating float64,
	isActive bool,
	openingTime kernel.TimeOfDay,
	closingTime kernel.TimeOfDay,
) (*Restaurant, error) {
	r := &Restaurant{
		isActive:      isActive,
		isConstructed: true,
	}

	if err := r.setAttributes(id, name, description, cuisineType, address, phoneNumber, location); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}

	r.openingTime = openingTime
	r.closingTime = closingTime
	return r, nil
}

func (r *Restaurant) setAttributes(
	id kernel.UUID,
	name, description, cuisineType, address, phoneNumber, location string,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if cuisineType == "" {
		return errs.NewValueIsRequiredError("cuisine type")
	}
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phone number")
	}
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}

	r.id = id
	r.name = name
	r.description = description
	r.cuisineType = cuisineType
	r.address = address
	r.phoneNumber = phoneNumber
	r.location = location
	return nil
}

// Validate ensures the Restaurant was created through a factory method.
func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

// ID returns the restaurant identifier.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the unique restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Description returns the free-text description.
func (r *Restaurant) Description() string {
	return r.description
}

// CuisineType returns the cuisine classification.
func (r *Restaurant) CuisineType() string {
	return r.cuisineType
}

// Address returns the street address.
func (r *Restaurant) Address() string {
	return r.address
}

// PhoneNumber returns the contact phone number.
func (r *Restaurant) PhoneNumber() string {
	return r.phoneNumber
}

// Location returns the coarse location string used for search.
func (r *Restaurant) Location() string {
	return r.location
}

// Rating returns the derived mean review rating, 0 when unreviewed.
func (r *Restaurant) Rating() float64 {
	return r.rating
}

// IsActive reports whether the restaurant accepts orders at all.
func (r *Restaurant) IsActive() bool {
	return r.isActive
}

// OpeningTime returns the start of the operating window.
func (r *Restaurant) OpeningTime() kernel.TimeOfDay {
	return r.openingTime
}

// ClosingTime returns the end of the operating window.
func (r *Restaurant) ClosingTime() kernel.TimeOfDay {
	return r.closingTime
}

// UpdateDetails replaces the mutable attribute set in one validated step.
// The rating is deliberately absent: it is derived from reviews and can only
// move through SetRating.
func (r *Restaurant) UpdateDetails(
	name, description, cuisineType, address, phoneNumber, location string,
	openingTime, closingTime kernel.TimeOfDay,
	isActive bool,
) error {
	if err := r.setAttributes(r.id, name, description, cuisineType, address, phoneNumber, location); err != nil {
		return err
	}
	r.openingTime = openingTime
	r.closingTime = closingTime
	r.isActive = isActive
	return nil
}

// SetRating writes the recomputed mean review rating.
func (r *Restaurant) SetRating(rating float64) error {
	if rating < 0 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 0, 5)
	}
	r.rating = rating
	return nil
}

// IsOpenAt reports whether the wall-clock component of t falls inside the
// operating window. When the window wraps midnight (opening after closing),
// the restaurant is open from the opening time through midnight and again
// from midnight to the closing time.
func (r *Restaurant) IsOpenAt(t time.Time) bool {
	now := kernel.TimeOfDayFromClock(t)

	if !r.openingTime.After(r.closingTime) {
		return !now.Before(r.openingTime) && !now.After(r.closingTime)
	}
	return !now.Before(r.openingTime) || !now.After(r.closingTime)
}

// EnsureOpenAt returns a BusinessRuleError citing the operating hours when
// the restaurant is inactive or closed at the given instant.
func (r *Restaurant) EnsureOpenAt(t time.Time) error {
	if !r.isActive {
		return errs.NewBusinessRuleError("restaurant is not accepting orders")
	}
	if !r.IsOpenAt(t) {
		return errs.NewBusinessRuleError(fmt.Sprintf(
			"restaurant is closed, operating hours: %s - %s",
			r.openingTime, r.closingTime))
	}
	return nil
}
