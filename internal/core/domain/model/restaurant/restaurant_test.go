package restaurant_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, s string) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.TimeOfDayFromString(s)
	require.NoError(t, err)
	return tod
}

func newRestaurant(t *testing.T, opening, closing string) *restaurant.Restaurant {
	t.Helper()
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "Pasta Corner", "Fresh pasta daily", "Italian",
		"1 Via Roma", "+39 1234567", "Downtown",
		mustTime(t, opening), mustTime(t, closing))
	require.NoError(t, err)
	return r
}

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 1, hour, minute, 0, 0, time.UTC)
}

func TestNewRestaurant(t *testing.T) {
	r := newRestaurant(t, "09:00", "22:00")

	assert.True(t, r.IsActive())
	assert.Zero(t, r.Rating())

	_, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "", "desc", "Italian", "addr", "phone", "loc",
		mustTime(t, "09:00"), mustTime(t, "22:00"))
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestRestaurant_IsOpenAt(t *testing.T) {
	t.Run("plain window", func(t *testing.T) {
		r := newRestaurant(t, "09:00", "22:00")

		assert.True(t, r.IsOpenAt(at(9, 0)))
		assert.True(t, r.IsOpenAt(at(15, 30)))
		assert.True(t, r.IsOpenAt(at(22, 0)))
		assert.False(t, r.IsOpenAt(at(8, 59)))
		assert.False(t, r.IsOpenAt(at(23, 0)))
	})

	t.Run("window wrapping midnight", func(t *testing.T) {
		r := newRestaurant(t, "18:00", "02:00")

		assert.True(t, r.IsOpenAt(at(18, 0)))
		assert.True(t, r.IsOpenAt(at(23, 45)))
		assert.True(t, r.IsOpenAt(at(1, 59)))
		assert.True(t, r.IsOpenAt(at(2, 0)))
		assert.False(t, r.IsOpenAt(at(2, 1)))
		assert.False(t, r.IsOpenAt(at(12, 0)))
	})
}

func TestRestaurant_EnsureOpenAt(t *testing.T) {
	r := newRestaurant(t, "09:00", "22:00")

	t.Run("closed restaurant cites operating hours", func(t *testing.T) {
		err := r.EnsureOpenAt(at(23, 0))

		require.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Contains(t, err.Error(), "09:00 - 22:00")
	})

	t.Run("inactive restaurant rejects orders even when open", func(t *testing.T) {
		require.NoError(t, r.UpdateDetails(
			r.Name(), r.Description(), r.CuisineType(), r.Address(),
			r.PhoneNumber(), r.Location(), r.OpeningTime(), r.ClosingTime(), false))

		require.ErrorIs(t, r.EnsureOpenAt(at(12, 0)), errs.ErrBusinessRule)
	})
}

func TestRestaurant_SetRating(t *testing.T) {
	r := newRestaurant(t, "09:00", "22:00")

	require.NoError(t, r.SetRating(4.5))
	assert.InDelta(t, 4.5, r.Rating(), 1e-9)

	require.ErrorIs(t, r.SetRating(5.1), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, r.SetRating(-0.1), errs.ErrValueIsOutOfRange)
}

func TestRestaurant_UpdateDetails(t *testing.T) {
	r := newRestaurant(t, "09:00", "22:00")
	require.NoError(t, r.SetRating(4.0))

	require.NoError(t, r.UpdateDetails(
		"Pasta Palace", "Even fresher pasta", "Italian", "2 Via Roma",
		"+39 7654321", "Uptown", mustTime(t, "10:00"), mustTime(t, "23:00"), true))

	assert.Equal(t, "Pasta Palace", r.Name())
	// UpdateDetails has no rating parameter at all.
	assert.InDelta(t, 4.0, r.Rating(), 1e-9)

	require.Error(t, r.UpdateDetails(
		"", "desc", "Italian", "addr", "phone", "loc",
		mustTime(t, "10:00"), mustTime(t, "23:00"), true))
}
