package services_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func openRestaurant(t *testing.T) *restaurant.Restaurant {
	t.Helper()
	open, _ := kernel.NewTimeOfDay(9, 0)
	closing, _ := kernel.NewTimeOfDay(22, 0)
	r, err := restaurant.NewRestaurant(
		kernel.NewUUID(), "Pasta Corner", "Fresh pasta daily", "Italian",
		"1 Via Roma", "+39 1234567", "Downtown", open, closing)
	require.NoError(t, err)
	return r
}

func menuItem(t *testing.T, restaurantID kernel.UUID, name, price string, prepMinutes int) *restaurant.MenuItem {
	t.Helper()
	m, err := restaurant.NewMenuItem(
		kernel.NewUUID(), restaurantID, name, name+" description",
		kernel.MustMoneyFromString(price), "Mains", false, false, prepMinutes)
	require.NoError(t, err)
	return m
}

func TestOrderIntake_PlaceOrder(t *testing.T) {
	intake := services.NewOrderIntake()
	customerID := kernel.NewUUID()

	t.Run("snapshots prices and derives total and estimate", func(t *testing.T) {
		rest := openRestaurant(t)
		pasta := menuItem(t, rest.ID(), "Tagliatelle", "12.50", 20)
		salad := menuItem(t, rest.ID(), "Caprese", "7.25", 10)

		o, err := intake.PlaceOrder(kernel.NewUUID(), rest, []*restaurant.MenuItem{pasta, salad},
			customerID, "5 Delivery St", "ring twice",
			[]services.OrderLine{
				{MenuItemID: pasta.ID(), Quantity: 2},
				{MenuItemID: salad.ID(), Quantity: 1, SpecialRequests: "no basil"},
			}, noon)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "32.25", o.TotalAmount().String())
		// Slowest line takes 20 minutes, plus the 30 minute buffer.
		assert.Equal(t, noon.Add(50*time.Minute), o.EstimatedDelivery())
	})

	t.Run("rejects empty line set", func(t *testing.T) {
		rest := openRestaurant(t)

		_, err := intake.PlaceOrder(kernel.NewUUID(), rest, nil, customerID, "5 Delivery St", "",
			nil, noon)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects duplicate menu items", func(t *testing.T) {
		rest := openRestaurant(t)
		pasta := menuItem(t, rest.ID(), "Tagliatelle", "12.50", 20)

		_, err := intake.PlaceOrder(kernel.NewUUID(), rest, []*restaurant.MenuItem{pasta},
			customerID, "5 Delivery St", "",
			[]services.OrderLine{
				{MenuItemID: pasta.ID(), Quantity: 1},
				{MenuItemID: pasta.ID(), Quantity: 2},
			}, noon)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects orders while closed", func(t *testing.T) {
		rest := openRestaurant(t)
		pasta := menuItem(t, rest.ID(), "Tagliatelle", "12.50", 20)

		_, err := intake.PlaceOrder(kernel.NewUUID(), rest, []*restaurant.MenuItem{pasta},
			customerID, "5 Delivery St", "",
			[]services.OrderLine{{MenuItemID: pasta.ID(), Quantity: 1}},
			time.Date(2025, 6, 1, 23, 30, 0, 0, time.UTC))

		require.ErrorIs(t, err, errs.ErrBusinessRule)
	})

	t.Run("collects every bad line in one error", func(t *testing.T) {
		rest := openRestaurant(t)
		soldOut := menuItem(t, rest.ID(), "Lasagna", "11.00", 25)
		require.NoError(t, soldOut.UpdateDetails(
			soldOut.Name(), soldOut.Description(), soldOut.Price(),
			soldOut.Category(), false, false, false, 25))
		foreign := menuItem(t, kernel.NewUUID(), "Sushi", "15.00", 15)

		_, err := intake.PlaceOrder(kernel.NewUUID(), rest, []*restaurant.MenuItem{soldOut, foreign},
			customerID, "5 Delivery St", "",
			[]services.OrderLine{
				{MenuItemID: soldOut.ID(), Quantity: 1},
				{MenuItemID: foreign.ID(), Quantity: 1},
				{MenuItemID: kernel.NewUUID(), Quantity: 1},
			}, noon)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Lasagna")
		assert.Contains(t, err.Error(), "not on this restaurant's menu")
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		rest := openRestaurant(t)
		pasta := menuItem(t, rest.ID(), "Tagliatelle", "12.50", 20)

		_, err := intake.PlaceOrder(kernel.NewUUID(), rest, []*restaurant.MenuItem{pasta},
			customerID, "5 Delivery St", "",
			[]services.OrderLine{{MenuItemID: pasta.ID(), Quantity: 0}}, noon)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
