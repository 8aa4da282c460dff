package restaurant_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMenuItem(t *testing.T) {
	t.Run("created available", func(t *testing.T) {
		m, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Tomato and mozzarella",
			kernel.MustMoneyFromString("8.50"), "Pizza", true, false, 15)

		require.NoError(t, err)
		assert.True(t, m.IsAvailable())
		assert.Equal(t, "8.50", m.Price().String())
	})

	t.Run("rejects non-positive preparation time", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Tomato and mozzarella",
			kernel.MustMoneyFromString("8.50"), "Pizza", true, false, 0)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero price", func(t *testing.T) {
		_, err := restaurant.NewMenuItem(
			kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Tomato and mozzarella",
			kernel.ZeroMoney(), "Pizza", true, false, 15)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestMenuItem_UpdateDetails(t *testing.T) {
	m, err := restaurant.NewMenuItem(
		kernel.NewUUID(), kernel.NewUUID(), "Margherita", "Tomato and mozzarella",
		kernel.MustMoneyFromString("8.50"), "Pizza", true, false, 15)
	require.NoError(t, err)

	require.NoError(t, m.UpdateDetails(
		"Margherita DOP", "Buffalo mozzarella", kernel.MustMoneyFromString("10.00"),
		"Pizza", true, false, false, 20))

	assert.Equal(t, "10.00", m.Price().String())
	assert.False(t, m.IsAvailable())

	require.Error(t, m.UpdateDetails(
		"", "desc", kernel.MustMoneyFromString("10.00"), "Pizza", true, false, true, 20))
}
