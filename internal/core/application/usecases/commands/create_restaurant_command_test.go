package commands_test

import (
	"testing"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestNewCreateRestaurantCommand(t *testing.T) {
	open, _ := kernel.NewTimeOfDay(9, 0)
	closing, _ := kernel.NewTimeOfDay(22, 0)

	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewCreateRestaurantCommand(
			kernel.NewUUID(), "Pasta Corner", "Fresh pasta daily", "Italian",
			"1 Via Roma", "+39 1234567", "Downtown", open, closing)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("rejects missing name", func(t *testing.T) {
		_, err := commands.NewCreateRestaurantCommand(
			kernel.NewUUID(), "", "desc", "Italian",
			"1 Via Roma", "+39 1234567", "Downtown", open, closing)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateRestaurantCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateRestaurantCommandIsNotConstructed)
	})
}
