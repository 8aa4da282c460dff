package kernel_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		tod, err := kernel.NewTimeOfDay(9, 30)

		require.NoError(t, err)
		assert.Equal(t, "09:30", tod.String())
		assert.Equal(t, 9*60+30, tod.Minutes())
	})

	t.Run("hour out of range", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(24, 0)
		require.Error(t, err)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, err := kernel.NewTimeOfDay(12, 60)
		require.Error(t, err)
	})
}

func TestTimeOfDayFromString(t *testing.T) {
	tod, err := kernel.TimeOfDayFromString("22:15")

	require.NoError(t, err)
	assert.Equal(t, "22:15", tod.String())

	_, err = kernel.TimeOfDayFromString("not a time")
	require.Error(t, err)
}

func TestTimeOfDayFromMinutes(t *testing.T) {
	tod, err := kernel.TimeOfDayFromMinutes(600)

	require.NoError(t, err)
	assert.Equal(t, "10:00", tod.String())

	_, err = kernel.TimeOfDayFromMinutes(24 * 60)
	require.Error(t, err)
}

func TestTimeOfDayFromClock(t *testing.T) {
	instant := time.Date(2025, 6, 1, 23, 5, 59, 0, time.UTC)

	tod := kernel.TimeOfDayFromClock(instant)

	assert.Equal(t, "23:05", tod.String())
}

func TestTimeOfDay_Ordering(t *testing.T) {
	morning, _ := kernel.NewTimeOfDay(9, 0)
	evening, _ := kernel.NewTimeOfDay(22, 0)

	assert.True(t, morning.Before(evening))
	assert.True(t, evening.After(morning))
	assert.True(t, morning.IsEqual(morning))
}
