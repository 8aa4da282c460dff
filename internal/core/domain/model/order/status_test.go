package order_test

import (
	"testing"

	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	allowed := []struct {
		from, to order.Status
	}{
		{order.Placed, order.Confirmed},
		{order.Placed, order.Cancelled},
		{order.Confirmed, order.Preparing},
		{order.Confirmed, order.Cancelled},
		{order.Preparing, order.OutForDelivery},
		{order.Preparing, order.Cancelled},
		{order.OutForDelivery, order.Delivered},
	}

	for _, tc := range allowed {
		t.Run(tc.from.String()+"_to_"+tc.to.String(), func(t *testing.T) {
			next, err := tc.from.TransitionTo(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, next)
		})
	}

	statuses := []order.Status{
		order.Placed, order.Confirmed, order.Preparing,
		order.OutForDelivery, order.Delivered, order.Cancelled,
	}

	isAllowed := func(from, to order.Status) bool {
		for _, tc := range allowed {
			if tc.from == from && tc.to == to {
				return true
			}
		}
		return false
	}

	for _, from := range statuses {
		for _, to := range statuses {
			if isAllowed(from, to) {
				continue
			}
			t.Run("rejects_"+from.String()+"_to_"+to.String(), func(t *testing.T) {
				_, err := from.TransitionTo(to)
				require.ErrorIs(t, err, errs.ErrBusinessRule)
				assert.Contains(t, err.Error(), from.String())
				assert.Contains(t, err.Error(), to.String())
			})
		}
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Placed.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, order.Placed.Validate())
	require.Error(t, order.Unknown.Validate())
	require.Error(t, order.Status(42).Validate())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Placed, order.Confirmed, order.Preparing,
			order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := order.StatusFromString("teleported")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown is not accepted", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")
		require.Error(t, err)
	})
}
