package customer_test

import (
	"testing"

	"eats/internal/core/domain/model/customer"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(
		kernel.NewUUID(), "Ada Lovelace", "ada@example.com", "+44 111", "12 Analytical Lane")
	require.NoError(t, err)
	return c
}

func TestNewCustomer(t *testing.T) {
	t.Run("created active", func(t *testing.T) {
		c := newCustomer(t)
		assert.True(t, c.IsActive())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := customer.NewCustomer(
			kernel.NewUUID(), "", "ada@example.com", "+44 111", "12 Analytical Lane")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		_, err := customer.NewCustomer(
			kernel.NewUUID(), "Ada Lovelace", "not-an-email", "+44 111", "12 Analytical Lane")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCustomer_ApplyUpdate(t *testing.T) {
	t.Run("nil fields stay untouched", func(t *testing.T) {
		c := newCustomer(t)
		name := "Ada King"
		inactive := false

		require.NoError(t, c.ApplyUpdate(&name, nil, nil, nil, &inactive))

		assert.Equal(t, "Ada King", c.Name())
		assert.Equal(t, "ada@example.com", c.Email())
		assert.False(t, c.IsActive())
	})

	t.Run("invalid update leaves customer unchanged", func(t *testing.T) {
		c := newCustomer(t)
		bad := "nope"

		require.ErrorIs(t, c.ApplyUpdate(nil, &bad, nil, nil, nil), errs.ErrValueIsInvalid)
		assert.Equal(t, "ada@example.com", c.Email())
	})
}
