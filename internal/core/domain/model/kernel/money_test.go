package kernel_test

import (
	"testing"

	"eats/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rounds to two fractional digits", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.RequireFromString("10.005"))

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.RequireFromString("-0.01"))
		require.Error(t, err)
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		m, err := kernel.MoneyFromString("12.50")

		require.NoError(t, err)
		assert.Equal(t, "12.50", m.String())
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := kernel.MoneyFromString("twelve")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a := kernel.MustMoneyFromString("10.00")
	b := kernel.MustMoneyFromString("5.00")

	total := a.MulInt(2).Add(b)

	assert.Equal(t, "25.00", total.String())
	assert.True(t, total.IsEqual(kernel.MustMoneyFromString("25.00")))
}

func TestMoney_ZeroValue(t *testing.T) {
	assert.True(t, kernel.ZeroMoney().IsZero())
	assert.Equal(t, "0.00", kernel.ZeroMoney().String())
}
