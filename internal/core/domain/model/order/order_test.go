package order_test

import (
	"testing"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, qty int, price string) order.OrderItem {
	t.Helper()
	item, err := order.NewOrderItem(
		kernel.NewUUID(), kernel.NewUUID(), qty, kernel.MustMoneyFromString(price), "")
	require.NoError(t, err)
	return item
}

func TestNewOrder(t *testing.T) {
	now := time.Now()
	eta := now.Add(45 * time.Minute)

	t.Run("computes total from item snapshots", func(t *testing.T) {
		items := []order.OrderItem{
			mustItem(t, 2, "10.00"),
			mustItem(t, 1, "5.00"),
		}

		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"12 High Street", "", items, now, eta)

		require.NoError(t, err)
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, "25.00", o.TotalAmount().String())
		assert.Len(t, o.Items(), 2)
	})

	t.Run("rejects empty item list", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"12 High Street", "", nil, now, eta)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects missing delivery address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"", "", []order.OrderItem{mustItem(t, 1, "9.99")}, now, eta)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewOrderItem(t *testing.T) {
	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := order.NewOrderItem(
			kernel.NewUUID(), kernel.NewUUID(), 0, kernel.MustMoneyFromString("5.00"), "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("subtotal multiplies snapshot price", func(t *testing.T) {
		item := mustItem(t, 3, "4.25")
		assert.Equal(t, "12.75", item.Subtotal().String())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Now()

	newOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			"12 High Street", "", []order.OrderItem{mustItem(t, 1, "8.00")},
			now, now.Add(40*time.Minute))
		require.NoError(t, err)
		return o
	}

	t.Run("walks the happy path", func(t *testing.T) {
		o := newOrder(t)

		for _, next := range []order.Status{
			order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
			assert.Equal(t, next, o.Status())
		}
	})

	t.Run("terminal states never move again", func(t *testing.T) {
		o := newOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled))

		err := o.ChangeStatus(order.Confirmed)
		require.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("skipping states is rejected", func(t *testing.T) {
		o := newOrder(t)

		err := o.ChangeStatus(order.Delivered)
		require.ErrorIs(t, err, errs.ErrBusinessRule)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestOrder_TotalImmutability(t *testing.T) {
	now := time.Now()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 High Street", "", []order.OrderItem{mustItem(t, 2, "10.00")},
		now, now.Add(time.Hour))
	require.NoError(t, err)

	// Mutable fields change, total stays.
	o.Reschedule(now.Add(2 * time.Hour))
	o.UpdateSpecialInstructions("ring the bell")
	require.NoError(t, o.ChangeStatus(order.Confirmed))

	assert.Equal(t, "20.00", o.TotalAmount().String())
}

func TestOrder_EnsureReviewableBy(t *testing.T) {
	now := time.Now()
	customerID := kernel.NewUUID()

	deliveredOrder := func(t *testing.T) *order.Order {
		o, err := order.NewOrder(
			kernel.NewUUID(), customerID, kernel.NewUUID(),
			"12 High Street", "", []order.OrderItem{mustItem(t, 1, "8.00")},
			now, now.Add(40*time.Minute))
		require.NoError(t, err)
		for _, next := range []order.Status{
			order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered,
		} {
			require.NoError(t, o.ChangeStatus(next))
		}
		return o
	}

	t.Run("delivered order reviewable by its customer", func(t *testing.T) {
		require.NoError(t, deliveredOrder(t).EnsureReviewableBy(customerID))
	})

	t.Run("foreign customer is rejected", func(t *testing.T) {
		err := deliveredOrder(t).EnsureReviewableBy(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("undelivered order is rejected", func(t *testing.T) {
		o, err := order.NewOrder(
			kernel.NewUUID(), customerID, kernel.NewUUID(),
			"12 High Street", "", []order.OrderItem{mustItem(t, 1, "8.00")},
			now, now.Add(40*time.Minute))
		require.NoError(t, err)
		require.NoError(t, o.ChangeStatus(order.Confirmed))
		require.NoError(t, o.ChangeStatus(order.Preparing))

		require.ErrorIs(t, o.EnsureReviewableBy(customerID), errs.ErrBusinessRule)
	})
}

func TestRestoreOrder_KeepsPersistedTotal(t *testing.T) {
	now := time.Now()
	items := []order.OrderItem{mustItem(t, 1, "99.00")}

	// The stored total wins over what the lines would sum to today: menu
	// price edits must never rewrite history.
	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.Delivered, kernel.MustMoneyFromString("42.00"),
		"12 High Street", "", items, now, now.Add(time.Hour))

	require.NoError(t, err)
	assert.Equal(t, "42.00", o.TotalAmount().String())
	assert.Equal(t, order.Delivered, o.Status())
}
