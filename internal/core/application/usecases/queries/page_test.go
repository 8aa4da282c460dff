package queries_test

import (
	"testing"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPage(t *testing.T) {
	assert.Equal(t, queries.Page{Skip: 0, Limit: 10}, queries.NewPage(0, 0))
	assert.Equal(t, queries.Page{Skip: 0, Limit: 10}, queries.NewPage(-5, -1))
	assert.Equal(t, queries.Page{Skip: 20, Limit: 50}, queries.NewPage(20, 50))
	// Limit is clamped to 100.
	assert.Equal(t, queries.Page{Skip: 0, Limit: 100}, queries.NewPage(0, 1000))
}

func TestQueryConstructorGuards(t *testing.T) {
	t.Run("constructed queries validate", func(t *testing.T) {
		q, err := queries.NewGetRestaurantQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("zero values fail validation", func(t *testing.T) {
		require.Error(t, queries.GetRestaurantsQuery{}.Validate())
		require.Error(t, queries.GetOrderQuery{}.Validate())
		require.Error(t, queries.CanReviewOrderQuery{}.Validate())
	})

	t.Run("invalid identifiers rejected", func(t *testing.T) {
		_, err := queries.NewGetRestaurantQuery(kernel.UUID{})
		require.Error(t, err)
	})
}
