package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAdd(t *testing.T) {
	t.Run("creates and increments lines", func(t *testing.T) {
		order := NewOrder()
		order.Add("espresso", 2, 60)
		order.Add("espresso", 1, 60)

		require.Len(t, order.Lines, 1)
		assert.Equal(t, 3, order.Line("espresso").Quantity)
	})

	t.Run("zero quantity never enters the order", func(t *testing.T) {
		order := NewOrder()
		order.Add("cappuccino", 0, 50)

		assert.Nil(t, order.Line("cappuccino"))
		assert.Empty(t, order.Lines)
		assert.Equal(t, 0, order.Total())
	})

	t.Run("negative quantity leaves existing lines alone", func(t *testing.T) {
		order := NewOrder()
		order.Add("espresso", 2, 60)
		order.Add("espresso", -1, 60)

		assert.Equal(t, 2, order.Line("espresso").Quantity)
	})
}

func TestOrderRemove(t *testing.T) {
	order := NewOrder()
	order.Add("espresso", 3, 60)

	assert.True(t, order.Remove("espresso", 2))
	assert.Equal(t, 1, order.Line("espresso").Quantity)

	// Reaching zero drops the line entirely.
	assert.True(t, order.Remove("espresso", 1))
	assert.Nil(t, order.Line("espresso"))
	assert.Empty(t, order.Lines)

	assert.False(t, order.Remove("espresso", 1))
}
