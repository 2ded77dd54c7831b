package order

import (
	"context"
	"testing"

	menuRepo "brewvoice/database/repository/menu"
	orderRepo "brewvoice/database/repository/order"
	"brewvoice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setup(t *testing.T) (*DefaultOrderService, *orderRepo.MemoryOrderRepo) {
	t.Helper()
	orders := orderRepo.NewMemoryOrderRepo()
	svc := &DefaultOrderService{
		Menu:   menuRepo.NewMemoryMenuRepo(models.DefaultMenu()),
		Orders: orders,
		Logger: zap.NewNop(),
	}
	return svc, orders
}

func TestPlaceOrder(t *testing.T) {
	svc, orders := setup(t)
	ctx := context.Background()

	t.Run("success computes the total from stored prices", func(t *testing.T) {
		placed, err := svc.PlaceOrder(ctx, models.PlaceOrderRequest{
			SessionID:   "sess-1",
			TableNumber: 4,
			Items: []models.OrderEntry{
				{ItemName: "espresso", Quantity: 1},
				{ItemName: "cold coffee", Quantity: 2},
			},
		})

		require.NoError(t, err)
		assert.NotEmpty(t, placed.OrderID)
		assert.Equal(t, 60+240, placed.TotalAmount)
		assert.Equal(t, models.PlacedOrderStatusPlaced, placed.Status)

		stored, err := orders.GetBySession(ctx, "sess-1")
		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, placed.OrderID, stored.OrderID)
	})

	t.Run("missing session id", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, models.PlaceOrderRequest{
			Items: []models.OrderEntry{{ItemName: "espresso", Quantity: 1}},
		})
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("empty items", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, models.PlaceOrderRequest{SessionID: "sess-2"})
		assert.ErrorIs(t, err, ErrMissingFields)
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := svc.PlaceOrder(ctx, models.PlaceOrderRequest{
			SessionID: "sess-3",
			Items:     []models.OrderEntry{{ItemName: "latte", Quantity: 1}},
		})
		var notFound *ItemNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "latte", notFound.Name)
	})
}

func TestCancelOrder(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.PlaceOrder(ctx, models.PlaceOrderRequest{
		SessionID: "sess-1",
		Items:     []models.OrderEntry{{ItemName: "cappuccino", Quantity: 1}},
	})
	require.NoError(t, err)

	t.Run("missing session id", func(t *testing.T) {
		assert.ErrorIs(t, svc.CancelOrder(ctx, ""), ErrMissingFields)
	})

	t.Run("unknown session", func(t *testing.T) {
		assert.ErrorIs(t, svc.CancelOrder(ctx, "nope"), ErrOrderNotFound)
	})

	t.Run("success removes the order", func(t *testing.T) {
		require.NoError(t, svc.CancelOrder(ctx, "sess-1"))
		// A second cancel finds nothing.
		assert.ErrorIs(t, svc.CancelOrder(ctx, "sess-1"), ErrOrderNotFound)
	})
}
