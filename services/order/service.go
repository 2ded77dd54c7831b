package order

import (
	"context"
	"fmt"
	"time"

	menuRepo "brewvoice/database/repository/menu"
	orderRepo "brewvoice/database/repository/order"
	"brewvoice/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service is the order placement side: it persists finalized orders and
// cancels placed ones.
type Service interface {
	PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlacedOrder, error)
	CancelOrder(ctx context.Context, sessionID string) error
}

// DefaultOrderService implements Service on the menu and order
// repositories. The total is always recomputed server-side from stored
// prices; client-supplied amounts are never trusted.
type DefaultOrderService struct {
	Menu   menuRepo.Repository
	Orders orderRepo.Repository
	Logger *zap.Logger
}

// PlaceOrder validates the request, resolves every item against the
// stored menu and persists the order with status "placed".
func (s *DefaultOrderService) PlaceOrder(ctx context.Context, req models.PlaceOrderRequest) (*models.PlacedOrder, error) {
	if req.SessionID == "" || len(req.Items) == 0 {
		return nil, ErrMissingFields
	}

	total := 0
	for _, entry := range req.Items {
		item, err := s.Menu.GetByName(ctx, entry.ItemName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up item %q: %w", entry.ItemName, err)
		}
		if item == nil {
			return nil, &ItemNotFoundError{Name: entry.ItemName}
		}
		total += item.Price * entry.Quantity
	}

	placed := &models.PlacedOrder{
		OrderID:     uuid.New().String(),
		SessionID:   req.SessionID,
		TableNumber: req.TableNumber,
		Items:       req.Items,
		TotalAmount: total,
		Status:      models.PlacedOrderStatusPlaced,
		OrderDate:   time.Now().UTC(),
	}
	if err := s.Orders.Insert(ctx, placed); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.Logger.Info("order placed",
		zap.String("orderId", placed.OrderID),
		zap.String("sessionId", placed.SessionID),
		zap.Int("tableNumber", placed.TableNumber),
		zap.Int("totalAmount", placed.TotalAmount),
	)
	return placed, nil
}

// CancelOrder removes the placed order for a session. Only orders still
// in "placed" status can be canceled.
func (s *DefaultOrderService) CancelOrder(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrMissingFields
	}

	placed, err := s.Orders.GetBySession(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to look up order: %w", err)
	}
	if placed == nil {
		return ErrOrderNotFound
	}
	if placed.Status != models.PlacedOrderStatusPlaced {
		return ErrNotCancelable
	}

	if err := s.Orders.DeleteBySession(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.Logger.Info("order canceled",
		zap.String("orderId", placed.OrderID),
		zap.String("sessionId", sessionID),
	)
	return nil
}
