package order

import (
	"context"
	"fmt"
	"sync"

	"brewvoice/models"
)

// MemoryOrderRepo is an in-process Repository for tests.
type MemoryOrderRepo struct {
	mu     sync.Mutex
	orders map[string]models.PlacedOrder
}

func NewMemoryOrderRepo() *MemoryOrderRepo {
	return &MemoryOrderRepo{orders: make(map[string]models.PlacedOrder)}
}

func (r *MemoryOrderRepo) Insert(ctx context.Context, order *models.PlacedOrder) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.SessionID] = *order
	return nil
}

func (r *MemoryOrderRepo) GetBySession(ctx context.Context, sessionID string) (*models.PlacedOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[sessionID]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *MemoryOrderRepo) DeleteBySession(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[sessionID]; !ok {
		return fmt.Errorf("no order found for session %s", sessionID)
	}
	delete(r.orders, sessionID)
	return nil
}
