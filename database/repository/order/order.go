package order

import (
	"context"

	"brewvoice/models"
)

// Repository provides access to placed orders.
type Repository interface {
	Insert(ctx context.Context, order *models.PlacedOrder) error
	GetBySession(ctx context.Context, sessionID string) (*models.PlacedOrder, error)
	DeleteBySession(ctx context.Context, sessionID string) error
}
