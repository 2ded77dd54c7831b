package menu

import (
	"context"

	"brewvoice/models"
)

// Repository provides access to the stored menu catalog.
type Repository interface {
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetByName(ctx context.Context, name string) (*models.MenuItem, error)
	Seed(ctx context.Context, items []models.MenuItem) error
}
