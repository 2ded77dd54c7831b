package menu

import (
	"context"
	"strings"
	"sync"

	"brewvoice/models"
)

// MemoryMenuRepo is an in-process Repository for tests and development
// without MongoDB.
type MemoryMenuRepo struct {
	mu    sync.RWMutex
	items []models.MenuItem
}

func NewMemoryMenuRepo(items []models.MenuItem) *MemoryMenuRepo {
	repo := &MemoryMenuRepo{}
	_ = repo.Seed(context.Background(), items)
	return repo
}

func (r *MemoryMenuRepo) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.MenuItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *MemoryMenuRepo) GetByName(ctx context.Context, name string) (*models.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	name = strings.ToLower(name)
	for _, item := range r.items {
		if item.Name == name {
			found := item
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryMenuRepo) Seed(ctx context.Context, items []models.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range items {
		item.Name = strings.ToLower(strings.TrimSpace(item.Name))
		replaced := false
		for i := range r.items {
			if r.items[i].Name == item.Name {
				r.items[i] = item
				replaced = true
				break
			}
		}
		if !replaced {
			r.items = append(r.items, item)
		}
	}
	return nil
}
