package menu

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryMenuRepository struct {
	mu    sync.RWMutex
	items []MenuItem
}

func NewMemoryMenuRepository() MenuRepository {
	return &memoryMenuRepository{}
}

func (r *memoryMenuRepository) GetAll(ctx context.Context) ([]MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]MenuItem(nil), r.items...), nil
}

func (r *memoryMenuRepository) Add(ctx context.Context, item MenuItem) (MenuItem, error) {
	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now

	r.mu.Lock()
	r.items = append(r.items, item)
	r.mu.Unlock()
	return item, nil
}

func (r *memoryMenuRepository) Seed(ctx context.Context, item MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return nil
		}
	}
	now := time.Now().UTC()
	item.ID = uuid.NewString()
	item.CreatedAt = now
	item.UpdatedAt = now
	r.items = append(r.items, item)
	return nil
}
