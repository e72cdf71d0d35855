package persistence

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"go-canteen-api/src/services/order/domain"
)

// MemoryOrderStore keeps orders in process memory. It backs tests and the
// no-database demo mode and honours the same contract as the Mongo store.
type MemoryOrderStore struct {
	mu      sync.RWMutex
	orders  []domain.Order
	counter atomic.Int64
}

func NewMemoryOrderStore() *MemoryOrderStore {
	return &MemoryOrderStore{}
}

func (s *MemoryOrderStore) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	if err := checkRecord(order); err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	order.ID = fmt.Sprintf("%06d", s.counter.Add(1))
	order.Items = append([]domain.OrderLineItem(nil), order.Items...)
	order.CreatedAt = now
	order.UpdatedAt = now

	s.mu.Lock()
	s.orders = append(s.orders, order)
	s.mu.Unlock()

	return order, nil
}

// ListAll returns a copy sorted by creation time descending. The stable sort
// over the reversed slice keeps reverse insertion order for equal timestamps.
func (s *MemoryOrderStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	out := make([]domain.Order, 0, len(s.orders))
	for i := len(s.orders) - 1; i >= 0; i-- {
		out = append(out, s.orders[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *MemoryOrderStore) GetByID(ctx context.Context, orderID string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}

func (s *MemoryOrderStore) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = time.Now().UTC()
			return s.orders[i], nil
		}
	}
	return domain.Order{}, domain.ErrOrderNotFound
}
