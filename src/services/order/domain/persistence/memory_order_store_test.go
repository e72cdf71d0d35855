package persistence

import (
	"context"
	"sync"
	"testing"

	"go-canteen-api/src/services/faults"
	"go-canteen-api/src/services/order/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() domain.Order {
	return domain.NewOrder([]domain.OrderLineItem{
		{MenuItemID: "m1", Name: "Tea", Price: 1.5, Quantity: 2},
	}, 3.0)
}

func TestMemoryOrderStoreCreate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	created, err := store.Create(ctx, sampleOrder())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero(), "CreatedAt must be set by the store")
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, domain.StatusPending, created.Status)

	second, err := store.Create(ctx, sampleOrder())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, second.ID, "IDs must be unique")
}

func TestMemoryOrderStoreRejectsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	tests := []struct {
		name  string
		order domain.Order
	}{
		{"empty items", domain.NewOrder(nil, 0)},
		{"zero quantity", domain.NewOrder([]domain.OrderLineItem{{MenuItemID: "m1", Name: "Tea", Price: 1.5}}, 1.5)},
		{"unknown status", domain.Order{Items: []domain.OrderLineItem{{MenuItemID: "m1", Name: "Tea", Price: 1.5, Quantity: 1}}, Status: "Received"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Create(ctx, tt.order)
			require.Error(t, err)
			assert.True(t, faults.IsPersistence(err), "expected PersistenceError, got %v", err)

			orders, listErr := store.ListAll(ctx)
			require.NoError(t, listErr)
			assert.Empty(t, orders, "rejected record must not be stored")
		})
	}
}

func TestMemoryOrderStoreListAllOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	// Sequential creates, possibly within the same clock tick: newest-first
	// with the reverse-insertion tie-break means exact reverse of insertion.
	var ids []string
	for i := 0; i < 5; i++ {
		created, err := store.Create(ctx, sampleOrder())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 5)
	for i := range orders {
		assert.Equal(t, ids[len(ids)-1-i], orders[i].ID, "position %d", i)
	}
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt), "timestamps must not increase down the list")
	}
}

func TestMemoryOrderStoreListAllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()
	_, err := store.Create(ctx, sampleOrder())
	require.NoError(t, err)

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	orders[0].Status = domain.StatusCancelled

	again, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again[0].Status, "mutating the returned slice must not affect the store")
}

func TestMemoryOrderStoreUpdateStatus(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	created, err := store.Create(ctx, sampleOrder())
	require.NoError(t, err)

	updated, err := store.UpdateStatus(ctx, created.ID, domain.StatusPreparing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, updated.Status)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "CreatedAt must never change")

	got, err := store.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPreparing, got.Status)

	_, err = store.UpdateStatus(ctx, "missing", domain.StatusPreparing)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)

	_, err = store.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestMemoryOrderStoreConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryOrderStore()

	const workers = 20
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Create(ctx, sampleOrder())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	orders, err := store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, workers)

	seen := make(map[string]bool, workers)
	for _, o := range orders {
		assert.False(t, seen[o.ID], "duplicate ID %s", o.ID)
		seen[o.ID] = true
	}
}
