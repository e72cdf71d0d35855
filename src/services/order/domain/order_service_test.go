package domain_test

import (
	"context"
	"errors"
	"testing"

	"go-canteen-api/src/infrastructure/log"
	"go-canteen-api/src/services/faults"
	"go-canteen-api/src/services/order/domain"
	"go-canteen-api/src/services/order/domain/persistence"
)

func floatPtr(v float64) *float64 { return &v }

func newService(store domain.OrderStore, notifier domain.KitchenNotifier) domain.OrderService {
	if notifier == nil {
		notifier = &recordingNotifier{}
	}
	return domain.NewOrderService(log.NewLogger(), store, notifier)
}

type recordingNotifier struct {
	placed  []domain.Order
	changed []domain.Order
}

func (n *recordingNotifier) OrderPlaced(ctx context.Context, order domain.Order) {
	n.placed = append(n.placed, order)
}

func (n *recordingNotifier) OrderStatusChanged(ctx context.Context, order domain.Order, previous domain.Status) {
	n.changed = append(n.changed, order)
}

// failingStore simulates an unreachable backend.
type failingStore struct{}

func (failingStore) Create(ctx context.Context, order domain.Order) (domain.Order, error) {
	return domain.Order{}, faults.NewPersistence("insert order", errors.New("connection refused"))
}

func (failingStore) ListAll(ctx context.Context) ([]domain.Order, error) {
	return nil, faults.NewPersistence("find orders", errors.New("connection refused"))
}

func (failingStore) GetByID(ctx context.Context, orderID string) (domain.Order, error) {
	return domain.Order{}, faults.NewPersistence("find order", errors.New("connection refused"))
}

func (failingStore) UpdateStatus(ctx context.Context, orderID string, status domain.Status) (domain.Order, error) {
	return domain.Order{}, faults.NewPersistence("update order status", errors.New("connection refused"))
}

func teaItems() []domain.OrderLineItem {
	return []domain.OrderLineItem{
		{MenuItemID: "m1", Name: "Tea", Price: 1.5, Quantity: 2},
	}
}

func TestSubmitOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("valid submission persists a pending order", func(t *testing.T) {
		store := persistence.NewMemoryOrderStore()
		notifier := &recordingNotifier{}
		service := newService(store, notifier)

		orderID, err := service.SubmitOrder(ctx, teaItems(), floatPtr(3.0))
		if err != nil {
			t.Fatalf("SubmitOrder failed: %v", err)
		}
		if orderID == "" {
			t.Fatal("Expected a non-empty order ID")
		}

		orders, err := service.FetchOrders(ctx)
		if err != nil {
			t.Fatalf("FetchOrders failed: %v", err)
		}
		if len(orders) != 1 {
			t.Fatalf("Expected 1 order, got %d", len(orders))
		}
		if orders[0].ID != orderID {
			t.Errorf("Expected order %s, got %s", orderID, orders[0].ID)
		}
		if orders[0].Status != domain.StatusPending {
			t.Errorf("Expected status Pending, got %s", orders[0].Status)
		}
		if len(notifier.placed) != 1 {
			t.Errorf("Expected 1 kitchen notification, got %d", len(notifier.placed))
		}
	})

	t.Run("round trip keeps items, total and id intact", func(t *testing.T) {
		store := persistence.NewMemoryOrderStore()
		service := newService(store, nil)

		orderID, err := service.SubmitOrder(ctx, teaItems(), floatPtr(3.0))
		if err != nil {
			t.Fatalf("SubmitOrder failed: %v", err)
		}

		orders, _ := service.FetchOrders(ctx)
		got := orders[0]
		if got.ID != orderID {
			t.Errorf("Expected ID %s, got %s", orderID, got.ID)
		}
		if got.TotalAmount != 3.0 {
			t.Errorf("Expected total 3.0, got %v", got.TotalAmount)
		}
		if len(got.Items) != 1 {
			t.Fatalf("Expected 1 item, got %d", len(got.Items))
		}
		item := got.Items[0]
		if item.MenuItemID != "m1" || item.Name != "Tea" || item.Price != 1.5 || item.Quantity != 2 {
			t.Errorf("Line item mutated in storage: %+v", item)
		}
	})

	t.Run("invalid submissions are rejected without persisting", func(t *testing.T) {
		tests := []struct {
			name  string
			items []domain.OrderLineItem
			total *float64
		}{
			{"empty items", []domain.OrderLineItem{}, floatPtr(0)},
			{"nil items", nil, floatPtr(3.0)},
			{"missing total", teaItems(), nil},
			{"zero quantity", []domain.OrderLineItem{{MenuItemID: "m1", Name: "Tea", Price: 1.5, Quantity: 0}}, floatPtr(1.5)},
			{"negative quantity", []domain.OrderLineItem{{MenuItemID: "m1", Name: "Tea", Price: 1.5, Quantity: -2}}, floatPtr(1.5)},
			{"missing menu item id", []domain.OrderLineItem{{Name: "Tea", Price: 1.5, Quantity: 1}}, floatPtr(1.5)},
			{"missing name", []domain.OrderLineItem{{MenuItemID: "m1", Price: 1.5, Quantity: 1}}, floatPtr(1.5)},
			{"negative price", []domain.OrderLineItem{{MenuItemID: "m1", Name: "Tea", Price: -1, Quantity: 1}}, floatPtr(1.5)},
			{"negative total", teaItems(), floatPtr(-3.0)},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				store := persistence.NewMemoryOrderStore()
				service := newService(store, nil)

				_, err := service.SubmitOrder(ctx, tt.items, tt.total)
				if err == nil {
					t.Fatal("Expected a validation error")
				}
				if !faults.IsValidation(err) {
					t.Errorf("Expected ValidationError, got %T: %v", err, err)
				}

				orders, _ := service.FetchOrders(ctx)
				if len(orders) != 0 {
					t.Errorf("Store must stay unchanged, found %d orders", len(orders))
				}
			})
		}
	})

	t.Run("store failure surfaces as persistence error", func(t *testing.T) {
		service := newService(failingStore{}, nil)

		_, err := service.SubmitOrder(ctx, teaItems(), floatPtr(3.0))
		if err == nil {
			t.Fatal("Expected an error from the failing store")
		}
		if !faults.IsPersistence(err) {
			t.Errorf("Expected PersistenceError, got %T: %v", err, err)
		}
	})
}

func TestFetchOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("returns orders newest first", func(t *testing.T) {
		store := persistence.NewMemoryOrderStore()
		service := newService(store, nil)

		first, _ := service.SubmitOrder(ctx, teaItems(), floatPtr(3.0))
		second, _ := service.SubmitOrder(ctx, teaItems(), floatPtr(6.0))
		third, _ := service.SubmitOrder(ctx, teaItems(), floatPtr(9.0))

		orders, err := service.FetchOrders(ctx)
		if err != nil {
			t.Fatalf("FetchOrders failed: %v", err)
		}
		if len(orders) != 3 {
			t.Fatalf("Expected 3 orders, got %d", len(orders))
		}
		want := []string{third, second, first}
		for i, id := range want {
			if orders[i].ID != id {
				t.Errorf("Position %d: expected order %s, got %s", i, id, orders[i].ID)
			}
		}
	})

	t.Run("store failure propagates", func(t *testing.T) {
		service := newService(failingStore{}, nil)
		if _, err := service.FetchOrders(ctx); !faults.IsPersistence(err) {
			t.Errorf("Expected PersistenceError, got %v", err)
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	ctx := context.Background()

	submit := func(t *testing.T, service domain.OrderService) string {
		t.Helper()
		orderID, err := service.SubmitOrder(ctx, teaItems(), floatPtr(3.0))
		if err != nil {
			t.Fatalf("SubmitOrder failed: %v", err)
		}
		return orderID
	}

	t.Run("walks the full lifecycle", func(t *testing.T) {
		notifier := &recordingNotifier{}
		service := newService(persistence.NewMemoryOrderStore(), notifier)
		orderID := submit(t, service)

		for _, next := range []domain.Status{domain.StatusPreparing, domain.StatusReady, domain.StatusCompleted} {
			order, err := service.UpdateOrderStatus(ctx, orderID, next)
			if err != nil {
				t.Fatalf("Transition to %s failed: %v", next, err)
			}
			if order.Status != next {
				t.Errorf("Expected status %s, got %s", next, order.Status)
			}
		}
		if len(notifier.changed) != 3 {
			t.Errorf("Expected 3 status notifications, got %d", len(notifier.changed))
		}
	})

	t.Run("rejects illegal transitions", func(t *testing.T) {
		service := newService(persistence.NewMemoryOrderStore(), nil)
		orderID := submit(t, service)

		_, err := service.UpdateOrderStatus(ctx, orderID, domain.StatusCompleted)
		if !faults.IsValidation(err) {
			t.Errorf("Expected ValidationError for Pending -> Completed, got %v", err)
		}
	})

	t.Run("rejects unknown statuses", func(t *testing.T) {
		service := newService(persistence.NewMemoryOrderStore(), nil)
		orderID := submit(t, service)

		_, err := service.UpdateOrderStatus(ctx, orderID, domain.Status("Shipped"))
		if !faults.IsValidation(err) {
			t.Errorf("Expected ValidationError for unknown status, got %v", err)
		}
	})

	t.Run("unknown order yields not found", func(t *testing.T) {
		service := newService(persistence.NewMemoryOrderStore(), nil)

		_, err := service.UpdateOrderStatus(ctx, "999999", domain.StatusPreparing)
		if !errors.Is(err, domain.ErrOrderNotFound) {
			t.Errorf("Expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("cancel is allowed from any non-terminal state", func(t *testing.T) {
		service := newService(persistence.NewMemoryOrderStore(), nil)
		orderID := submit(t, service)

		if _, err := service.UpdateOrderStatus(ctx, orderID, domain.StatusCancelled); err != nil {
			t.Fatalf("Cancel from Pending failed: %v", err)
		}
		if _, err := service.UpdateOrderStatus(ctx, orderID, domain.StatusPreparing); !faults.IsValidation(err) {
			t.Errorf("Expected ValidationError after cancellation, got %v", err)
		}
	})
}
