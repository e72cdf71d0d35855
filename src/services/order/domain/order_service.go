package domain

import (
	"context"
	"errors"
	"fmt"

	"go-canteen-api/src/infrastructure/log"
	"go-canteen-api/src/services/faults"
)

// ErrOrderNotFound is returned by stores when the requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// OrderStore is the persistence boundary for orders. Implementations assign
// ID, CreatedAt and UpdatedAt on Create and must keep ListAll sorted by
// creation time descending, reverse insertion order on equal timestamps.
type OrderStore interface {
	Create(ctx context.Context, order Order) (Order, error)
	ListAll(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, orderID string) (Order, error)
	UpdateStatus(ctx context.Context, orderID string, status Status) (Order, error)
}

// KitchenNotifier announces order activity to the kitchen display. Delivery
// is best effort; implementations must not fail the calling operation.
type KitchenNotifier interface {
	OrderPlaced(ctx context.Context, order Order)
	OrderStatusChanged(ctx context.Context, order Order, previous Status)
}

type OrderService interface {
	SubmitOrder(ctx context.Context, items []OrderLineItem, totalAmount *float64) (string, error)
	FetchOrders(ctx context.Context) ([]Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, next Status) (Order, error)
}

type orderService struct {
	logger   log.Logger
	store    OrderStore
	notifier KitchenNotifier
}

func NewOrderService(logger log.Logger, store OrderStore, notifier KitchenNotifier) *orderService {
	return &orderService{
		logger:   logger,
		store:    store,
		notifier: notifier,
	}
}

// SubmitOrder validates the cart payload, persists it with status Pending and
// returns the new order's ID. The total is caller-supplied and is not
// recomputed from the items.
func (s *orderService) SubmitOrder(ctx context.Context, items []OrderLineItem, totalAmount *float64) (string, error) {
	if err := validateSubmission(items, totalAmount); err != nil {
		s.logger.Warn(ctx, "Order rejected: "+err.Error())
		return "", err
	}

	created, err := s.store.Create(ctx, NewOrder(items, *totalAmount))
	if err != nil {
		s.logger.Exception(ctx, "Failed to save order", err)
		return "", err
	}

	s.notifier.OrderPlaced(ctx, created)

	s.logger.InfoWithExtra(ctx, "Order created", map[string]any{
		"OrderId":     created.ID,
		"TotalAmount": created.TotalAmount,
		"ItemCount":   len(created.Items),
	})
	return created.ID, nil
}

// FetchOrders returns every order, newest first.
func (s *orderService) FetchOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.store.ListAll(ctx)
	if err != nil {
		s.logger.Exception(ctx, "Failed to fetch orders", err)
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves an order along the lifecycle, rejecting transitions
// the state machine does not allow.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID string, next Status) (Order, error) {
	if orderID == "" {
		return Order{}, faults.NewValidation("Order ID is required.")
	}
	if !next.Valid() {
		return Order{}, faults.NewValidation(fmt.Sprintf("Unknown order status %q.", string(next)))
	}

	current, err := s.store.GetByID(ctx, orderID)
	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) {
			s.logger.Exception(ctx, "Failed to load order for status update", err)
		}
		return Order{}, err
	}
	if !current.Status.CanTransitionTo(next) {
		return Order{}, faults.NewValidation(fmt.Sprintf("Cannot change order status from %s to %s.", current.Status, next))
	}

	updated, err := s.store.UpdateStatus(ctx, orderID, next)
	if err != nil {
		if !errors.Is(err, ErrOrderNotFound) {
			s.logger.Exception(ctx, "Failed to update order status", err)
		}
		return Order{}, err
	}

	s.notifier.OrderStatusChanged(ctx, updated, current.Status)

	s.logger.InfoWithExtra(ctx, "Order status updated", map[string]any{
		"OrderId": updated.ID,
		"From":    string(current.Status),
		"To":      string(updated.Status),
	})
	return updated, nil
}

func validateSubmission(items []OrderLineItem, totalAmount *float64) error {
	if len(items) == 0 || totalAmount == nil {
		return faults.NewValidation("Missing required order data (items, totalAmount).")
	}
	if *totalAmount < 0 {
		return faults.NewValidation("Total amount must not be negative.")
	}
	for i, item := range items {
		if item.MenuItemID == "" || item.Name == "" {
			return faults.NewValidation(fmt.Sprintf("Order item %d is missing required fields (menuItemId, name).", i+1))
		}
		if item.Price < 0 {
			return faults.NewValidation(fmt.Sprintf("Order item %d has a negative price.", i+1))
		}
		if item.Quantity < 1 {
			return faults.NewValidation(fmt.Sprintf("Order item %d must have a quantity of at least 1.", i+1))
		}
	}
	return nil
}
