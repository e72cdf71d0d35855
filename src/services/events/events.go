package events

import (
	"errors"
	"time"
)

const (
	// Routing keys for kitchen display notifications
	OrderPlaced        = "order.placed"
	OrderStatusChanged = "order.status.changed"
)

type OrderPlacedEvent struct {
	OrderID     string    `json:"orderId"`
	TotalAmount float64   `json:"totalAmount"`
	ItemCount   int       `json:"itemCount"`
	Status      string    `json:"status"`
	Version     int       `json:"version"`
	TimeStamp   time.Time `json:"timestamp"`
}

func (e *OrderPlacedEvent) Validate() error {
	if e.OrderID == "" || e.ItemCount <= 0 || e.Status == "" {
		return errors.New("missing required fields in OrderPlacedEvent")
	}
	return nil
}

type OrderStatusChangedEvent struct {
	OrderID   string    `json:"orderId"`
	OldStatus string    `json:"oldStatus"`
	NewStatus string    `json:"newStatus"`
	Version   int       `json:"version"`
	TimeStamp time.Time `json:"timestamp"`
}

func (e *OrderStatusChangedEvent) Validate() error {
	if e.OrderID == "" || e.OldStatus == "" || e.NewStatus == "" {
		return errors.New("missing required fields in OrderStatusChangedEvent")
	}
	return nil
}
