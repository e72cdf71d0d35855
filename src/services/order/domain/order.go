package domain

import "time"

type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo encodes the order lifecycle:
// Pending -> Preparing -> Ready -> Completed, with Cancelled reachable
// from any non-terminal state.
func (s Status) CanTransitionTo(next Status) bool {
	if !s.Valid() || !next.Valid() || s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusPreparing
	case StatusPreparing:
		return next == StatusReady
	case StatusReady:
		return next == StatusCompleted
	}
	return false
}

// OrderLineItem is one menu selection inside an order. Name and price are
// snapshots taken at order time, so later menu edits do not alter history.
type OrderLineItem struct {
	MenuItemID string  `json:"menuItemId"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type Order struct {
	ID          string          `json:"id"`
	Items       []OrderLineItem `json:"items"`
	TotalAmount float64         `json:"totalAmount"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewOrder builds an unsaved order in the initial state. The store assigns
// ID and timestamps on create.
func NewOrder(items []OrderLineItem, totalAmount float64) Order {
	return Order{
		Items:       items,
		TotalAmount: totalAmount,
		Status:      StatusPending,
	}
}
