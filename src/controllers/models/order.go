package models

// OrderRequest is the cart payload submitted by the client UI. Pointer fields
// distinguish "absent" from a zero value, which the validation rules need.
type OrderRequest struct {
	Items       []OrderItemRequest `json:"items"`
	TotalAmount *float64           `json:"totalAmount"`
}

type OrderItemRequest struct {
	MenuItemID string   `json:"menuItemId"`
	Name       string   `json:"name"`
	Price      *float64 `json:"price"`
	Quantity   int      `json:"quantity"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

type MenuItemRequest struct {
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
