package menu

import (
	"context"
	"time"
)

type MenuItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuRepository interface {
	GetAll(ctx context.Context) ([]MenuItem, error)
	Add(ctx context.Context, item MenuItem) (MenuItem, error)
	// Seed inserts the item only if no item with the same name exists.
	Seed(ctx context.Context, item MenuItem) error
}

// DefaultMenu is the canteen's starter menu, seeded on boot so a fresh
// database serves something immediately.
func DefaultMenu() []MenuItem {
	return []MenuItem{
		{Name: "Vegetable Samosa", Price: 1.50, Category: "Appetizer"},
		{Name: "Chicken Biryani", Price: 8.99, Category: "Main Course"},
		{Name: "Paneer Tikka Masala", Price: 7.50, Category: "Main Course"},
		{Name: "Mango Lassi", Price: 3.00, Category: "Drink"},
		{Name: "Coke", Price: 1.25, Category: "Drink"},
	}
}
