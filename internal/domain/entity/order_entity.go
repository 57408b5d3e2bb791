package entity

import "time"

// Order is a customer order header. Line items live in OrderItem.
type Order struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	TotalAmount float64   `json:"total_amount"`
	UserID      *string   `json:"user_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderItem is one product line on an order. Quantity and Price must be
// positive; that is the one piece of domain validation the API enforces
// beyond field presence.
type OrderItem struct {
	ID        string    `json:"id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	OrderID   string    `json:"order_id"`
	ProductID string    `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
