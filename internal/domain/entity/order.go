package entity

import "time"

// Order is placed by exactly one customer.
type Order struct {
	ID         int64     `json:"id" validate:"gt=0"`
	CustomerID int64     `json:"customer_id" validate:"gt=0"` // References Customer.ID.
	Date       time.Time `json:"date" validate:"required"`
}

// OrderItem is one product line of an order.
type OrderItem struct {
	OrderID   int64 `json:"order_id" validate:"gt=0"`   // References Order.ID.
	ProductID int64 `json:"product_id" validate:"gt=0"` // References Product.ID.
	Quantity  int   `json:"quantity" validate:"gt=0"`
}
