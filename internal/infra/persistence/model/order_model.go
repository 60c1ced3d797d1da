package model

import (
	"time"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID         int64     `gorm:"primaryKey"`
	CustomerID int64     `gorm:"not null;index:idx_orders_on_customer"`
	OrderDate  time.Time `gorm:"column:order_date;type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// ID only fixes the row order; the same (order, product) pair may repeat.
type OrderItemModel struct {
	ID        int64 `gorm:"primaryKey"`
	OrderID   int64 `gorm:"not null;index:idx_order_items_on_order"`
	ProductID int64 `gorm:"not null;index:idx_order_items_on_product"`
	Quantity  int   `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
