// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"insight/internal/domain/entity"
)

// SalesRepository reads the base collections of the sales dataset.
// Implementations bound to a snapshot return the same data on every call.
type SalesRepository interface {
	// FindProducts returns every product.
	FindProducts(ctx context.Context) ([]entity.Product, error)

	// FindCustomers returns every customer.
	FindCustomers(ctx context.Context) ([]entity.Customer, error)

	// FindOrders returns every order.
	FindOrders(ctx context.Context) ([]entity.Order, error)

	// FindOrderItems returns every order item.
	FindOrderItems(ctx context.Context) ([]entity.OrderItem, error)
}
