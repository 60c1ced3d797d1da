package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one flattened fact row: an order item joined with its order,
// customer and product.
type LineItem struct {
	OrderID      int64           `json:"order_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	OrderDate    time.Time       `json:"order_date"`
	ProductID    int64           `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineTotal    decimal.Decimal `json:"line_total"` // Quantity × UnitPrice.
}

// OrderTotal is the sum of an order's line totals.
type OrderTotal struct {
	OrderID      int64           `json:"order_id"`
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	OrderDate    time.Time       `json:"order_date"`
	Total        decimal.Decimal `json:"total"`
}

// CustomerRank is a customer's spend across all of their orders.
type CustomerRank struct {
	CustomerID   int64           `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	TotalSpent   decimal.Decimal `json:"total_spent"`
	OrdersCount  int             `json:"orders_count"`
}

// CustomerReport extends CustomerRank with the customer's city and average order value.
type CustomerReport struct {
	CustomerID        int64           `json:"customer_id"`
	CustomerName      string          `json:"customer_name"`
	City              string          `json:"city"`
	TotalSpent        decimal.Decimal `json:"total_spent"`
	OrdersCount       int             `json:"orders_count"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// ProductPerformance is the sold quantity and revenue of one product.
type ProductPerformance struct {
	ProductID   int64           `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	QtySold     int             `json:"qty_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CityReport aggregates customers and revenue per city.
type CityReport struct {
	City          string          `json:"city"`
	CustomerCount int             `json:"customer_count"`
	Revenue       decimal.Decimal `json:"revenue"`
}

// SalesSummary bundles every report computed from the same snapshot.
type SalesSummary struct {
	OrderTotals        []OrderTotal         `json:"order_totals"`
	TopCustomers       []CustomerRank       `json:"top_customers"`
	ProductPerformance []ProductPerformance `json:"product_performance"`
	CitySummary        []CityReport         `json:"city_summary"`
	CustomerReports    []CustomerReport     `json:"customer_reports"`
}
