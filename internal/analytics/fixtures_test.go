package analytics

import (
	"testing"
	"time"

	"insight/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// sampleDataset is the reference dataset: 6 products, 4 customers in 3 cities,
// 6 orders and 11 order items.
func sampleDataset() *entity.Dataset {
	return &entity.Dataset{
		Products: []entity.Product{
			{ID: 1, Name: "Laptop Pro", Category: "Computers", Price: price("25000")},
			{ID: 2, Name: "Laptop Air", Category: "Computers", Price: price("18000")},
			{ID: 3, Name: "Mouse", Category: "Accessories", Price: price("350")},
			{ID: 4, Name: "Keyboard", Category: "Accessories", Price: price("1200")},
			{ID: 5, Name: "Monitor", Category: "Displays", Price: price("7000")},
			{ID: 6, Name: "USB-C Hub", Category: "Accessories", Price: price("600")},
		},
		Customers: []entity.Customer{
			{ID: 1, Name: "Acme Corp", City: "Johannesburg"},
			{ID: 2, Name: "Global Dynamics", City: "Cape Town"},
			{ID: 3, Name: "Innotech", City: "Johannesburg"},
			{ID: 4, Name: "Blue Ocean Ltd", City: "Durban"},
		},
		Orders: []entity.Order{
			{ID: 1, CustomerID: 1, Date: day(2024, time.January, 10)},
			{ID: 2, CustomerID: 1, Date: day(2024, time.February, 14)},
			{ID: 3, CustomerID: 2, Date: day(2024, time.January, 22)},
			{ID: 4, CustomerID: 3, Date: day(2024, time.March, 3)},
			{ID: 5, CustomerID: 4, Date: day(2024, time.February, 1)},
			{ID: 6, CustomerID: 2, Date: day(2024, time.March, 15)},
		},
		OrderItems: []entity.OrderItem{
			{OrderID: 1, ProductID: 1, Quantity: 5},
			{OrderID: 1, ProductID: 3, Quantity: 10},
			{OrderID: 2, ProductID: 2, Quantity: 3},
			{OrderID: 2, ProductID: 6, Quantity: 5},
			{OrderID: 3, ProductID: 5, Quantity: 2},
			{OrderID: 3, ProductID: 3, Quantity: 15},
			{OrderID: 4, ProductID: 1, Quantity: 1},
			{OrderID: 4, ProductID: 4, Quantity: 3},
			{OrderID: 5, ProductID: 2, Quantity: 2},
			{OrderID: 5, ProductID: 5, Quantity: 1},
			{OrderID: 6, ProductID: 4, Quantity: 5},
		},
	}
}

func mustFlatten(t *testing.T, ds *entity.Dataset) []entity.LineItem {
	t.Helper()

	lines, err := Flatten(ds.Orders, ds.OrderItems, ds.Products, ds.Customers)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}

	return lines
}

func mustOrderTotals(t *testing.T, ds *entity.Dataset) []entity.OrderTotal {
	t.Helper()

	totals, err := OrderTotals(mustFlatten(t, ds))
	if err != nil {
		t.Fatalf("OrderTotals: %v", err)
	}

	return totals
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(want).Equal(got),
		append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}
