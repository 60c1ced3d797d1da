package csvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"insight/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDir = "../../../../data/sample"

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func writeDataset(t *testing.T, dir string) {
	t.Helper()
	writeFile(t, dir, ProductsFile, "id,name,category,price\n1,Mouse,Accessories,350.50\n2,Monitor,Displays,7000\n")
	writeFile(t, dir, CustomersFile, "id,name,city\n1,Acme Corp,Johannesburg\n")
	writeFile(t, dir, OrdersFile, "id,customer_id,date\n1,1,2024-01-10\n")
	writeFile(t, dir, OrderItemsFile, "order_id,product_id,quantity\n1,1,10\n1,2,1\n")
}

func TestCSVLoader_LoadProducts(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ProductsFile, "id,name,category,price\n1,Mouse,Accessories,350.50\n2, Monitor ,Displays,7000\n")

	products, err := NewCSVLoader(tmpDir).LoadProducts()
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Accessories", products[0].Category)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("350.5")))
	assert.Equal(t, "Monitor", products[1].Name)
}

func TestCSVLoader_LoadOrders(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, OrdersFile, "id,customer_id,date\n1,1,2024-01-10\n6,2,2024-03-15\n")

	orders, err := NewCSVLoader(tmpDir).LoadOrders()
	require.NoError(t, err)

	require.Len(t, orders, 2)
	assert.Equal(t, int64(6), orders[1].ID)
	assert.Equal(t, int64(2), orders[1].CustomerID)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), orders[1].Date)
}

func TestCSVLoader_HeaderOnly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, OrderItemsFile, "order_id,product_id,quantity\n")

	items, err := NewCSVLoader(tmpDir).LoadOrderItems()
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCSVLoader_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "empty file", content: "", errMsg: "is empty"},
		{name: "wrong header", content: "id,title,city\n1,Acme,Durban\n", errMsg: "header column 2"},
		{name: "missing column", content: "id,name,city\n1,Acme\n", errMsg: "invalid customers.csv format"},
		{name: "bad id", content: "id,name,city\nx,Acme,Durban\n", errMsg: "invalid id in customers.csv at line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFile(t, tmpDir, CustomersFile, tt.content)

			_, err := NewCSVLoader(tmpDir).LoadCustomers()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestCSVLoader_InvalidValues(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, tmpDir, ProductsFile, "id,name,category,price\n1,Mouse,Accessories,cheap\n")
	writeFile(t, tmpDir, OrdersFile, "id,customer_id,date\n1,1,10/01/2024\n")
	writeFile(t, tmpDir, OrderItemsFile, "order_id,product_id,quantity\n1,1,many\n")
	loader := NewCSVLoader(tmpDir)

	_, err := loader.LoadProducts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid price in products.csv at line 2")

	_, err = loader.LoadOrders()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date in orders.csv at line 2")

	_, err = loader.LoadOrderItems()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid quantity in order_items.csv at line 2")
}

func TestCSVLoader_Load(t *testing.T) {
	tmpDir := t.TempDir()
	writeDataset(t, tmpDir)

	ds, err := NewCSVLoader(tmpDir).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Products, 2)
	assert.Len(t, ds.Customers, 1)
	assert.Len(t, ds.Orders, 1)
	assert.Len(t, ds.OrderItems, 2)
}

func TestCSVLoader_LoadMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeDataset(t, tmpDir)
	require.NoError(t, os.Remove(filepath.Join(tmpDir, OrderItemsFile)))

	ds, err := NewCSVLoader(tmpDir).Load(context.Background())
	require.Error(t, err)
	assert.Nil(t, ds)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCSVLoader_LoadSample(t *testing.T) {
	ds, err := NewCSVLoader(sampleDir).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, ds.Products, 6)
	assert.Len(t, ds.Customers, 4)
	assert.Len(t, ds.Orders, 6)
	assert.Len(t, ds.OrderItems, 11)
}

func TestNewTransactionManagerForDir(t *testing.T) {
	tmpDir := t.TempDir()
	writeDataset(t, tmpDir)
	tm := NewTransactionManagerForDir(tmpDir)

	err := tm.Snapshot(context.Background(), func(f repository.RepositoryFactory) error {
		customers, err := f.SalesRepo().FindCustomers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", customers[0].Name)

		return nil
	})
	require.NoError(t, err)
}
