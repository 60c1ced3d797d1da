// Package csvstore loads the sales dataset from a directory of CSV files.
package csvstore

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"insight/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// File names inside the dataset directory.
const (
	ProductsFile   = "products.csv"
	CustomersFile  = "customers.csv"
	OrdersFile     = "orders.csv"
	OrderItemsFile = "order_items.csv"
)

// DateLayout is the order date format.
const DateLayout = "2006-01-02"

var (
	productsHeader   = []string{"id", "name", "category", "price"}
	customersHeader  = []string{"id", "name", "city"}
	ordersHeader     = []string{"id", "customer_id", "date"}
	orderItemsHeader = []string{"order_id", "product_id", "quantity"}
)

// CSVLoader handles loading of the sales dataset from CSV files
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a new CSV loader for the given data directory
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load reads all four files. Either the whole dataset is returned or an error.
func (l *CSVLoader) Load(ctx context.Context) (*entity.Dataset, error) {
	products, err := l.LoadProducts()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	customers, err := l.LoadCustomers()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	orders, err := l.LoadOrders()
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	items, err := l.LoadOrderItems()
	if err != nil {
		return nil, err
	}

	return &entity.Dataset{
		Products:   products,
		Customers:  customers,
		Orders:     orders,
		OrderItems: items,
	}, nil
}

// LoadProducts loads products from products.csv
// Expected CSV format: id,name,category,price
func (l *CSVLoader) LoadProducts() ([]entity.Product, error) {
	return readRecords(l.path(ProductsFile), productsHeader, func(record []string, line int) (entity.Product, error) {
		id, err := parseID(record[0], ProductsFile, "id", line)
		if err != nil {
			return entity.Product{}, err
		}

		price, err := decimal.NewFromString(strings.TrimSpace(record[3]))
		if err != nil {
			return entity.Product{}, errors.Wrapf(err, "invalid price in %s at line %d", ProductsFile, line)
		}

		return entity.Product{
			ID:       id,
			Name:     strings.TrimSpace(record[1]),
			Category: strings.TrimSpace(record[2]),
			Price:    price,
		}, nil
	})
}

// LoadCustomers loads customers from customers.csv
// Expected CSV format: id,name,city
func (l *CSVLoader) LoadCustomers() ([]entity.Customer, error) {
	return readRecords(l.path(CustomersFile), customersHeader, func(record []string, line int) (entity.Customer, error) {
		id, err := parseID(record[0], CustomersFile, "id", line)
		if err != nil {
			return entity.Customer{}, err
		}

		return entity.Customer{
			ID:   id,
			Name: strings.TrimSpace(record[1]),
			City: strings.TrimSpace(record[2]),
		}, nil
	})
}

// LoadOrders loads orders from orders.csv
// Expected CSV format: id,customer_id,date
func (l *CSVLoader) LoadOrders() ([]entity.Order, error) {
	return readRecords(l.path(OrdersFile), ordersHeader, func(record []string, line int) (entity.Order, error) {
		id, err := parseID(record[0], OrdersFile, "id", line)
		if err != nil {
			return entity.Order{}, err
		}

		customerID, err := parseID(record[1], OrdersFile, "customer_id", line)
		if err != nil {
			return entity.Order{}, err
		}

		date, err := time.Parse(DateLayout, strings.TrimSpace(record[2]))
		if err != nil {
			return entity.Order{}, errors.Wrapf(err, "invalid date in %s at line %d", OrdersFile, line)
		}

		return entity.Order{
			ID:         id,
			CustomerID: customerID,
			Date:       date,
		}, nil
	})
}

// LoadOrderItems loads order items from order_items.csv
// Expected CSV format: order_id,product_id,quantity
func (l *CSVLoader) LoadOrderItems() ([]entity.OrderItem, error) {
	return readRecords(l.path(OrderItemsFile), orderItemsHeader, func(record []string, line int) (entity.OrderItem, error) {
		orderID, err := parseID(record[0], OrderItemsFile, "order_id", line)
		if err != nil {
			return entity.OrderItem{}, err
		}

		productID, err := parseID(record[1], OrderItemsFile, "product_id", line)
		if err != nil {
			return entity.OrderItem{}, err
		}

		quantity, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			return entity.OrderItem{}, errors.Wrapf(err, "invalid quantity in %s at line %d", OrderItemsFile, line)
		}

		return entity.OrderItem{
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  quantity,
		}, nil
	})
}

func (l *CSVLoader) path(name string) string {
	return filepath.Join(l.dataDir, name)
}

// readRecords reads a CSV file whose first row must equal header.
func readRecords[T any](path string, header []string, parse func(record []string, line int) (T, error)) ([]T, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(header)
	name := filepath.Base(path)

	got, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.Errorf("%s is empty: expected header %s", name, strings.Join(header, ","))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s header", name)
	}
	if err := checkHeader(got, header); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", name)
	}

	rows := []T{}
	lineNum := 1 // Start at 1 because we read the header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.Wrapf(readErr, "invalid %s format", name)
		}
		lineNum++

		row, parseErr := parse(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func checkHeader(got, want []string) error {
	for i := range want {
		col := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(got[i], "\ufeff")))
		if col != want[i] {
			return errors.Errorf("header column %d: expected %q, got %q", i+1, want[i], got[i])
		}
	}

	return nil
}

func parseID(value, file, column string, line int) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s in %s at line %d", column, file, line)
	}

	return id, nil
}
