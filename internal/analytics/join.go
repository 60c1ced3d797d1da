package analytics

import (
	"fmt"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// Flatten joins every order item with its order, the order's customer and the product.
// A foreign key that does not resolve is a ReferenceError; no row is ever dropped.
// The output follows the order of items.
func Flatten(
	orders []entity.Order,
	items []entity.OrderItem,
	products []entity.Product,
	customers []entity.Customer,
) ([]entity.LineItem, error) {
	productByID, err := indexByID(products, "product", func(p entity.Product) int64 { return p.ID })
	if err != nil {
		return nil, err
	}

	customerByID, err := indexByID(customers, "customer", func(c entity.Customer) int64 { return c.ID })
	if err != nil {
		return nil, err
	}

	orderByID, err := indexByID(orders, "order", func(o entity.Order) int64 { return o.ID })
	if err != nil {
		return nil, err
	}

	lines := make([]entity.LineItem, 0, len(items))

	for i, item := range items {
		order, ok := orderByID[item.OrderID]
		if !ok {
			return nil, &domainerrors.ReferenceError{Entity: "order", Key: item.OrderID, Referrer: itemRef(i)}
		}

		product, ok := productByID[item.ProductID]
		if !ok {
			return nil, &domainerrors.ReferenceError{Entity: "product", Key: item.ProductID, Referrer: itemRef(i)}
		}

		customer, ok := customerByID[order.CustomerID]
		if !ok {
			return nil, &domainerrors.ReferenceError{
				Entity:   "customer",
				Key:      order.CustomerID,
				Referrer: fmt.Sprintf("order %d", order.ID),
			}
		}

		lines = append(lines, entity.LineItem{
			OrderID:      order.ID,
			CustomerID:   customer.ID,
			CustomerName: customer.Name,
			OrderDate:    order.Date,
			ProductID:    product.ID,
			ProductName:  product.Name,
			Category:     product.Category,
			Quantity:     item.Quantity,
			UnitPrice:    product.Price,
			LineTotal:    product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}

	return lines, nil
}

func itemRef(index int) string {
	return fmt.Sprintf("order_item #%d", index)
}
