package postgres

import (
	"context"

	"insight/internal/domain/entity"
	domainerrors "insight/internal/domain/errors"
	"insight/internal/domain/repository"
	"insight/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// salesRepository implements the domain.SalesRepository interface.
type salesRepository struct {
	db *gorm.DB
}

// NewSalesRepository is the constructor for salesRepository.
func NewSalesRepository(db *gorm.DB) repository.SalesRepository {
	return &salesRepository{db: db}
}

// FindProducts returns every product ordered by id.
func (repo *salesRepository) FindProducts(ctx context.Context) ([]entity.Product, error) {
	var rows []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read products")
	}

	products := make([]entity.Product, 0, len(rows))
	for i := range rows {
		products = append(products, toProductDomain(&rows[i]))
	}

	return products, nil
}

// FindCustomers returns every customer ordered by id.
func (repo *salesRepository) FindCustomers(ctx context.Context) ([]entity.Customer, error) {
	var rows []model.CustomerModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read customers")
	}

	customers := make([]entity.Customer, 0, len(rows))
	for i := range rows {
		customers = append(customers, toCustomerDomain(&rows[i]))
	}

	return customers, nil
}

// FindOrders returns every order ordered by id.
func (repo *salesRepository) FindOrders(ctx context.Context) ([]entity.Order, error) {
	var rows []model.OrderModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read orders")
	}

	orders := make([]entity.Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, toOrderDomain(&rows[i]))
	}

	return orders, nil
}

// FindOrderItems returns every order item in insertion order.
func (repo *salesRepository) FindOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	var rows []model.OrderItemModel
	if err := repo.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read order items")
	}

	items := make([]entity.OrderItem, 0, len(rows))
	for i := range rows {
		items = append(items, toOrderItemDomain(&rows[i]))
	}

	return items, nil
}

func toProductDomain(m *model.ProductModel) entity.Product {
	return entity.Product{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
	}
}

func toCustomerDomain(m *model.CustomerModel) entity.Customer {
	return entity.Customer{
		ID:   m.ID,
		Name: m.Name,
		City: m.City,
	}
}

func toOrderDomain(m *model.OrderModel) entity.Order {
	return entity.Order{
		ID:         m.ID,
		CustomerID: m.CustomerID,
		Date:       m.OrderDate,
	}
}

func toOrderItemDomain(m *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		OrderID:   m.OrderID,
		ProductID: m.ProductID,
		Quantity:  m.Quantity,
	}
}
