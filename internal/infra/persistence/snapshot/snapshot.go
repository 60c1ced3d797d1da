// Package snapshot serves the sales repositories from a dataset held in memory.
package snapshot

import (
	"context"
	"slices"

	"insight/internal/domain/entity"
	"insight/internal/domain/repository"

	"github.com/pkg/errors"
)

// LoadFunc materialises one complete dataset.
type LoadFunc func(ctx context.Context) (*entity.Dataset, error)

type transactionManager struct {
	load LoadFunc
}

type repositoryFactory struct {
	repo *salesRepository
}

// NewTransactionManager returns a TransactionManager that calls load once per Snapshot.
// load must return the whole dataset before any repository is handed out.
func NewTransactionManager(load LoadFunc) repository.TransactionManager {
	return &transactionManager{load: load}
}

// NewStatic returns a TransactionManager that always serves ds.
func NewStatic(ds *entity.Dataset) repository.TransactionManager {
	return NewTransactionManager(func(context.Context) (*entity.Dataset, error) {
		return ds, nil
	})
}

// Snapshot loads the dataset and runs fn against it.
func (tm *transactionManager) Snapshot(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	ds, err := tm.load(ctx)
	if err != nil {
		return err
	}
	if ds == nil {
		ds = &entity.Dataset{}
	}

	return fn(&repositoryFactory{repo: &salesRepository{ds: ds}})
}

func (f *repositoryFactory) SalesRepo() repository.SalesRepository {
	return f.repo
}

// salesRepository returns copies so callers cannot mutate the snapshot.
type salesRepository struct {
	ds *entity.Dataset
}

func (r *salesRepository) FindProducts(ctx context.Context) ([]entity.Product, error) {
	return cloneRows(ctx, r.ds.Products)
}

func (r *salesRepository) FindCustomers(ctx context.Context) ([]entity.Customer, error) {
	return cloneRows(ctx, r.ds.Customers)
}

func (r *salesRepository) FindOrders(ctx context.Context) ([]entity.Order, error) {
	return cloneRows(ctx, r.ds.Orders)
}

func (r *salesRepository) FindOrderItems(ctx context.Context) ([]entity.OrderItem, error) {
	return cloneRows(ctx, r.ds.OrderItems)
}

func cloneRows[T any](ctx context.Context, rows []T) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if rows == nil {
		return []T{}, nil
	}

	return slices.Clone(rows), nil
}
