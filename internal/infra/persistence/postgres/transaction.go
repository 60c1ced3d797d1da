// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"

	"insight/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// snapshotOptions pins every read of one pipeline run to the same MVCC snapshot.
var snapshotOptions = &sql.TxOptions{
	Isolation: sql.LevelRepeatableRead,
	ReadOnly:  true,
}

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one snapshot transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

// SalesRepo creates a sales repository bound to the transaction.
func (f *gormRepositoryFactory) SalesRepo() repository.SalesRepository {
	return NewSalesRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Snapshot runs fn inside a REPEATABLE READ, READ ONLY transaction, on a replica when
// replicas are configured. The transaction is always rolled back.
func (tm *gormTransactionManager) Snapshot(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.Clauses(dbresolver.Read).WithContext(ctx).Begin(snapshotOptions)
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin snapshot transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	err := fn(&gormRepositoryFactory{tx: tx})
	if rbErr := tx.Rollback().Error; rbErr != nil && err == nil && !errors.Is(rbErr, sql.ErrTxDone) {
		return errors.Wrap(rbErr, "failed to release snapshot transaction")
	}

	return err
}
