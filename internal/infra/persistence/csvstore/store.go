package csvstore

import (
	"insight/config"
	"insight/internal/domain/repository"
	"insight/internal/infra/persistence/snapshot"
)

// NewTransactionManager serves snapshots read from cfg.Dataset.Path.
// Each Snapshot re-reads the directory, so replaced files are picked up by the next run.
func NewTransactionManager(cfg *config.Config) repository.TransactionManager {
	return NewTransactionManagerForDir(cfg.Dataset.Path)
}

// NewTransactionManagerForDir serves snapshots read from dataDir.
func NewTransactionManagerForDir(dataDir string) repository.TransactionManager {
	return snapshot.NewTransactionManager(NewCSVLoader(dataDir).Load)
}
