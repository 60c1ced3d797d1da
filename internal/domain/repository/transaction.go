package repository

import "context"

// TransactionManager hands out repositories bound to one consistent, read-only
// snapshot of the dataset. Writers appending orders while fn runs are not visible to it.
type TransactionManager interface {
	// Snapshot runs fn against a single snapshot. The snapshot is released when fn returns.
	Snapshot(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to the current snapshot.
type RepositoryFactory interface {
	// SalesRepo returns a SalesRepository reading from the current snapshot.
	SalesRepo() SalesRepository
}
