package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager defines the lifecycle of a storage transaction.
// Repositories that participate in multi-step atomic operations embed it.
type TransactionManager interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction.
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction. Calling it after a successful commit
	// is a no-op.
	Rollback(ctx context.Context, tx pgx.Tx) error
}
