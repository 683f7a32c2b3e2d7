package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// TransactionAppender defines the single write operation of the transaction log.
type TransactionAppender interface {
	// AppendInTx inserts an immutable transaction record inside the given
	// storage transaction and returns it with its generated id and timestamp.
	// The record commits or rolls back together with the balance change it
	// belongs to.
	AppendInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error)
}

// TransactionReader defines read operations over the transaction log.
type TransactionReader interface {
	// ListByAccount returns every transaction for an account, newest first.
	ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// ListRecent returns the most recent transactions across all accounts,
	// newest first, joined with account and customer display info.
	ListRecent(ctx context.Context, limit int) ([]domain.TransactionDetail, error)

	// ListInRange returns transactions with created_at in [from, to), oldest
	// first, joined with account and customer display info.
	ListInRange(ctx context.Context, from, to time.Time) ([]domain.TransactionDetail, error)
}

// TransactionRepositoryFacade combines the transaction log interfaces.
type TransactionRepositoryFacade interface {
	TransactionAppender
	TransactionReader
}
