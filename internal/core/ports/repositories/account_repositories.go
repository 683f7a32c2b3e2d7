package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByCustomer retrieves every account owned by a customer.
	ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountTransactionSupport defines the operations the ledger repository uses
// inside a storage transaction.
type AccountTransactionSupport interface {
	// LockAccountsForUpdate selects the given accounts FOR UPDATE in ascending
	// account-id order, so opposing transfers on the same pair never deadlock.
	// Returns ErrNotFound (wrapped) if any requested account is missing.
	LockAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// AdjustBalanceInTx applies delta to an account balance as a single
	// conditional update: the write only happens when the resulting balance is
	// non-negative. Returns the updated account, ErrInsufficientFunds when the
	// condition fails, or ErrNotFound when the account does not exist.
	AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, userID string) (*domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}
