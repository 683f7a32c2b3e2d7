package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// LedgerSvcFacade is the ledger engine: it executes deposit, withdraw and
// transfer as atomic operations against the account store and transaction log.
// Every call either commits fully or leaves no trace.
type LedgerSvcFacade interface {
	// Deposit credits amount to the account and returns the updated account
	// with the appended transaction record.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, userID string) (*domain.Account, *domain.Transaction, error)

	// Withdraw debits amount from the account. Fails with ErrInsufficientFunds
	// when amount exceeds the balance; withdrawing the exact balance is allowed.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, userID string) (*domain.Account, *domain.Transaction, error)

	// Transfer moves amount between two distinct accounts, producing a paired
	// transfer_out/transfer_in record set.
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, userID string) (*domain.TransferResult, error)
}
