package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// LedgerRepository executes money-movement operations as all-or-nothing units
// of work against the account store and the transaction log. Every method is a
// single transition Pending -> Committed|Rejected: a rejected operation leaves
// the store exactly as it was before the call.
type LedgerRepository interface {
	// Deposit atomically increases the account balance and appends a deposit
	// record. Returns ErrNotFound when the account is missing.
	Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error)

	// Withdraw atomically decreases the account balance and appends a withdraw
	// record. The balance check and decrement are one conditional update, so
	// concurrent withdrawals can never overdraw. Returns ErrInsufficientFunds
	// when the balance cannot cover the amount.
	Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error)

	// Transfer atomically moves amount between two accounts and appends the
	// paired transfer_out/transfer_in records. All four effects become visible
	// together or not at all.
	Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, outDescription, inDescription string, userID string, now time.Time) (*domain.TransferResult, error)
}
