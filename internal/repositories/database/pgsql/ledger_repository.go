package pgsql

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
)

// PgxLedgerRepository executes money movements as single database transactions.
// It composes the account and transaction repositories so the balance change
// and the ledger record always commit or roll back together.
type PgxLedgerRepository struct {
	BaseRepository
	accounts     *PgxAccountRepository
	transactions *PgxTransactionRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool, accounts *PgxAccountRepository, transactions *PgxTransactionRepository) *PgxLedgerRepository {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accounts:       accounts,
		transactions:   transactions,
	}
}

var _ portsrepo.LedgerRepository = (*PgxLedgerRepository)(nil)

// Deposit atomically credits the account and appends the deposit record.
func (r *PgxLedgerRepository) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	return r.adjustAndRecord(ctx, accountID, amount, domain.Deposit, description, userID, now)
}

// Withdraw atomically debits the account and appends the withdraw record. The
// conditional balance update inside AdjustBalanceInTx guarantees the balance
// never goes negative, even under concurrent withdrawals.
func (r *PgxLedgerRepository) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	return r.adjustAndRecord(ctx, accountID, amount.Neg(), domain.Withdraw, description, userID, now)
}

func (r *PgxLedgerRepository) adjustAndRecord(ctx context.Context, accountID string, delta decimal.Decimal, txnType domain.TransactionType, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			slog.ErrorContext(ctx, "Failed to rollback ledger transaction", "error", rbErr, "account_id", accountID)
		}
	}()

	account, err := r.accounts.AdjustBalanceInTx(ctx, tx, accountID, delta, userID)
	if err != nil {
		return nil, nil, err
	}

	record, err := r.transactions.AppendInTx(ctx, tx, domain.Transaction{
		AccountID:   accountID,
		Type:        txnType,
		Amount:      delta.Abs(),
		Description: description,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, nil, err
	}
	return account, record, nil
}

// Transfer atomically moves amount from one account to another and appends the
// paired transfer_out/transfer_in records. Both rows are locked up front in
// ascending id order, then the source balance is checked against the locked
// snapshot, so the debit can never overdraw and opposing transfers cannot
// deadlock.
func (r *PgxLedgerRepository) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, outDescription, inDescription string, userID string, now time.Time) (*domain.TransferResult, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if rbErr := r.Rollback(ctx, tx); rbErr != nil {
			slog.ErrorContext(ctx, "Failed to rollback transfer transaction", "error", rbErr, "from_account", fromAccountID, "to_account", toAccountID)
		}
	}()

	locked, err := r.accounts.LockAccountsForUpdate(ctx, tx, []string{fromAccountID, toAccountID})
	if err != nil {
		return nil, err
	}

	source := locked[fromAccountID]
	if source.Balance.LessThan(amount) {
		shortfall := amount.Sub(source.Balance)
		return nil, fmt.Errorf("%w: account %s is short by %s", apperrors.ErrInsufficientFunds, fromAccountID, shortfall.String())
	}

	fromAccount, err := r.accounts.AdjustBalanceInTx(ctx, tx, fromAccountID, amount.Neg(), userID)
	if err != nil {
		return nil, err
	}
	toAccount, err := r.accounts.AdjustBalanceInTx(ctx, tx, toAccountID, amount, userID)
	if err != nil {
		return nil, err
	}

	outLeg, err := r.transactions.AppendInTx(ctx, tx, domain.Transaction{
		AccountID:   fromAccountID,
		Type:        domain.TransferOut,
		Amount:      amount,
		Description: outDescription,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, err
	}
	inLeg, err := r.transactions.AppendInTx(ctx, tx, domain.Transaction{
		AccountID:   toAccountID,
		Type:        domain.TransferIn,
		Amount:      amount,
		Description: inDescription,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.TransferResult{
		FromAccount: *fromAccount,
		ToAccount:   *toAccount,
		OutLeg:      *outLeg,
		InLeg:       *inLeg,
	}, nil
}
