package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/middleware"
)

const (
	depositDescription    = "Deposit made"
	withdrawalDescription = "Withdrawal made"
)

// ledgerService validates money-movement requests and delegates the atomic
// execution to the ledger repository. It never touches balances itself.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepository
}

// NewLedgerService creates a new ledger service.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepository) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return nil
}

// Deposit credits amount to the account.
func (s *ledgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, userID string) (*domain.Account, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := validateAmount(amount); err != nil {
		return nil, nil, err
	}

	account, txn, err := s.ledgerRepo.Deposit(ctx, accountID, amount, depositDescription, userID, time.Now().UTC())
	if err != nil {
		logger.Warn("Deposit failed", "account_id", accountID, "error", err)
		return nil, nil, err
	}
	logger.Info("Deposit committed", "account_id", accountID, "transaction_id", txn.TransactionID)
	return account, txn, nil
}

// Withdraw debits amount from the account. Withdrawing the exact balance is
// allowed; anything above it is rejected with ErrInsufficientFunds.
func (s *ledgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, userID string) (*domain.Account, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := validateAmount(amount); err != nil {
		return nil, nil, err
	}

	account, txn, err := s.ledgerRepo.Withdraw(ctx, accountID, amount, withdrawalDescription, userID, time.Now().UTC())
	if err != nil {
		logger.Warn("Withdrawal failed", "account_id", accountID, "error", err)
		return nil, nil, err
	}
	logger.Info("Withdrawal committed", "account_id", accountID, "transaction_id", txn.TransactionID)
	return account, txn, nil
}

// Transfer moves amount between two distinct accounts.
func (s *ledgerService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, userID string) (*domain.TransferResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: source and destination accounts must differ", apperrors.ErrValidation)
	}

	outDescription := fmt.Sprintf("Transfer to account %s", toAccountID)
	inDescription := fmt.Sprintf("Transfer from account %s", fromAccountID)

	result, err := s.ledgerRepo.Transfer(ctx, fromAccountID, toAccountID, amount, outDescription, inDescription, userID, time.Now().UTC())
	if err != nil {
		logger.Warn("Transfer failed", "from_account", fromAccountID, "to_account", toAccountID, "error", err)
		return nil, err
	}
	logger.Info("Transfer committed",
		"from_account", fromAccountID,
		"to_account", toAccountID,
		"out_leg", result.OutLeg.TransactionID,
		"in_leg", result.InLeg.TransactionID,
	)
	return result, nil
}
