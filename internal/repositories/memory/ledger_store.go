// Package memory provides an in-process implementation of the ledger
// repository. It backs tests that exercise concurrent money movement without a
// database, and enforces the same guarantees as the postgres implementation:
// conditional balance updates and a fixed lock order for transfers.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
)

type lockedAccount struct {
	mu      sync.Mutex
	account domain.Account
}

// LedgerStore is an in-memory account store and transaction log. Each account
// carries its own mutex; operations touching two accounts always lock them in
// ascending account-id order.
type LedgerStore struct {
	mu       sync.RWMutex // guards the maps and the log, not balances
	accounts map[string]*lockedAccount

	logMu  sync.Mutex
	log    []domain.Transaction
	nextID int64
}

func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		accounts: make(map[string]*lockedAccount),
		nextID:   1,
	}
}

var _ portsrepo.LedgerRepository = (*LedgerStore)(nil)

// AddAccount seeds an account into the store.
func (s *LedgerStore) AddAccount(account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.AccountID] = &lockedAccount{account: account}
}

// GetAccount returns a copy of the account's current state.
func (s *LedgerStore) GetAccount(accountID string) (*domain.Account, error) {
	s.mu.RLock()
	entry, ok := s.accounts[accountID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	acc := entry.account
	return &acc, nil
}

// Transactions returns a copy of the log entries for an account, in append order.
func (s *LedgerStore) Transactions(accountID string) []domain.Transaction {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	out := []domain.Transaction{}
	for _, txn := range s.log {
		if txn.AccountID == accountID {
			out = append(out, txn)
		}
	}
	return out
}

func (s *LedgerStore) lookup(accountID string) (*lockedAccount, error) {
	s.mu.RLock()
	entry, ok := s.accounts[accountID]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return entry, nil
}

func (s *LedgerStore) append(txn domain.Transaction) domain.Transaction {
	s.logMu.Lock()
	defer s.logMu.Unlock()
	txn.TransactionID = s.nextID
	s.nextID++
	s.log = append(s.log, txn)
	return txn
}

// Deposit credits the account and appends a deposit record under the account lock.
func (s *LedgerStore) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	return s.adjust(accountID, amount, domain.Deposit, description, userID, now)
}

// Withdraw debits the account if and only if the balance covers the amount.
// The check and the decrement happen under the same lock, so concurrent
// withdrawals can never overdraw.
func (s *LedgerStore) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	return s.adjust(accountID, amount.Neg(), domain.Withdraw, description, userID, now)
}

func (s *LedgerStore) adjust(accountID string, delta decimal.Decimal, txnType domain.TransactionType, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	entry, err := s.lookup(accountID)
	if err != nil {
		return nil, nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	next := entry.account.Balance.Add(delta)
	if next.IsNegative() {
		shortfall := delta.Neg().Sub(entry.account.Balance)
		return nil, nil, fmt.Errorf("%w: account %s is short by %s", apperrors.ErrInsufficientFunds, accountID, shortfall.String())
	}

	entry.account.Balance = next
	entry.account.LastUpdatedAt = now
	entry.account.LastUpdatedBy = userID

	txn := s.append(domain.Transaction{
		AccountID:   accountID,
		Type:        txnType,
		Amount:      delta.Abs(),
		Description: description,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
	acc := entry.account
	return &acc, &txn, nil
}

// Transfer moves amount between two accounts atomically with respect to every
// other store operation. Both account locks are taken in ascending id order
// before any balance is touched.
func (s *LedgerStore) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, outDescription, inDescription string, userID string, now time.Time) (*domain.TransferResult, error) {
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: cannot transfer within the same account", apperrors.ErrValidation)
	}

	from, err := s.lookup(fromAccountID)
	if err != nil {
		return nil, err
	}
	to, err := s.lookup(toAccountID)
	if err != nil {
		return nil, err
	}

	ids := []string{fromAccountID, toAccountID}
	sort.Strings(ids)
	ordered := []*lockedAccount{from, to}
	if ids[0] == toAccountID {
		ordered[0], ordered[1] = to, from
	}
	ordered[0].mu.Lock()
	defer ordered[0].mu.Unlock()
	ordered[1].mu.Lock()
	defer ordered[1].mu.Unlock()

	if from.account.Balance.LessThan(amount) {
		shortfall := amount.Sub(from.account.Balance)
		return nil, fmt.Errorf("%w: account %s is short by %s", apperrors.ErrInsufficientFunds, fromAccountID, shortfall.String())
	}

	from.account.Balance = from.account.Balance.Sub(amount)
	from.account.LastUpdatedAt = now
	from.account.LastUpdatedBy = userID
	to.account.Balance = to.account.Balance.Add(amount)
	to.account.LastUpdatedAt = now
	to.account.LastUpdatedBy = userID

	outLeg := s.append(domain.Transaction{
		AccountID:   fromAccountID,
		Type:        domain.TransferOut,
		Amount:      amount,
		Description: outDescription,
		CreatedAt:   now,
		CreatedBy:   userID,
	})
	inLeg := s.append(domain.Transaction{
		AccountID:   toAccountID,
		Type:        domain.TransferIn,
		Amount:      amount,
		Description: inDescription,
		CreatedAt:   now,
		CreatedBy:   userID,
	})

	return &domain.TransferResult{
		FromAccount: from.account,
		ToAccount:   to.account,
		OutLeg:      outLeg,
		InLeg:       inLeg,
	}, nil
}
