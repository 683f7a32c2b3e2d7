package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	"github.com/mkwapatira/minibank/internal/repositories/memory"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  *ledgerService
	ctx      context.Context
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockLedgerRepository)
	s.service = NewLedgerService(s.mockRepo).(*ledgerService)
	s.ctx = context.Background()
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestDeposit_Success() {
	amount := decimal.RequireFromString("50.00")
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.RequireFromString("150.00")}
	record := &domain.Transaction{TransactionID: 1, AccountID: "acc-1", Type: domain.Deposit, Amount: amount}

	s.mockRepo.On("Deposit", s.ctx, "acc-1", amount, "Deposit made", "user-1", mock.Anything).
		Return(account, record, nil).Once()

	gotAccount, gotTxn, err := s.service.Deposit(s.ctx, "acc-1", amount, "user-1")
	s.Require().NoError(err)
	s.Equal(account, gotAccount)
	s.Equal(record, gotTxn)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestDeposit_RejectsNonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.RequireFromString("-5.00")} {
		_, _, err := s.service.Deposit(s.ctx, "acc-1", amount, "user-1")
		s.ErrorIs(err, apperrors.ErrValidation)
	}
	s.mockRepo.AssertNotCalled(s.T(), "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestWithdraw_Success() {
	amount := decimal.RequireFromString("30.00")
	account := &domain.Account{AccountID: "acc-1", Balance: decimal.RequireFromString("70.00")}
	record := &domain.Transaction{TransactionID: 2, AccountID: "acc-1", Type: domain.Withdraw, Amount: amount}

	s.mockRepo.On("Withdraw", s.ctx, "acc-1", amount, "Withdrawal made", "user-1", mock.Anything).
		Return(account, record, nil).Once()

	gotAccount, _, err := s.service.Withdraw(s.ctx, "acc-1", amount, "user-1")
	s.Require().NoError(err)
	s.Equal(account, gotAccount)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestWithdraw_PropagatesInsufficientFunds() {
	amount := decimal.RequireFromString("500.00")
	s.mockRepo.On("Withdraw", s.ctx, "acc-1", amount, "Withdrawal made", "user-1", mock.Anything).
		Return(nil, nil, apperrors.ErrInsufficientFunds).Once()

	_, _, err := s.service.Withdraw(s.ctx, "acc-1", amount, "user-1")
	s.ErrorIs(err, apperrors.ErrInsufficientFunds)
}

func (s *LedgerServiceTestSuite) TestTransfer_BuildsLegDescriptions() {
	amount := decimal.RequireFromString("20.00")
	result := &domain.TransferResult{}

	s.mockRepo.On("Transfer", s.ctx, "acc-a", "acc-b", amount,
		"Transfer to account acc-b", "Transfer from account acc-a", "user-1", mock.Anything).
		Return(result, nil).Once()

	got, err := s.service.Transfer(s.ctx, "acc-a", "acc-b", amount, "user-1")
	s.Require().NoError(err)
	s.Equal(result, got)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *LedgerServiceTestSuite) TestTransfer_RejectsSameAccount() {
	_, err := s.service.Transfer(s.ctx, "acc-a", "acc-a", decimal.NewFromInt(10), "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
	s.mockRepo.AssertNotCalled(s.T(), "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerServiceTestSuite) TestTransfer_RejectsNonPositiveAmount() {
	_, err := s.service.Transfer(s.ctx, "acc-a", "acc-b", decimal.Zero, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
}

// The tests below run the service against the in-memory store to exercise the
// concurrency guarantees end to end.

func newServiceOverStore(balances map[string]string) (*ledgerService, *memory.LedgerStore) {
	store := memory.NewLedgerStore()
	for id, balance := range balances {
		store.AddAccount(domain.Account{
			AccountID:   id,
			AccountType: domain.Savings,
			Balance:     decimal.RequireFromString(balance),
		})
	}
	return NewLedgerService(store).(*ledgerService), store
}

func TestLedgerService_ConcurrentWithdrawalsRespectBalance(t *testing.T) {
	// 100.00 across 40 workers withdrawing 9.00 each: exactly 11 succeed.
	service, store := newServiceOverStore(map[string]string{"acc-1": "100.00"})
	amount := decimal.RequireFromString("9.00")

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := service.Withdraw(context.Background(), "acc-1", amount, "user-1")
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			} else if !errors.Is(err, apperrors.ErrInsufficientFunds) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 11, succeeded)
	acc, err := store.GetAccount("acc-1")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("1.00")), "final balance was %s", acc.Balance)
}

func TestLedgerService_ConcurrentTransfersSingleWinner(t *testing.T) {
	// Two transfers of 60.00 from a 100.00 source: one commits, one is rejected,
	// and the rejected one leaves no ledger records.
	service, store := newServiceOverStore(map[string]string{
		"acc-a": "100.00",
		"acc-b": "0.00",
		"acc-c": "0.00",
	})
	amount := decimal.RequireFromString("60.00")

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, dest := range []string{"acc-b", "acc-c"} {
		wg.Add(1)
		go func(dest string) {
			defer wg.Done()
			_, err := service.Transfer(context.Background(), "acc-a", dest, amount, "user-1")
			results <- err
		}(dest)
	}
	wg.Wait()
	close(results)

	var committed, rejected int
	for err := range results {
		switch {
		case err == nil:
			committed++
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			rejected++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, committed)
	assert.Equal(t, 1, rejected)

	accA, err := store.GetAccount("acc-a")
	require.NoError(t, err)
	assert.True(t, accA.Balance.Equal(decimal.RequireFromString("40.00")))

	// Exactly one out leg on the source, one in leg across the destinations.
	assert.Len(t, store.Transactions("acc-a"), 1)
	inLegs := len(store.Transactions("acc-b")) + len(store.Transactions("acc-c"))
	assert.Equal(t, 1, inLegs)
}

func TestLedgerService_WithdrawExactBalance(t *testing.T) {
	service, _ := newServiceOverStore(map[string]string{"acc-1": "75.25"})

	acc, txn, err := service.Withdraw(context.Background(), "acc-1", decimal.RequireFromString("75.25"), "user-1")
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
	assert.Equal(t, "Withdrawal made", txn.Description)
}

func TestLedgerService_DepositThenHistoryOrdering(t *testing.T) {
	service, store := newServiceOverStore(map[string]string{"acc-1": "0.00"})

	for i := 1; i <= 3; i++ {
		_, _, err := service.Deposit(context.Background(), "acc-1", decimal.NewFromInt(int64(i)), "user-1")
		require.NoError(t, err)
	}

	log := store.Transactions("acc-1")
	require.Len(t, log, 3)
	for i := 1; i < len(log); i++ {
		assert.Greater(t, log[i].TransactionID, log[i-1].TransactionID)
	}
}
