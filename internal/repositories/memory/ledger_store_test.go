package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
)

func newStoreWithAccount(t *testing.T, accountID string, balance string) *LedgerStore {
	t.Helper()
	store := NewLedgerStore()
	store.AddAccount(domain.Account{
		AccountID:     accountID,
		CustomerID:    "cust-1",
		AccountNumber: "ACC100001",
		AccountType:   domain.Savings,
		Balance:       decimal.RequireFromString(balance),
	})
	return store
}

func TestLedgerStore_DepositIncreasesBalance(t *testing.T) {
	store := newStoreWithAccount(t, "acc-1", "100.00")

	acc, txn, err := store.Deposit(context.Background(), "acc-1", decimal.RequireFromString("25.50"), "Deposit made", "user-1", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("125.50")))
	assert.Equal(t, domain.Deposit, txn.Type)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("25.50")))
}

func TestLedgerStore_WithdrawExactBalanceSucceeds(t *testing.T) {
	store := newStoreWithAccount(t, "acc-1", "100.00")

	acc, _, err := store.Withdraw(context.Background(), "acc-1", decimal.RequireFromString("100.00"), "Withdrawal made", "user-1", time.Now().UTC())
	require.NoError(t, err)
	assert.True(t, acc.Balance.IsZero())
}

func TestLedgerStore_WithdrawInsufficientFundsLeavesStateUntouched(t *testing.T) {
	store := newStoreWithAccount(t, "acc-1", "40.00")

	_, _, err := store.Withdraw(context.Background(), "acc-1", decimal.RequireFromString("50.00"), "Withdrawal made", "user-1", time.Now().UTC())
	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	acc, err := store.GetAccount("acc-1")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("40.00")))
	assert.Empty(t, store.Transactions("acc-1"))
}

func TestLedgerStore_UnknownAccount(t *testing.T) {
	store := NewLedgerStore()

	_, _, err := store.Deposit(context.Background(), "missing", decimal.NewFromInt(1), "Deposit made", "user-1", time.Now().UTC())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerStore_ConcurrentWithdrawalsNeverOverdraw(t *testing.T) {
	// 100.00 balance, 60 workers withdrawing 7.00: exactly 14 can succeed.
	store := newStoreWithAccount(t, "acc-1", "100.00")
	amount := decimal.RequireFromString("7.00")

	var wg sync.WaitGroup
	var succeeded, rejected int64
	var mu sync.Mutex
	for i := 0; i < 60; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := store.Withdraw(context.Background(), "acc-1", amount, "Withdrawal made", "user-1", time.Now().UTC())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, apperrors.ErrInsufficientFunds) {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 14, succeeded)
	assert.EqualValues(t, 46, rejected)

	acc, err := store.GetAccount("acc-1")
	require.NoError(t, err)
	assert.True(t, acc.Balance.Equal(decimal.RequireFromString("2.00")), "final balance was %s", acc.Balance)
	assert.Len(t, store.Transactions("acc-1"), 14)
}

func TestLedgerStore_ConcurrentOpposingTransfersConserveTotal(t *testing.T) {
	store := NewLedgerStore()
	store.AddAccount(domain.Account{AccountID: "acc-a", Balance: decimal.RequireFromString("500.00")})
	store.AddAccount(domain.Account{AccountID: "acc-b", Balance: decimal.RequireFromString("500.00")})
	amount := decimal.RequireFromString("1.00")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := store.Transfer(context.Background(), "acc-a", "acc-b", amount, "Transfer to account acc-b", "Transfer from account acc-a", "user-1", time.Now().UTC())
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := store.Transfer(context.Background(), "acc-b", "acc-a", amount, "Transfer to account acc-a", "Transfer from account acc-b", "user-1", time.Now().UTC())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	accA, err := store.GetAccount("acc-a")
	require.NoError(t, err)
	accB, err := store.GetAccount("acc-b")
	require.NoError(t, err)
	total := accA.Balance.Add(accB.Balance)
	assert.True(t, total.Equal(decimal.RequireFromString("1000.00")), "total drifted to %s", total)
}

func TestLedgerStore_ConcurrentTransfersCannotOverdrawSource(t *testing.T) {
	// Two transfers of 60.00 from a 100.00 account: exactly one commits.
	store := NewLedgerStore()
	store.AddAccount(domain.Account{AccountID: "acc-a", Balance: decimal.RequireFromString("100.00")})
	store.AddAccount(domain.Account{AccountID: "acc-b", Balance: decimal.Zero})
	store.AddAccount(domain.Account{AccountID: "acc-c", Balance: decimal.Zero})
	amount := decimal.RequireFromString("60.00")

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for _, dest := range []string{"acc-b", "acc-c"} {
		wg.Add(1)
		go func(dest string) {
			defer wg.Done()
			_, err := store.Transfer(context.Background(), "acc-a", dest, amount, "Transfer to account "+dest, "Transfer from account acc-a", "user-1", time.Now().UTC())
			results <- err
		}(dest)
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		if err == nil {
			ok++
		} else if errors.Is(err, apperrors.ErrInsufficientFunds) {
			insufficient++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, insufficient)

	accA, err := store.GetAccount("acc-a")
	require.NoError(t, err)
	assert.True(t, accA.Balance.Equal(decimal.RequireFromString("40.00")))
}

func TestLedgerStore_TransferAppendsBothLegs(t *testing.T) {
	store := NewLedgerStore()
	store.AddAccount(domain.Account{AccountID: "acc-a", Balance: decimal.RequireFromString("100.00")})
	store.AddAccount(domain.Account{AccountID: "acc-b", Balance: decimal.Zero})

	result, err := store.Transfer(context.Background(), "acc-a", "acc-b", decimal.RequireFromString("30.00"), "Transfer to account acc-b", "Transfer from account acc-a", "user-1", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, domain.TransferOut, result.OutLeg.Type)
	assert.Equal(t, domain.TransferIn, result.InLeg.Type)
	assert.True(t, result.OutLeg.Amount.Equal(result.InLeg.Amount))
	assert.True(t, result.FromAccount.Balance.Equal(decimal.RequireFromString("70.00")))
	assert.True(t, result.ToAccount.Balance.Equal(decimal.RequireFromString("30.00")))

	outLog := store.Transactions("acc-a")
	inLog := store.Transactions("acc-b")
	require.Len(t, outLog, 1)
	require.Len(t, inLog, 1)
	assert.Equal(t, "Transfer to account acc-b", outLog[0].Description)
	assert.Equal(t, "Transfer from account acc-a", inLog[0].Description)
}

func TestLedgerStore_SelfTransferRejected(t *testing.T) {
	store := newStoreWithAccount(t, "acc-1", "100.00")

	_, err := store.Transfer(context.Background(), "acc-1", "acc-1", decimal.NewFromInt(10), "x", "y", "user-1", time.Now().UTC())
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
