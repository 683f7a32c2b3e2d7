package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccountsByCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) LockAccountsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, tx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) AdjustBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, delta decimal.Decimal, userID string) (*domain.Account, error) {
	args := m.Called(ctx, tx, accountID, delta, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, description, userID, now)
	var acc *domain.Account
	var txn *domain.Transaction
	if args.Get(0) != nil {
		acc = args.Get(0).(*domain.Account)
	}
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.Transaction)
	}
	return acc, txn, args.Error(2)
}

func (m *MockLedgerRepository) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, description string, userID string, now time.Time) (*domain.Account, *domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, description, userID, now)
	var acc *domain.Account
	var txn *domain.Transaction
	if args.Get(0) != nil {
		acc = args.Get(0).(*domain.Account)
	}
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.Transaction)
	}
	return acc, txn, args.Error(2)
}

func (m *MockLedgerRepository) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, outDescription, inDescription string, userID string, now time.Time) (*domain.TransferResult, error) {
	args := m.Called(ctx, fromAccountID, toAccountID, amount, outDescription, inDescription, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, tokenHash string, expiresAt *time.Time, now time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt, now)
	return args.Error(0)
}

type MockTokenRevocationRepository struct {
	mock.Mock
}

func (m *MockTokenRevocationRepository) RevokeToken(ctx context.Context, revoked domain.RevokedToken) error {
	args := m.Called(ctx, revoked)
	return args.Error(0)
}

func (m *MockTokenRevocationRepository) IsTokenRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRevocationRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionReader) ListRecent(ctx context.Context, limit int) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionDetail), args.Error(1)
}

func (m *MockTransactionReader) ListInRange(ctx context.Context, from, to time.Time) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionDetail), args.Error(1)
}

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

type MockReportRenderer struct {
	mock.Mock
}

func (m *MockReportRenderer) RenderDailyReport(summary domain.DailyReportSummary, date time.Time) ([]byte, error) {
	args := m.Called(summary, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockReportMailer struct {
	mock.Mock
}

func (m *MockReportMailer) SendDailyReport(ctx context.Context, date time.Time, pdf []byte) error {
	args := m.Called(ctx, date, pdf)
	return args.Error(0)
}
