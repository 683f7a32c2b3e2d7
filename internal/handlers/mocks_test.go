package handlers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/mkwapatira/minibank/internal/core/domain"
	"github.com/mkwapatira/minibank/internal/dto"
)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Deposit(ctx context.Context, accountID string, amount decimal.Decimal, userID string) (*domain.Account, *domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, userID)
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

func (m *MockLedgerService) Withdraw(ctx context.Context, accountID string, amount decimal.Decimal, userID string) (*domain.Account, *domain.Transaction, error) {
	args := m.Called(ctx, accountID, amount, userID)
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

func (m *MockLedgerService) Transfer(ctx context.Context, fromAccountID, toAccountID string, amount decimal.Decimal, userID string) (*domain.TransferResult, error) {
	args := m.Called(ctx, fromAccountID, toAccountID, amount, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccountsForCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockReportingService) AccountHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockReportingService) RecentActivity(ctx context.Context, limit int) ([]domain.TransactionDetail, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionDetail), args.Error(1)
}

func (m *MockReportingService) DailyReport(ctx context.Context, date time.Time) ([]byte, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockReportingService) DailyReportAndSend(ctx context.Context, date time.Time) ([]byte, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}

func (m *MockCustomerService) GetCustomerWithAccounts(ctx context.Context, customerID string) (*domain.Customer, []domain.Account, error) {
	args := m.Called(ctx, customerID)
	var cust *domain.Customer
	var accounts []domain.Account
	if args.Get(0) != nil {
		cust = args.Get(0).(*domain.Customer)
	}
	if args.Get(1) != nil {
		accounts = args.Get(1).([]domain.Account)
	}
	return cust, accounts, args.Error(2)
}
