package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/dto"
	"github.com/mkwapatira/minibank/internal/middleware"
	"github.com/mkwapatira/minibank/internal/utils"
)

// Account numbers are random, so a fresh one can collide with an existing row.
// The unique constraint reports the collision and we draw again.
const maxAccountNumberAttempts = 5

type accountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	customerRepo portsrepo.CustomerRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, customerRepo portsrepo.CustomerRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, customerRepo: customerRepo}
}

// CreateAccount opens a new account for an existing customer.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidAccountType(req.AccountType) {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}
	if req.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", apperrors.ErrValidation)
	}

	if _, err := s.customerRepo.FindCustomerByID(ctx, req.CustomerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %s", apperrors.ErrNotFound, req.CustomerID)
		}
		return nil, err
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:   uuid.NewString(),
		CustomerID:  req.CustomerID,
		AccountType: req.AccountType,
		Balance:     req.InitialBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	var lastErr error
	for attempt := 0; attempt < maxAccountNumberAttempts; attempt++ {
		number, err := utils.GenerateAccountNumber()
		if err != nil {
			return nil, fmt.Errorf("failed to generate account number: %w", err)
		}
		account.AccountNumber = number

		lastErr = s.accountRepo.SaveAccount(ctx, account)
		if lastErr == nil {
			logger.Info("Account created", "account_id", account.AccountID, "customer_id", account.CustomerID)
			return &account, nil
		}
		if !errors.Is(lastErr, apperrors.ErrDuplicate) {
			return nil, lastErr
		}
		logger.Warn("Account number collision, retrying", "account_number", number)
	}
	return nil, fmt.Errorf("exhausted account number attempts: %w", lastErr)
}

// GetAccountByID retrieves a single account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

// ListAccountsForCustomer returns every account owned by the customer.
func (s *accountService) ListAccountsForCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	if _, err := s.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccountsByCustomer(ctx, customerID)
}
