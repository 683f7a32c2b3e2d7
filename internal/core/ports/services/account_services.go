package services

import (
	"context"

	"github.com/mkwapatira/minibank/internal/core/domain"
	"github.com/mkwapatira/minibank/internal/dto"
)

// AccountSvcFacade defines account lifecycle operations. Balance mutation is
// deliberately absent: only the ledger service moves money.
type AccountSvcFacade interface {
	// CreateAccount opens a new account for a customer with a generated unique
	// account number.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)

	// GetAccountByID retrieves a single account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsForCustomer returns every account owned by the customer.
	ListAccountsForCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
}
