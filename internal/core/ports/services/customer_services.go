package services

import (
	"context"

	"github.com/mkwapatira/minibank/internal/core/domain"
	"github.com/mkwapatira/minibank/internal/dto"
)

// CustomerSvcFacade defines the customer-facing operations of the system.
type CustomerSvcFacade interface {
	// CreateCustomer registers a new customer.
	CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error)

	// ListCustomers returns all customers.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// GetCustomerWithAccounts returns a customer together with all accounts
	// they own.
	GetCustomerWithAccounts(ctx context.Context, customerID string) (*domain.Customer, []domain.Account, error)
}
