package repositories

import (
	"context"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// CustomerRepositoryFacade defines persistence operations for customers.
type CustomerRepositoryFacade interface {
	// SaveCustomer persists a new customer. Returns ErrDuplicate (wrapped) when
	// the national id is already registered.
	SaveCustomer(ctx context.Context, customer domain.Customer) error

	// FindCustomerByID retrieves a customer by id.
	FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error)

	// ListCustomers retrieves all customers, newest first.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}
