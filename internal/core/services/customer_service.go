package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/dto"
	"github.com/mkwapatira/minibank/internal/middleware"
)

type customerService struct {
	customerRepo portsrepo.CustomerRepositoryFacade
	accountRepo  portsrepo.AccountRepositoryFacade
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo portsrepo.CustomerRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade) portssvc.CustomerSvcFacade {
	return &customerService{customerRepo: customerRepo, accountRepo: accountRepo}
}

// CreateCustomer registers a new customer. The national id must be unique;
// duplicates surface as ErrDuplicate from the repository.
func (s *customerService) CreateCustomer(ctx context.Context, req dto.CreateCustomerRequest, creatorUserID string) (*domain.Customer, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	customer := domain.Customer{
		CustomerID:  uuid.NewString(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		NationalID:  req.NationalID,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		DateOfBirth: req.DateOfBirth,
		KYCVerified: req.KYCVerified,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.customerRepo.SaveCustomer(ctx, customer); err != nil {
		logger.Warn("Failed to create customer", "error", err)
		return nil, err
	}
	logger.Info("Customer created", "customer_id", customer.CustomerID)
	return &customer, nil
}

// ListCustomers returns all customers.
func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.ListCustomers(ctx)
}

// GetCustomerWithAccounts returns a customer and every account they own.
func (s *customerService) GetCustomerWithAccounts(ctx context.Context, customerID string) (*domain.Customer, []domain.Account, error) {
	customer, err := s.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}
	return customer, accounts, nil
}
