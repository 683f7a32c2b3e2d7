package dto

import (
	"time"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// CreateCustomerRequest defines the data needed to register a customer.
type CreateCustomerRequest struct {
	FirstName   string     `json:"firstName" binding:"required"`
	LastName    string     `json:"lastName" binding:"required"`
	NationalID  string     `json:"nationalID" binding:"required"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email" binding:"omitempty,email"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth"`
	KYCVerified bool       `json:"kycVerified"`
}

// CustomerResponse defines the data returned for a customer.
type CustomerResponse struct {
	CustomerID  string     `json:"customerID"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	NationalID  string     `json:"nationalID"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	KYCVerified bool       `json:"kycVerified"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// CustomerWithAccountsResponse is a customer together with their accounts.
type CustomerWithAccountsResponse struct {
	CustomerResponse
	Accounts []AccountResponse `json:"accounts"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID:  c.CustomerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		NationalID:  c.NationalID,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		DateOfBirth: c.DateOfBirth,
		KYCVerified: c.KYCVerified,
		CreatedAt:   c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of customers.
func ToCustomerResponses(customers []domain.Customer) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))
	for i := range customers {
		res[i] = ToCustomerResponse(&customers[i])
	}
	return res
}
