package domain

import "time"

// Customer represents a bank customer who may own any number of accounts.
// Customer records are immutable once created except for the KYC flag.
type Customer struct {
	CustomerID  string     `json:"customerID"` // Primary key (UUID)
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	NationalID  string     `json:"nationalID"` // Unique government identifier
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Address     string     `json:"address"`
	DateOfBirth *time.Time `json:"dateOfBirth,omitempty"`
	KYCVerified bool       `json:"kycVerified"`
	AuditFields
}
