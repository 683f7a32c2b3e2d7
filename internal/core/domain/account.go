package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType classifies a customer account.
type AccountType string

const (
	Savings      AccountType = "SAVINGS"
	Current      AccountType = "CURRENT"
	FixedDeposit AccountType = "FIXED_DEPOSIT"
)

// ValidAccountType reports whether t is one of the supported account types.
func ValidAccountType(t AccountType) bool {
	switch t {
	case Savings, Current, FixedDeposit:
		return true
	}
	return false
}

// Account represents a customer account within the ledger.
// Balance is only ever mutated by the ledger service; it never goes negative
// after a committed operation.
type Account struct {
	AccountID     string          `json:"accountID"`  // Primary key (UUID)
	CustomerID    string          `json:"customerID"` // FK -> customers.customer_id
	AccountNumber string          `json:"accountNumber"`
	AccountType   AccountType     `json:"accountType"`
	Balance       decimal.Decimal `json:"balance"`
	AuditFields
}
