package models

import "github.com/shopspring/decimal"

// AccountType is the storage representation of a customer account type.
type AccountType string

const (
	Savings      AccountType = "SAVINGS"
	Current      AccountType = "CURRENT"
	FixedDeposit AccountType = "FIXED_DEPOSIT"
)

// Account mirrors the accounts table. The balance column carries a CHECK
// (balance >= 0) constraint as a last line of defence behind the conditional
// updates issued by the ledger repository.
type Account struct {
	AccountID     string          `db:"account_id"`
	CustomerID    string          `db:"customer_id"`
	AccountNumber string          `db:"account_number"`
	AccountType   AccountType     `db:"account_type"`
	Balance       decimal.Decimal `db:"balance"`
	AuditFields
}
