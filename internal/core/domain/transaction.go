package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates every kind of balance-affecting event.
type TransactionType string

const (
	Deposit     TransactionType = "deposit"
	Withdraw    TransactionType = "withdraw"
	TransferIn  TransactionType = "transfer_in"
	TransferOut TransactionType = "transfer_out"
)

// Transaction is an immutable ledger record. Rows are append-only: they are
// never updated or deleted once committed. The two legs of a transfer
// (transfer_out on the source, transfer_in on the destination) are always
// created in the same storage transaction.
type Transaction struct {
	TransactionID int64           `json:"transactionID"` // Monotonic (bigserial)
	AccountID     string          `json:"accountID"`     // FK -> accounts.account_id
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"` // Always positive
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"` // UserID of the staff member
}

// TransactionDetail is a transaction joined with display information about the
// account and its owner, used by the recent-activity feed and daily reports.
type TransactionDetail struct {
	Transaction
	AccountNumber string `json:"accountNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
}

// TransferResult carries both sides of a committed transfer back to the caller
// so it can reconcile without a follow-up read.
type TransferResult struct {
	FromAccount Account     `json:"fromAccount"`
	ToAccount   Account     `json:"toAccount"`
	OutLeg      Transaction `json:"outLeg"`
	InLeg       Transaction `json:"inLeg"`
}
