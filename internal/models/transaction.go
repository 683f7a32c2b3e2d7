package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the storage representation of a ledger event type.
type TransactionType string

const (
	Deposit     TransactionType = "deposit"
	Withdraw    TransactionType = "withdraw"
	TransferIn  TransactionType = "transfer_in"
	TransferOut TransactionType = "transfer_out"
)

// Transaction mirrors the transactions table. Rows are insert-only; the
// primary key is a bigserial so ordering by id matches insertion order.
type Transaction struct {
	TransactionID int64           `db:"transaction_id"`
	AccountID     string          `db:"account_id"`
	Type          TransactionType `db:"type"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
