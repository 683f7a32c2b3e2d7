package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	TransactionID int64                  `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Type          domain.TransactionType `json:"type"`
	Amount        decimal.Decimal        `json:"amount"`
	Description   string                 `json:"description"`
	CreatedAt     time.Time              `json:"createdAt"`
}

// TransactionDetailResponse adds account/customer display info for feeds.
type TransactionDetailResponse struct {
	TransactionResponse
	AccountNumber string `json:"accountNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
}

// ToTransactionResponse converts a domain.Transaction.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Type:          t.Type,
		Amount:        t.Amount,
		Description:   t.Description,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToTransactionDetailResponses converts a slice of joined transactions.
func ToTransactionDetailResponses(txns []domain.TransactionDetail) []TransactionDetailResponse {
	res := make([]TransactionDetailResponse, len(txns))
	for i := range txns {
		res[i] = TransactionDetailResponse{
			TransactionResponse: ToTransactionResponse(&txns[i].Transaction),
			AccountNumber:       txns[i].AccountNumber,
			FirstName:           txns[i].FirstName,
			LastName:            txns[i].LastName,
		}
	}
	return res
}
