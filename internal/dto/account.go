package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// CreateAccountRequest defines the data needed to open an account.
// InitialBalance is a fixed-point decimal transmitted as a JSON string or
// number; it must not be negative.
type CreateAccountRequest struct {
	CustomerID     string             `json:"customerID" binding:"required"`
	AccountType    domain.AccountType `json:"accountType" binding:"required,oneof=SAVINGS CURRENT FIXED_DEPOSIT"`
	InitialBalance decimal.Decimal    `json:"initialBalance"`
}

// AmountRequest carries the amount for a deposit, withdrawal or transfer.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	CustomerID    string             `json:"customerID"`
	AccountNumber string             `json:"accountNumber"`
	AccountType   domain.AccountType `json:"accountType"`
	Balance       decimal.Decimal    `json:"balance"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// ToAccountResponse converts a domain.Account to AccountResponse.
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		CustomerID:    acc.CustomerID,
		AccountNumber: acc.AccountNumber,
		AccountType:   acc.AccountType,
		Balance:       acc.Balance,
		CreatedAt:     acc.CreatedAt,
	}
}

// ToAccountResponses converts a slice of accounts.
func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// OperationResponse is returned by deposit and withdraw: the updated account
// plus the ledger record the operation appended, so the caller can reconcile.
type OperationResponse struct {
	Message     string              `json:"message"`
	Account     AccountResponse     `json:"account"`
	Transaction TransactionResponse `json:"transaction"`
}

// TransferResponse is returned by a successful transfer.
type TransferResponse struct {
	Message     string              `json:"message"`
	FromAccount AccountResponse     `json:"fromAccount"`
	ToAccount   AccountResponse     `json:"toAccount"`
	OutLeg      TransactionResponse `json:"outLeg"`
	InLeg       TransactionResponse `json:"inLeg"`
}

// ToTransferResponse converts a domain.TransferResult.
func ToTransferResponse(res *domain.TransferResult) TransferResponse {
	return TransferResponse{
		Message:     "Transfer successful",
		FromAccount: ToAccountResponse(&res.FromAccount),
		ToAccount:   ToAccountResponse(&res.ToAccount),
		OutLeg:      ToTransactionResponse(&res.OutLeg),
		InLeg:       ToTransactionResponse(&res.InLeg),
	}
}
