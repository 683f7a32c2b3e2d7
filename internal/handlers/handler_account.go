package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/dto"
)

// AccountHandler handles account and money-movement endpoints.
type AccountHandler struct {
	accountService   portssvc.AccountSvcFacade
	ledgerService    portssvc.LedgerSvcFacade
	reportingService portssvc.ReportingSvcFacade
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService portssvc.AccountSvcFacade, ledgerService portssvc.LedgerSvcFacade, reportingService portssvc.ReportingSvcFacade) *AccountHandler {
	return &AccountHandler{
		accountService:   accountService,
		ledgerService:    ledgerService,
		reportingService: reportingService,
	}
}

// CreateAccount handles POST /accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// GetAccount handles GET /accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// ListAccountsForCustomer handles GET /accounts/customer/:id.
func (h *AccountHandler) ListAccountsForCustomer(c *gin.Context) {
	accounts, err := h.accountService.ListAccountsForCustomer(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponses(accounts))
}

// Deposit handles POST /accounts/:id/deposit.
func (h *AccountHandler) Deposit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	account, txn, err := h.ledgerService.Deposit(c.Request.Context(), c.Param("id"), req.Amount, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{
		Message:     "Deposit successful",
		Account:     dto.ToAccountResponse(account),
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// Withdraw handles POST /accounts/:id/withdraw.
func (h *AccountHandler) Withdraw(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	account, txn, err := h.ledgerService.Withdraw(c.Request.Context(), c.Param("id"), req.Amount, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OperationResponse{
		Message:     "Withdrawal successful",
		Account:     dto.ToAccountResponse(account),
		Transaction: dto.ToTransactionResponse(txn),
	})
}

// Transfer handles POST /accounts/:id/transfer/:toID.
func (h *AccountHandler) Transfer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), c.Param("id"), c.Param("toID"), req.Amount, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransferResponse(result))
}

// AccountHistory handles GET /accounts/:id/transactions.
func (h *AccountHandler) AccountHistory(c *gin.Context) {
	// Resolve the account first so an unknown id is a 404, not an empty list.
	if _, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}

	transactions, err := h.reportingService.AccountHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions))
}

// RecentActivity handles GET /accounts/recent/all.
func (h *AccountHandler) RecentActivity(c *gin.Context) {
	var params dto.ListRecentParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	details, err := h.reportingService.RecentActivity(c.Request.Context(), params.Limit)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionDetailResponses(details))
}
