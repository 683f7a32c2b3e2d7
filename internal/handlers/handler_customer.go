package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/dto"
)

// CustomerHandler handles customer endpoints.
type CustomerHandler struct {
	customerService portssvc.CustomerSvcFacade
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(customerService portssvc.CustomerSvcFacade) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// CreateCustomer handles POST /customers.
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req, userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToCustomerResponse(customer))
}

// ListCustomers handles GET /customers.
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.customerService.ListCustomers(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponses(customers))
}

// GetCustomerWithAccounts handles GET /customers/:id/accounts.
func (h *CustomerHandler) GetCustomerWithAccounts(c *gin.Context) {
	customerID := c.Param("id")

	customer, accounts, err := h.customerService.GetCustomerWithAccounts(c.Request.Context(), customerID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CustomerWithAccountsResponse{
		CustomerResponse: dto.ToCustomerResponse(customer),
		Accounts:         dto.ToAccountResponses(accounts),
	})
}
