package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/middleware"
)

// RegisterHandlers wires every route onto the router: a public group for
// health and credential endpoints, and an authenticated /api/v1 group behind
// the JWT middleware.
func RegisterHandlers(router *gin.Engine, services *portssvc.ServiceContainer, jwtSecret string, revocations middleware.RevocationChecker, loginLimiter *limiter.Limiter) {
	authHandler := NewAuthHandler(services.Auth)
	customerHandler := NewCustomerHandler(services.Customer)
	accountHandler := NewAccountHandler(services.Account, services.Ledger, services.Reporting)
	reportHandler := NewReportHandler(services.Reporting)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		if loginLimiter != nil {
			auth.POST("/login", middleware.RateLimit(loginLimiter), authHandler.Login)
		} else {
			auth.POST("/login", authHandler.Login)
		}
		auth.POST("/refresh", authHandler.Refresh)
	}

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(jwtSecret, revocations))
	{
		api.POST("/auth/logout", authHandler.Logout)

		api.POST("/customers", customerHandler.CreateCustomer)
		api.GET("/customers", customerHandler.ListCustomers)
		api.GET("/customers/:id/accounts", customerHandler.GetCustomerWithAccounts)

		api.POST("/accounts", accountHandler.CreateAccount)
		api.GET("/accounts/:id", accountHandler.GetAccount)
		api.GET("/accounts/customer/:id", accountHandler.ListAccountsForCustomer)
		api.POST("/accounts/:id/deposit", accountHandler.Deposit)
		api.POST("/accounts/:id/withdraw", accountHandler.Withdraw)
		api.POST("/accounts/:id/transfer/:toID", accountHandler.Transfer)
		api.GET("/accounts/:id/transactions", accountHandler.AccountHistory)
		api.GET("/accounts/recent/all", accountHandler.RecentActivity)

		api.GET("/stats", reportHandler.DashboardStats)
		api.GET("/reports/daily", reportHandler.DailyReport)
		api.GET("/reports/daily/send", reportHandler.SendDailyReport)
	}
}
