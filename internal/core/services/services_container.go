package services

import (
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
)

// NewServiceContainer wires all application services against the given
// repository provider.
func NewServiceContainer(repos portsrepo.RepositoryProvider, authCfg AuthConfig, renderer portssvc.ReportRenderer, mailer portssvc.ReportMailer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Customer:  NewCustomerService(repos.CustomerRepo, repos.AccountRepo),
		Account:   NewAccountService(repos.AccountRepo, repos.CustomerRepo),
		Ledger:    NewLedgerService(repos.LedgerRepo),
		Reporting: NewReportingService(repos.ReportingRepo, repos.TransactionRepo, renderer, mailer),
		Auth:      NewAuthService(repos.UserRepo, repos.RevocationRepo, authCfg),
	}
}
