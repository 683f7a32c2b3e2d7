package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CustomerRepo    CustomerRepositoryFacade
	AccountRepo     AccountRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	LedgerRepo      LedgerRepository
	UserRepo        UserRepositoryFacade
	RevocationRepo  TokenRevocationRepository
	ReportingRepo   ReportingRepository
}
