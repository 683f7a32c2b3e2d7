package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all postgres-backed repositories against a
// shared connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	transactionRepo := newPgxTransactionRepository(pool)

	return portsrepo.RepositoryProvider{
		CustomerRepo:    newPgxCustomerRepository(pool),
		AccountRepo:     accountRepo,
		TransactionRepo: transactionRepo,
		LedgerRepo:      newPgxLedgerRepository(pool, accountRepo, transactionRepo),
		UserRepo:        newPgxUserRepository(pool),
		RevocationRepo:  newPgxTokenRepository(pool),
		ReportingRepo:   newPgxReportingRepository(pool),
	}
}
