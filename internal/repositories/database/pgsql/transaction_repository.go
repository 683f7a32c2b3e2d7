package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	"github.com/mkwapatira/minibank/internal/models"
)

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func toDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Type:          domain.TransactionType(m.Type),
		Amount:        m.Amount,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	txn := toDomainTransaction(m)
	return &txn, nil
}

// AppendInTx inserts an immutable transaction record within the given storage
// transaction. The id and timestamp assigned by the database are returned so
// the caller can hand the committed record back without a second read.
func (r *PgxTransactionRepository) AppendInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (account_id, type, amount, description, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING transaction_id, account_id, type, amount, description, created_at, created_by;
	`
	inserted, err := scanTransaction(tx.QueryRow(ctx, query,
		txn.AccountID,
		string(txn.Type),
		txn.Amount,
		txn.Description,
		txn.CreatedAt,
		txn.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to append %s transaction for account %s: %w", txn.Type, txn.AccountID, err)
	}
	return inserted, nil
}

// ListByAccount returns every transaction for the account, newest first.
func (r *PgxTransactionRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT transaction_id, account_id, type, amount, description, created_at, created_by
		FROM transactions
		WHERE account_id = $1
		ORDER BY created_at DESC, transaction_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row for account %s: %w", accountID, err)
		}
		transactions = append(transactions, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows for account %s: %w", accountID, rows.Err())
	}
	return transactions, nil
}

const transactionDetailQuery = `
	SELECT t.transaction_id, t.account_id, t.type, t.amount, t.description, t.created_at, t.created_by,
	       a.account_number, c.first_name, c.last_name
	FROM transactions t
	JOIN accounts a ON a.account_id = t.account_id
	JOIN customers c ON c.customer_id = a.customer_id
`

func scanTransactionDetail(rows pgx.Rows) (*domain.TransactionDetail, error) {
	var m models.Transaction
	var d domain.TransactionDetail
	err := rows.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&d.AccountNumber,
		&d.FirstName,
		&d.LastName,
	)
	if err != nil {
		return nil, err
	}
	d.Transaction = toDomainTransaction(m)
	return &d, nil
}

// ListRecent returns the most recent transactions across all accounts, newest
// first, joined with account and customer display info for the activity feed.
func (r *PgxTransactionRepository) ListRecent(ctx context.Context, limit int) ([]domain.TransactionDetail, error) {
	query := transactionDetailQuery + `
	ORDER BY t.created_at DESC, t.transaction_id DESC
	LIMIT $1;
	`
	rows, err := r.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent transactions: %w", err)
	}
	defer rows.Close()

	return collectTransactionDetails(rows)
}

// ListInRange returns transactions created in [from, to), oldest first.
func (r *PgxTransactionRepository) ListInRange(ctx context.Context, from, to time.Time) ([]domain.TransactionDetail, error) {
	query := transactionDetailQuery + `
	WHERE t.created_at >= $1 AND t.created_at < $2
	ORDER BY t.created_at ASC, t.transaction_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions in range: %w", err)
	}
	defer rows.Close()

	return collectTransactionDetails(rows)
}

func collectTransactionDetails(rows pgx.Rows) ([]domain.TransactionDetail, error) {
	details := []domain.TransactionDetail{}
	for rows.Next() {
		d, err := scanTransactionDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction detail row: %w", err)
		}
		details = append(details, *d)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction detail rows: %w", rows.Err())
	}
	return details, nil
}
