package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mkwapatira/minibank/internal/apperrors"
	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	"github.com/mkwapatira/minibank/internal/models"
)

const customerColumns = `customer_id, first_name, last_name, national_id, phone, email, address, date_of_birth, kyc_verified, created_at, created_by, last_updated_at, last_updated_by`

type PgxCustomerRepository struct {
	BaseRepository
}

func newPgxCustomerRepository(pool *pgxpool.Pool) *PgxCustomerRepository {
	return &PgxCustomerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CustomerRepositoryFacade = (*PgxCustomerRepository)(nil)

func toModelCustomer(d domain.Customer) models.Customer {
	m := models.Customer{
		CustomerID:  d.CustomerID,
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		NationalID:  d.NationalID,
		Phone:       d.Phone,
		Email:       d.Email,
		Address:     d.Address,
		KYCVerified: d.KYCVerified,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
	if d.DateOfBirth != nil {
		m.DateOfBirth = sql.NullTime{Time: *d.DateOfBirth, Valid: true}
	}
	return m
}

func toDomainCustomer(m models.Customer) domain.Customer {
	d := domain.Customer{
		CustomerID:  m.CustomerID,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		NationalID:  m.NationalID,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		KYCVerified: m.KYCVerified,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.DateOfBirth.Valid {
		dob := m.DateOfBirth.Time
		d.DateOfBirth = &dob
	}
	return d
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var m models.Customer
	err := row.Scan(
		&m.CustomerID,
		&m.FirstName,
		&m.LastName,
		&m.NationalID,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.DateOfBirth,
		&m.KYCVerified,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	cust := toDomainCustomer(m)
	return &cust, nil
}

// SaveCustomer inserts a new customer.
func (r *PgxCustomerRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := toModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, first_name, last_name, national_id, phone, email, address, date_of_birth, kyc_verified, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.FirstName,
		m.LastName,
		m.NationalID,
		m.Phone,
		m.Email,
		m.Address,
		m.DateOfBirth,
		m.KYCVerified,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: national id %s already registered", apperrors.ErrDuplicate, m.NationalID)
		}
		return fmt.Errorf("failed to save customer %s: %w", m.CustomerID, err)
	}
	return nil
}

// FindCustomerByID retrieves a customer by ID.
func (r *PgxCustomerRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`

	cust, err := scanCustomer(r.Pool.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return cust, nil
}

// ListCustomers retrieves all customers, newest first.
func (r *PgxCustomerRepository) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		cust, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *cust)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}
