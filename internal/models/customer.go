package models

import (
	"database/sql"
	"time"
)

// Customer mirrors the customers table.
type Customer struct {
	CustomerID  string       `db:"customer_id"`
	FirstName   string       `db:"first_name"`
	LastName    string       `db:"last_name"`
	NationalID  string       `db:"national_id"`
	Phone       string       `db:"phone"`
	Email       string       `db:"email"`
	Address     string       `db:"address"`
	DateOfBirth sql.NullTime `db:"date_of_birth"`
	KYCVerified bool         `db:"kyc_verified"`
	AuditFields
}

// AuditFields holds the common audit columns shared by mutable tables.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
}
