package services

import (
	"context"
	"time"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// ReportingSvcFacade is the read-only query layer over the account store and
// transaction log.
type ReportingSvcFacade interface {
	// DashboardStats returns the aggregate figures for the staff dashboard.
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// AccountHistory returns an account's transactions, newest first.
	AccountHistory(ctx context.Context, accountID string) ([]domain.Transaction, error)

	// RecentActivity returns the most recent transactions across all accounts.
	RecentActivity(ctx context.Context, limit int) ([]domain.TransactionDetail, error)

	// DailyReport renders the PDF report covering the given calendar day.
	DailyReport(ctx context.Context, date time.Time) ([]byte, error)

	// DailyReportAndSend renders the report and emails it to the configured
	// recipient. The rendered bytes are returned either way.
	DailyReportAndSend(ctx context.Context, date time.Time) ([]byte, error)
}

// ReportRenderer turns an immutable transaction snapshot into a document.
// It runs entirely outside the ledger's transactional boundary.
type ReportRenderer interface {
	RenderDailyReport(summary domain.DailyReportSummary, date time.Time) ([]byte, error)
}

// ReportMailer delivers a rendered report document.
type ReportMailer interface {
	SendDailyReport(ctx context.Context, date time.Time, pdf []byte) error
}
