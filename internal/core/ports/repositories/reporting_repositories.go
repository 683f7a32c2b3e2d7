package repositories

import (
	"context"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// ReportingRepository provides read-only aggregates for dashboards and reports.
// It never writes; all mutation goes through the ledger repository.
type ReportingRepository interface {
	// GetDashboardStats returns customer count, account count and the total
	// balance held across all accounts.
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
