package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
	portsrepo "github.com/mkwapatira/minibank/internal/core/ports/repositories"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/middleware"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

// reportingService serves reads only. Every figure it reports is derived from
// committed state; it never observes a ledger operation mid-flight.
type reportingService struct {
	reportingRepo   portsrepo.ReportingRepository
	transactionRepo portsrepo.TransactionReader
	renderer        portssvc.ReportRenderer
	mailer          portssvc.ReportMailer
}

// NewReportingService creates a new reporting service. The mailer may be nil
// when outbound email is not configured.
func NewReportingService(reportingRepo portsrepo.ReportingRepository, transactionRepo portsrepo.TransactionReader, renderer portssvc.ReportRenderer, mailer portssvc.ReportMailer) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo:   reportingRepo,
		transactionRepo: transactionRepo,
		renderer:        renderer,
		mailer:          mailer,
	}
}

// DashboardStats returns the aggregate figures for the staff dashboard.
func (s *reportingService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	return s.reportingRepo.GetDashboardStats(ctx)
}

// AccountHistory returns an account's transactions, newest first.
func (s *reportingService) AccountHistory(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return s.transactionRepo.ListByAccount(ctx, accountID)
}

// RecentActivity returns the most recent transactions across all accounts.
// The limit is clamped to a sane window.
func (s *reportingService) RecentActivity(ctx context.Context, limit int) ([]domain.TransactionDetail, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	return s.transactionRepo.ListRecent(ctx, limit)
}

// DailyReport renders the PDF report covering the given calendar day (UTC).
func (s *reportingService) DailyReport(ctx context.Context, date time.Time) ([]byte, error) {
	summary, err := s.buildDailySummary(ctx, date)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.RenderDailyReport(*summary, date)
	if err != nil {
		return nil, fmt.Errorf("failed to render daily report: %w", err)
	}
	return pdf, nil
}

// DailyReportAndSend renders the report and emails it to the configured
// recipient. The rendered bytes are returned either way.
func (s *reportingService) DailyReportAndSend(ctx context.Context, date time.Time) ([]byte, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	pdf, err := s.DailyReport(ctx, date)
	if err != nil {
		return nil, err
	}
	if s.mailer == nil {
		return pdf, fmt.Errorf("report email is not configured")
	}
	if err := s.mailer.SendDailyReport(ctx, date, pdf); err != nil {
		return pdf, fmt.Errorf("failed to send daily report: %w", err)
	}
	logger.Info("Daily report sent", "date", date.Format("2006-01-02"))
	return pdf, nil
}

func (s *reportingService) buildDailySummary(ctx context.Context, date time.Time) (*domain.DailyReportSummary, error) {
	from := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	transactions, err := s.transactionRepo.ListInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	stats, err := s.reportingRepo.GetDashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	deposited := decimal.Zero
	withdrawn := decimal.Zero
	for _, txn := range transactions {
		switch txn.Type {
		case domain.Deposit:
			deposited = deposited.Add(txn.Amount)
		case domain.Withdraw:
			withdrawn = withdrawn.Add(txn.Amount)
		}
	}

	return &domain.DailyReportSummary{
		Transactions:   transactions,
		TotalDeposited: deposited,
		TotalWithdrawn: withdrawn,
		TotalBalance:   stats.TotalBalance,
	}, nil
}
