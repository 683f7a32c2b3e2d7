package domain

import "github.com/shopspring/decimal"

// DashboardStats is the aggregate view shown on the staff dashboard.
// Totals are derived from committed account state only.
type DashboardStats struct {
	TotalCustomers int64           `json:"totalCustomers"`
	TotalAccounts  int64           `json:"totalAccounts"`
	TotalBalance   decimal.Decimal `json:"totalBalance"`
}

// DailyReportSummary aggregates one day of ledger activity for the rendered report.
type DailyReportSummary struct {
	Transactions   []TransactionDetail `json:"transactions"`
	TotalDeposited decimal.Decimal     `json:"totalDeposited"`
	TotalWithdrawn decimal.Decimal     `json:"totalWithdrawn"`
	TotalBalance   decimal.Decimal     `json:"totalBalance"` // Bank-wide balance at render time
}
