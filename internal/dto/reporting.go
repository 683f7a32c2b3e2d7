package dto

import (
	"github.com/shopspring/decimal"

	"github.com/mkwapatira/minibank/internal/core/domain"
)

// DashboardStatsResponse defines the dashboard aggregate payload.
type DashboardStatsResponse struct {
	TotalCustomers int64           `json:"totalCustomers"`
	TotalAccounts  int64           `json:"totalAccounts"`
	TotalBalance   decimal.Decimal `json:"totalBalance"`
}

// ToDashboardStatsResponse converts domain.DashboardStats.
func ToDashboardStatsResponse(s *domain.DashboardStats) DashboardStatsResponse {
	return DashboardStatsResponse{
		TotalCustomers: s.TotalCustomers,
		TotalAccounts:  s.TotalAccounts,
		TotalBalance:   s.TotalBalance,
	}
}

// ListRecentParams defines query parameters for the recent-activity feed.
type ListRecentParams struct {
	Limit int `form:"limit,default=10"`
}
