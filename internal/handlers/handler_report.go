package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
	"github.com/mkwapatira/minibank/internal/dto"
)

// ReportHandler serves dashboard stats and daily PDF reports.
type ReportHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportingService portssvc.ReportingSvcFacade) *ReportHandler {
	return &ReportHandler{reportingService: reportingService}
}

// DashboardStats handles GET /stats.
func (h *ReportHandler) DashboardStats(c *gin.Context) {
	stats, err := h.reportingService.DashboardStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats))
}

// parseReportDate reads the optional date query parameter (YYYY-MM-DD),
// defaulting to today in UTC.
func parseReportDate(c *gin.Context) (time.Time, error) {
	raw := c.Query("date")
	if raw == "" {
		return time.Now().UTC(), nil
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// DailyReport handles GET /reports/daily. Responds with the rendered PDF.
func (h *ReportHandler) DailyReport(c *gin.Context) {
	date, err := parseReportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pdf, err := h.reportingService.DailyReport(c.Request.Context(), date)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("daily-report-%s.pdf", date.Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// SendDailyReport handles GET /reports/daily/send. Renders and emails the
// report to the configured recipient.
func (h *ReportHandler) SendDailyReport(c *gin.Context) {
	date, err := parseReportDate(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.reportingService.DailyReportAndSend(c.Request.Context(), date); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Daily report sent", "date": date.Format("2006-01-02")})
}
