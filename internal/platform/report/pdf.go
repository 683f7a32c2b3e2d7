// Package report renders ledger snapshots into PDF documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/mkwapatira/minibank/internal/core/domain"
	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
)

// PDFRenderer renders the daily transaction report with fpdf.
type PDFRenderer struct {
	bankName string
}

// NewPDFRenderer creates a renderer branded with the given bank name.
func NewPDFRenderer(bankName string) *PDFRenderer {
	if bankName == "" {
		bankName = "Minibank"
	}
	return &PDFRenderer{bankName: bankName}
}

var _ portssvc.ReportRenderer = (*PDFRenderer)(nil)

// RenderDailyReport renders one day of ledger activity as a PDF document.
func (r *PDFRenderer) RenderDailyReport(summary domain.DailyReportSummary, date time.Time) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s Daily Report %s", r.bankName, date.Format("2006-01-02")), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s - Daily Transaction Report", r.bankName), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 8, date.Format("Monday, 02 January 2006"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total deposited: %s", summary.TotalDeposited.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Total withdrawn: %s", summary.TotalWithdrawn.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Bank-wide balance: %s", summary.TotalBalance.StringFixed(2)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Transactions: %d", len(summary.Transactions)), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Transactions", "", 1, "L", false, 0, "")

	headers := []string{"Time", "Account", "Customer", "Type", "Amount", "Description"}
	widths := []float64{18, 28, 38, 24, 24, 58}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 7, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	if len(summary.Transactions) == 0 {
		pdf.CellFormat(0, 7, "No transactions recorded.", "1", 1, "L", false, 0, "")
	}
	for _, txn := range summary.Transactions {
		cells := []string{
			txn.CreatedAt.UTC().Format("15:04:05"),
			txn.AccountNumber,
			fmt.Sprintf("%s %s", txn.FirstName, txn.LastName),
			string(txn.Type),
			txn.Amount.StringFixed(2),
			txn.Description,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
