// Package mail delivers rendered reports over SMTP.
package mail

import (
	"context"
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"

	portssvc "github.com/mkwapatira/minibank/internal/core/ports/services"
)

// Mailer sends the daily report as an email attachment via SMTP.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

// NewMailer creates a new SMTP mailer.
func NewMailer(host string, port int, username, password, sender, recipient string) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(host, port, username, password),
		sender:    sender,
		recipient: recipient,
	}
}

var _ portssvc.ReportMailer = (*Mailer)(nil)

// SendDailyReport emails the rendered PDF to the configured recipient.
func (m *Mailer) SendDailyReport(ctx context.Context, date time.Time, pdf []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	day := date.Format("2006-01-02")
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", fmt.Sprintf("Daily Transaction Report - %s", day))
	msg.SetBody("text/plain", fmt.Sprintf("Attached is the transaction report for %s.", day))
	msg.Attach(fmt.Sprintf("daily-report-%s.pdf", day), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}
	return nil
}
