// Package mail implements the Mailer domain service over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"bizconnect/config"
	"bizconnect/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpMailer sends contact mail through an SMTP relay. When no credentials
// are configured it degrades to a logged no-op so the contact endpoint keeps
// working in development.
type smtpMailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	logger     *slog.Logger
}

// NewMailer is the constructor for smtpMailer.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	mailCfg := cfg.Mail
	if mailCfg == nil || mailCfg.Host == "" || mailCfg.Username == "" {
		logger.Info("Mail transport not configured, outgoing mail disabled")

		return &smtpMailer{logger: logger}
	}

	return &smtpMailer{
		dialer:     gomail.NewDialer(mailCfg.Host, mailCfg.Port, mailCfg.Username, mailCfg.Password),
		from:       mailCfg.Username,
		adminEmail: mailCfg.AdminEmail,
		logger:     logger,
	}
}

// Enabled reports whether a transport is configured.
func (m *smtpMailer) Enabled() bool {
	return m.dialer != nil
}

// SendContactNotification forwards the submission to the admin inbox.
func (m *smtpMailer) SendContactNotification(ctx context.Context, msg *service.ContactMessage) error {
	if !m.Enabled() {
		m.logger.InfoContext(ctx, "Mail disabled, skipping contact notification",
			slog.String("from", msg.Email),
		)

		return nil
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", m.adminEmail)
	mail.SetHeader("Reply-To", msg.Email)
	mail.SetHeader("Subject", fmt.Sprintf("[BizConnect] Pesan baru: %s", msg.Subject))
	mail.SetBody("text/plain", fmt.Sprintf(
		"Nama: %s\nEmail: %s\nSubjek: %s\n\n%s\n",
		msg.Name, msg.Email, msg.Subject, msg.Message,
	))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return errors.Wrap(err, "failed to send contact notification")
	}

	return nil
}

// SendContactConfirmation acknowledges the submission to the sender.
func (m *smtpMailer) SendContactConfirmation(ctx context.Context, msg *service.ContactMessage) error {
	if !m.Enabled() {
		m.logger.InfoContext(ctx, "Mail disabled, skipping contact confirmation",
			slog.String("to", msg.Email),
		)

		return nil
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.Email)
	mail.SetHeader("Subject", "Pesan Anda telah kami terima")
	mail.SetBody("text/plain", fmt.Sprintf(
		"Halo %s,\n\nTerima kasih telah menghubungi BizConnect. Pesan Anda dengan subjek %q sudah kami terima dan akan segera ditindaklanjuti.\n\nSalam,\nTim BizConnect\n",
		msg.Name, msg.Subject,
	))

	if err := m.dialer.DialAndSend(mail); err != nil {
		return errors.Wrap(err, "failed to send contact confirmation")
	}

	return nil
}
