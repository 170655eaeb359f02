package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"gopkg.in/gomail.v2"
)

// messageSender is the part of *gomail.Dialer the mailer needs.
type messageSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer sends mail through a single SMTP server. A mailer built from a
// config without SMTP_HOST logs and drops every message.
type SMTPMailer struct {
	sender   messageSender
	from     string
	fromName string
}

var _ portssvc.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer builds a mailer from cfg.
//
//   - ssl: implicit TLS, certificate verified against Host.
//   - starttls: gomail upgrades with STARTTLS, certificate verified against Host.
//   - none: STARTTLS is still used if the server offers it, but the
//     certificate is not verified. Meant for local relays.
//
// gomail has no switch to turn STARTTLS off entirely.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	m := &SMTPMailer{from: cfg.FromAddress, fromName: cfg.FromName}
	if !cfg.Enabled() {
		return m
	}
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	switch cfg.Security {
	case config.SMTPSecurityNone:
		d.TLSConfig = &tls.Config{ServerName: cfg.Host, InsecureSkipVerify: true}
	case config.SMTPSecuritySSL:
		d.SSL = true
		d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	default:
		d.TLSConfig = &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12}
	}
	m.sender = d
	return m
}

func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string, isHTML bool) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if m.sender == nil {
		logger.Info("SMTP disabled, dropping e-mail", slog.String("to", to), slog.String("subject", subject))
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	if isHTML {
		msg.SetBody("text/html", body)
	} else {
		msg.SetBody("text/plain", body)
	}

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send e-mail to %s: %w", to, err)
	}
	logger.Debug("E-mail sent", slog.String("to", to), slog.String("subject", subject))
	return nil
}
