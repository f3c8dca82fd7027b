package notify

import (
	"context"
	"fmt"
	"net/smtp"

	"colpa-mia/internal/pkg/config"
)

// SMTPMailer sends transactional email. Email is the durable record of the
// purchase, but its delivery is best-effort like every other channel.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	sender   string
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	sender := cfg.Sender
	if sender == "" {
		sender = "no-reply@colpamia.local"
	}
	return &SMTPMailer{
		host:     cfg.Host,
		port:     cfg.Port,
		username: cfg.Username,
		password: cfg.Password,
		sender:   sender,
	}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, htmlBody string) error {
	if m.host == "" {
		return fmt.Errorf("smtp_not_configured")
	}

	var auth smtp.Auth
	if m.username != "" && m.password != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", m.sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			htmlBody,
	)

	if err := smtp.SendMail(addr, auth, m.sender, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp_send_failed: %w", err)
	}
	return nil
}
