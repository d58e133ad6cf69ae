// Package mailer sends plaintext email over SMTP with STARTTLS. The portal
// uses it to notify the operator about new project submissions; credentials
// and server address come from configuration.
package mailer

import (
	"fmt"
	"net/smtp"
)

// SMTPMailer sends mail through a single configured SMTP server.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
}

// New creates an SMTPMailer for the given server and credentials.
func New(host, port, username, password string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, username: username, password: password}
}

// Send delivers a plaintext message. It validates its inputs up front so a
// misconfigured mailer fails with a clear error instead of an SMTP rejection.
func (m *SMTPMailer) Send(recipient, sender, subject, body string) error {
	if recipient == "" {
		return fmt.Errorf("recipient email address cannot be empty")
	}
	if sender == "" {
		return fmt.Errorf("sender email address cannot be empty")
	}
	if subject == "" {
		return fmt.Errorf("email subject cannot be empty")
	}
	if m.host == "" || m.port == "" {
		return fmt.Errorf("SMTP server address is not configured")
	}

	message := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/plain; charset=UTF-8\r\n"+
		"\r\n"+
		"%s\r\n", recipient, sender, subject, body))

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(m.host+":"+m.port, auth, sender, []string{recipient}, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
