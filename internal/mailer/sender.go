package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
	"time"
)

// Sender delivers a fully composed email message. rawMessage contains
// all headers and the body.
type Sender interface {
	Send(ctx context.Context, to []string, subject string, rawMessage []byte) error
}

// SMTPSender implements Sender over smtp.SendMail (STARTTLS on the
// standard submission port).
type SMTPSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTPSender creates a Sender for the given SMTP endpoint. When no
// host is configured it falls back to a LogSender so development
// environments see the composed messages instead of network errors.
func NewSMTPSender(host string, port int, username, password string) Sender {
	if host == "" {
		slog.Info("smtp host not configured, using logging sender")
		return &LogSender{}
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%d", host, port),
		auth: smtp.PlainAuth("", username, password, host),
		from: username,
	}
}

// Send delivers the message. The envelope sender is the configured
// SMTP username.
func (s *SMTPSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	if err := smtp.SendMail(s.addr, s.auth, s.from, to, rawMessage); err != nil {
		return fmt.Errorf("smtp send to %v: %w", to, err)
	}
	return nil
}

// LogSender logs messages instead of delivering them.
type LogSender struct{}

// Send logs the message envelope and succeeds.
func (s *LogSender) Send(ctx context.Context, to []string, subject string, rawMessage []byte) error {
	slog.Info("email (logged, not sent)", "to", to, "subject", subject, "bytes", len(rawMessage))
	return nil
}

// buildMessage composes a complete HTML email with headers.
func buildMessage(from, to, subject, htmlBody string) []byte {
	var sb strings.Builder
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("Subject: " + subject + "\r\n")
	sb.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(htmlBody)
	sb.WriteString("\r\n")
	return []byte(sb.String())
}
