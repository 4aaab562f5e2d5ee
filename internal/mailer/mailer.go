// Package mailer is the notification sink: it sends the submitter
// confirmation and operator alert for each submission and records
// submitter attempts in the email audit log. Every send is best-effort
// and independent; nothing here can roll back a committed record.
package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/civilconsult/backend/internal/model"
	"github.com/civilconsult/backend/internal/repository"
)

// Confirmation subjects as sent and as recorded in the audit log.
const (
	consultationConfirmSubject = "Consultation Request Received"
	consultationAuditSubject   = "Consultation Confirmation"
	contactConfirmSubject      = "We Received Your Message"
	contactAuditSubject        = "Contact Confirmation"
)

// Config carries the SMTP and addressing settings for the sink.
// User doubles as the configured-ness flag: when empty, every send
// short-circuits to a skip. AdminEmail gates the operator alerts.
type Config struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
}

// Mailer sends the fixed notification emails and audits submitter
// confirmations. Safe for concurrent use.
type Mailer struct {
	sender Sender
	logs   repository.EmailLogRepository
	cfg    Config
}

// New creates a Mailer. The sender argument allows tests to substitute
// the transport; pass nil to build one from cfg.
func New(cfg Config, logs repository.EmailLogRepository, sender Sender) *Mailer {
	if cfg.From == "" {
		cfg.From = cfg.User
	}
	if sender == nil {
		sender = NewSMTPSender(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return &Mailer{sender: sender, logs: logs, cfg: cfg}
}

// Enabled reports whether the transport is configured. A disabled
// mailer skips every send without error.
func (m *Mailer) Enabled() bool { return m.cfg.User != "" }

// SendConsultationConfirmation emails the submitter and records the
// attempt in the audit log. Skips silently when email is unconfigured.
func (m *Mailer) SendConsultationConfirmation(ctx context.Context, c *model.Consultation) error {
	if !m.Enabled() {
		slog.Info("email not configured, skipping confirmation", "type", model.EmailTypeConsultation)
		return nil
	}
	err := m.send(ctx, c.Email, consultationConfirmSubject, consultationConfirmationTmpl, c)
	m.audit(ctx, c.Email, consultationAuditSubject, model.EmailTypeConsultation, err)
	return err
}

// SendConsultationAlert emails the operator address. Alerts are
// best-effort and not audited.
func (m *Mailer) SendConsultationAlert(ctx context.Context, c *model.Consultation) error {
	if !m.Enabled() || m.cfg.AdminEmail == "" {
		slog.Info("admin email not configured, skipping alert", "type", model.EmailTypeConsultation)
		return nil
	}
	return m.send(ctx, m.cfg.AdminEmail, "New Consultation Request: "+c.Type, consultationAlertTmpl, c)
}

// SendContactConfirmation emails the submitter and records the attempt
// in the audit log.
func (m *Mailer) SendContactConfirmation(ctx context.Context, msg *model.ContactMessage) error {
	if !m.Enabled() {
		slog.Info("email not configured, skipping confirmation", "type", model.EmailTypeContact)
		return nil
	}
	err := m.send(ctx, msg.Email, contactConfirmSubject, contactConfirmationTmpl, msg)
	m.audit(ctx, msg.Email, contactAuditSubject, model.EmailTypeContact, err)
	return err
}

// SendContactAlert emails the operator address.
func (m *Mailer) SendContactAlert(ctx context.Context, msg *model.ContactMessage) error {
	if !m.Enabled() || m.cfg.AdminEmail == "" {
		slog.Info("admin email not configured, skipping alert", "type", model.EmailTypeContact)
		return nil
	}
	return m.send(ctx, m.cfg.AdminEmail, "New Contact Message: "+msg.Subject, contactAlertTmpl, msg)
}

// send renders the template and hands the composed message to the transport.
func (m *Mailer) send(ctx context.Context, to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return m.sender.Send(ctx, []string{to}, subject, buildMessage(m.cfg.From, to, subject, body.String()))
}

// audit appends the outcome of a submitter-confirmation attempt. Audit
// failures are logged and swallowed; they must not mask the send result.
func (m *Mailer) audit(ctx context.Context, recipient, subject, kind string, sendErr error) {
	entry := &model.EmailLog{
		Recipient: recipient,
		Subject:   subject,
		Type:      kind,
		Status:    model.EmailStatusSent,
	}
	if sendErr != nil {
		detail := sendErr.Error()
		entry.Status = model.EmailStatusFailed
		entry.ErrorMessage = &detail
	}
	if err := m.logs.Save(ctx, entry); err != nil {
		slog.Warn("email audit write failed", "recipient", recipient, "error", err)
	}
}
