package service

import (
	"context"

	"github.com/civilconsult/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message and dispatches the
	// best-effort confirmation and operator-alert emails.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns every contact message, newest first.
	List(ctx context.Context) ([]*model.ContactMessage, error)

	// UpdateStatus overwrites the status of one message with the
	// caller-supplied value and returns the number of rows affected.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// ContactNotifier is the slice of the notification sink the contact
// pipeline needs. Implemented by mailer.Mailer.
type ContactNotifier interface {
	SendContactConfirmation(ctx context.Context, msg *model.ContactMessage) error
	SendContactAlert(ctx context.Context, msg *model.ContactMessage) error
}
