package service

import (
	"context"

	"github.com/civilconsult/backend/internal/model"
)

// ConsultationService defines the business logic for consultation requests.
type ConsultationService interface {
	// Submit stores a new consultation request and dispatches the
	// best-effort confirmation and operator-alert emails. msg.ID,
	// timestamps and the default status are populated by the
	// implementation. A notification failure never fails the submit.
	Submit(ctx context.Context, c *model.Consultation) error

	// List returns every consultation request, newest first.
	List(ctx context.Context) ([]*model.Consultation, error)

	// UpdateStatus overwrites the status of one request with the
	// caller-supplied value (stored verbatim, not validated) and
	// returns the number of rows affected.
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// ConsultationNotifier is the slice of the notification sink the
// consultation pipeline needs. Implemented by mailer.Mailer.
type ConsultationNotifier interface {
	SendConsultationConfirmation(ctx context.Context, c *model.Consultation) error
	SendConsultationAlert(ctx context.Context, c *model.Consultation) error
}
