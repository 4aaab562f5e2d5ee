package service

import (
	"context"
	"log/slog"

	"github.com/civilconsult/backend/internal/model"
	"github.com/civilconsult/backend/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given
// repository and notification sink.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the message, then attempts the submitter confirmation
// and the operator alert in order. Email failures are logged by the
// sink and swallowed here; the stored message is the source of truth.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.Phone = normalizeOptional(msg.Phone)

	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}

	if err := s.notifier.SendContactConfirmation(ctx, msg); err != nil {
		slog.Warn("contact confirmation failed", "id", msg.ID, "error", err)
	}
	if err := s.notifier.SendContactAlert(ctx, msg); err != nil {
		slog.Warn("contact admin alert failed", "id", msg.ID, "error", err)
	}
	return nil
}

// List returns every contact message, newest first.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}

// UpdateStatus overwrites the status of one contact message.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}
