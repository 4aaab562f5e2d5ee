package service

import (
	"context"
	"log/slog"

	"github.com/civilconsult/backend/internal/model"
	"github.com/civilconsult/backend/internal/repository"
)

// consultationServiceImpl is the production implementation of ConsultationService.
type consultationServiceImpl struct {
	repo     repository.ConsultationRepository
	notifier ConsultationNotifier
}

// NewConsultationService creates a ConsultationService backed by the
// given repository and notification sink.
func NewConsultationService(repo repository.ConsultationRepository, notifier ConsultationNotifier) ConsultationService {
	return &consultationServiceImpl{repo: repo, notifier: notifier}
}

// Submit persists the request, then attempts the submitter confirmation
// and the operator alert in order. The database write is the
// business-critical effect: once it succeeds, email failures are logged
// by the sink and swallowed here.
func (s *consultationServiceImpl) Submit(ctx context.Context, c *model.Consultation) error {
	c.Phone = normalizeOptional(c.Phone)
	c.Message = normalizeOptional(c.Message)

	if err := s.repo.Save(ctx, c); err != nil {
		return err
	}

	if err := s.notifier.SendConsultationConfirmation(ctx, c); err != nil {
		slog.Warn("consultation confirmation failed", "id", c.ID, "error", err)
	}
	if err := s.notifier.SendConsultationAlert(ctx, c); err != nil {
		slog.Warn("consultation admin alert failed", "id", c.ID, "error", err)
	}
	return nil
}

// List returns every consultation request, newest first.
func (s *consultationServiceImpl) List(ctx context.Context) ([]*model.Consultation, error) {
	return s.repo.List(ctx)
}

// UpdateStatus overwrites the status of one consultation request.
func (s *consultationServiceImpl) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

// normalizeOptional maps empty optional fields to NULL so the store and
// the JSON surface agree on absence.
func normalizeOptional(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
