package service

import (
	"context"
	"errors"
	"testing"

	"github.com/civilconsult/backend/internal/model"
)

// ---------------------------------------------------------------------------
// mockConsultationRepository — in-memory stub for testing
// ---------------------------------------------------------------------------

type mockConsultationRepository struct {
	saveFunc         func(ctx context.Context, c *model.Consultation) error
	listFunc         func(ctx context.Context) ([]*model.Consultation, error)
	findFunc         func(ctx context.Context, id int64) (*model.Consultation, error)
	updateStatusFunc func(ctx context.Context, id int64, status string) (int64, error)
}

func (m *mockConsultationRepository) Save(ctx context.Context, c *model.Consultation) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, c)
	}
	return nil
}

func (m *mockConsultationRepository) List(ctx context.Context) ([]*model.Consultation, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockConsultationRepository) FindByID(ctx context.Context, id int64) (*model.Consultation, error) {
	if m.findFunc != nil {
		return m.findFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockConsultationRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	if m.updateStatusFunc != nil {
		return m.updateStatusFunc(ctx, id, status)
	}
	return 1, nil
}

// ---------------------------------------------------------------------------
// mockNotifier — records notification calls for both record kinds
// ---------------------------------------------------------------------------

type mockNotifier struct {
	consultationConfirmations int
	consultationAlerts        int
	contactConfirmations      int
	contactAlerts             int
	confirmErr                error
	alertErr                  error
}

func (m *mockNotifier) SendConsultationConfirmation(ctx context.Context, c *model.Consultation) error {
	m.consultationConfirmations++
	return m.confirmErr
}

func (m *mockNotifier) SendConsultationAlert(ctx context.Context, c *model.Consultation) error {
	m.consultationAlerts++
	return m.alertErr
}

func (m *mockNotifier) SendContactConfirmation(ctx context.Context, msg *model.ContactMessage) error {
	m.contactConfirmations++
	return m.confirmErr
}

func (m *mockNotifier) SendContactAlert(ctx context.Context, msg *model.ContactMessage) error {
	m.contactAlerts++
	return m.alertErr
}

func strPtr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestConsultationService_Submit_SavesAndNotifies(t *testing.T) {
	var saved *model.Consultation
	repo := &mockConsultationRepository{
		saveFunc: func(ctx context.Context, c *model.Consultation) error {
			c.ID = 1
			saved = c
			return nil
		},
	}
	notifier := &mockNotifier{}
	svc := NewConsultationService(repo, notifier)

	c := &model.Consultation{Name: "Jane", Email: "j@x.com", Type: "Cost Estimation", PreferredDate: "2025-01-01"}
	if err := svc.Submit(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if notifier.consultationConfirmations != 1 {
		t.Errorf("expected 1 confirmation, got %d", notifier.consultationConfirmations)
	}
	if notifier.consultationAlerts != 1 {
		t.Errorf("expected 1 admin alert, got %d", notifier.consultationAlerts)
	}
}

// TestConsultationService_Submit_NormalizesEmptyOptionals verifies
// empty phone/message become NULL rather than empty strings.
func TestConsultationService_Submit_NormalizesEmptyOptionals(t *testing.T) {
	var saved *model.Consultation
	repo := &mockConsultationRepository{
		saveFunc: func(ctx context.Context, c *model.Consultation) error {
			saved = c
			return nil
		},
	}
	svc := NewConsultationService(repo, &mockNotifier{})

	c := &model.Consultation{
		Name: "Jane", Email: "j@x.com", Type: "Other", PreferredDate: "2025-01-01",
		Phone:   strPtr(""),
		Message: strPtr(""),
	}
	if err := svc.Submit(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Phone != nil {
		t.Errorf("expected empty phone normalized to nil, got %q", *saved.Phone)
	}
	if saved.Message != nil {
		t.Errorf("expected empty message normalized to nil, got %q", *saved.Message)
	}
}

// TestConsultationService_Submit_KeepsNonEmptyOptionals verifies
// populated optionals survive normalization.
func TestConsultationService_Submit_KeepsNonEmptyOptionals(t *testing.T) {
	var saved *model.Consultation
	repo := &mockConsultationRepository{
		saveFunc: func(ctx context.Context, c *model.Consultation) error {
			saved = c
			return nil
		},
	}
	svc := NewConsultationService(repo, &mockNotifier{})

	c := &model.Consultation{
		Name: "Jane", Email: "j@x.com", Type: "Other", PreferredDate: "2025-01-01",
		Phone: strPtr("0400 000 000"),
	}
	if err := svc.Submit(context.Background(), c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.Phone == nil || *saved.Phone != "0400 000 000" {
		t.Errorf("expected phone preserved, got %v", saved.Phone)
	}
}

// TestConsultationService_Submit_NotificationFailureSwallowed verifies
// email failures never fail the submission.
func TestConsultationService_Submit_NotificationFailureSwallowed(t *testing.T) {
	repo := &mockConsultationRepository{}
	notifier := &mockNotifier{
		confirmErr: errors.New("smtp down"),
		alertErr:   errors.New("smtp down"),
	}
	svc := NewConsultationService(repo, notifier)

	c := &model.Consultation{Name: "Jane", Email: "j@x.com", Type: "Other", PreferredDate: "2025-01-01"}
	if err := svc.Submit(context.Background(), c); err != nil {
		t.Errorf("expected success despite notification failures, got %v", err)
	}
	// Both attempts should still have been made independently.
	if notifier.consultationConfirmations != 1 || notifier.consultationAlerts != 1 {
		t.Errorf("expected both attempts, got confirm=%d alert=%d",
			notifier.consultationConfirmations, notifier.consultationAlerts)
	}
}

// TestConsultationService_Submit_SaveFailure verifies a persistence
// failure propagates and no notifications are attempted.
func TestConsultationService_Submit_SaveFailure(t *testing.T) {
	repo := &mockConsultationRepository{
		saveFunc: func(ctx context.Context, c *model.Consultation) error {
			return errors.New("disk full")
		},
	}
	notifier := &mockNotifier{}
	svc := NewConsultationService(repo, notifier)

	c := &model.Consultation{Name: "Jane", Email: "j@x.com", Type: "Other", PreferredDate: "2025-01-01"}
	if err := svc.Submit(context.Background(), c); err == nil {
		t.Error("expected error from failed save")
	}
	if notifier.consultationConfirmations != 0 || notifier.consultationAlerts != 0 {
		t.Error("expected no notifications after failed save")
	}
}

// ---------------------------------------------------------------------------
// UpdateStatus tests
// ---------------------------------------------------------------------------

func TestConsultationService_UpdateStatus_Forwards(t *testing.T) {
	var gotID int64
	var gotStatus string
	repo := &mockConsultationRepository{
		updateStatusFunc: func(ctx context.Context, id int64, status string) (int64, error) {
			gotID = id
			gotStatus = status
			return 1, nil
		},
	}
	svc := NewConsultationService(repo, &mockNotifier{})

	rows, err := svc.UpdateStatus(context.Background(), 7, model.StatusContacted)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 1 {
		t.Errorf("expected 1 row, got %d", rows)
	}
	if gotID != 7 || gotStatus != model.StatusContacted {
		t.Errorf("expected id=7 status=contacted forwarded, got id=%d status=%q", gotID, gotStatus)
	}
}
