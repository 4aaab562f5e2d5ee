package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/civilconsult/backend/internal/model"
)

func newContact(name, email string) *model.ContactMessage {
	return &model.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: "Quote request",
		Message: "Hello",
	}
}

// TestContactRepository_Save verifies id/timestamp/status assignment.
func TestContactRepository_Save(t *testing.T) {
	repo := NewSQLiteContactRepository(openTestDB(t))

	msg := newContact("Alice", "a@x.com")
	if err := repo.Save(context.Background(), msg); err != nil {
		t.Fatalf("save: %v", err)
	}

	if msg.ID == 0 {
		t.Error("expected store-assigned id")
	}
	if msg.Status != model.StatusNew {
		t.Errorf("expected status=new, got %q", msg.Status)
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected store-assigned CreatedAt, got zero time")
	}
}

// TestContactRepository_Save_DuplicatesAllowed verifies the store has
// no uniqueness constraint beyond the identifier.
func TestContactRepository_Save_DuplicatesAllowed(t *testing.T) {
	repo := NewSQLiteContactRepository(openTestDB(t))
	ctx := context.Background()

	first := newContact("Alice", "same@x.com")
	second := newContact("Alice", "same@x.com")
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("expected distinct ids, both %d", first.ID)
	}
}

// TestContactRepository_List_NewestFirst verifies ordering.
func TestContactRepository_List_NewestFirst(t *testing.T) {
	repo := NewSQLiteContactRepository(openTestDB(t))
	ctx := context.Background()

	for _, name := range []string{"first", "second"} {
		if err := repo.Save(ctx, newContact(name, name+"@x.com")); err != nil {
			t.Fatalf("save %s: %v", name, err)
		}
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(list))
	}
	if list[0].Name != "second" {
		t.Errorf("expected newest first, got %s", list[0].Name)
	}
}

// TestContactRepository_FindByID_NotFound verifies ErrNotFound.
func TestContactRepository_FindByID_NotFound(t *testing.T) {
	repo := NewSQLiteContactRepository(openTestDB(t))

	_, err := repo.FindByID(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

// TestContactRepository_UpdateStatus_MissingID verifies the silent no-op.
func TestContactRepository_UpdateStatus_MissingID(t *testing.T) {
	repo := NewSQLiteContactRepository(openTestDB(t))

	rows, err := repo.UpdateStatus(context.Background(), 42, model.StatusViewed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows != 0 {
		t.Errorf("expected 0 rows affected, got %d", rows)
	}
}
