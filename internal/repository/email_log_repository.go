package repository

import (
	"context"
	"database/sql"

	"github.com/civilconsult/backend/internal/model"
)

// EmailLogRepository defines the persistence interface for the email
// audit trail. The trail is append-only: nothing in the request path
// reads it back; List exists for tests and operational inspection.
type EmailLogRepository interface {
	Save(ctx context.Context, entry *model.EmailLog) error
	List(ctx context.Context) ([]*model.EmailLog, error)
}

// SQLiteEmailLogRepository is the SQLite implementation of EmailLogRepository.
type SQLiteEmailLogRepository struct {
	db *sql.DB
}

// NewSQLiteEmailLogRepository creates a SQLiteEmailLogRepository backed by db.
func NewSQLiteEmailLogRepository(db *sql.DB) *SQLiteEmailLogRepository {
	return &SQLiteEmailLogRepository{db: db}
}

// Ensure SQLiteEmailLogRepository implements EmailLogRepository at compile time.
var _ EmailLogRepository = (*SQLiteEmailLogRepository)(nil)

// Save appends an audit row and populates entry.ID and entry.CreatedAt.
func (r *SQLiteEmailLogRepository) Save(ctx context.Context, entry *model.EmailLog) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO email_logs (recipient, subject, type, status, error_message)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id, created_at`,
		entry.Recipient, entry.Subject, entry.Type, entry.Status, entry.ErrorMessage,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// List returns every audit row, newest first.
func (r *SQLiteEmailLogRepository) List(ctx context.Context) ([]*model.EmailLog, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, recipient, subject, type, status, error_message, created_at
		 FROM email_logs
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.EmailLog
	for rows.Next() {
		var e model.EmailLog
		if err := rows.Scan(&e.ID, &e.Recipient, &e.Subject, &e.Type, &e.Status, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
