package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/civilconsult/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
	FindByID(ctx context.Context, id int64) (*model.ContactMessage, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// SQLiteContactRepository is the SQLite implementation of ContactRepository.
type SQLiteContactRepository struct {
	db *sql.DB
}

// NewSQLiteContactRepository creates a SQLiteContactRepository backed by db.
func NewSQLiteContactRepository(db *sql.DB) *SQLiteContactRepository {
	return &SQLiteContactRepository{db: db}
}

// Ensure SQLiteContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*SQLiteContactRepository)(nil)

// Save inserts a new contact_messages row and populates msg.ID,
// msg.CreatedAt and msg.Status from the database RETURNING clause.
func (r *SQLiteContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO contact_messages (name, email, phone, subject, message)
		 VALUES (?, ?, ?, ?, ?)
		 RETURNING id, created_at, status`,
		msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedAt, &msg.Status)
}

// List returns every contact message, newest first.
func (r *SQLiteContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, subject, message, created_at, status
		 FROM contact_messages
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		var m model.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt, &m.Status); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// FindByID returns the contact message with the given id, or ErrNotFound.
func (r *SQLiteContactRepository) FindByID(ctx context.Context, id int64) (*model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, subject, message, created_at, status
		 FROM contact_messages WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Subject, &m.Message, &m.CreatedAt, &m.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateStatus overwrites the status of the contact message with the
// given id and returns the number of rows affected.
func (r *SQLiteContactRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
