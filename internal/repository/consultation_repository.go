package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/civilconsult/backend/internal/model"
)

// ConsultationRepository defines the persistence interface for
// consultation requests. It is defined here (in repository) to avoid an
// import cycle with service.
type ConsultationRepository interface {
	Save(ctx context.Context, c *model.Consultation) error
	List(ctx context.Context) ([]*model.Consultation, error)
	FindByID(ctx context.Context, id int64) (*model.Consultation, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
}

// SQLiteConsultationRepository is the SQLite implementation of ConsultationRepository.
type SQLiteConsultationRepository struct {
	db *sql.DB
}

// NewSQLiteConsultationRepository creates a SQLiteConsultationRepository backed by db.
func NewSQLiteConsultationRepository(db *sql.DB) *SQLiteConsultationRepository {
	return &SQLiteConsultationRepository{db: db}
}

// Ensure SQLiteConsultationRepository implements ConsultationRepository at compile time.
var _ ConsultationRepository = (*SQLiteConsultationRepository)(nil)

// Save inserts a new consultations row and populates c.ID, c.CreatedAt
// and c.Status from the database RETURNING clause. The insert is a
// single statement: the row is either fully written or not at all.
func (r *SQLiteConsultationRepository) Save(ctx context.Context, c *model.Consultation) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO consultations (name, email, phone, type, message, preferred_date)
		 VALUES (?, ?, ?, ?, ?, ?)
		 RETURNING id, created_at, status`,
		c.Name, c.Email, c.Phone, c.Type, c.Message, c.PreferredDate,
	).Scan(&c.ID, &c.CreatedAt, &c.Status)
}

// List returns every consultation, newest first. Rows created within
// the same second are tie-broken by id so ordering stays stable.
func (r *SQLiteConsultationRepository) List(ctx context.Context) ([]*model.Consultation, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, email, phone, type, message, preferred_date, created_at, status
		 FROM consultations
		 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var consultations []*model.Consultation
	for rows.Next() {
		var c model.Consultation
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.Message, &c.PreferredDate, &c.CreatedAt, &c.Status); err != nil {
			return nil, err
		}
		consultations = append(consultations, &c)
	}
	return consultations, rows.Err()
}

// FindByID returns the consultation with the given id, or ErrNotFound.
func (r *SQLiteConsultationRepository) FindByID(ctx context.Context, id int64) (*model.Consultation, error) {
	var c model.Consultation
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, type, message, preferred_date, created_at, status
		 FROM consultations WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Type, &c.Message, &c.PreferredDate, &c.CreatedAt, &c.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateStatus overwrites the status of the consultation with the given
// id and returns the number of rows affected. A missing id is not an
// error; zero rows are reported to the caller.
func (r *SQLiteConsultationRepository) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE consultations SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
