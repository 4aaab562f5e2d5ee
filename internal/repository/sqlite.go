package repository

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite"
)

// schema is applied idempotently every time the database is opened.
// Tables are created on first run; subsequent runs are no-ops.
const schema = `
CREATE TABLE IF NOT EXISTS consultations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	type TEXT NOT NULL,
	message TEXT,
	preferred_date TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	status TEXT DEFAULT 'new'
);

CREATE TABLE IF NOT EXISTS contact_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT,
	subject TEXT NOT NULL,
	message TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	status TEXT DEFAULT 'new'
);

CREATE TABLE IF NOT EXISTS email_logs (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	recipient TEXT NOT NULL,
	subject TEXT NOT NULL,
	type TEXT NOT NULL,
	status TEXT NOT NULL,
	error_message TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// Open opens (creating if necessary) the SQLite database at path and
// ensures the schema exists.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, err
	}
	// SQLite serializes writes; a single connection avoids SQLITE_BUSY
	// churn under concurrent requests.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// DropAll removes every table owned by this application. Used by the
// migrate tool's reset command; never called from the server.
func DropAll(ctx context.Context, db *sql.DB) error {
	for _, table := range []string{"consultations", "contact_messages", "email_logs"} {
		if _, err := db.ExecContext(ctx, "DROP TABLE IF EXISTS "+table); err != nil {
			return err
		}
	}
	return nil
}

// EnsureSchema re-applies the idempotent schema. Exposed for the
// migrate tool; Open already does this for the server.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
