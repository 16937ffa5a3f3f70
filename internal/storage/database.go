// Package storage reads and writes pre-decoded mail stores kept in SQLite.
//
// An external decoder dumps a proprietary container into the schema created
// by Migrate. Folders form a tree through parent_id; rows with a NULL
// parent_id hang directly off the store root. Every message attribute column
// is nullable, and NULL means the decoder did not find the attribute.
package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// New opens a SQLite database connection at the given path.
// It enables foreign keys and sets connection pool settings.
func New(path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	// Enable foreign keys (disabled by default in SQLite)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenReadOnly opens an existing database without the ability to modify it.
func OpenReadOnly(ctx context.Context, path string) (*sqlx.DB, error) {
	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := checkSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

var tables = []string{"folders", "messages", "recipients", "attachments"}

// checkSchema verifies that every table of the store schema exists.
func checkSchema(ctx context.Context, db *sqlx.DB) error {
	for _, name := range tables {
		var n int
		err := db.GetContext(ctx, &n, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name)
		if err != nil {
			return fmt.Errorf("failed to inspect schema: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("table %s missing", name)
		}
	}
	return nil
}

// Migrate runs database migrations to create the required tables.
// It is idempotent and can be run multiple times safely.
func Migrate(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS folders (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			parent_id INTEGER,
			name TEXT,
			position INTEGER NOT NULL DEFAULT 0,
			FOREIGN KEY (parent_id) REFERENCES folders(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			folder_id INTEGER NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			subject TEXT,
			sender_name TEXT,
			sender_email TEXT,
			body_plain BLOB,
			body_html BLOB,
			delivery_time TEXT,
			creation_time TEXT,
			modification_time TEXT,
			size INTEGER,
			message_class TEXT,
			priority TEXT,
			importance TEXT,
			categories TEXT,
			is_read INTEGER,
			FOREIGN KEY (folder_id) REFERENCES folders(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS recipients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id INTEGER NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			name TEXT,
			address TEXT,
			type TEXT,
			FOREIGN KEY (message_id) REFERENCES messages(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS attachments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			message_id INTEGER NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			name TEXT,
			size INTEGER,
			mime_type TEXT,
			data BLOB,
			FOREIGN KEY (message_id) REFERENCES messages(id) ON DELETE CASCADE
		);`,
		`CREATE INDEX IF NOT EXISTS idx_folders_parent ON folders(parent_id, position);`,
		`CREATE INDEX IF NOT EXISTS idx_messages_folder ON messages(folder_id, position);`,
		`CREATE INDEX IF NOT EXISTS idx_recipients_message ON recipients(message_id, position);`,
		`CREATE INDEX IF NOT EXISTS idx_attachments_message ON attachments(message_id, position);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}
