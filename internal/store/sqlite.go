package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/glebarez/go-sqlite"
)

// SQLiteStore implements Repository backed by a local SQLite file.
type SQLiteStore struct {
	db      *sql.DB
	writeMu sync.Mutex // serialize writes to avoid SQLITE_BUSY
}

// NewSQLite opens (and creates if needed) the database at dbPath.
func NewSQLite(dbPath string) (*SQLiteStore, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+dbPath+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) initSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS contact_submissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// SaveContact stores a submission and returns its row id.
func (s *SQLiteStore) SaveContact(ctx context.Context, sub ContactSubmission) (int64, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_submissions (name, email, message, created_at) VALUES (?,?,?,?);`,
		sub.Name, sub.Email, sub.Message, sub.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("insert contact submission: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}
	return id, nil
}

// ListContacts returns all submissions in chronological order.
func (s *SQLiteStore) ListContacts(ctx context.Context) ([]ContactSubmission, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, message, created_at FROM contact_submissions ORDER BY id ASC;`)
	if err != nil {
		return nil, fmt.Errorf("query contact submissions: %w", err)
	}
	defer rows.Close()

	var out []ContactSubmission
	for rows.Next() {
		var sub ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact submission: %w", err)
		}
		out = append(out, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contact submissions: %w", err)
	}
	return out, nil
}

// Ping verifies database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
