package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/KayanRoberto/strata-cashflow/internal/common"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements service.BlobStore on a single-table SQLite
// database. Every blob write replaces the full value for its key.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore creates a new SQLite blob store instance.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := validateString(dbPath, "dbPath"); err != nil {
		return nil, err
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Read returns the blob stored under key.
func (s *SQLiteStore) Read(ctx context.Context, key string) ([]byte, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateKey(key); err != nil {
		return nil, err
	}

	query := `SELECT value FROM blobs WHERE key = ?`

	var value []byte
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("blob %q: %w", key, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q: %w", key, err)
	}

	slog.Debug("read blob", "key", key, "bytes", len(value))
	return value, nil
}

// Write replaces the blob stored under key.
func (s *SQLiteStore) Write(ctx context.Context, key string, data []byte) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%w: data", ErrNilParameter)
	}

	query := `
		INSERT INTO blobs (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	if _, err := s.db.ExecContext(ctx, query, key, data, time.Now()); err != nil {
		return fmt.Errorf("failed to write blob %q: %w", key, err)
	}

	slog.Debug("wrote blob", "key", key, "bytes", len(data))
	return nil
}

// Delete removes the blob stored under key. Missing keys are not an
// error.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM blobs WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}

	return nil
}

// Keys lists every key currently stored.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT key FROM blobs ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query blob keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan blob key: %w", err)
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blob keys: %w", err)
	}

	return keys, nil
}
