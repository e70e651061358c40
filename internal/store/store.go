// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/dojang-app/dojang/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for app state. App state is a flat key-value
// table; every value is a string or JSON-encoded blob, matching the
// original browser-storage layout key for key.
type Store struct {
	db     *sql.DB
	logger *zap.Logger
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string, logger *zap.Logger) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	store := &Store{db: db, logger: logger}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS app_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS practice_sessions (
			id TEXT PRIMARY KEY,
			date TEXT NOT NULL,
			minutes INTEGER NOT NULL,
			note TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_practice_sessions_date ON practice_sessions(date);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the stored value for key and whether it was present.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set upserts the value for key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}

// Delete removes a key. Deleting an absent key is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM app_state WHERE key = ?`, key)
	return err
}

// GetInt returns the integer stored under key, or def when the key is
// absent or holds a non-numeric value.
func (s *Store) GetInt(ctx context.Context, key string, def int) (int, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		s.logger.Warn("non-numeric value in app state, using default",
			zap.String("key", key), zap.String("value", raw))
		return def, nil
	}
	return n, nil
}

// SetInt stores an integer as its decimal string.
func (s *Store) SetInt(ctx context.Context, key string, n int) error {
	return s.Set(ctx, key, strconv.Itoa(n))
}

// GetJSON decodes the JSON value under key into dst. A missing key or a
// corrupted value reports found=false so the caller falls back to its
// default; corruption is logged, never fatal.
func (s *Store) GetJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		s.logger.Warn("corrupted value in app state, using default",
			zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

// SetJSON stores dst JSON-encoded under key.
func (s *Store) SetJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}

// AppendPracticeSession stores one logged practice entry.
func (s *Store) AppendPracticeSession(ctx context.Context, ps model.PracticeSession) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO practice_sessions (id, date, minutes, note) VALUES (?, ?, ?, ?)`,
		ps.ID, ps.Date.Format(time.RFC3339Nano), ps.Minutes, ps.Note)
	return err
}

// ListPracticeSessions returns the most recent practice entries, newest
// first. limit <= 0 returns all.
func (s *Store) ListPracticeSessions(ctx context.Context, limit int) ([]model.PracticeSession, error) {
	query := `SELECT id, date, minutes, note FROM practice_sessions ORDER BY date DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var sessions []model.PracticeSession
	for rows.Next() {
		var ps model.PracticeSession
		var date string
		if err := rows.Scan(&ps.ID, &date, &ps.Minutes, &ps.Note); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, date)
		if err != nil {
			return nil, err
		}
		ps.Date = parsed
		sessions = append(sessions, ps)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}
