// Package audit persists execution history: every instruction the CLI
// runs, the command it resolved to, and the outcome. The interpretation
// pipeline itself stays stateless; recording happens at the CLI
// boundary after execution.
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
)

// Entry is one executed instruction.
type Entry struct {
	ID          string         `json:"id"`
	SessionID   string         `json:"sessionId,omitempty"`
	Instruction string         `json:"instruction"`
	CommandType string         `json:"commandType"`
	Parameters  map[string]any `json:"parameters,omitempty"`
	Success     bool           `json:"success"`
	Error       string         `json:"error,omitempty"`
	DurationMS  int64          `json:"durationMs"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// Store is a sqlite-backed history store.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the history database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS executions (
		id TEXT PRIMARY KEY,
		session_id TEXT,
		instruction TEXT NOT NULL,
		command_type TEXT NOT NULL,
		params_json TEXT,
		success INTEGER NOT NULL,
		error TEXT,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_executions_created ON executions(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_executions_session ON executions(session_id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one entry, assigning an ID and timestamp when absent.
func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.ID == "" {
		e.ID = ulid.Make().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	var paramsJSON []byte
	if len(e.Parameters) > 0 {
		paramsJSON, _ = json.Marshal(e.Parameters)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO executions (id, session_id, instruction, command_type, params_json, success, error, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.SessionID, e.Instruction, e.CommandType, paramsJSON, e.Success, e.Error, e.DurationMS, e.CreatedAt)
	return err
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, instruction, command_type, params_json, success, error, duration_ms, created_at
		FROM executions ORDER BY created_at DESC, id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// BySession returns a session's entries, most recent first.
func (s *Store) BySession(ctx context.Context, sessionID string, limit int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, session_id, instruction, command_type, params_json, success, error, duration_ms, created_at
		FROM executions WHERE session_id = ? ORDER BY created_at DESC, id DESC LIMIT ?
	`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Purge deletes every recorded entry.
func (s *Store) Purge(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM executions`)
	return err
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var e Entry
		var sessionID, errMsg sql.NullString
		var paramsJSON sql.NullString

		if err := rows.Scan(&e.ID, &sessionID, &e.Instruction, &e.CommandType, &paramsJSON, &e.Success, &errMsg, &e.DurationMS, &e.CreatedAt); err != nil {
			return nil, err
		}

		if sessionID.Valid {
			e.SessionID = sessionID.String
		}
		if errMsg.Valid {
			e.Error = errMsg.String
		}
		if paramsJSON.Valid && paramsJSON.String != "" {
			json.Unmarshal([]byte(paramsJSON.String), &e.Parameters)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
