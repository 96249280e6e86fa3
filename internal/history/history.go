// Package history records CLI operations to a local SQLite database so
// `tutorfind history` can show what ran, when, and how it went.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/team13/tutorfind-cli/internal/config"
)

// Statuses for a recorded operation.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Event is one recorded CLI operation.
type Event struct {
	ID         string
	Operation  string
	Detail     string
	Status     string
	Error      string
	DurationMs int64
	StartedAt  time.Time
}

// Store persists events to SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// New opens the store at the configured history database path.
func New() (*Store, error) {
	return NewAt(config.GetPaths().HistoryDB)
}

// NewAt opens the store at an explicit path, creating parent directories and
// the schema as needed.
func NewAt(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal=WAL&_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, path: path}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		operation TEXT NOT NULL,
		detail TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		duration_ms INTEGER NOT NULL DEFAULT 0,
		started_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_events_started ON events(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_events_operation ON events(operation);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one finished event. A missing ID or start time is filled in.
func (s *Store) Record(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.StartedAt.IsZero() {
		e.StartedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO events (id, operation, detail, status, error, duration_ms, started_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.ID, e.Operation, e.Detail, e.Status, e.Error, e.DurationMs, e.StartedAt.UTC())
	return err
}

// Recent returns the latest events, optionally filtered by operation.
func (s *Store) Recent(ctx context.Context, operation string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, operation, detail, status, error, duration_ms, started_at
		FROM events
	`
	args := []any{}
	if operation != "" {
		query += ` WHERE operation = ?`
		args = append(args, operation)
	}
	query += ` ORDER BY started_at DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.Operation, &e.Detail, &e.Status, &e.Error, &e.DurationMs, &e.StartedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Stats summarizes recorded events.
type Stats struct {
	Total         int
	Success       int
	Errors        int
	AvgDurationMs float64
}

// GetStats aggregates over all recorded events.
func (s *Store) GetStats(ctx context.Context) (*Stats, error) {
	var st Stats
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
			   COALESCE(SUM(CASE WHEN status = 'success' THEN 1 ELSE 0 END), 0),
			   COALESCE(SUM(CASE WHEN status = 'error' THEN 1 ELSE 0 END), 0),
			   COALESCE(AVG(duration_ms), 0)
		FROM events
	`).Scan(&st.Total, &st.Success, &st.Errors, &st.AvgDurationMs)
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// Pending is an in-flight operation awaiting its outcome.
type Pending struct {
	store *Store
	event Event
	start time.Time
}

// Begin starts timing an operation. Call Complete to record it.
func (s *Store) Begin(operation, detail string) *Pending {
	return &Pending{
		store: s,
		event: Event{
			ID:        uuid.New().String(),
			Operation: operation,
			Detail:    detail,
			StartedAt: time.Now(),
		},
		start: time.Now(),
	}
}

// Complete records the operation's outcome. Recording failures are swallowed;
// history must never break the command that ran.
func (p *Pending) Complete(ctx context.Context, opErr error) {
	p.event.DurationMs = time.Since(p.start).Milliseconds()
	if opErr != nil {
		p.event.Status = StatusError
		p.event.Error = opErr.Error()
	} else {
		p.event.Status = StatusSuccess
	}
	_ = p.store.Record(ctx, p.event)
}
