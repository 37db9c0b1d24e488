// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/jmvillaverde/horario/internal/timetable"
)

// SQLite implements timetable.Cache using SQLite. It keeps the last
// fetched copy of each timetable so the dashboard still works when the
// service is unreachable.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite cache and runs migrations.
func New(path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating cache directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// SaveSnapshot stores a timetable snapshot, replacing any previous copy
// with the same ID.
func (s *SQLite) SaveSnapshot(ctx context.Context, snap *timetable.Snapshot) error {
	entries, err := json.Marshal(snap.Entries)
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO snapshots (id, name, fetched_at, entries)
		VALUES (?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		snap.ID,
		snap.Name,
		snap.FetchedAt.Format(time.RFC3339),
		string(entries),
	)
	if err != nil {
		return fmt.Errorf("inserting snapshot: %w", err)
	}

	return nil
}

// LoadSnapshot retrieves a cached snapshot by timetable ID.
// Returns (nil, nil) when no snapshot is cached for the ID.
func (s *SQLite) LoadSnapshot(ctx context.Context, id string) (*timetable.Snapshot, error) {
	query := `SELECT id, name, fetched_at, entries FROM snapshots WHERE id = ?`

	var (
		snap      timetable.Snapshot
		fetchedAt string
		entries   string
	)

	err := s.db.QueryRowContext(ctx, query, id).Scan(&snap.ID, &snap.Name, &fetchedAt, &entries)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying snapshot: %w", err)
	}

	snap.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched at: %w", err)
	}

	if err := json.Unmarshal([]byte(entries), &snap.Entries); err != nil {
		return nil, fmt.Errorf("decoding entries: %w", err)
	}

	return &snap, nil
}

// ListSnapshots returns metadata for all cached snapshots, newest first.
// Entries are not loaded.
func (s *SQLite) ListSnapshots(ctx context.Context) ([]*timetable.Snapshot, error) {
	query := `SELECT id, name, fetched_at FROM snapshots ORDER BY fetched_at DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var snaps []*timetable.Snapshot
	for rows.Next() {
		var (
			snap      timetable.Snapshot
			fetchedAt string
		)
		if err := rows.Scan(&snap.ID, &snap.Name, &fetchedAt); err != nil {
			return nil, fmt.Errorf("scanning snapshot: %w", err)
		}
		snap.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing fetched at: %w", err)
		}
		snaps = append(snaps, &snap)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshots: %w", err)
	}

	return snaps, nil
}

// DeleteSnapshot removes a cached snapshot.
func (s *SQLite) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting snapshot: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("snapshot %q not found", id)
	}

	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}
