package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			fetched_at DATETIME NOT NULL,
			entries    TEXT NOT NULL DEFAULT '[]'
		);

		CREATE INDEX IF NOT EXISTS idx_snapshots_fetched ON snapshots(fetched_at);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating snapshots table: %w", err)
	}

	return nil
}
