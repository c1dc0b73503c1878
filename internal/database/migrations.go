package database

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations are applied in version order. Keep SQL additive; the
// tracking table guards against re-application.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_places",
		SQL: `
			CREATE TABLE IF NOT EXISTS places (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				location TEXT NOT NULL,
				state TEXT NOT NULL,
				country TEXT NOT NULL,
				latitude REAL NOT NULL,
				longitude REAL NOT NULL,
				description TEXT,
				date TEXT,
				evidence TEXT,
				created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			CREATE INDEX IF NOT EXISTS idx_places_state ON places(state);
		`,
	},
	{
		Version: 2,
		Name:    "create_pipeline_runs",
		SQL: `
			CREATE TABLE IF NOT EXISTS pipeline_runs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				status TEXT NOT NULL DEFAULT 'running',
				source_path TEXT NOT NULL,
				record_count INTEGER NOT NULL DEFAULT 0,
				degraded_aggregates INTEGER NOT NULL DEFAULT 0,
				error_message TEXT,
				started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
				completed_at TIMESTAMP
			);
		`,
	},
}

// Migrate applies any pending migrations.
func Migrate(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := db.QueryRow("SELECT COUNT(*) FROM migrations WHERE version = ?", m.Version).Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}
		if applied > 0 {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}
