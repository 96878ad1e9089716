package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent so the whole
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS project_configs (
		project             TEXT PRIMARY KEY,
		project_key         TEXT NOT NULL,
		wakatime_api_key    TEXT NOT NULL,
		jira_server         TEXT NOT NULL,
		jira_username       TEXT NOT NULL,
		jira_api_key        TEXT NOT NULL,
		assign_display_name TEXT NOT NULL,
		notify_recipient    TEXT NOT NULL DEFAULT '',
		updated_at          TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS run_logs (
		id            TEXT PRIMARY KEY,
		project       TEXT NOT NULL,
		run_date      TEXT NOT NULL,
		report        TEXT NOT NULL,
		total_minutes INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_run_logs_project_date
		ON run_logs(project, run_date)`,
}
