package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/developerjhp/jirawaka/internal/db"
	"github.com/developerjhp/jirawaka/internal/domain"
)

// ErrConfigNotFound is returned when no configuration exists for a project.
var ErrConfigNotFound = errors.New("project configuration not found")

// SQLiteConfigRepo implements ConfigRepo using a SQLite database.
type SQLiteConfigRepo struct {
	db db.DBTX
}

// NewSQLiteConfigRepo creates a new SQLiteConfigRepo.
func NewSQLiteConfigRepo(db db.DBTX) *SQLiteConfigRepo {
	return &SQLiteConfigRepo{db: db}
}

func (r *SQLiteConfigRepo) Save(ctx context.Context, cfg *domain.ProjectConfig) error {
	query := `INSERT INTO project_configs
		(project, project_key, wakatime_api_key, jira_server, jira_username, jira_api_key, assign_display_name, notify_recipient, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(project) DO UPDATE SET
			project_key = excluded.project_key,
			wakatime_api_key = excluded.wakatime_api_key,
			jira_server = excluded.jira_server,
			jira_username = excluded.jira_username,
			jira_api_key = excluded.jira_api_key,
			assign_display_name = excluded.assign_display_name,
			notify_recipient = excluded.notify_recipient,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		cfg.Project,
		cfg.ProjectKey,
		cfg.WakatimeAPIKey,
		cfg.JiraServer,
		cfg.JiraUsername,
		cfg.JiraAPIKey,
		cfg.AssignDisplayName,
		cfg.NotifyRecipient,
		cfg.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving project config: %w", err)
	}
	return nil
}

func (r *SQLiteConfigRepo) GetByProject(ctx context.Context, project string) (*domain.ProjectConfig, error) {
	query := `SELECT project, project_key, wakatime_api_key, jira_server, jira_username, jira_api_key, assign_display_name, notify_recipient, updated_at
		FROM project_configs WHERE project = ?`
	row := r.db.QueryRowContext(ctx, query, project)
	return r.scanConfig(row)
}

func (r *SQLiteConfigRepo) List(ctx context.Context) ([]*domain.ProjectConfig, error) {
	query := `SELECT project, project_key, wakatime_api_key, jira_server, jira_username, jira_api_key, assign_display_name, notify_recipient, updated_at
		FROM project_configs ORDER BY project`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing project configs: %w", err)
	}
	defer rows.Close()

	var configs []*domain.ProjectConfig
	for rows.Next() {
		cfg, err := r.scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project configs: %w", err)
	}
	return configs, nil
}

func (r *SQLiteConfigRepo) Delete(ctx context.Context, project string) error {
	query := `DELETE FROM project_configs WHERE project = ?`
	if _, err := r.db.ExecContext(ctx, query, project); err != nil {
		return fmt.Errorf("deleting project config: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteConfigRepo) scanConfig(row rowScanner) (*domain.ProjectConfig, error) {
	var cfg domain.ProjectConfig
	var updatedAt string
	err := row.Scan(
		&cfg.Project,
		&cfg.ProjectKey,
		&cfg.WakatimeAPIKey,
		&cfg.JiraServer,
		&cfg.JiraUsername,
		&cfg.JiraAPIKey,
		&cfg.AssignDisplayName,
		&cfg.NotifyRecipient,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning project config: %w", err)
	}
	if ts, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		cfg.UpdatedAt = ts
	}
	return &cfg, nil
}
