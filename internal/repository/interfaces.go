package repository

import (
	"context"

	"github.com/developerjhp/jirawaka/internal/domain"
)

// ConfigRepo persists per-project reconciliation configuration, one record
// per project identifier.
type ConfigRepo interface {
	Save(ctx context.Context, cfg *domain.ProjectConfig) error
	GetByProject(ctx context.Context, project string) (*domain.ProjectConfig, error)
	List(ctx context.Context) ([]*domain.ProjectConfig, error)
	Delete(ctx context.Context, project string) error
}

// RunLog is one archived reconciliation report.
type RunLog struct {
	ID           string
	Project      string
	RunDate      string // YYYY-MM-DD
	Report       string
	TotalMinutes int
	CreatedAt    string // RFC 3339
}

// RunLogRepo appends and reads archived run reports.
type RunLogRepo interface {
	Append(ctx context.Context, log *RunLog) error
	ListByProject(ctx context.Context, project string, limit int) ([]*RunLog, error)
}
