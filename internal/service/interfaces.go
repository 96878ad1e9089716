package service

import (
	"context"
	"fmt"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/jira"
)

// IssueTrackerFactory builds an issue-tracker client for the credentials a
// run carries. The client lives for that run only.
type IssueTrackerFactory func(creds jira.Credentials) jira.Client

// RunSummary bundles one run's result with the context needed to render it.
type RunSummary struct {
	Project          string
	Date             string // YYYY-MM-DD
	ExpectedAssignee string
	Result           *domain.RunResult
}

// Messages returns one line per outcome, in processing order.
func (s *RunSummary) Messages() []string {
	msgs := make([]string, 0, len(s.Result.Outcomes))
	for _, o := range s.Result.Outcomes {
		msgs = append(msgs, o.Message(s.ExpectedAssignee))
	}
	return msgs
}

// AssigneeMessages returns only the assignee-mismatch lines.
func (s *RunSummary) AssigneeMessages() []string {
	var msgs []string
	for _, o := range s.Result.Skipped() {
		msgs = append(msgs, o.Message(s.ExpectedAssignee))
	}
	return msgs
}

// TotalWorkTime renders the run total the way the trigger response expects,
// e.g. "50m".
func (s *RunSummary) TotalWorkTime() string {
	return fmt.Sprintf("%dm", s.Result.TotalMinutes)
}

// ReconcileService runs the parse → aggregate → guard → submit pipeline for
// one project on one date.
type ReconcileService interface {
	// Run executes one reconciliation. date may be empty, meaning today in
	// the service's configured country. Any fetch or write failure aborts
	// the remaining pipeline; no partial summary is returned.
	Run(ctx context.Context, cfg domain.ProjectConfig, date string) (*RunSummary, error)
}

// ConfigService manages stored per-project configuration.
type ConfigService interface {
	// SaveAll persists one configuration record per project named in the
	// comma-separated projects field, atomically. Returns the project
	// identifiers saved.
	SaveAll(ctx context.Context, base domain.ProjectConfig, projects string) ([]string, error)
	Get(ctx context.Context, project string) (*domain.ProjectConfig, error)
	List(ctx context.Context) ([]*domain.ProjectConfig, error)
}
