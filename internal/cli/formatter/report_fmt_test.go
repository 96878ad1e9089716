package formatter

import (
	"testing"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestFormatRunSummary_Plain(t *testing.T) {
	summary := &service.RunSummary{
		Project:          "myproj",
		Date:             "2024-03-01",
		ExpectedAssignee: "Bob",
		Result: &domain.RunResult{
			Outcomes: []domain.Outcome{
				{Ticket: "PROJ-10", Kind: domain.OutcomeSubmitted, Minutes: 50},
				{Ticket: "PROJ-11", Kind: domain.OutcomeSkipped, Reason: domain.SkipAssigneeMismatch, ActualAssignee: "Alice"},
			},
			TotalMinutes: 62,
			Aggregated:   domain.AggregatedDuration{"PROJ-10": 3000, "PROJ-11": 720},
		},
	}

	out := FormatRunSummary(summary, true)

	assert.Contains(t, out, "myproj — 2024-03-01")
	assert.Contains(t, out, "✓ PROJ-10 : 50m")
	assert.Contains(t, out, "- Assignee is not Bob for ticket PROJ-11, Alice is assigned.")
	assert.Contains(t, out, "total 62m")
	assert.NotContains(t, out, "\x1b[", "plain output must carry no ANSI escapes")
}

func TestFormatRunSummary_EmptyRun(t *testing.T) {
	summary := &service.RunSummary{
		Project:          "myproj",
		Date:             "2024-03-01",
		ExpectedAssignee: "Bob",
		Result:           &domain.RunResult{Aggregated: domain.AggregatedDuration{}},
	}

	out := FormatRunSummary(summary, true)
	assert.Contains(t, out, "no ticket time recorded")
	assert.Contains(t, out, "total 0m")
}

func TestFormatConfigList_MasksSecrets(t *testing.T) {
	configs := []*domain.ProjectConfig{{
		Project:           "myproj",
		ProjectKey:        "PROJ",
		WakatimeAPIKey:    "waka-secret-key",
		JiraServer:        "https://jira.example.com",
		JiraUsername:      "dev@example.com",
		JiraAPIKey:        "tok",
		AssignDisplayName: "Bob",
	}}

	out := FormatConfigList(configs, true)

	assert.Contains(t, out, "waka***********")
	assert.Contains(t, out, "***")
	assert.NotContains(t, out, "waka-secret-key")
}

func TestFormatRunLogs(t *testing.T) {
	logs := []*repository.RunLog{{
		RunDate:      "2024-03-01",
		TotalMinutes: 50,
		CreatedAt:    "2024-03-01T18:00:00+09:00",
		Report:       "Today 2024-03-01\nPROJ-10 : 50m",
	}}

	out := FormatRunLogs(logs, true)
	assert.Contains(t, out, "2024-03-01 — 50m")
	assert.Contains(t, out, "PROJ-10 : 50m")
}

func TestFormatRunLogs_Empty(t *testing.T) {
	assert.Contains(t, FormatRunLogs(nil, true), "no runs recorded")
}
