package service

import (
	"strings"
	"testing"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *RunSummary {
	return &RunSummary{
		Project:          "myproj",
		Date:             "2024-03-01",
		ExpectedAssignee: "Bob",
		Result: &domain.RunResult{
			Outcomes: []domain.Outcome{
				{Ticket: "PROJ-10", Kind: domain.OutcomeSubmitted, Minutes: 50},
				{
					Ticket:         "PROJ-11",
					Kind:           domain.OutcomeSkipped,
					Reason:         domain.SkipAssigneeMismatch,
					ActualAssignee: "Alice",
				},
			},
			TotalMinutes: 62,
			Aggregated:   domain.AggregatedDuration{"PROJ-10": 3000, "PROJ-11": 720},
		},
	}
}

func TestFormatReport(t *testing.T) {
	report := FormatReport(sampleSummary())
	lines := strings.Split(report, "\n")

	require.Len(t, lines, 6)
	assert.Equal(t, "Today 2024-03-01", lines[0])
	assert.Equal(t, "Assignee is not Bob for ticket PROJ-11, Alice is assigned.", lines[1])
	assert.Equal(t, "PROJ-10 : 50m", lines[2])
	assert.Equal(t, "PROJ-11 : 12m", lines[3])
	assert.Equal(t, `Per-ticket work time (seconds): {"PROJ-10":3000,"PROJ-11":720}`, lines[4])
	assert.Equal(t, "Total work time (minutes): 62m", lines[5])
}

// A skipped ticket keeps both its mismatch line and its minutes line; the
// minutes come from the aggregated seconds, not from the submitted outcomes.
func TestFormatReport_SkippedTicketKeepsMinutesLine(t *testing.T) {
	report := FormatReport(sampleSummary())

	assert.Contains(t, report, "Assignee is not Bob for ticket PROJ-11, Alice is assigned.")
	assert.Contains(t, report, "PROJ-11 : 12m")
}

func TestFormatReport_Deterministic(t *testing.T) {
	first := FormatReport(sampleSummary())
	second := FormatReport(sampleSummary())
	assert.Equal(t, first, second)
}

func TestFormatReport_EmptyRun(t *testing.T) {
	summary := &RunSummary{
		Project:          "myproj",
		Date:             "2024-03-01",
		ExpectedAssignee: "Bob",
		Result:           &domain.RunResult{Aggregated: domain.AggregatedDuration{}},
	}

	report := FormatReport(summary)
	lines := strings.Split(report, "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "Today 2024-03-01", lines[0])
	assert.Equal(t, "Per-ticket work time (seconds): {}", lines[1])
	assert.Equal(t, "Total work time (minutes): 0m", lines[2])
}

func TestRunSummary_Messages(t *testing.T) {
	summary := sampleSummary()
	assert.Equal(t, []string{
		"PROJ-10 : 50m",
		"Assignee is not Bob for ticket PROJ-11, Alice is assigned.",
	}, summary.Messages())
}
