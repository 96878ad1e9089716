package domain

import "fmt"

// OutcomeKind discriminates per-ticket reconciliation outcomes.
type OutcomeKind string

const (
	OutcomeSubmitted OutcomeKind = "submitted"
	OutcomeSkipped   OutcomeKind = "skipped"
)

// SkipReason names why a ticket was skipped.
type SkipReason string

const (
	SkipAssigneeMismatch SkipReason = "assignee_mismatch"
)

// Outcome is the terminal result for one ticket in a run.
type Outcome struct {
	Ticket  TicketKey
	Kind    OutcomeKind
	Minutes int // set when submitted

	Reason         SkipReason // set when skipped
	ActualAssignee string     // set on assignee mismatch
}

// Message renders the outcome as the single report line the original
// interface exposes for it.
func (o Outcome) Message(expectedAssignee string) string {
	switch o.Kind {
	case OutcomeSkipped:
		return fmt.Sprintf("Assignee is not %s for ticket %s, %s is assigned.",
			expectedAssignee, o.Ticket, o.ActualAssignee)
	default:
		return fmt.Sprintf("%s : %dm", o.Ticket, o.Minutes)
	}
}

// RunResult is the full result set of one reconciliation run. It lives only
// long enough to be rendered and archived; nothing retains it across runs.
type RunResult struct {
	Outcomes []Outcome
	// TotalMinutes is rounded from the raw summed seconds, independently of
	// the per-ticket rounding, so it may differ from the sum of per-ticket
	// minutes by a few minutes. That independence is intentional.
	TotalMinutes int
	Aggregated   AggregatedDuration
}

// Skipped returns the outcomes that were skipped for an assignee mismatch.
func (r *RunResult) Skipped() []Outcome {
	var skipped []Outcome
	for _, o := range r.Outcomes {
		if o.Kind == OutcomeSkipped {
			skipped = append(skipped, o)
		}
	}
	return skipped
}
