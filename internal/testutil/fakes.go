package testutil

import (
	"context"
	"sync"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/jira"
)

// FakeTimeSource returns canned duration records and remembers the arguments
// of its last call.
type FakeTimeSource struct {
	Records []domain.DurationRecord
	Err     error

	LastDate    string
	LastProject string
	LastAPIKey  string
	Calls       int
}

func (f *FakeTimeSource) FetchDurations(_ context.Context, date, project, apiKey string) ([]domain.DurationRecord, error) {
	f.Calls++
	f.LastDate, f.LastProject, f.LastAPIKey = date, project, apiKey
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Records, nil
}

// WorklogCall records one AddWorklog invocation.
type WorklogCall struct {
	Ticket  domain.TicketKey
	Minutes int
}

// FakeIssueTracker serves tickets from an in-memory map and records every
// work-log write. It is safe for concurrent use.
type FakeIssueTracker struct {
	mu sync.Mutex

	// Assignees maps ticket key to assignee display name; an entry with an
	// empty value is an unassigned ticket. Missing keys yield GetErr or
	// jira.ErrNotFound.
	Assignees map[domain.TicketKey]string

	// GetErrs maps ticket keys to errors returned from GetIssue, letting a
	// test fail one ticket mid-batch.
	GetErrs map[domain.TicketKey]error

	// WorklogErr fails every AddWorklog call when set.
	WorklogErr error

	Worklogs []WorklogCall
}

// NewFakeIssueTracker creates an empty tracker.
func NewFakeIssueTracker() *FakeIssueTracker {
	return &FakeIssueTracker{
		Assignees: make(map[domain.TicketKey]string),
		GetErrs:   make(map[domain.TicketKey]error),
	}
}

func (f *FakeIssueTracker) GetIssue(_ context.Context, key domain.TicketKey) (*domain.TicketInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.GetErrs[key]; ok {
		return nil, err
	}
	assignee, ok := f.Assignees[key]
	if !ok {
		return nil, jira.ErrNotFound
	}
	return &domain.TicketInfo{Key: key, AssigneeDisplayName: assignee}, nil
}

func (f *FakeIssueTracker) AddWorklog(_ context.Context, key domain.TicketKey, minutes int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.WorklogErr != nil {
		return f.WorklogErr
	}
	f.Worklogs = append(f.Worklogs, WorklogCall{Ticket: key, Minutes: minutes})
	return nil
}

// WorklogCalls returns a copy of the recorded writes.
func (f *FakeIssueTracker) WorklogCalls() []WorklogCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]WorklogCall, len(f.Worklogs))
	copy(out, f.Worklogs)
	return out
}
