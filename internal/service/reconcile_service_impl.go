package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/developerjhp/jirawaka/internal/clock"
	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/jira"
	"github.com/developerjhp/jirawaka/internal/wakatime"
)

type reconcileService struct {
	timeSource wakatime.Client
	trackers   IssueTrackerFactory
	country    string
	observer   UseCaseObserver
}

// NewReconcileService wires the engine with its collaborators. country picks
// the timezone used when no explicit date is supplied.
func NewReconcileService(timeSource wakatime.Client, trackers IssueTrackerFactory, country string, observer UseCaseObserver) ReconcileService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &reconcileService{
		timeSource: timeSource,
		trackers:   trackers,
		country:    country,
		observer:   observer,
	}
}

func (s *reconcileService) Run(ctx context.Context, cfg domain.ProjectConfig, date string) (*RunSummary, error) {
	start := time.Now()
	summary, err := s.run(ctx, cfg, date)

	event := UseCaseEvent{
		Name:      "reconcile_run",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields:    map[string]any{"project": cfg.Project},
	}
	if summary != nil {
		event.Fields["date"] = summary.Date
		event.Fields["tickets"] = len(summary.Result.Outcomes)
		event.Fields["total_minutes"] = summary.Result.TotalMinutes
	}
	s.observer.ObserveUseCase(ctx, event)

	return summary, err
}

func (s *reconcileService) run(ctx context.Context, cfg domain.ProjectConfig, date string) (*RunSummary, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project config: %w", err)
	}
	if date == "" {
		date = clock.Today(s.country)
	}

	parser, err := domain.NewBranchTicketParser(cfg.ProjectKey)
	if err != nil {
		return nil, err
	}

	records, err := s.timeSource.FetchDurations(ctx, date, cfg.Project, cfg.WakatimeAPIKey)
	if err != nil {
		return nil, fmt.Errorf("fetching durations for %s on %s: %w", cfg.Project, date, err)
	}

	buckets := domain.Aggregate(records, parser)

	tracker := s.trackers(jira.Credentials{
		Server:   cfg.JiraServer,
		Username: cfg.JiraUsername,
		APIKey:   cfg.JiraAPIKey,
	})

	// Tickets are processed strictly one at a time: the guard decision and
	// the work-log write for a ticket complete before the next fetch starts.
	// Keys are sorted so a run's outcome order is stable.
	keys := make([]domain.TicketKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	result := &domain.RunResult{Aggregated: buckets}
	for _, key := range keys {
		// A fetch failure aborts the whole batch. Work logs already written
		// for earlier tickets stay written; there is no rollback.
		info, err := tracker.GetIssue(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("fetching ticket %s: %w", key, err)
		}

		decision := domain.CheckOwnership(*info, cfg.AssignDisplayName)
		if !decision.Allowed {
			result.Outcomes = append(result.Outcomes, domain.Outcome{
				Ticket:         key,
				Kind:           domain.OutcomeSkipped,
				Reason:         domain.SkipAssigneeMismatch,
				ActualAssignee: decision.ActualAssignee,
			})
			continue
		}

		minutes := domain.Minutes(buckets[key])
		// No retry and no duplicate detection: running the same date twice
		// writes the time twice.
		if err := tracker.AddWorklog(ctx, key, minutes); err != nil {
			return nil, fmt.Errorf("writing work log for %s: %w", key, err)
		}
		result.Outcomes = append(result.Outcomes, domain.Outcome{
			Ticket:  key,
			Kind:    domain.OutcomeSubmitted,
			Minutes: minutes,
		})
	}

	// Rounded from raw seconds, not summed from the per-ticket minutes, so
	// the two can disagree by a few minutes.
	result.TotalMinutes = domain.Minutes(buckets.TotalSeconds())

	return &RunSummary{
		Project:          cfg.Project,
		Date:             date,
		ExpectedAssignee: cfg.AssignDisplayName,
		Result:           result,
	}, nil
}
