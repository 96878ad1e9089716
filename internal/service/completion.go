package service

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"

	"github.com/developerjhp/jirawaka/internal/clock"
	"github.com/developerjhp/jirawaka/internal/notify"
	"github.com/developerjhp/jirawaka/internal/repository"
)

// CompletionReporter archives a finished run and mails its report. It runs
// after the run's result has already been returned to the caller, so every
// failure here is logged and swallowed.
type CompletionReporter struct {
	runLogs    repository.RunLogRepo
	dispatcher *notify.Dispatcher
	latestDir  string // per-project latest-report files; empty disables
	country    string
	logger     *slog.Logger
	wg         sync.WaitGroup
}

// NewCompletionReporter wires the completion hook.
func NewCompletionReporter(runLogs repository.RunLogRepo, dispatcher *notify.Dispatcher, latestDir, country string, logger *slog.Logger) *CompletionReporter {
	return &CompletionReporter{
		runLogs:    runLogs,
		dispatcher: dispatcher,
		latestDir:  latestDir,
		country:    country,
		logger:     logger,
	}
}

// ReportAsync schedules the completion work as a detached task and returns
// immediately.
func (c *CompletionReporter) ReportAsync(summary *RunSummary, recipient string) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.Report(context.Background(), summary, recipient); err != nil {
			c.logger.Error("completion reporting failed",
				"project", summary.Project, "date", summary.Date, "error", err)
		}
	}()
}

// Report archives the run log, refreshes the latest-report file, and
// dispatches the notification. Synchronous for tests; production paths go
// through ReportAsync.
func (c *CompletionReporter) Report(ctx context.Context, summary *RunSummary, recipient string) error {
	report := FormatReport(summary)
	stamp := clock.Timestamp(c.country)

	if err := c.runLogs.Append(ctx, &repository.RunLog{
		ID:           uuid.New().String(),
		Project:      summary.Project,
		RunDate:      summary.Date,
		Report:       report,
		TotalMinutes: summary.Result.TotalMinutes,
		CreatedAt:    stamp,
	}); err != nil {
		return fmt.Errorf("archiving run log: %w", err)
	}

	if c.latestDir != "" {
		path := filepath.Join(c.latestDir, summary.Project+".latest.log")
		content := report + "\n" + stamp + "\n"
		if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
			return fmt.Errorf("writing latest report file: %w", err)
		}
	}

	c.dispatcher.Dispatch(
		recipient,
		fmt.Sprintf("%s work time logged", summary.Project),
		strings.ReplaceAll(report, "\n", "<br/>"),
	)
	return nil
}

// Wait blocks until all async reports have finished, including their
// notification dispatches.
func (c *CompletionReporter) Wait() {
	c.wg.Wait()
	c.dispatcher.Wait()
}
