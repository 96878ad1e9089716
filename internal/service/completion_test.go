package service

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/developerjhp/jirawaka/internal/notify"
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedMail struct {
	recipient, subject, body string
}

type captureNotifier struct {
	mails []capturedMail
}

func (n *captureNotifier) Deliver(_ context.Context, recipient, subject, body string) error {
	n.mails = append(n.mails, capturedMail{recipient, subject, body})
	return nil
}

func TestCompletionReporter_Report(t *testing.T) {
	database := testutil.NewTestDB(t)
	runLogs := repository.NewSQLiteRunLogRepo(database)
	notifier := &captureNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := notify.NewDispatcher(notifier, logger)
	latestDir := t.TempDir()

	reporter := NewCompletionReporter(runLogs, dispatcher, latestDir, "Korea", logger)

	summary := sampleSummary()
	require.NoError(t, reporter.Report(context.Background(), summary, "dev@example.com"))
	dispatcher.Wait()

	// Run log archived.
	logs, err := runLogs.ListByProject(context.Background(), "myproj", 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, "2024-03-01", logs[0].RunDate)
	assert.Equal(t, 62, logs[0].TotalMinutes)
	assert.Contains(t, logs[0].Report, "PROJ-10 : 50m")

	// Latest-report file replaced.
	content, err := os.ReadFile(filepath.Join(latestDir, "myproj.latest.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Today 2024-03-01")

	// Notification dispatched with HTML line breaks.
	require.Len(t, notifier.mails, 1)
	assert.Equal(t, "dev@example.com", notifier.mails[0].recipient)
	assert.Equal(t, "myproj work time logged", notifier.mails[0].subject)
	assert.Contains(t, notifier.mails[0].body, "PROJ-10 : 50m<br/>")
}

func TestCompletionReporter_ReportAsyncLogsNothingFatal(t *testing.T) {
	database := testutil.NewTestDB(t)
	runLogs := repository.NewSQLiteRunLogRepo(database)
	notifier := &captureNotifier{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dispatcher := notify.NewDispatcher(notifier, logger)

	reporter := NewCompletionReporter(runLogs, dispatcher, "", "Korea", logger)

	reporter.ReportAsync(sampleSummary(), "dev@example.com")
	reporter.Wait()

	logs, err := runLogs.ListByProject(context.Background(), "myproj", 10)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
	assert.Len(t, notifier.mails, 1)
}
