package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	_ "time/tzdata"

	"github.com/developerjhp/jirawaka/internal/cli"
	"github.com/developerjhp/jirawaka/internal/config"
	"github.com/developerjhp/jirawaka/internal/db"
	"github.com/developerjhp/jirawaka/internal/jira"
	"github.com/developerjhp/jirawaka/internal/notify"
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/server"
	"github.com/developerjhp/jirawaka/internal/service"
	"github.com/developerjhp/jirawaka/internal/wakatime"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine config file path: env var or default ~/.jirawaka/config.jsonc
	cfgPath := os.Getenv("JIRAWAKA_CONFIG")
	if cfgPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			cfgPath = filepath.Join(home, ".jirawaka", "config.jsonc")
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.DBPath == "" {
		return fmt.Errorf("no database path configured (set JIRAWAKA_DB)")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	configRepo := repository.NewSQLiteConfigRepo(database)
	runLogRepo := repository.NewSQLiteRunLogRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// API call telemetry is opt-in; it shares stderr with the error log.
	var wakaObserver wakatime.Observer = wakatime.NoopObserver{}
	var jiraObserver jira.Observer = jira.NoopObserver{}
	var useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogCalls {
		wakaObserver = wakatime.NewLogObserver(os.Stderr)
		jiraObserver = jira.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	// Notification transport: mail when a relay is configured, log otherwise.
	var notifier notify.Notifier
	if cfg.SMTP.Host != "" {
		notifier = notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	} else {
		notifier = notify.NewLogNotifier(logger)
	}
	dispatcher := notify.NewDispatcher(notifier, logger)

	if cfg.ReportDir != "" {
		if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
			return fmt.Errorf("creating report directory: %w", err)
		}
	}
	completion := service.NewCompletionReporter(runLogRepo, dispatcher, cfg.ReportDir, cfg.Country, logger)

	// Wire services
	timeSource := wakatime.NewHTTPClient("", wakaObserver)
	trackers := func(creds jira.Credentials) jira.Client {
		return jira.NewHTTPClient(creds, jiraObserver)
	}
	reconciler := service.NewReconcileService(timeSource, trackers, cfg.Country, useCaseObserver)
	configSvc := service.NewConfigService(configRepo, uow)

	app := &cli.App{
		Reconciler: reconciler,
		Configs:    configSvc,
		Completion: completion,
		RunLogs:    runLogRepo,
		Server:     server.New(reconciler, configSvc, completion, logger),
		ListenAddr: cfg.ListenAddr,
		Plain:      !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
