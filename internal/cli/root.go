package cli

import (
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/server"
	"github.com/developerjhp/jirawaka/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to the services and repositories CLI commands use.
type App struct {
	Reconciler service.ReconcileService
	Configs    service.ConfigService
	Completion *service.CompletionReporter
	RunLogs    repository.RunLogRepo
	Server     *server.Server

	// ListenAddr is the serve command's bind address.
	ListenAddr string

	// Plain disables ANSI styling; set when stdout is not a terminal.
	Plain bool
}

// NewRootCmd creates the top-level "jirawaka" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "jirawaka",
		Short: "Log WakaTime branch durations as Jira work logs",
	}

	root.AddCommand(
		newRunCmd(app),
		newServeCmd(app),
		newConfigCmd(app),
		newHistoryCmd(app),
	)

	return root
}
