package cli

import (
	"context"
	"fmt"

	"github.com/developerjhp/jirawaka/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var project, date string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Reconcile one day of branch time into Jira work logs",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := app.Configs.Get(ctx, project)
			if err != nil {
				return fmt.Errorf("loading config for project %s: %w", project, err)
			}

			summary, err := app.Reconciler.Run(ctx, *cfg, date)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRunSummary(summary, app.Plain))

			// The CLI waits for archival and notification instead of
			// leaving them running past process exit.
			app.Completion.ReportAsync(summary, cfg.Recipient())
			app.Completion.Wait()
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "WakaTime project to reconcile")
	cmd.Flags().StringVar(&date, "date", "", "Date to reconcile (YYYY-MM-DD, default today)")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
