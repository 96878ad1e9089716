package cli

import (
	"context"
	"fmt"

	"github.com/developerjhp/jirawaka/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var project string
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show archived run reports for a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := app.RunLogs.ListByProject(context.Background(), project, limit)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatRunLogs(logs, app.Plain))
			return nil
		},
	}

	cmd.Flags().StringVar(&project, "project", "", "WakaTime project name")
	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum runs to show")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}
