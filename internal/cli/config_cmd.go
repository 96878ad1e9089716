package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/developerjhp/jirawaka/internal/cli/formatter"
	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage stored project configurations",
	}

	cmd.AddCommand(
		newConfigSetCmd(app),
		newConfigListCmd(app),
		newConfigInitCmd(app),
	)

	return cmd
}

// addConfigFlags binds the per-project configuration fields to flags shared
// by the set command.
func addConfigFlags(fs *pflag.FlagSet, cfg *domain.ProjectConfig) {
	fs.StringVar(&cfg.ProjectKey, "key", "", "Issue-tracker project key, e.g. PROJ")
	fs.StringVar(&cfg.WakatimeAPIKey, "wakatime-key", "", "WakaTime API key")
	fs.StringVar(&cfg.JiraServer, "jira-server", "", "Jira server base URL")
	fs.StringVar(&cfg.JiraUsername, "jira-user", "", "Jira username (email)")
	fs.StringVar(&cfg.JiraAPIKey, "jira-key", "", "Jira API token")
	fs.StringVar(&cfg.AssignDisplayName, "assignee", "", "Expected assignee display name")
	fs.StringVar(&cfg.NotifyRecipient, "recipient", "", "Notification address (default Jira username)")
}

func newConfigSetCmd(app *App) *cobra.Command {
	var projects string
	var cfg domain.ProjectConfig

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save configuration for one or more projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := app.Configs.SaveAll(context.Background(), cfg, projects)
			if err != nil {
				return err
			}
			fmt.Printf("Saved configuration for %d project(s)\n", len(saved))
			return nil
		},
	}

	cmd.Flags().StringVar(&projects, "projects", "", "Comma-separated WakaTime project names")
	addConfigFlags(cmd.Flags(), &cfg)
	_ = cmd.MarkFlagRequired("projects")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newConfigListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored project configurations",
		RunE: func(cmd *cobra.Command, args []string) error {
			configs, err := app.Configs.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatConfigList(configs, app.Plain))
			return nil
		},
	}
}

func newConfigInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Interactively configure a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			var projects string
			var cfg domain.ProjectConfig

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("WakaTime projects").
						Description("Comma-separated project names").
						Value(&projects),
					huh.NewInput().
						Title("Project key").
						Description("Issue-tracker key, e.g. PROJ").
						Value(&cfg.ProjectKey),
					huh.NewInput().
						Title("WakaTime API key").
						EchoMode(huh.EchoModePassword).
						Value(&cfg.WakatimeAPIKey),
				),
				huh.NewGroup(
					huh.NewInput().
						Title("Jira server").
						Placeholder("https://yourcompany.atlassian.net").
						Value(&cfg.JiraServer),
					huh.NewInput().
						Title("Jira username").
						Value(&cfg.JiraUsername),
					huh.NewInput().
						Title("Jira API token").
						EchoMode(huh.EchoModePassword).
						Value(&cfg.JiraAPIKey),
					huh.NewInput().
						Title("Assignee display name").
						Description("Work logs are only written while tickets are assigned to this name").
						Value(&cfg.AssignDisplayName),
				),
			)

			if err := form.Run(); err != nil {
				return err
			}

			saved, err := app.Configs.SaveAll(context.Background(), cfg, projects)
			if err != nil {
				return err
			}
			fmt.Printf("Saved configuration for %d project(s)\n", len(saved))
			return nil
		},
	}
}
