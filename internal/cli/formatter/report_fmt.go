package formatter

import (
	"fmt"
	"strings"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/service"
)

// FormatRunSummary renders one run for the terminal. With plain=true the
// output carries no ANSI styling, for pipes and logs.
func FormatRunSummary(summary *service.RunSummary, plain bool) string {
	var b strings.Builder

	header := fmt.Sprintf("%s — %s", summary.Project, summary.Date)
	b.WriteString(styled(StyleHeader, header, plain))
	b.WriteString("\n")

	if len(summary.Result.Outcomes) == 0 {
		b.WriteString(styled(StyleDim, "no ticket time recorded", plain))
		b.WriteString("\n")
	}

	for _, o := range summary.Result.Outcomes {
		line := o.Message(summary.ExpectedAssignee)
		switch o.Kind {
		case domain.OutcomeSubmitted:
			b.WriteString(styled(StyleGreen, "✓ ", plain))
		case domain.OutcomeSkipped:
			b.WriteString(styled(StyleYellow, "- ", plain))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	total := fmt.Sprintf("total %s", summary.TotalWorkTime())
	b.WriteString(styled(StyleDim, total, plain))
	b.WriteString("\n")

	return b.String()
}

// FormatConfigList renders stored project configurations with secrets masked.
func FormatConfigList(configs []*domain.ProjectConfig, plain bool) string {
	if len(configs) == 0 {
		return styled(StyleDim, "no project configurations stored", plain) + "\n"
	}

	var b strings.Builder
	for _, cfg := range configs {
		b.WriteString(styled(StyleHeader, cfg.Project, plain))
		b.WriteString("\n")
		fmt.Fprintf(&b, "  key        %s\n", cfg.ProjectKey)
		fmt.Fprintf(&b, "  server     %s\n", cfg.JiraServer)
		fmt.Fprintf(&b, "  user       %s\n", cfg.JiraUsername)
		fmt.Fprintf(&b, "  assignee   %s\n", cfg.AssignDisplayName)
		fmt.Fprintf(&b, "  wakatime   %s\n", maskSecret(cfg.WakatimeAPIKey))
		fmt.Fprintf(&b, "  api key    %s\n", maskSecret(cfg.JiraAPIKey))
	}
	return b.String()
}

// FormatRunLogs renders archived run reports, newest first.
func FormatRunLogs(logs []*repository.RunLog, plain bool) string {
	if len(logs) == 0 {
		return styled(StyleDim, "no runs recorded", plain) + "\n"
	}

	var b strings.Builder
	for i, log := range logs {
		if i > 0 {
			b.WriteString("\n")
		}
		header := fmt.Sprintf("%s — %dm (%s)", log.RunDate, log.TotalMinutes, log.CreatedAt)
		b.WriteString(styled(StyleHeader, header, plain))
		b.WriteString("\n")
		b.WriteString(log.Report)
		b.WriteString("\n")
	}
	return b.String()
}

func styled(style interface{ Render(...string) string }, s string, plain bool) string {
	if plain {
		return s
	}
	return style.Render(s)
}

// maskSecret keeps the first four characters of a credential for
// recognition and hides the rest.
func maskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}
