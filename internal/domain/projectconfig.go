package domain

import (
	"fmt"
	"time"
)

// ProjectConfig is the fully-resolved per-project configuration a run needs.
// The core is agnostic to where it was stored; repositories persist one
// record per project identifier.
type ProjectConfig struct {
	Project            string // WakaTime project identifier
	ProjectKey         string // issue-tracker project key, e.g. "PROJ"
	WakatimeAPIKey     string
	JiraServer         string // e.g. "https://yourcompany.atlassian.net"
	JiraUsername       string
	JiraAPIKey         string
	AssignDisplayName  string // expected assignee display name
	NotifyRecipient    string // defaults to JiraUsername when empty
	UpdatedAt          time.Time
}

// Validate checks the fields a reconciliation run cannot do without.
func (c *ProjectConfig) Validate() error {
	switch {
	case c.Project == "":
		return fmt.Errorf("project is required")
	case c.ProjectKey == "":
		return fmt.Errorf("project key is required")
	case c.WakatimeAPIKey == "":
		return fmt.Errorf("wakatime API key is required")
	case c.JiraServer == "":
		return fmt.Errorf("jira server is required")
	case c.JiraUsername == "":
		return fmt.Errorf("jira username is required")
	case c.JiraAPIKey == "":
		return fmt.Errorf("jira API key is required")
	case c.AssignDisplayName == "":
		return fmt.Errorf("assignee display name is required")
	}
	return nil
}

// Recipient returns the notification address, falling back to the Jira
// username the way the original mailer did.
func (c *ProjectConfig) Recipient() string {
	if c.NotifyRecipient != "" {
		return c.NotifyRecipient
	}
	return c.JiraUsername
}
