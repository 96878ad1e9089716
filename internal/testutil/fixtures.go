package testutil

import (
	"time"

	"github.com/developerjhp/jirawaka/internal/domain"
)

// NewTestConfig returns a valid project configuration for tests.
func NewTestConfig(project string, opts ...func(*domain.ProjectConfig)) domain.ProjectConfig {
	cfg := domain.ProjectConfig{
		Project:           project,
		ProjectKey:        "PROJ",
		WakatimeAPIKey:    "waka-key",
		JiraServer:        "https://jira.example.com",
		JiraUsername:      "dev@example.com",
		JiraAPIKey:        "jira-key",
		AssignDisplayName: "Bob",
		UpdatedAt:         time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithProjectKey overrides the issue-tracker project key.
func WithProjectKey(key string) func(*domain.ProjectConfig) {
	return func(c *domain.ProjectConfig) { c.ProjectKey = key }
}

// WithAssignee overrides the expected assignee display name.
func WithAssignee(name string) func(*domain.ProjectConfig) {
	return func(c *domain.ProjectConfig) { c.AssignDisplayName = name }
}
