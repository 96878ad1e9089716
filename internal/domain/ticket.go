package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// TicketKey is a normalized issue-tracker identifier: an uppercase project
// key, a dash, and a numeric suffix (e.g. "PROJ-123").
type TicketKey string

// NewTicketKey builds a normalized key from a project key and a numeric suffix.
func NewTicketKey(projectKey, suffix string) TicketKey {
	return TicketKey(strings.ToUpper(projectKey) + "-" + suffix)
}

// TicketInfo is the per-ticket metadata fetched fresh from the issue tracker
// on every run. AssigneeDisplayName is empty when the ticket is unassigned.
type TicketInfo struct {
	Key                 TicketKey
	AssigneeDisplayName string
}

// BranchTicketParser extracts ticket references from branch names for a
// single project key.
type BranchTicketParser struct {
	projectKey string
	pattern    *regexp.Regexp
}

// NewBranchTicketParser compiles the matcher for the given project key.
// Matching is case-insensitive on the key and anchors on a path-segment
// boundary, so "feat/proj-12" matches key "PROJ" but "reproj-12" does not.
func NewBranchTicketParser(projectKey string) (*BranchTicketParser, error) {
	if projectKey == "" {
		return nil, fmt.Errorf("project key is required")
	}
	pattern, err := regexp.Compile(`(?i)/` + regexp.QuoteMeta(projectKey) + `-(\d+)`)
	if err != nil {
		return nil, fmt.Errorf("compiling branch pattern for key %q: %w", projectKey, err)
	}
	return &BranchTicketParser{projectKey: projectKey, pattern: pattern}, nil
}

// Parse returns the normalized ticket key referenced by the branch name and
// whether one was found. Only the first reference in the branch is returned;
// branches naming several tickets are not split. An empty branch name is a
// no-match, not an error.
func (p *BranchTicketParser) Parse(branch string) (TicketKey, bool) {
	if branch == "" {
		return "", false
	}
	m := p.pattern.FindStringSubmatch(branch)
	if m == nil {
		return "", false
	}
	return NewTicketKey(p.projectKey, m[1]), true
}
