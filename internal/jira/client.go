package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/developerjhp/jirawaka/internal/domain"
)

// Client is the issue-tracker boundary: ticket metadata reads and work-log
// writes. Implementations carry their own credentials.
type Client interface {
	// GetIssue fetches current metadata for the ticket.
	GetIssue(ctx context.Context, key domain.TicketKey) (*domain.TicketInfo, error)

	// AddWorklog records minutes of work against the ticket. There is no
	// duplicate detection upstream: calling this twice logs the time twice.
	AddWorklog(ctx context.Context, key domain.TicketKey, minutes int) error
}

// Credentials holds basic-auth credentials for a Jira server.
type Credentials struct {
	Server   string // base URL, e.g. "https://yourcompany.atlassian.net"
	Username string
	APIKey   string
}

// httpClient implements Client against the Jira REST API v2.
type httpClient struct {
	creds    Credentials
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client for the server named in creds.
func NewHTTPClient(creds Credentials, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		creds: Credentials{
			Server:   strings.TrimSuffix(creds.Server, "/"),
			Username: creds.Username,
			APIKey:   creds.APIKey,
		},
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// issueResponse is the subset of GET /rest/api/2/issue/{key} we consume.
type issueResponse struct {
	Key    string `json:"key"`
	Fields struct {
		Assignee *struct {
			DisplayName string `json:"displayName"`
		} `json:"assignee"`
	} `json:"fields"`
}

func (c *httpClient) GetIssue(ctx context.Context, key domain.TicketKey) (*domain.TicketInfo, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	reqURL := fmt.Sprintf("%s/rest/api/2/issue/%s?fields=assignee", c.creds.Server, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.SetBasicAuth(c.creds.Username, c.creds.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("get_issue", start, false)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("get_issue", start, false)
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.observe("get_issue", start, false)
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	case resp.StatusCode != http.StatusOK:
		c.observe("get_issue", start, false)
		return nil, fmt.Errorf("%w: jira returned status %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	var parsed issueResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.observe("get_issue", start, false)
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}

	info := &domain.TicketInfo{Key: domain.TicketKey(parsed.Key)}
	if parsed.Fields.Assignee != nil {
		info.AssigneeDisplayName = parsed.Fields.Assignee.DisplayName
	}

	c.observe("get_issue", start, true)
	return info, nil
}

// worklogRequest is the JSON body sent to POST /rest/api/2/issue/{key}/worklog.
type worklogRequest struct {
	TimeSpent string `json:"timeSpent"`
}

func (c *httpClient) AddWorklog(ctx context.Context, key domain.TicketKey, minutes int) error {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	data, err := json.Marshal(worklogRequest{TimeSpent: fmt.Sprintf("%dm", minutes)})
	if err != nil {
		return fmt.Errorf("marshaling worklog: %w", err)
	}

	reqURL := fmt.Sprintf("%s/rest/api/2/issue/%s/worklog", c.creds.Server, key)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.creds.Username, c.creds.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("add_worklog", start, false)
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe("add_worklog", start, false)
		return fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.observe("add_worklog", start, false)
		return fmt.Errorf("%w: jira returned status %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	c.observe("add_worklog", start, true)
	return nil
}

func (c *httpClient) observe(op string, start time.Time, success bool) {
	c.observer.OnCallComplete(CallEvent{
		Operation: op,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   success,
	})
}
