package wakatime

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/developerjhp/jirawaka/internal/domain"
)

// Client fetches raw per-branch durations for one date and project.
type Client interface {
	// FetchDurations returns the duration records recorded for the given
	// date (YYYY-MM-DD) and project.
	FetchDurations(ctx context.Context, date, project, apiKey string) ([]domain.DurationRecord, error)
}

// DefaultEndpoint is the public WakaTime API base URL.
const DefaultEndpoint = "https://wakatime.com/api/v1"

// httpClient implements Client against the WakaTime durations API.
type httpClient struct {
	endpoint string
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client talking to the given API base URL.
// An empty endpoint uses DefaultEndpoint.
func NewHTTPClient(endpoint string, observer Observer) Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		endpoint: endpoint,
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

// durationsResponse is the JSON body returned by GET /users/current/durations.
type durationsResponse struct {
	Data []durationEntry `json:"data"`
}

type durationEntry struct {
	Branch   string  `json:"branch"`
	Duration float64 `json:"duration"`
	Project  string  `json:"project"`
}

func (c *httpClient) FetchDurations(ctx context.Context, date, project, apiKey string) ([]domain.DurationRecord, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	q := url.Values{}
	q.Set("date", date)
	q.Set("project", project)
	q.Set("api_key", apiKey)
	reqURL := c.endpoint + "/users/current/durations?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(start, false)
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(start, false)
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.observe(start, false)
		return nil, fmt.Errorf("%w: wakatime returned status %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	var parsed durationsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.observe(start, false)
		return nil, fmt.Errorf("%w: decoding response: %v", ErrTransport, err)
	}

	records := make([]domain.DurationRecord, 0, len(parsed.Data))
	for _, entry := range parsed.Data {
		records = append(records, domain.DurationRecord{
			Branch:  entry.Branch,
			Seconds: entry.Duration,
		})
	}

	c.observe(start, true)
	return records, nil
}

func (c *httpClient) observe(start time.Time, success bool) {
	c.observer.OnCallComplete(CallEvent{
		Operation: "fetch_durations",
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   success,
	})
}
