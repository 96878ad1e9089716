package wakatime

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchDurations(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/current/durations", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "2024-03-01", r.URL.Query().Get("date"))
		assert.Equal(t, "myproj", r.URL.Query().Get("project"))
		assert.Equal(t, "waka-key", r.URL.Query().Get("api_key"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"branch": "feat/PROJ-10", "duration": 1800.25, "project": "myproj"},
				{"branch": "", "duration": 42.0, "project": "myproj"},
			},
		})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, NoopObserver{})
	records, err := client.FetchDurations(context.Background(), "2024-03-01", "myproj", "waka-key")
	require.NoError(t, err)

	assert.Equal(t, []domain.DurationRecord{
		{Branch: "feat/PROJ-10", Seconds: 1800.25},
		{Branch: "", Seconds: 42},
	}, records)
}

func TestFetchDurations_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"bad key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, NoopObserver{})
	_, err := client.FetchDurations(context.Background(), "2024-03-01", "myproj", "bad")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFetchDurations_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, NoopObserver{})
	_, err := client.FetchDurations(context.Background(), "2024-03-01", "myproj", "k")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFetchDurations_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately unreachable

	client := NewHTTPClient(srv.URL, NoopObserver{})
	_, err := client.FetchDurations(context.Background(), "2024-03-01", "myproj", "k")
	assert.ErrorIs(t, err, ErrTransport)
}

func TestFetchDurations_ObserverSeesOutcome(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []map[string]any{}})
	}))
	defer srv.Close()

	var events []CallEvent
	client := NewHTTPClient(srv.URL, observerFunc(func(e CallEvent) { events = append(events, e) }))

	_, err := client.FetchDurations(context.Background(), "2024-03-01", "myproj", "k")
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "fetch_durations", events[0].Operation)
	assert.True(t, events[0].Success)
}

type observerFunc func(CallEvent)

func (f observerFunc) OnCallComplete(e CallEvent) { f(e) }
