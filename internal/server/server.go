// Package server exposes the HTTP trigger boundary: saving per-project
// configuration and firing one reconciliation run. It is deliberately thin;
// all decision logic lives in the service layer.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/developerjhp/jirawaka/internal/domain"
	"github.com/developerjhp/jirawaka/internal/repository"
	"github.com/developerjhp/jirawaka/internal/service"
)

// Server handles the trigger endpoints.
type Server struct {
	reconciler service.ReconcileService
	configs    service.ConfigService
	completion *service.CompletionReporter
	logger     *slog.Logger
}

// New creates the trigger server.
func New(reconciler service.ReconcileService, configs service.ConfigService, completion *service.CompletionReporter, logger *slog.Logger) *Server {
	return &Server{
		reconciler: reconciler,
		configs:    configs,
		completion: completion,
		logger:     logger,
	}
}

// Handler returns the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/save-config", s.handleSaveConfig)
	mux.HandleFunc("POST /api/submit-config", s.handleSubmitConfig)
	return mux
}

// configRequest mirrors the original trigger payload field names.
type configRequest struct {
	Today             string `json:"today,omitempty"`
	Projects          string `json:"projects,omitempty"`
	Project           string `json:"project,omitempty"`
	ProjectKey        string `json:"projectKey"`
	WakatimeAPIKey    string `json:"wakatimeApiKey"`
	JiraAPIKey        string `json:"jiraApiKey"`
	JiraServer        string `json:"jiraServer"`
	JiraUsername      string `json:"jiraUsername"`
	AssignDisplayName string `json:"assignDisplayName"`
	NotifyRecipient   string `json:"notifyRecipient,omitempty"`
}

func (r *configRequest) toProjectConfig() domain.ProjectConfig {
	return domain.ProjectConfig{
		Project:           r.Project,
		ProjectKey:        r.ProjectKey,
		WakatimeAPIKey:    r.WakatimeAPIKey,
		JiraServer:        r.JiraServer,
		JiraUsername:      r.JiraUsername,
		JiraAPIKey:        r.JiraAPIKey,
		AssignDisplayName: r.AssignDisplayName,
		NotifyRecipient:   r.NotifyRecipient,
	}
}

func (s *Server) handleSaveConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	// A stray date in a saved config would shadow "today" on later runs.
	req.Today = ""

	saved, err := s.configs.SaveAll(r.Context(), req.toProjectConfig(), req.Projects)
	if err != nil {
		s.logger.Error("saving configuration failed", "error", err)
		http.Error(w, "Error saving configuration", http.StatusInternalServerError)
		return
	}

	s.logger.Info("configuration saved", "projects", saved)
	w.Write([]byte("Configuration saved successfully"))
}

// submitResponse is the run result payload the original trigger returned.
type submitResponse struct {
	Messages        []string           `json:"messages"`
	BranchDurations map[string]float64 `json:"branchDurations"`
	TotalWorkTime   string             `json:"totalWorkTime"`
}

func (s *Server) handleSubmitConfig(w http.ResponseWriter, r *http.Request) {
	var req configRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	cfg := req.toProjectConfig()
	if cfg.WakatimeAPIKey == "" && cfg.Project != "" {
		// Requests may omit credentials and rely on a stored configuration.
		stored, err := s.configs.Get(r.Context(), cfg.Project)
		if err != nil && !errors.Is(err, repository.ErrConfigNotFound) {
			s.internalError(w, err)
			return
		}
		if stored != nil {
			cfg = *stored
		}
	}

	summary, err := s.reconciler.Run(r.Context(), cfg, req.Today)
	if err != nil {
		// Error kinds are collapsed on purpose: the trigger contract is a
		// single generic failure.
		s.internalError(w, err)
		return
	}

	durations := make(map[string]float64, len(summary.Result.Aggregated))
	for key, secs := range summary.Result.Aggregated {
		durations[string(key)] = secs
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(submitResponse{
		Messages:        summary.Messages(),
		BranchDurations: durations,
		TotalWorkTime:   summary.TotalWorkTime(),
	})

	s.completion.ReportAsync(summary, cfg.Recipient())
}

func (s *Server) internalError(w http.ResponseWriter, err error) {
	s.logger.Error("reconciliation run failed", "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
}
