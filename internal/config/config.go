// Package config loads application-level settings: defaults, then an
// optional JSONC file, then JIRAWAKA_* environment variables. Per-project
// reconciliation settings live in the database, not here.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tailscale/hujson"
)

// SMTPSettings holds the mail relay used for completion notifications.
// Notifications are logged instead of mailed when Host is empty.
type SMTPSettings struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
	From     string `json:"from,omitempty"`
}

// Config holds all application settings.
type Config struct {
	DBPath     string       `json:"db_path"`
	ListenAddr string       `json:"listen_addr"`
	Country    string       `json:"country"`
	ReportDir  string       `json:"report_dir"` // latest-report files; empty disables
	LogCalls   bool         `json:"log_calls"`  // API call telemetry on stderr
	SMTP       SMTPSettings `json:"smtp"`
}

// Default returns the built-in configuration. The database and report
// directory live under ~/.jirawaka.
func Default() Config {
	cfg := Config{
		ListenAddr: ":3001",
		Country:    "Korea",
		SMTP:       SMTPSettings{Port: 587},
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".jirawaka", "jirawaka.db")
		cfg.ReportDir = filepath.Join(home, ".jirawaka", "log")
	}
	return cfg
}

// Load resolves configuration: defaults, then the file at path (JSON with
// comments and trailing commas allowed; skipped when path is empty or the
// file does not exist), then environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env
		case err != nil:
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			std, err := hujson.Standardize(data)
			if err != nil {
				return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
			}
			if err := json.Unmarshal(std, &cfg); err != nil {
				return Config{}, fmt.Errorf("decoding config file %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("JIRAWAKA_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("JIRAWAKA_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("JIRAWAKA_COUNTRY"); v != "" {
		cfg.Country = v
	}
	if v := os.Getenv("JIRAWAKA_REPORT_DIR"); v != "" {
		cfg.ReportDir = v
	}
	if v := os.Getenv("JIRAWAKA_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("JIRAWAKA_SMTP_HOST"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("JIRAWAKA_SMTP_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SMTP.Port = n
		}
	}
	if v := os.Getenv("JIRAWAKA_EMAIL_USER"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("JIRAWAKA_EMAIL_PASS"); v != "" {
		cfg.SMTP.Password = v
	}
}
