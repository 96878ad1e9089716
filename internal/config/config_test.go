package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":3001", cfg.ListenAddr)
	assert.Equal(t, "Korea", cfg.Country)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jirawaka.jsonc")
	content := `{
		// listen on a different port
		"listen_addr": ":8080",
		"country": "USA",
		"smtp": {"host": "smtp.gmail.com", "port": 465, "username": "u", "password": "p"},
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "USA", cfg.Country)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 465, cfg.SMTP.Port)
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.jsonc"))
	require.NoError(t, err)
	assert.Equal(t, ":3001", cfg.ListenAddr)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jsonc")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("JIRAWAKA_LISTEN_ADDR", ":9999")
	t.Setenv("JIRAWAKA_COUNTRY", "USA")
	t.Setenv("JIRAWAKA_SMTP_HOST", "relay.example.com")
	t.Setenv("JIRAWAKA_SMTP_PORT", "2525")
	t.Setenv("JIRAWAKA_LOG_CALLS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "USA", cfg.Country)
	assert.Equal(t, "relay.example.com", cfg.SMTP.Host)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.True(t, cfg.LogCalls)
}
