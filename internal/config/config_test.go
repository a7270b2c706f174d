package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, home string, content string) {
	t.Helper()

	dir := filepath.Join(home, ".chatline")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(Options{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.Server.BaseURL)
	assert.Equal(t, "ws://localhost:3000/ws", cfg.Server.WSURL)
	assert.Equal(t, "never", cfg.Auth.Revalidate)
	assert.Zero(t, cfg.Auth.RequestTimeout)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(home, ".chatline"), cfg.Storage.Dir)
	assert.Equal(t, 0, cfg.Channel.LogCapacity)
	assert.Equal(t, "oldest", cfg.Channel.Eviction)
	assert.Equal(t, int64(32768), cfg.Channel.ReadLimit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(home, ".chatline", "profile.toml"), cfg.ProfilePath())
	assert.Equal(t, filepath.Join(home, ".chatline", "secrets"), cfg.SecretsDir())
}

func TestLoadReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[server]
base_url = "https://chat.example.com"

[auth]
revalidate = "expiry"
request_timeout = "5s"

[storage]
dir = "~/state"

[channel]
log_capacity = 100
eviction = "newest"
`)

	cfg, err := Load(Options{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "wss://chat.example.com/ws", cfg.Server.WSURL)
	assert.Equal(t, "expiry", cfg.Auth.Revalidate)
	assert.Equal(t, 5*time.Second, cfg.Auth.RequestTimeout)
	assert.Equal(t, filepath.Join(home, "state"), cfg.Storage.Dir)
	assert.Equal(t, 100, cfg.Channel.LogCapacity)
	assert.Equal(t, "newest", cfg.Channel.Eviction)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[server]
base_url = "https://chat.example.com"
`)
	t.Setenv("CHATLINE_SERVER_BASE_URL", "http://127.0.0.1:8080")
	t.Setenv("CHATLINE_LOG_LEVEL", "debug")

	cfg, err := Load(Options{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "http://127.0.0.1:8080", cfg.Server.BaseURL)
	assert.Equal(t, "ws://127.0.0.1:8080/ws", cfg.Server.WSURL)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadReadsEnvFile(t *testing.T) {
	home := t.TempDir()
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("CHATLINE_CHANNEL_EVICTION=newest\n"), 0o600))
	t.Setenv("CHATLINE_CHANNEL_EVICTION", "")
	require.NoError(t, os.Unsetenv("CHATLINE_CHANNEL_EVICTION"))

	cfg, err := Load(Options{Home: home, EnvFile: envFile})
	require.NoError(t, err)
	assert.Equal(t, "newest", cfg.Channel.Eviction)
}

func TestLoadIgnoresMissingEnvFile(t *testing.T) {
	_, err := Load(Options{Home: t.TempDir(), EnvFile: filepath.Join(t.TempDir(), ".env")})
	require.NoError(t, err)
}

func TestLoadExplicitWSURLWins(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[server]
ws_url = "ws://realtime.example.com/socket"
`)

	cfg, err := Load(Options{Home: home})
	require.NoError(t, err)
	assert.Equal(t, "ws://realtime.example.com/socket", cfg.Server.WSURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "eviction", content: "[channel]\neviction = \"random\"\n"},
		{name: "revalidate", content: "[auth]\nrevalidate = \"always\"\n"},
		{name: "backend", content: "[storage]\nbackend = \"s3\"\n"},
		{name: "capacity", content: "[channel]\nlog_capacity = -1\n"},
		{name: "log level", content: "[log]\nlevel = \"loud\"\n"},
		{name: "read limit", content: "[channel]\nread_limit = 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			writeConfig(t, home, tt.content)

			_, err := Load(Options{Home: home})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "validate config")
		})
	}
}

func TestDeriveWSURL(t *testing.T) {
	got, err := DeriveWSURL("https://chat.example.com/api/")
	require.NoError(t, err)
	assert.Equal(t, "wss://chat.example.com/api/ws", got)

	_, err = DeriveWSURL("ftp://chat.example.com")
	require.Error(t, err)
}
