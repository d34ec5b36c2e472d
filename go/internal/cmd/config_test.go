package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mcdev12/pelada/go/internal/clock"
	"github.com/mcdev12/pelada/go/internal/rankings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, clock.DefaultZone, cfg.Timezone)
	assert.Equal(t, rankings.DefaultLimits, cfg.Rankings)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  allowed_origins: ["https://pelada.app"]
timezone: America/Recife
rankings:
  default_limit: 5
  max_limit: 50
`)
	t.Setenv("PORT", "9100")

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, []string{"https://pelada.app"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "America/Recife", cfg.Timezone)
	assert.Equal(t, 5, cfg.Rankings.Default)
	assert.Equal(t, 50, cfg.Rankings.Max)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "timezone: Mars/Olympus\n"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "log:\n  level: loud\n"))
	assert.Error(t, err)

	_, err = loadConfig(writeConfig(t, "server: [\n"))
	assert.Error(t, err)
}
