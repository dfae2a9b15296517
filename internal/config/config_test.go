package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3001/v0", cfg.APIBaseURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := writeConfigFile(t, `
api_base_url: https://shop.example.com/v0
http_timeout: 30s
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com/v0", cfg.APIBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, `api_base_url: https://file.example.com`)
	t.Setenv("GAMESHOP_API_URL", "https://env.example.com")
	t.Setenv("GAMESHOP_HTTP_TIMEOUT", "5s")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "api_base_url: [not: closed")

	_, err := Load(path)

	assert.Error(t, err)
}

func TestLoad_InvalidTimeoutEnv(t *testing.T) {
	t.Setenv("GAMESHOP_HTTP_TIMEOUT", "not-a-duration")

	_, err := Load("")

	assert.Error(t, err)
}
