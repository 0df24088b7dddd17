package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andreiashu/countries"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "countries.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Empty(t, cfg.RepositoryOptions())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("COUNTRIES_JSON_PATH", "/srv/data/countries.json")
	t.Setenv("COUNTRIES_LOG_LEVEL", "debug")
	t.Setenv("COUNTRIES_FETCH_TIMEOUT", "5s")
	t.Setenv("COUNTRIES_UPSTREAM_URL", "http://mirror.internal/countries.json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/data/countries.json", cfg.JSONPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "http://mirror.internal/countries.json", cfg.UpstreamURL)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
json_path: /data/countries.json
log_level: info
fetch_timeout: 2m
overrides_file: /data/overrides.yaml
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/countries.json", cfg.JSONPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2*time.Minute, cfg.FetchTimeout)
	assert.Equal(t, "/data/overrides.yaml", cfg.OverridesFile)
	assert.Equal(t, countries.DefaultUpstreamURL, cfg.UpstreamURL)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := writeConfig(t, "log_level: info\n")
	t.Setenv("COUNTRIES_LOG_LEVEL", "error")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "log_level: [\n"))
		assert.Error(t, err)
	})
	t.Run("non-positive timeout", func(t *testing.T) {
		_, err := Load(writeConfig(t, "fetch_timeout: 0s\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetch_timeout must be positive")
	})
}

func TestRepositoryOptions(t *testing.T) {
	t.Setenv("COUNTRIES_JSON_PATH", "../../testdata/canada-only.json")

	cfg, err := Load("")
	require.NoError(t, err)

	repo, err := countries.New(cfg.RepositoryOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Len())
}
