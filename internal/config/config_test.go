package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
database:
  host: localhost
  port: 5432
sources:
  - key: nasa-images
    kind: restapi
    base_url: https://api.test
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.Harvest.Interval)
	assert.Equal(t, 3, cfg.Harvest.PageRetryBudget)
	assert.Equal(t, "info", cfg.LogLevel)

	src := cfg.Sources[0]
	assert.Equal(t, "nasa-images", src.Name)
	assert.Equal(t, 50, src.PageSize)
	assert.Equal(t, 7*24*time.Hour, src.GracePeriod)
	assert.Equal(t, 6, src.SimilarityThreshold)
	assert.Equal(t, "disabled", src.Publish.Mode)
	assert.Equal(t, []string{""}, src.SubSources)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")
	path := writeConfig(t, `
database:
  host: localhost
  password: ${TEST_DB_PASSWORD}
sources:
  - key: nasa-images
    kind: restapi
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
}

func TestLoad_UnknownSourceKind(t *testing.T) {
	path := writeConfig(t, `
sources:
  - key: weird
    kind: carrier-pigeon
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestLoad_DuplicateSourceKey(t *testing.T) {
	path := writeConfig(t, `
sources:
  - key: twin
    kind: restapi
  - key: twin
    kind: gallery
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate source key")
}

func TestLoad_UnknownPublishMode(t *testing.T) {
	path := writeConfig(t, `
sources:
  - key: nasa-images
    kind: restapi
    publish:
      mode: sometimes
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown publish mode")
}

func TestSourceLookup(t *testing.T) {
	path := writeConfig(t, `
sources:
  - key: nasa-images
    kind: restapi
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	src, err := cfg.Source("nasa-images")
	require.NoError(t, err)
	assert.Equal(t, "nasa-images", src.Key)

	_, err = cfg.Source("missing")
	assert.Error(t, err)
}
