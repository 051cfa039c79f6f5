package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.github.com", cfg.GitHub.BaseURL)
	assert.Equal(t, "https://api.github.com/graphql", cfg.GitHub.GraphQLURL)
	assert.Equal(t, 5, cfg.GitHub.BatchSize)
	assert.Equal(t, 500, cfg.GitHub.BatchDelayMS)
	assert.Equal(t, 7, cfg.Cache.TTLDays)
	assert.Equal(t, 0, cfg.Analysis.ReferenceYear)
	assert.Equal(t, 4, cfg.Analysis.YearWindow)
	assert.Equal(t, "llama3.1", cfg.AI.Model)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, 80, cfg.Output.Width)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("github:\n  batch_size: 2\n  token: abc123\ncache:\n  ttl_days: 30\noutput:\n  color: false\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.GitHub.BatchSize)
	assert.Equal(t, "abc123", cfg.GitHub.Token)
	assert.Equal(t, 30, cfg.Cache.TTLDays)
	assert.False(t, cfg.Output.Color)

	// Untouched keys keep defaults.
	assert.Equal(t, 500, cfg.GitHub.BatchDelayMS)
	assert.Equal(t, 4, cfg.Analysis.YearWindow)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("DEVINTEL_GITHUB_TOKEN", "env-token")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.GitHub.Token)
}

func TestBatchDelay(t *testing.T) {
	g := GitHub{BatchDelayMS: 250}
	assert.Equal(t, "250ms", g.BatchDelay().String())
}

func TestCacheTTL(t *testing.T) {
	c := Cache{TTLDays: 7}
	assert.Equal(t, "168h0m0s", c.TTL().String())
}
