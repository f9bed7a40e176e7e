package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dfacoet/hopgraph/core"
	"github.com/dfacoet/hopgraph/internal/config"
	"github.com/dfacoet/hopgraph/pathlen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hopgraph.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefault(t *testing.T) {
	c := config.Default()
	assert.Zero(t, c.Workers)
	assert.Equal(t, pathlen.DefaultParallelThreshold, c.ParallelThreshold)
	assert.Zero(t, c.MaxNodes)
	assert.False(t, c.Undirected)
	assert.False(t, c.ReachableOnly)
	require.NoError(t, c.Validate())

	lvl, err := c.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_NoFile(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_File(t *testing.T) {
	p := writeFile(t, `
workers: 4
parallel_threshold: 50
max_nodes: 100000
undirected: true
reachable_only: true
log_level: debug
`)
	c, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Workers:           4,
		ParallelThreshold: 50,
		MaxNodes:          100000,
		Undirected:        true,
		ReachableOnly:     true,
		LogLevel:          "debug",
	}, c)
}

func TestLoad_EmptyFileKeepsDefaults(t *testing.T) {
	c, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "workers: 4\nlog_level: debug\n")
	t.Setenv("HOPGRAPH_WORKERS", "2")
	t.Setenv("HOPGRAPH_UNDIRECTED", "true")
	t.Setenv("HOPGRAPH_LOG_LEVEL", "warn")

	c, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Workers)
	assert.True(t, c.Undirected)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
	}{
		{name: "unknown key", body: "wrokers: 3\n"},
		{name: "bad yaml type", body: "workers: many\n"},
		{name: "negative workers", body: "workers: -1\n"},
		{name: "negative threshold", body: "parallel_threshold: -5\n"},
		{name: "negative max nodes", body: "max_nodes: -1\n"},
		{name: "bad log level", body: "log_level: loud\n"},
		{name: "bad env int", env: map[string]string{"HOPGRAPH_MAX_NODES": "ten"}},
		{name: "bad env bool", env: map[string]string{"HOPGRAPH_REACHABLE_ONLY": "maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_WrapsErrInvalid(t *testing.T) {
	c := config.Default()
	c.Workers = -3
	assert.ErrorIs(t, c.Validate(), config.ErrInvalid)
}

// TestPathlenOptions checks the translated options drive the engine.
func TestPathlenOptions(t *testing.T) {
	c := config.Default()
	c.MaxNodes = 2
	c.ReachableOnly = true

	// directed 4-path: sum 10 over 6 reachable pairs
	s, err := core.NewSnapshot(4, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	_, err = pathlen.AverageShortestPathLength(s, false, c.PathlenOptions()...)
	assert.ErrorIs(t, err, pathlen.ErrResourceExhausted)

	c.MaxNodes = 0
	avg, err := pathlen.AverageShortestPathLength(s, false, c.PathlenOptions()...)
	require.NoError(t, err)
	assert.InDelta(t, 10.0/6, avg, 1e-12)
}
