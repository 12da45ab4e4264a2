package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NONOGRAM_CONFIG", "/nonexistent/config.toml")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8080", c.Server.Addr)
	require.Equal(t, 100, c.Solver.MaxIterations)
	require.True(t, c.Solver.Parallel)
	require.Equal(t, "fs", c.Storage.Backend)
	require.Equal(t, "info", c.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NONOGRAM_CONFIG", "/nonexistent/config.toml")
	t.Setenv("NONOGRAM_SERVER_ADDR", ":9090")
	t.Setenv("NONOGRAM_STORAGE_BACKEND", "sqlite")
	t.Setenv("NONOGRAM_SOLVER_WORKERS", "8")
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", c.Server.Addr)
	require.Equal(t, "sqlite", c.Storage.Backend)
	require.Equal(t, 8, c.Solver.Workers)
}
