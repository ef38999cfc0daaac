package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	conf, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8050", conf.Address)
	assert.Equal(t, "../data/nba_standings_2021_2022_season_refined.csv", conf.DataPath)
	assert.True(t, conf.MetricsEnabled)
	assert.Equal(t, 10*time.Second, conf.ShutdownTimeout)
	assert.False(t, conf.DevMode)
}

func TestParseEnvironment(t *testing.T) {
	t.Setenv("NBADASH_ADDRESS", "127.0.0.1:9000")
	t.Setenv("NBADASH_DATA_PATH", "/srv/standings.csv")
	t.Setenv("NBADASH_DEV_MODE", "true")
	t.Setenv("NBADASH_LOG_JSON_STDOUT", "true")
	t.Setenv("NBADASH_METRICS_ENABLED", "false")
	t.Setenv("NBADASH_SHUTDOWN_TIMEOUT", "3s")

	conf, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", conf.Address)
	assert.Equal(t, "/srv/standings.csv", conf.DataPath)
	assert.True(t, conf.DevMode)
	assert.True(t, conf.LogJSONStdout)
	assert.False(t, conf.MetricsEnabled)
	assert.Equal(t, 3*time.Second, conf.ShutdownTimeout)
}

func TestParseInvalid(t *testing.T) {
	t.Setenv("NBADASH_SHUTDOWN_TIMEOUT", "soon")
	_, err := Parse()
	assert.Error(t, err)
}

func TestDataFile(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "standings.csv")
	assert.Equal(t, abs, (&Config{DataPath: abs}).DataFile())

	missing := "../data/does-not-exist.csv"
	assert.Equal(t, missing, (&Config{DataPath: missing}).DataFile())

	exe, err := os.Executable()
	require.NoError(t, err)
	dir, err := filepath.EvalSymlinks(filepath.Dir(exe))
	require.NoError(t, err)
	name := filepath.Base(t.TempDir()) + ".csv"
	next := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(next, []byte("Date\n"), 0o644))
	t.Cleanup(func() { _ = os.Remove(next) })

	assert.Equal(t, next, (&Config{DataPath: name}).DataFile())
}
