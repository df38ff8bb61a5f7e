package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "warning", cfg.LogLevel)
	require.Empty(t, cfg.FoldStatePath)
	require.Empty(t, cfg.DisabledActions)
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("INSPECTOR_LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.yaml")
	contents := []byte(`log_level: info
fold_state_path: /tmp/folds.db
disabled_actions:
  - SelfDestruct
  - Explode
`)
	require.NoError(t, os.WriteFile(path, contents, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "/tmp/folds.db", cfg.FoldStatePath)
	require.Equal(t, []string{"SelfDestruct", "Explode"}, cfg.DisabledActions)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
