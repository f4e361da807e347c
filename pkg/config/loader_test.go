package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFleetYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fleet.yaml"), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaultsWithoutFile(t *testing.T) {
	cfg, err := Initialize(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Store.AppendBusyTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Liveness.StaleThreshold)
	assert.Equal(t, time.Hour, cfg.Locks.MaxTimeout)
	assert.Equal(t, 3, cfg.Checkpoint.MinKeep)
	assert.Equal(t, []int{25, 50, 75}, cfg.Checkpoint.ProgressThresholds)
	assert.Equal(t, 10_000, cfg.Compaction.ThresholdEvents)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, cfg.ProjectPath)
	assert.True(t, filepath.IsAbs(cfg.StateDir))
}

func TestInitializeMergesFileOverDefaults(t *testing.T) {
	stateDir := t.TempDir()
	projectDir := t.TempDir()
	dir := writeFleetYAML(t, `
state_dir: `+stateDir+`
project_path: `+projectDir+`
checkpoint:
  min_keep: 5
  retention_days: 14
compaction:
  threshold_events: 500
`)

	cfg, err := Initialize(dir)
	require.NoError(t, err)

	assert.Equal(t, stateDir, cfg.StateDir)
	assert.Equal(t, projectDir, cfg.ProjectPath)
	assert.Equal(t, 5, cfg.Checkpoint.MinKeep)
	assert.Equal(t, 14, cfg.Checkpoint.RetentionDays)
	assert.Equal(t, 500, cfg.Compaction.ThresholdEvents)

	// Unset fields keep their defaults.
	assert.Equal(t, 30, cfg.Checkpoint.CompletedRetentionDays)
	assert.Equal(t, 30*time.Second, cfg.Locks.DefaultTimeout)
}

func TestInitializeExpandsEnv(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv("FLEET_STATE_DIR", stateDir)
	dir := writeFleetYAML(t, "state_dir: {{.FLEET_STATE_DIR}}\n")

	cfg, err := Initialize(dir)
	require.NoError(t, err)
	assert.Equal(t, stateDir, cfg.StateDir)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "min_keep below floor",
			yaml: "checkpoint:\n  min_keep: -1\n",
			want: "checkpoint.min_keep",
		},
		{
			name: "progress threshold out of range",
			yaml: "checkpoint:\n  progress_thresholds: [150]\n",
			want: "checkpoint.progress_thresholds",
		},
		{
			name: "negative compaction threshold",
			yaml: "compaction:\n  threshold_events: -5\n",
			want: "compaction.threshold_events",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(writeFleetYAML(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestProjectHashIsStablePrefix(t *testing.T) {
	h := ProjectHash("/home/dev/project")
	assert.Len(t, h, 12)
	assert.Equal(t, h, ProjectHash("/home/dev/project"))
	assert.NotEqual(t, h, ProjectHash("/home/dev/other"))
}

func TestStorePathNamespacesByProject(t *testing.T) {
	cfg := &Config{StateDir: "/var/lib/fleetd", ProjectPath: "/home/dev/project"}
	path := cfg.StorePath()
	assert.Equal(t, "store.db", filepath.Base(path))
	assert.Contains(t, path, ProjectHash("/home/dev/project"))
}
