package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/stuagano/awesome-claude-code/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "awesomegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultDataset, cfg.Dataset)
	assert.Equal(t, DefaultTemplatesDir, cfg.TemplatesDir)
	assert.Equal(t, DefaultRootStyle, cfg.RootStyle)
	assert.Equal(t, DefaultWatchDebounce, cfg.Watch.Debounce.Std())
	assert.False(t, cfg.History.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
dataset: data/resources.csv
templates_dir: tpl
root_style: classic
history:
  enabled: true
  path: runs.db
watch:
  debounce: 500ms
  interval: 1h
  metrics_addr: ":9109"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/resources.csv", cfg.Dataset)
	assert.Equal(t, "tpl", cfg.TemplatesDir)
	assert.Equal(t, "classic", cfg.RootStyle)
	assert.True(t, cfg.History.Enabled)
	assert.Equal(t, "runs.db", cfg.History.Path)
	assert.Equal(t, 500*time.Millisecond, cfg.Watch.Debounce.Std())
	assert.Equal(t, time.Hour, cfg.Watch.Interval.Std())
	assert.Equal(t, ":9109", cfg.Watch.MetricsAddr)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryConfig))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "dataset: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryConfig))
}

func TestEnvOverridesWinOverFile(t *testing.T) {
	path := writeConfig(t, "dataset: from-file.csv\n")
	t.Setenv("AWESOMEGEN_DATASET", "from-env.csv")
	t.Setenv("AWESOMEGEN_WATCH_DEBOUNCE", "250ms")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env.csv", cfg.Dataset)
	assert.Equal(t, 250*time.Millisecond, cfg.Watch.Debounce.Std())
}

func TestHistoryEnabledGetsDefaultPath(t *testing.T) {
	path := writeConfig(t, "history:\n  enabled: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHistoryPath, cfg.History.Path)
}

func TestValidateRejectsEmptyDataset(t *testing.T) {
	cfg := &Config{TemplatesDir: "tpl"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCategory(err, pkgerrors.CategoryConfig))
}

func TestSnapshotStableAndSensitive(t *testing.T) {
	a := &Config{Dataset: "d.csv", TemplatesDir: "tpl", OutputDir: "."}
	b := &Config{Dataset: "d.csv", TemplatesDir: "tpl", OutputDir: "."}
	assert.Equal(t, a.Snapshot(), b.Snapshot())

	b.RootStyle = "classic"
	assert.NotEqual(t, a.Snapshot(), b.Snapshot())

	// Watch tuning does not affect output content.
	c := &Config{Dataset: "d.csv", TemplatesDir: "tpl", OutputDir: "."}
	c.Watch.Debounce = Duration(time.Second)
	assert.Equal(t, a.Snapshot(), c.Snapshot())
}
