package projectconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()

	require.Equal(t, "balanced", cfg.Defaults.OptimizeFor)
	require.Equal(t, 5, cfg.Defaults.MaxResults)
	require.Equal(t, "pipecat", cfg.Defaults.Framework)
	require.Equal(t, "text", cfg.Defaults.Format)
	require.Equal(t, ".", cfg.Scaffold.OutputDir)
	require.Nil(t, cfg.Scaffold.FallbackThreshold)
	require.Equal(t, DefaultFallbackThreshold, cfg.FallbackThreshold())
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
}

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, New(), cfg)
}

func TestLoad_MergesPartialConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
defaults:
  optimize_for: latency
scaffold:
  output_dir: generated
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "latency", cfg.Defaults.OptimizeFor)
	require.Equal(t, "generated", cfg.Scaffold.OutputDir)
	// Untouched fields keep their defaults.
	require.Equal(t, 5, cfg.Defaults.MaxResults)
	require.Equal(t, "pipecat", cfg.Defaults.Framework)
}

func TestLoad_FallbackThreshold(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
scaffold:
  fallback_threshold: 0
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	// Zero is a legitimate configured value, distinct from "unset".
	require.NotNil(t, cfg.Scaffold.FallbackThreshold)
	require.Equal(t, 0.0, cfg.FallbackThreshold())
}

func TestLoad_WalksUpward(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "defaults:\n  framework: nextjs\n")
	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := Load(nested)
	require.NoError(t, err)
	require.Equal(t, "nextjs", cfg.Defaults.Framework)
}

func TestLoad_NearestFileWins(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "defaults:\n  max_results: 9\n")
	nested := filepath.Join(root, "sub")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeConfig(t, nested, "defaults:\n  max_results: 2\n")

	cfg, err := Load(nested)
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Defaults.MaxResults)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults: [not a map\n")

	_, err := Load(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), ConfigFileName)
}

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "defaults: {}\n")

	path, data, err := Find(dir)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, ConfigFileName), path)
	require.Equal(t, "defaults: {}\n", string(data))

	_, _, err = Find(t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}
