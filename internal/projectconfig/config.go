// Package projectconfig provides the ProjectConfig struct and loader for
// .stackpick.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file searched for upward from
// the working directory.
const ConfigFileName = ".stackpick.yaml"

// Default values for project configuration. These are the single source of
// truth — New() references them and no other code should duplicate them.
const (
	DefaultOptimizeFor = "balanced"
	DefaultMaxResults  = 5
	DefaultFramework   = "pipecat"
	DefaultFormat      = "text"

	// DefaultFallbackThreshold is the score gap (in points) above which a
	// scaffold fallback is reported to the user.
	DefaultFallbackThreshold = 2.0

	DefaultScaffoldOutputDir = "."
)

// DefaultsConfig holds default query parameters.
type DefaultsConfig struct {
	OptimizeFor string `yaml:"optimize_for,omitempty"`
	MaxResults  int    `yaml:"max_results,omitempty"`
	Framework   string `yaml:"framework,omitempty"`
	Format      string `yaml:"format,omitempty"`
}

// ScaffoldConfig holds scaffold generation settings.
type ScaffoldConfig struct {
	FallbackThreshold *float64 `yaml:"fallback_threshold,omitempty"`
	OutputDir         string   `yaml:"output_dir,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .stackpick.yaml.
type ProjectConfig struct {
	Defaults DefaultsConfig `yaml:"defaults,omitempty"`
	Scaffold ScaffoldConfig `yaml:"scaffold,omitempty"`
}

// FallbackThreshold returns the configured scaffold fallback threshold.
func (c *ProjectConfig) FallbackThreshold() float64 {
	if c.Scaffold.FallbackThreshold != nil {
		return *c.Scaffold.FallbackThreshold
	}
	return DefaultFallbackThreshold
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Defaults: DefaultsConfig{
			OptimizeFor: DefaultOptimizeFor,
			MaxResults:  DefaultMaxResults,
			Framework:   DefaultFramework,
			Format:      DefaultFormat,
		},
		Scaffold: ScaffoldConfig{
			OutputDir: DefaultScaffoldOutputDir,
		},
	}
}

// Load finds .stackpick.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	_, data, err := Find(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", ConfigFileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", ConfigFileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	return cfg, nil
}

// Find walks up from dir looking for .stackpick.yaml (max 10 levels) and
// returns its path and raw contents. Returns os.ErrNotExist if no config
// file is found. Propagates real I/O errors (e.g. permission denied)
// instead of silently swallowing them.
func Find(dir string) (string, []byte, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", nil, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	if src.Defaults.OptimizeFor != "" {
		dst.Defaults.OptimizeFor = src.Defaults.OptimizeFor
	}
	if src.Defaults.MaxResults != 0 {
		dst.Defaults.MaxResults = src.Defaults.MaxResults
	}
	if src.Defaults.Framework != "" {
		dst.Defaults.Framework = src.Defaults.Framework
	}
	if src.Defaults.Format != "" {
		dst.Defaults.Format = src.Defaults.Format
	}
	if src.Scaffold.FallbackThreshold != nil {
		dst.Scaffold.FallbackThreshold = src.Scaffold.FallbackThreshold
	}
	if src.Scaffold.OutputDir != "" {
		dst.Scaffold.OutputDir = src.Scaffold.OutputDir
	}
}
