package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/observable/pkg/asset"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-directory configuration file.
const FileName = "modelasset.yaml"

// FormatEnv overrides output.format when set.
const FormatEnv = "MODELASSET_FORMAT"

// Config represents the optional modelasset.yaml configuration.
type Config struct {
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// OutputConfig controls how new assets are written.
type OutputConfig struct {
	Format string `yaml:"format,omitempty"`
}

// LogConfig controls error reporting.
type LogConfig struct {
	Verbose bool `yaml:"verbose,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root    string
	Format  asset.Format
	Verbose bool
}

// LoadOptional reads modelasset.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads modelasset.yaml (if present) and resolves defaults.
// The output format defaults to YAML.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cfg.Output.Format)
	if env := strings.TrimSpace(os.Getenv(FormatEnv)); env != "" {
		name = env
	}

	format := asset.YAML
	if name != "" {
		format, err = asset.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("invalid output.format: %w", err)
		}
	}

	return &Resolved{
		Root:    dir,
		Format:  format,
		Verbose: cfg.Log.Verbose,
	}, nil
}
