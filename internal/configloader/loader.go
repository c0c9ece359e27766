// Package configloader provides configuration loading and resolution.
// Precedence, lowest to highest: built-in defaults, discovered or explicit
// config file, HTMLVET_* environment variables, CLI flags.
package configloader

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/htmlvet/pkg/config"
)

// configFileNames are the project config file names, tried in order.
var configFileNames = []string{".htmlvet.yml", ".htmlvet.yaml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreEnv skips environment variable overrides.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("load config: %w", ctx.Err())
	default:
	}

	result := &LoadResult{Config: config.NewConfig()}

	path, err := resolveConfigPath(opts)
	if err != nil {
		return nil, err
	}

	if path != "" {
		fileCfg, err := loadConfigFile(path)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("load %s", path), err)
		}
		Merge(result.Config, fileCfg)
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(result.Config); err != nil {
			return nil, err
		}
	}

	if opts.CLIConfig != nil {
		Merge(result.Config, opts.CLIConfig)
	}

	if !result.Config.Format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %q", result.Config.Format)
	}
	if result.Config.MaxExamples < 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("max_examples %d is negative, using default", result.Config.MaxExamples))
		result.Config.MaxExamples = config.DefaultMaxExamples
	}

	return result, nil
}

// resolveConfigPath returns the config file to load, or "" when none exists.
// An explicit path must exist; discovered paths are optional.
func resolveConfigPath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	return discover(workDir), nil
}

// discover walks from dir toward the filesystem root looking for a project
// config file. Returns "" when none is found.
func discover(dir string) string {
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// loadConfigFile reads and parses one YAML config file.
func loadConfigFile(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return config.FromYAML(data)
}
