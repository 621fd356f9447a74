package configloader

import (
	"fmt"
	"os"

	"github.com/yaklabco/textree/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string
}

// Load resolves the configuration by merging all file sources.
// Precedence (highest to lowest):
//  1. Explicit config file (opts.ExplicitPath)
//  2. Project config (.textree.yml upward search)
//  3. User config ($XDG_CONFIG_HOME/textree/config.yaml)
//  4. Defaults
//
// Command-line flags are applied on top by the CLI layer.
func Load(opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths := DiscoverPaths(workDir)
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{
		Config: config.Default(),
		Paths:  paths,
	}

	if opts.ExplicitPath != "" {
		if err := mergeFile(result, opts.ExplicitPath); err != nil {
			return nil, err
		}
	} else {
		// Lowest precedence first so later merges win.
		for _, path := range []string{paths.User, paths.Project} {
			if path == "" {
				continue
			}
			if err := mergeFile(result, path); err != nil {
				return nil, err
			}
		}
	}

	if err := result.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

func mergeFile(result *LoadResult, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := config.FromYAML(data)
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	result.Config.Merge(cfg)
	result.LoadedFrom = append(result.LoadedFrom, path)
	return nil
}
