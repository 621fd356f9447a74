// Package configloader resolves textree configuration from files and flags.
// It implements XDG-compliant discovery and hierarchical merging.
package configloader

import (
	"os"
	"path/filepath"
)

// ConfigPaths represents discovered configuration file paths.
type ConfigPaths struct {
	// User is the user-level config path
	// (e.g., ~/.config/textree/config.yaml).
	User string

	// Project is the project-level config path (e.g., ./.textree.yml).
	Project string

	// Explicit is a config path provided via --config flag.
	Explicit string
}

// projectConfigFiles are the config file names we search for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigFiles = []string{
	".textree.yml",
	".textree.yaml",
	"textree.yml",
	"textree.yaml",
}

// userConfigFiles are the user config file names under the XDG config dir.
//
//nolint:gochecknoglobals // Read-only lookup table.
var userConfigFiles = []string{
	"config.yaml",
	"config.yml",
}

// vcsRootMarkers are directories that indicate a VCS root.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds configuration files in standard locations:
//   - User config at $XDG_CONFIG_HOME/textree/config.{yaml,yml}
//   - Project config by searching upward from workDir until a VCS root
//     (or the filesystem root) for .textree.{yml,yaml}
func DiscoverPaths(workDir string) *ConfigPaths {
	return &ConfigPaths{
		User:    discoverUserConfig(),
		Project: discoverProjectConfig(workDir),
	}
}

func discoverUserConfig() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	for _, name := range userConfigFiles {
		path := filepath.Join(configHome, "textree", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func discoverProjectConfig(workDir string) string {
	dir := workDir
	for {
		for _, name := range projectConfigFiles {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
