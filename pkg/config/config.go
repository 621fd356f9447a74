// Package config defines textree's configuration model.
package config

import (
	"fmt"

	"github.com/yaklabco/textree/pkg/scan"
)

// Root visibility modes. Auto hides the root unless a path is given.
const (
	RootAuto = "auto"
	RootShow = "show"
	RootHide = "hide"
)

// MatchConfig configures the line scanner's value-start matcher.
type MatchConfig struct {
	// Pattern is the regular expression locating where a line's value
	// begins. Empty selects the built-in auto-detecting pattern.
	Pattern string `yaml:"pattern,omitempty"`

	// Last selects the last match on the line instead of the first.
	Last bool `yaml:"last,omitempty"`

	// After starts the value just past the match instead of at it.
	After bool `yaml:"after,omitempty"`
}

// Config holds textree settings, merged from defaults, config files, and
// command-line flags in increasing precedence.
type Config struct {
	// Theme names a connector preset, or "none" for verbatim output.
	Theme string `yaml:"theme,omitempty"`

	// Format selects the output form: plain, indices, or json.
	Format string `yaml:"format,omitempty"`

	// ShowRoot is one of show, hide, or auto.
	ShowRoot string `yaml:"show-root,omitempty"`

	// Color is one of auto, always, or never.
	Color string `yaml:"color,omitempty"`

	// Markdown ingests input as a Markdown heading outline.
	Markdown bool `yaml:"markdown,omitempty"`

	// Match configures the value-start matcher.
	Match MatchConfig `yaml:"match,omitempty"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme:    "unicode",
		Format:   "plain",
		ShowRoot: RootAuto,
		Color:    "auto",
		Match:    MatchConfig{Pattern: scan.DefaultPattern},
	}
}

// Validate checks enumerated fields. Theme names are validated later, at
// resolution time, where the full preset list is known.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "plain", "indices", "json":
	default:
		return fmt.Errorf("invalid format %q: must be plain, indices, or json", c.Format)
	}

	switch c.ShowRoot {
	case "", RootAuto, RootShow, RootHide:
	default:
		return fmt.Errorf("invalid show-root %q: must be show, hide, or auto", c.ShowRoot)
	}

	switch c.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q: must be auto, always, or never", c.Color)
	}

	return nil
}

// Merge overlays src onto c: every non-zero field of src wins.
func (c *Config) Merge(src *Config) {
	if src == nil {
		return
	}
	if src.Theme != "" {
		c.Theme = src.Theme
	}
	if src.Format != "" {
		c.Format = src.Format
	}
	if src.ShowRoot != "" {
		c.ShowRoot = src.ShowRoot
	}
	if src.Color != "" {
		c.Color = src.Color
	}
	if src.Markdown {
		c.Markdown = true
	}
	if src.Match.Pattern != "" {
		c.Match.Pattern = src.Match.Pattern
	}
	if src.Match.Last {
		c.Match.Last = true
	}
	if src.Match.After {
		c.Match.After = true
	}
}
