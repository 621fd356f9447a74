package config

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ToYAML serializes the configuration to YAML format.
func (c *Config) ToYAML() ([]byte, error) {
	if c == nil {
		return nil, nil
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// FromYAML parses a configuration from YAML bytes.
func FromYAML(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, nil
}

// Template is the commented configuration written by `textree init`.
const Template = `# textree configuration
# See: https://github.com/yaklabco/textree

# Connector theme: ascii, unicode, rounded, double, space-2, space-4,
# space-8, tab, a dark- variant of a glyph theme, or "none" for verbatim
# output.
theme: unicode

# Output format: plain, indices, or json
# format: plain

# Root row visibility: show, hide, or auto (hide unless a path is given)
# show-root: auto

# Colorize output: auto, always, or never
# color: auto

# Treat input as a Markdown document and build the tree from its heading
# outline.
# markdown: false

# Value-start matcher. The default pattern auto-detects the boundary in
# plain-indented text and in pre-drawn box trees.
# match:
#   pattern: ""
#   last: false
#   after: false
`
