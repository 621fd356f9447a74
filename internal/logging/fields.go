// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Configuration fields.
	FieldTheme    = "theme"
	FieldFormat   = "format"
	FieldPattern  = "pattern"
	FieldShowRoot = "show_root"
	FieldMarkdown = "markdown"

	// Statistics fields.
	FieldBytes = "bytes"
	FieldLines = "lines"
	FieldNodes = "nodes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
