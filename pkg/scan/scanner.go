// Package scan splits a text buffer into lines and locates each line's
// value span, the sub-range holding the node's meaningful label.
package scan

import (
	"strings"

	"github.com/yaklabco/textree/pkg/textspan"
)

// Line holds the spans produced for one input line. Both spans are
// absolute offsets into the scanned buffer.
type Line struct {
	// Span covers the whole line including its terminator.
	Span textspan.Span

	// Value covers the line's label: from the matcher-selected start to
	// the end of the line, terminator excluded.
	Value textspan.Span
}

// Scanner produces one Line per input line, in order. It follows the
// bufio.Scanner idiom: call Scan until it returns false and read the
// current result from Line. A Scanner is single-use and cannot rewind.
type Scanner struct {
	text    string
	matcher *Matcher
	pos     int
	line    Line
}

// NewScanner returns a Scanner over text. A nil matcher selects
// DefaultMatcher.
func NewScanner(text string, matcher *Matcher) *Scanner {
	if matcher == nil {
		matcher = DefaultMatcher()
	}
	return &Scanner{text: text, matcher: matcher}
}

// Scan advances to the next line. It returns false when the buffer is
// exhausted.
func (s *Scanner) Scan() bool {
	if s.pos >= len(s.text) {
		return false
	}

	start := s.pos
	stop := len(s.text)
	if i := strings.IndexByte(s.text[start:], '\n'); i >= 0 {
		stop = start + i + 1
	}
	s.pos = stop

	// Terminator length: 0 (end of buffer), 1 (LF), or 2 (CRLF).
	term := 0
	if stop > start && s.text[stop-1] == '\n' {
		term = 1
		if stop-2 >= start && s.text[stop-2] == '\r' {
			term = 2
		}
	}

	content := s.text[start : stop-term]
	valueStart := start + s.matcher.valueStart(content)

	s.line = Line{
		Span:  textspan.New(start, stop),
		Value: textspan.New(valueStart, stop-term),
	}
	return true
}

// Line returns the most recently scanned line.
func (s *Scanner) Line() Line {
	return s.line
}
