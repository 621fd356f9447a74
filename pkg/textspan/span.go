// Package textspan provides half-open byte ranges over a text buffer.
//
// All span arithmetic in textree goes through this package so that offset
// math (line-relative vs. buffer-absolute) stays in named operations instead
// of ad-hoc slicing.
package textspan

// Unbounded marks a span whose stop extends to the end of the buffer.
const Unbounded = -1

// Span is a half-open byte range [Start, Stop) into a text buffer.
// Stop may be Unbounded. Spans are immutable values; operations return
// new spans.
type Span struct {
	Start int
	Stop  int
}

// New returns the span [start, stop).
func New(start, stop int) Span {
	return Span{Start: start, Stop: stop}
}

// ToEnd returns a span from start to the end of the buffer.
func ToEnd(start int) Span {
	return Span{Start: start, Stop: Unbounded}
}

// Bounded reports whether the span has an explicit stop offset.
func (s Span) Bounded() bool {
	return s.Stop != Unbounded
}

// Len returns the span's length. Unbounded spans have no length; callers
// must Clamp first.
func (s Span) Len() int {
	if !s.Bounded() {
		return 0
	}
	if s.Stop < s.Start {
		return 0
	}
	return s.Stop - s.Start
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool {
	return s.Bounded() && s.Stop <= s.Start
}

// Contains reports whether offset falls inside the span. An unbounded span
// contains every offset at or after Start.
func (s Span) Contains(offset int) bool {
	if offset < s.Start {
		return false
	}
	return !s.Bounded() || offset < s.Stop
}

// Shift returns the span moved by delta. An unbounded stop stays unbounded.
func (s Span) Shift(delta int) Span {
	shifted := Span{Start: s.Start + delta, Stop: s.Stop}
	if s.Bounded() {
		shifted.Stop += delta
	}
	return shifted
}

// Clamp resolves an unbounded stop to n and clamps both offsets into
// [0, n], keeping Start <= Stop.
func (s Span) Clamp(n int) Span {
	start, stop := s.Start, s.Stop
	if stop == Unbounded || stop > n {
		stop = n
	}
	if stop < 0 {
		stop = 0
	}
	if start < 0 {
		start = 0
	}
	if start > stop {
		start = stop
	}
	return Span{Start: start, Stop: stop}
}

// Sub returns the sub-span of s addressed by rel, where rel's offsets are
// relative to s.Start. An unbounded rel.Stop inherits s.Stop.
func (s Span) Sub(rel Span) Span {
	sub := Span{Start: s.Start + rel.Start, Stop: s.Stop}
	if rel.Bounded() {
		sub.Stop = s.Start + rel.Stop
	}
	return sub
}

// Cut returns the text the span covers, clamped to the buffer.
func (s Span) Cut(text string) string {
	c := s.Clamp(len(text))
	return text[c.Start:c.Stop]
}
