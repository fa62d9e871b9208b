package doc

import "fmt"

// DocPos is a document-wide position: a line index and a token index
// within that line. Total order is line-major then token-major (spec §3
// "Document position").
type DocPos struct {
	Line, Token int
}

// Less reports whether p sorts strictly before other.
func (p DocPos) Less(other DocPos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Token < other.Token
}

// LessEqual reports p.Less(other) || p == other.
func (p DocPos) LessEqual(other DocPos) bool {
	return p == other || p.Less(other)
}

func (p DocPos) String() string { return fmt.Sprintf("(%d,%d)", p.Line, p.Token) }

// DocSpan is a document span: (Start, End) with Start <= End. It may
// cross line boundaries but never document boundaries (spec §3
// "Document span").
type DocSpan struct {
	Start, End DocPos
}

// SpanTargetMarker implements assoc.SpanTarget, letting a DocSpan be
// stored as an Association's or SpanLink's target.
func (DocSpan) SpanTargetMarker() {}

// IsSingleLine reports whether the span begins and ends on the same line.
func (s DocSpan) IsSingleLine() bool { return s.Start.Line == s.End.Line }

// Contains reports whether p falls within [Start, End] inclusive.
func (s DocSpan) Contains(p DocPos) bool {
	return s.Start.LessEqual(p) && p.LessEqual(s.End)
}

// Overlaps reports whether s and other share at least one position.
func (s DocSpan) Overlaps(other DocSpan) bool {
	return s.Start.LessEqual(other.End) && other.Start.LessEqual(s.End)
}

// LineCount returns the number of distinct lines the span touches.
func (s DocSpan) LineCount() int { return s.End.Line - s.Start.Line + 1 }

func (s DocSpan) String() string { return fmt.Sprintf("%s-%s", s.Start, s.End) }
