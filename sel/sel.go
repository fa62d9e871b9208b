// Package sel implements Sel, the contiguous-token-range handle that
// every matcher operation consumes and produces (spec §4.2).
package sel

import (
	"fmt"

	"github.com/vippsas/layeredspan/assoc"
	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/line"
)

// Sel is a handle into one Line: a contiguous token range plus a
// reference to that line's attribute store. Sel values are never
// mutated; every operation that narrows, extends, splits, or trims a
// selection returns a new Sel.
//
// Start <= End for a non-empty selection. Start == End+1 denotes an empty
// selection positioned immediately before token Start (equivalently,
// immediately after token End).
type Sel struct {
	Line       *line.Line
	Start, End int
}

// Whole returns a selection spanning every token of l.
func Whole(l *line.Line) Sel {
	if l.Len() == 0 {
		return Sel{Line: l, Start: 0, End: -1}
	}
	return Sel{Line: l, Start: 0, End: l.Len() - 1}
}

// Empty returns an empty selection positioned immediately before token
// at. at may equal l.Len() to denote "after the last token".
func Empty(l *line.Line, at int) Sel {
	return Sel{Line: l, Start: at, End: at - 1}
}

// IsEmpty reports whether the selection covers zero tokens.
func (s Sel) IsEmpty() bool { return s.Start > s.End }

// Len returns the number of tokens covered.
func (s Sel) Len() int {
	if s.IsEmpty() {
		return 0
	}
	return s.End - s.Start + 1
}

// AsRange returns the selection's token bounds. For an empty selection
// this returns (Start, End) with End == Start-1, matching the Sel
// contract.
func (s Sel) AsRange() (start, end int) { return s.Start, s.End }

// TokenRange converts the selection's bounds into an attrstore.TokenRange.
// Panics if the selection is empty — an empty selection has no valid
// inclusive range and cannot anchor a commit.
func (s Sel) TokenRange() attrstore.TokenRange {
	if s.IsEmpty() {
		panic("sel: TokenRange called on empty selection")
	}
	return attrstore.TokenRange{Start: s.Start, End: s.End}
}

// SpanRef returns a stable, line-local reference to this selection's
// range, suitable for storing as an Association target.
func (s Sel) SpanRef() assoc.SpanRef {
	return assoc.SpanRef{LineIndex: s.Line.DocLine(), Start: s.Start, End: s.End}
}

// Text returns the literal source text covered by the selection.
func (s Sel) Text() string {
	if s.IsEmpty() {
		return ""
	}
	return s.Line.TextOf(s.Start, s.End)
}

// Contains reports whether other's range lies entirely within s's range.
// Used to enforce the selection-containment invariant (spec §8 property
// 3) in tests and in matcher combinators.
func (s Sel) Contains(other Sel) bool {
	if other.IsEmpty() {
		return other.Start >= s.Start && other.Start <= s.End+1
	}
	return other.Start >= s.Start && other.End <= s.End
}

// Before returns the empty selection immediately preceding s.
func (s Sel) Before() Sel {
	return Empty(s.Line, s.Start)
}

// After returns the empty selection immediately following s.
func (s Sel) After() Sel {
	return Empty(s.Line, s.End+1)
}

// Sub returns the sub-selection [start, end] (both relative to the whole
// line, not to s), which must lie within s.
func (s Sel) Sub(start, end int) Sel {
	if start < s.Start || end > s.End {
		panic(fmt.Sprintf("sel: Sub(%d,%d) escapes parent %v", start, end, s))
	}
	return Sel{Line: s.Line, Start: start, End: end}
}

func (s Sel) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Sel<empty@%d>", s.Start)
	}
	return fmt.Sprintf("Sel<%d,%d %q>", s.Start, s.End, s.Text())
}
