// Package matcher implements the M[V] combinator algebra (spec §4.3):
// primitive matchers over token text, tags and attributes, and
// combinators that sequence, co-locate, or alternate between them.
//
// Design note (spec §9): rather than a deep generic trait hierarchy, each
// matcher is a small node implementing a single MatchAt method; Seq/All/
// AnyOf are interpreters that drive their child nodes. This keeps the
// algebra closed and keeps error messages and compile times bounded, the
// way the teacher's recursive-descent parser (sqlparser/batch.go's
// ReservedTokenHandlers dispatch table) keeps its grammar as a flat set of
// small handlers rather than a class hierarchy.
package matcher

import (
	"strings"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/sel"
	"github.com/vippsas/layeredspan/token"
)

// M is a typed matcher: given a parent selection and a candidate start
// position (a token index within parent's bounds), it either matches a
// contiguous run of tokens beginning at that position, or fails.
type M[V any] interface {
	// MatchAt attempts a match beginning exactly at pos, which is
	// guaranteed to satisfy parent.Start <= pos <= parent.End+1.
	// On success it returns the sub-selection of parent covered by the
	// match (which must start at pos) and the matched value.
	MatchAt(parent sel.Sel, pos int) (matched sel.Sel, value V, ok bool)
}

// Match pairs a matched sub-selection with its value, as returned by
// FindBy and FindFirstBy.
type Match[V any] struct {
	Sel   sel.Sel
	Value V
}

// ---- primitives ----

type tokenTextM struct{}

func (tokenTextM) MatchAt(parent sel.Sel, pos int) (sel.Sel, string, bool) {
	if pos < parent.Start || pos > parent.End {
		return sel.Sel{}, "", false
	}
	s := parent.Sub(pos, pos)
	return s, s.Text(), true
}

// TokenText matches any single token, yielding its text.
func TokenText() M[string] { return tokenTextM{} }

type textTagM struct{ tag token.TextTag }

func (m textTagM) MatchAt(parent sel.Sel, pos int) (sel.Sel, struct{}, bool) {
	if pos < parent.Start || pos > parent.End {
		return sel.Sel{}, struct{}{}, false
	}
	if parent.Line.Tokens()[pos].Tag != m.tag {
		return sel.Sel{}, struct{}{}, false
	}
	return parent.Sub(pos, pos), struct{}{}, true
}

// TextTag matches any single token with the given tag.
func TextTag(tag token.TextTag) M[struct{}] { return textTagM{tag: tag} }

// Whitespace matches a single whitespace token.
func Whitespace() M[struct{}] { return textTagM{tag: token.Whitespace} }

type tokenHasAnyM struct{ chars string }

func (m tokenHasAnyM) MatchAt(parent sel.Sel, pos int) (sel.Sel, struct{}, bool) {
	if pos < parent.Start || pos > parent.End {
		return sel.Sel{}, struct{}{}, false
	}
	if !strings.ContainsAny(parent.Line.Tokens()[pos].Text, m.chars) {
		return sel.Sel{}, struct{}{}, false
	}
	return parent.Sub(pos, pos), struct{}{}, true
}

// TokenHasAny matches a single token whose text contains any rune in
// chars (character-class membership, spec §4.3).
func TokenHasAny(chars []rune) M[struct{}] {
	return tokenHasAnyM{chars: string(chars)}
}

// attrM matches a range carrying any occurrence of attribute type T,
// whose range starts exactly at pos. When a (type, range) slot holds
// several stacked occurrences, the earliest-committed one is returned —
// callers that need every alternative should query the store directly
// via attrstore.Query.
type attrM[T any] struct{}

func (attrM[T]) MatchAt(parent sel.Sel, pos int) (sel.Sel, T, bool) {
	var zero T
	if pos < parent.Start || pos > parent.End {
		return sel.Sel{}, zero, false
	}
	for _, occ := range attrstore.Query[T](parent.Line.Store()) {
		if occ.Range.Start == pos && occ.Range.End <= parent.End {
			return parent.Sub(occ.Range.Start, occ.Range.End), occ.Value, true
		}
	}
	return sel.Sel{}, zero, false
}

// Attr matches a range carrying any attribute of type T, matching by
// type identity of the stored attribute (not structural equality).
func Attr[T any]() M[T] { return attrM[T]{} }

// attrEqM matches a range carrying an attribute of type T structurally
// equal to want.
type attrEqM[T comparable] struct{ want T }

func (m attrEqM[T]) MatchAt(parent sel.Sel, pos int) (sel.Sel, struct{}, bool) {
	if pos < parent.Start || pos > parent.End {
		return sel.Sel{}, struct{}{}, false
	}
	for _, occ := range attrstore.Query[T](parent.Line.Store()) {
		if occ.Range.Start == pos && occ.Range.End <= parent.End && occ.Value == m.want {
			return parent.Sub(occ.Range.Start, occ.Range.End), struct{}{}, true
		}
	}
	return sel.Sel{}, struct{}{}, false
}

// AttrEq matches a range carrying an attribute of type T equal to want.
func AttrEq[T comparable](want T) M[struct{}] { return attrEqM[T]{want: want} }

// ---- combinators ----

// Pair is the match value produced by two-way combinators.
type Pair[A, B any] struct {
	A A
	B B
}

// Triple is the match value produced by three-way combinators.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

type seq2M[A, B any] struct {
	a M[A]
	b M[B]
}

func (m seq2M[A, B]) MatchAt(parent sel.Sel, pos int) (sel.Sel, Pair[A, B], bool) {
	var zero Pair[A, B]
	sa, va, ok := m.a.MatchAt(parent, pos)
	if !ok {
		return sel.Sel{}, zero, false
	}
	sb, vb, ok := m.b.MatchAt(parent, sa.End+1)
	if !ok {
		return sel.Sel{}, zero, false
	}
	return parent.Sub(sa.Start, sb.End), Pair[A, B]{A: va, B: vb}, true
}

// Seq2 matches a then b contiguously (a's end token immediately precedes
// b's start token). Whitespace between them must be matched explicitly
// via Whitespace() as one of the sequenced parts — there is no implicit
// skipping (spec §4.3).
func Seq2[A, B any](a M[A], b M[B]) M[Pair[A, B]] { return seq2M[A, B]{a: a, b: b} }

type seq3M[A, B, C any] struct {
	a M[A]
	b M[B]
	c M[C]
}

func (m seq3M[A, B, C]) MatchAt(parent sel.Sel, pos int) (sel.Sel, Triple[A, B, C], bool) {
	var zero Triple[A, B, C]
	sa, va, ok := m.a.MatchAt(parent, pos)
	if !ok {
		return sel.Sel{}, zero, false
	}
	sb, vb, ok := m.b.MatchAt(parent, sa.End+1)
	if !ok {
		return sel.Sel{}, zero, false
	}
	sc, vc, ok := m.c.MatchAt(parent, sb.End+1)
	if !ok {
		return sel.Sel{}, zero, false
	}
	return parent.Sub(sa.Start, sc.End), Triple[A, B, C]{A: va, B: vb, C: vc}, true
}

// Seq3 matches a, b, then c, each contiguously following the last.
func Seq3[A, B, C any](a M[A], b M[B], c M[C]) M[Triple[A, B, C]] {
	return seq3M[A, B, C]{a: a, b: b, c: c}
}

type allM[A, B any] struct {
	a M[A]
	b M[B]
}

func (m allM[A, B]) MatchAt(parent sel.Sel, pos int) (sel.Sel, Pair[A, B], bool) {
	var zero Pair[A, B]
	sa, va, ok := m.a.MatchAt(parent, pos)
	if !ok {
		return sel.Sel{}, zero, false
	}
	sb, vb, ok := m.b.MatchAt(parent, pos)
	if !ok {
		return sel.Sel{}, zero, false
	}
	end := sa.End
	if sb.End > end {
		end = sb.End
	}
	return parent.Sub(pos, end), Pair[A, B]{A: va, B: vb}, true
}

// All2 matches a and b both starting at the same position (used to
// require co-occurring attributes at one range).
func All2[A, B any](a M[A], b M[B]) M[Pair[A, B]] { return allM[A, B]{a: a, b: b} }

// Either holds the result of AnyOf2: exactly one of A or B is valid,
// indicated by IsA.
type Either[A, B any] struct {
	IsA bool
	A   A
	B   B
}

type anyOfM[A, B any] struct {
	a M[A]
	b M[B]
}

func (m anyOfM[A, B]) MatchAt(parent sel.Sel, pos int) (sel.Sel, Either[A, B], bool) {
	if s, v, ok := m.a.MatchAt(parent, pos); ok {
		return s, Either[A, B]{IsA: true, A: v}, true
	}
	if s, v, ok := m.b.MatchAt(parent, pos); ok {
		return s, Either[A, B]{IsA: false, B: v}, true
	}
	return sel.Sel{}, Either[A, B]{}, false
}

// AnyOf2 matches a if it matches, else b (first matching alternative).
func AnyOf2[A, B any](a M[A], b M[B]) M[Either[A, B]] { return anyOfM[A, B]{a: a, b: b} }
