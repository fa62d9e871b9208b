// Package line implements the immutable token line with its mutable,
// append-only attribute store (spec §3, §4.1).
package line

import (
	"strings"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/token"
)

// Line is an immutable ordered token sequence with an attribute store
// that accrues entries across resolver passes. A Line's token vector is
// fixed at construction time; only its Store ever changes (and only ever
// by appending).
type Line struct {
	text    string
	tokens  []token.Token
	store   *attrstore.Store
	docLine int // line index within the owning Doc, or -1 if standalone
}

// FromTokens builds a Line from an already-tokenized slice. Token.Index
// must match the slice position; callers that hand-build tokens (as
// opposed to using a tokenize.Tokenizer) are responsible for this.
func FromTokens(text string, tokens []token.Token) *Line {
	return &Line{
		text:    text,
		tokens:  tokens,
		store:   attrstore.New(len(tokens)),
		docLine: -1,
	}
}

// Text returns the original source text of the line.
func (l *Line) Text() string { return l.text }

// Tokens returns the immutable, ordered token vector.
func (l *Line) Tokens() []token.Token { return l.tokens }

// Len returns the number of tokens in the line.
func (l *Line) Len() int { return len(l.tokens) }

// Store returns the line's attribute store.
func (l *Line) Store() *attrstore.Store { return l.store }

// DocLine returns the line's index within its owning Doc, or -1 if the
// Line was built standalone (e.g. in a unit test).
func (l *Line) DocLine() int { return l.docLine }

// SetDocLine is called by package doc when a Line is attached to a
// Doc; it is not part of the stable public contract for hand-built lines.
func (l *Line) SetDocLine(i int) { l.docLine = i }

// TextOf returns the literal source text covered by an inclusive token
// range [start, end].
func (l *Line) TextOf(start, end int) string {
	if start < 0 || end >= len(l.tokens) || start > end {
		return ""
	}
	var b strings.Builder
	for i := start; i <= end; i++ {
		b.WriteString(l.tokens[i].Text)
	}
	return b.String()
}

