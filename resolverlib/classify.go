// Package resolverlib is the resolver base library (spec §4 item 13,
// "substrate-level only"): a tokenizer adapter wiring package tokenize
// into package doc, a whitespace/punctuation classifier resolvers use to
// skip noise tokens, and debug renderers that print a line with selected
// attribute types annotated under the tokens. Nothing here encodes any
// particular domain's semantics (obligations, precedence, ...) — that is
// package examples' job.
package resolverlib

import (
	"github.com/vippsas/layeredspan/token"
	"github.com/vippsas/layeredspan/tokenize"
)

// DefaultTokenizer is tokenize.Default, re-exported under the name a
// resolver base library caller expects (spec item 13 "tokenizer
// adapter").
var DefaultTokenizer tokenize.Default

// IsNoise reports whether t is whitespace or punctuation: the common
// "skip this" test a matcher-based resolver runs before looking for
// meaningful content.
func IsNoise(t token.Token) bool {
	return t.Tag == token.Whitespace || t.Tag == token.Punctuation
}

// IsWhitespace reports whether t is a whitespace token.
func IsWhitespace(t token.Token) bool { return t.Tag == token.Whitespace }

// IsPunctuation reports whether t is a punctuation token.
func IsPunctuation(t token.Token) bool { return t.Tag == token.Punctuation }

// IsWord reports whether t is a word token (the common "real content"
// test).
func IsWord(t token.Token) bool { return t.Tag == token.Word }
