// Package tokenize defines the tokenizer adapter boundary the substrate
// consumes (spec §6) and ships one concrete, dependency-driven
// implementation of it.
//
// The substrate itself is agnostic to how text becomes tokens; a Doc is
// built by handing each source line to a Tokenizer and wrapping the result
// in a line.Line. Anything implementing the Tokenizer interface — a
// hand-rolled regex lexer, a full recursive-descent scanner reused from
// another project — can be substituted.
package tokenize

import (
	"strings"
	"unicode"

	"github.com/smasher164/xid"

	"github.com/vippsas/layeredspan/token"
)

// Tokenizer converts the raw text of one source line into an ordered list
// of tokens. Implementations must return tokens in source order covering
// the entire input with no gaps (whitespace is a token like any other).
type Tokenizer interface {
	Tokenize(line string) []token.Token
}

// Default is the substrate's built-in Tokenizer. It classifies runs of
// Unicode letters/identifier-continuation characters as Word, runs of
// digits (with an optional single decimal point) as Number, runs of
// whitespace as Whitespace, and anything else as either Punctuation (ASCII
// punctuation) or Symbol.
//
// Identifier classification follows the same xid.Start/xid.Continue rules
// the teacher's SQL scanners use for T-SQL and PostgreSQL identifiers
// (sqlparser/mssql/scanner.go, sqlparser/pgsql/scanner.go), generalized
// from "is this a legal bare identifier character" to "is this part of a
// Word token".
type Default struct{}

// Tokenize implements Tokenizer.
func (Default) Tokenize(line string) []token.Token {
	var out []token.Token
	byteIdx := 0
	idx := 0

	runes := []rune(line)
	i := 0
	for i < len(runes) {
		start := i
		startByte := byteIdx
		r := runes[i]

		switch {
		case unicode.IsSpace(r):
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			out = append(out, emit(runes[start:i], token.Whitespace, idx, startByte))
		case unicode.IsDigit(r):
			sawDot := false
			for i < len(runes) {
				c := runes[i]
				if unicode.IsDigit(c) {
					i++
					continue
				}
				if c == '.' && !sawDot && i+1 < len(runes) && unicode.IsDigit(runes[i+1]) {
					sawDot = true
					i++
					continue
				}
				break
			}
			out = append(out, emit(runes[start:i], token.Number, idx, startByte))
		case xid.Start(r) || r == '_':
			i++
			for i < len(runes) && (xid.Continue(runes[i]) || runes[i] == '_') {
				i++
			}
			out = append(out, emit(runes[start:i], token.Word, idx, startByte))
		case isASCIIPunct(r):
			i++
			out = append(out, emit(runes[start:i], token.Punctuation, idx, startByte))
		default:
			i++
			out = append(out, emit(runes[start:i], token.Symbol, idx, startByte))
		}

		byteIdx = out[len(out)-1].Bytes.End
		idx++
	}
	return out
}

func emit(rs []rune, tag token.TextTag, idx int, startByte int) token.Token {
	text := string(rs)
	return token.Token{
		Text:  text,
		Tag:   tag,
		Index: idx,
		Bytes: token.ByteRange{Start: startByte, End: startByte + len(text)},
	}
}

func isASCIIPunct(r rune) bool {
	return strings.ContainsRune(`!"#%&'()*,-./:;?@[\]{}`, r) || r == '+' || r == '<' || r == '=' || r == '>'
}
