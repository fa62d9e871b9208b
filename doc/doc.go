// Package doc implements the document (spec §3 "Document (Doc)", §4.6):
// an ordered sequence of lines, a document-scoped attribute store keyed
// by DocSpan, and the span index over that store. It plays the role the
// teacher's sqlparser.Document interface and sqlparser/sqldocument
// package play together — one cohesive package owning a whole document's
// worth of parsed structure — generalized from "parsed SQL batches" to
// "tokenized lines with layered attributes".
package doc

import (
	"bufio"
	"io"
	"io/fs"
	"strings"

	"github.com/vippsas/layeredspan/line"
	"github.com/vippsas/layeredspan/token"
)

// Tokenizer converts one line of text into tokens. Satisfied by
// tokenize.Tokenizer; declared locally so package doc does not need to
// import package tokenize just for this one method signature.
type Tokenizer interface {
	Tokenize(line string) []token.Token
}

// Doc is an ordered vector of lines plus a document-scoped attribute
// store. A Doc exclusively owns its lines; references into its document
// store (DocSpans) remain valid for the Doc's lifetime.
type Doc struct {
	lines []*line.Line
	store *store
}

// FromText tokenizes s (split on newlines) with tok and builds a Doc, one
// Line per source line.
func FromText(tok Tokenizer, s string) *Doc {
	var rawLines []string
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		rawLines = append(rawLines, scanner.Text())
	}
	if len(rawLines) == 0 && s == "" {
		rawLines = []string{""}
	}
	return FromLines(tok, rawLines)
}

// FromFS reads the named document out of src (e.g. a resolverlib.MapSource
// or any other fs.FS) and tokenizes it with tok, so a document can be
// sourced without touching the OS filesystem.
func FromFS(tok Tokenizer, src fs.FS, name string) (*Doc, error) {
	f, err := src.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return FromText(tok, string(raw)), nil
}

// FromLines tokenizes each entry of rawLines with tok and builds a Doc.
func FromLines(tok Tokenizer, rawLines []string) *Doc {
	d := &Doc{store: newStore(len(rawLines))}
	for i, text := range rawLines {
		ln := line.FromTokens(text, tok.Tokenize(text))
		ln.SetDocLine(i)
		d.lines = append(d.lines, ln)
	}
	return d
}

// Lines returns the document's lines in order.
func (d *Doc) Lines() []*line.Line { return d.lines }

// Line returns the line at index i.
func (d *Doc) Line(i int) *line.Line { return d.lines[i] }

// LineCount returns the number of lines in the document.
func (d *Doc) LineCount() int { return len(d.lines) }

// Index returns the document's span index.
func (d *Doc) Index() *Index { return d.store.index }

// Text reconstructs the original source text by joining each line's text
// with newlines.
func (d *Doc) Text() string {
	parts := make([]string, len(d.lines))
	for i, ln := range d.lines {
		parts[i] = ln.Text()
	}
	return strings.Join(parts, "\n")
}
