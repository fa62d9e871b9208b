package doc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/resolverlib"
	"github.com/vippsas/layeredspan/token"
	"github.com/vippsas/layeredspan/tokenize"
)

type negationOp struct{ label string }

func buildDoc(t *testing.T, lines ...string) *doc.Doc {
	t.Helper()
	var tok tokenize.Default
	return doc.FromLines(tok, lines)
}

// wordsTokenizer splits on whitespace and drops it, so token counts match
// the spec's own worked scenarios (which count content words, not
// whitespace runs as separate tokens).
type wordsTokenizer struct{}

func (wordsTokenizer) Tokenize(line string) []token.Token {
	fields := strings.Fields(line)
	out := make([]token.Token, len(fields))
	for i, f := range fields {
		out[i] = token.Token{Text: f, Tag: token.Word, Index: i}
	}
	return out
}

func TestFromFS_ReadsNamedDocument(t *testing.T) {
	src := resolverlib.MapSource{}
	src.Add("contract.txt", "Tenant shall pay\nLandlord shall maintain")

	d, err := doc.FromFS(resolverlib.DefaultTokenizer, src, "contract.txt")
	require.NoError(t, err)
	require.Equal(t, 2, d.LineCount())
	assert.Equal(t, "Tenant shall pay", d.Line(0).Text())
	assert.Equal(t, "Landlord shall maintain", d.Line(1).Text())
}

func TestFromFS_MissingDocumentErrors(t *testing.T) {
	src := resolverlib.MapSource{}
	_, err := doc.FromFS(resolverlib.DefaultTokenizer, src, "missing.txt")
	assert.Error(t, err)
}

func TestFromLines_LineCountAndIndexing(t *testing.T) {
	d := buildDoc(t, "one two", "three")
	require.Equal(t, 2, d.LineCount())
	assert.Equal(t, 0, d.Line(0).DocLine())
	assert.Equal(t, 1, d.Line(1).DocLine())
}

// TestSpanIndex_S5 follows the spec's S5 worked scenario: a two-line
// document (5 and 3 tokens) and an occurrence standing in for the
// scenario's scope operator, committed at its domain span (0,0)-(1,2).
// CoveringPosition((1,1)) and ((1,2)) and ((0,4)) must all return the
// entry; ((1,3)) (out of the 3-token second line) must not.
func TestSpanIndex_S5(t *testing.T) {
	d := doc.FromLines(wordsTokenizer{}, []string{"a b c d e", "f g h"}) // 5 tokens, 3 tokens

	domainSpan := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 0}, End: doc.DocPos{Line: 1, Token: 2}}
	require.NoError(t, doc.CommitDoc(d, domainSpan, negationOp{label: "not"}))

	assert.NotEmpty(t, doc.CoveringPosition[negationOp](d, doc.DocPos{Line: 1, Token: 1}))
	assert.NotEmpty(t, doc.CoveringPosition[negationOp](d, doc.DocPos{Line: 1, Token: 2}))
	assert.NotEmpty(t, doc.CoveringPosition[negationOp](d, doc.DocPos{Line: 0, Token: 4}))
	assert.Empty(t, doc.CoveringPosition[negationOp](d, doc.DocPos{Line: 1, Token: 3}))
}

func TestCommitDoc_RejectsSpanPastLineCount(t *testing.T) {
	d := buildDoc(t, "a b", "c")
	bad := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 0}, End: doc.DocPos{Line: 5, Token: 0}}
	err := doc.CommitDoc(d, bad, "x")
	require.Error(t, err)
	var ide doc.InvalidDocSpanError
	require.ErrorAs(t, err, &ide)
}

func TestQueryAll_UnifiesLineAndDocScopes(t *testing.T) {
	d := buildDoc(t, "hi there")
	require.NoError(t, doc.CommitDoc(d, doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 0}, End: doc.DocPos{Line: 0, Token: 1}}, "doc-level"))

	all := doc.QueryAll[string](d)
	require.Len(t, all, 1)
	assert.False(t, all[0].Source.IsLine)
	assert.Equal(t, "doc-level", all[0].Value)
}

func TestOverlapping_FiltersByOverlap(t *testing.T) {
	d := buildDoc(t, "a b c")
	s1 := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 0}, End: doc.DocPos{Line: 0, Token: 1}}
	require.NoError(t, doc.CommitDoc(d, s1, "first"))

	q := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 1}, End: doc.DocPos{Line: 0, Token: 2}}
	entries := doc.Overlapping[string](d, q)
	require.Len(t, entries, 1)
	assert.Equal(t, s1, entries[0].Span)
}
