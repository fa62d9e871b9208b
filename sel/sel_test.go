package sel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/line"
	"github.com/vippsas/layeredspan/sel"
	"github.com/vippsas/layeredspan/tokenize"
)

func buildLine(text string) *line.Line {
	var tok tokenize.Default
	return line.FromTokens(text, tok.Tokenize(text))
}

func TestWhole_CoversEveryToken(t *testing.T) {
	ln := buildLine("a b")
	whole := sel.Whole(ln)
	assert.Equal(t, 0, whole.Start)
	assert.Equal(t, ln.Len()-1, whole.End)
	assert.Equal(t, ln.Len(), whole.Len())
}

func TestEmpty_IsEmpty(t *testing.T) {
	ln := buildLine("abc")
	e := sel.Empty(ln, 1)
	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Len())
}

func TestSub_PanicsWhenEscapingParent(t *testing.T) {
	ln := buildLine("abc")
	whole := sel.Whole(ln)
	assert.Panics(t, func() { whole.Sub(0, whole.End+1) })
}

func TestContains(t *testing.T) {
	ln := buildLine("a b c")
	whole := sel.Whole(ln)
	sub := whole.Sub(1, 2)
	assert.True(t, whole.Contains(sub))
	assert.False(t, sub.Contains(whole))
}

func TestBeforeAfter_AreEmptyAndAdjacent(t *testing.T) {
	ln := buildLine("a b")
	whole := sel.Whole(ln)
	sub := whole.Sub(1, 1)
	before := sub.Before()
	after := sub.After()
	assert.True(t, before.IsEmpty())
	assert.True(t, after.IsEmpty())
	assert.Equal(t, sub.Start, before.End+1)
	assert.Equal(t, sub.End+1, after.Start)
}

func TestTokenRange_PanicsOnEmpty(t *testing.T) {
	ln := buildLine("a")
	e := sel.Empty(ln, 0)
	assert.Panics(t, func() { e.TokenRange() })
}

func TestSpanRef_ReflectsSelectionBounds(t *testing.T) {
	ln := buildLine("a b c")
	whole := sel.Whole(ln)
	sub := whole.Sub(1, 2)
	ref := sub.SpanRef()
	assert.Equal(t, 1, ref.Start)
	assert.Equal(t, 2, ref.End)
}

func TestTokenRange_MatchesSelectionBounds(t *testing.T) {
	ln := buildLine("a b c")
	whole := sel.Whole(ln)
	sub := whole.Sub(0, 1)
	rng := sub.TokenRange()
	require.Equal(t, attrstore.TokenRange{Start: 0, End: 1}, rng)
}
