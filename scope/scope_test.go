package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/scope"
	"github.com/vippsas/layeredspan/scored"
)

func TestDomain_Best_ReturnsHighestConfidenceCandidate(t *testing.T) {
	d := scope.Domain{Candidates: []scored.Scored[doc.DocSpan]{
		scored.New(doc.DocSpan{End: doc.DocPos{Token: 3}}, 0.9, scored.DerivedProvenance),
	}}
	span, ok := d.Best()
	require.True(t, ok)
	assert.Equal(t, 3, span.End.Token)
}

func TestDomain_Best_EmptyReturnsFalse(t *testing.T) {
	_, ok := scope.Domain{}.Best()
	assert.False(t, ok)
}

func TestOfDimension_FiltersByDimension(t *testing.T) {
	ops := []scope.Operator{
		{Dimension: scope.Dimension{Kind: scope.Negation}},
		{Dimension: scope.Dimension{Kind: scope.Quantifier}},
	}
	filtered := scope.OfDimension(ops, scope.Dimension{Kind: scope.Negation})
	require.Len(t, filtered, 1)
	assert.Equal(t, scope.Negation, filtered[0].Dimension.Kind)
}

func TestCoveringSpan_FiltersByTriggerOverlap(t *testing.T) {
	trigger := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 2}, End: doc.DocPos{Line: 0, Token: 2}}
	ops := []scope.Operator{{Dimension: scope.Dimension{Kind: scope.Negation}, Trigger: trigger}}

	q := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 1}, End: doc.DocPos{Line: 0, Token: 3}}
	assert.Len(t, scope.CoveringSpan(ops, q), 1)

	outside := doc.DocSpan{Start: doc.DocPos{Line: 0, Token: 5}, End: doc.DocPos{Line: 0, Token: 6}}
	assert.Empty(t, scope.CoveringSpan(ops, outside))
}

func TestDimension_String_Other(t *testing.T) {
	d := scope.Dimension{Kind: scope.OtherDimension, Other: "custom"}
	assert.Equal(t, "other(custom)", d.String())
}
