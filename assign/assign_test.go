package assign_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vippsas/layeredspan/assign"
	"github.com/vippsas/layeredspan/assoc"
	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/line"
	"github.com/vippsas/layeredspan/sel"
	"github.com/vippsas/layeredspan/tokenize"
)

func buildLine(text string) *line.Line {
	var tok tokenize.Default
	return line.FromTokens(text, tok.Tokenize(text))
}

func TestBuilder_BuildCapturesRangeValueAndAssociations(t *testing.T) {
	ln := buildLine("Company shall")
	whole := sel.Whole(ln)
	sub := whole.Sub(0, 0)

	target := assoc.SpanRef{LineIndex: 0, Start: 2, End: 2}
	a := assign.Assign(sub, "Obligor").
		WithAssociation(assoc.Role{Label: "link"}, target).
		Build()

	assert.Equal(t, sub.TokenRange(), a.Range)
	assert.Equal(t, "Obligor", a.Value)
	require.Len(t, a.Associations, 1)
	assert.Equal(t, target, a.Associations[0].Target)
}

func TestFinishWithAttr_NoAssociations(t *testing.T) {
	ln := buildLine("x")
	sub := sel.Whole(ln)
	a := assign.FinishWithAttr(sub, 7)
	assert.Empty(t, a.Associations)
	assert.Equal(t, 7, a.Value)
}

func TestCommit_WritesToStore(t *testing.T) {
	ln := buildLine("x")
	sub := sel.Whole(ln)
	a := assign.FinishWithAttr(sub, "v")

	require.NoError(t, assign.Commit(ln.Store(), a))
	occs := attrstore.Query[string](ln.Store())
	require.Len(t, occs, 1)
	assert.Equal(t, "v", occs[0].Value)
}

func TestWithLink_AppendsPrebuiltAssociation(t *testing.T) {
	ln := buildLine("a b")
	whole := sel.Whole(ln)
	target := whole.Sub(1, 1).SpanRef()

	a := assign.Assign(whole.Sub(0, 0), "v").WithLink(assoc.Provenance(target)).Build()
	require.Len(t, a.Associations, 1)
	assert.Equal(t, assoc.ProvenanceRole, a.Associations[0].Role.Label)
}
