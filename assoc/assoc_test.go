package assoc_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vippsas/layeredspan/assoc"
)

type roleLabel string

func (r roleLabel) String() string { return string(r) }

func TestRole_String_WithAndWithoutGlyph(t *testing.T) {
	withGlyph := assoc.Role{Label: "negates", Glyph: '¬'}
	assert.Equal(t, fmt.Sprintf("negates(%c)", '¬'), withGlyph.String())

	withoutGlyph := assoc.Role{Label: "negates"}
	assert.Equal(t, "negates", withoutGlyph.String())
}

func TestProvenance_BuildsAssociationWithProvenanceRole(t *testing.T) {
	target := assoc.SpanRef{LineIndex: 0, Start: 1, End: 1}
	a := assoc.Provenance(target)
	assert.Equal(t, assoc.ProvenanceRole, a.Role.Label)
	assert.Equal(t, target, a.Target)
}

func TestSpanLink_Association_AttachesGlyphToRole(t *testing.T) {
	link := assoc.SpanLink[roleLabel, assoc.SpanRef]{
		Role:   roleLabel("modifies"),
		Target: assoc.SpanRef{LineIndex: 0, Start: 2, End: 3},
	}
	a := link.Association('*')
	assert.Equal(t, "modifies", a.Role.Label)
	assert.Equal(t, '*', a.Role.Glyph)
	assert.Equal(t, link.Target, a.Target)
}
