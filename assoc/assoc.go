// Package assoc defines the typed, directed links ("associations") that
// attach to attribute occurrences: provenance pointers back at the tokens
// that justify a value, and first-class relations (SpanLink) that
// establish a graph edge between spans. Both are the same underlying
// record (spec §4.7, §9); they differ only in the Role attached and in
// which queries choose to surface them.
package assoc

import "fmt"

// Role labels an Association. Glyph is an optional single rune a renderer
// may draw under the source tokens (0 means "no glyph").
type Role struct {
	Label string
	Glyph rune
}

func (r Role) String() string {
	if r.Glyph != 0 {
		return fmt.Sprintf("%s(%c)", r.Label, r.Glyph)
	}
	return r.Label
}

// SpanTarget marks a type usable as an Association's target. The two
// concrete implementations are SpanRef (line-local, defined here) and
// doc.DocSpan (document-wide, defined in package doc — doc imports assoc,
// not the other way around, so there is no cycle). The marker method is
// exported so an unrelated package can implement the interface: Go treats
// unexported method names as package-qualified, which would otherwise
// make cross-package marker methods impossible to satisfy.
type SpanTarget interface {
	SpanTargetMarker()
}

// SpanRef is a stable, line-local reference to a token range, obtained
// from Sel.SpanRef(). It outlives the selection that produced it and may
// be stored as an association target or compared for equality.
type SpanRef struct {
	LineIndex  int
	Start, End int // token indices, inclusive
}

// SpanTargetMarker implements SpanTarget.
func (SpanRef) SpanTargetMarker() {}

// Association is a typed directed link from an attribute occurrence (the
// occurrence's own range is the implicit anchor) to a target span.
type Association struct {
	Role   Role
	Target SpanTarget
}

// SpanLink is a generic typed binary relation: role type R, target type S
// (SpanRef for line-local relations, doc.DocSpan for document-wide ones).
// Multiple SpanLinks of the same role may exist on one occurrence — the
// substrate never deduplicates.
type SpanLink[R fmt.Stringer, S SpanTarget] struct {
	Role   R
	Target S
}

// Association converts a typed SpanLink into the untyped Association
// record the attribute store actually holds, attaching glyph to the role.
func (l SpanLink[R, S]) Association(glyph rune) Association {
	return Association{Role: Role{Label: l.Role.String(), Glyph: glyph}, Target: l.Target}
}

// ProvenanceRole is the conventional role label for an association that
// points back at tokens justifying an attribute, as opposed to a
// first-class relation between two independent spans.
const ProvenanceRole = "provenance"

// Provenance builds a provenance-flavored Association: anchor is implicit
// (the occurrence's own range), target is the span that justifies it.
func Provenance(target SpanTarget) Association {
	return Association{Role: Role{Label: ProvenanceRole}, Target: target}
}
