// Package scope implements scope operators (spec §3 "Scope operator",
// §4.6 "of_dimension_covering_span"): document-scoped attribute values
// that mark a trigger span as governing a domain of other spans along
// some dimension (negation, quantification, precedence, ...). The
// package is deliberately thin — it stores operator instances and indexes
// them by dimension; interpreting what a dimension means is entirely
// downstream (package examples), matching spec §4.7's "structural
// container only" framing.
package scope

import (
	"fmt"

	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/scored"
)

// Dimension names the axis a ScopeOperator governs. Other carries a
// free-form label for dimensions not anticipated by the core set.
type Dimension struct {
	Kind  DimensionKind
	Other string // Kind == OtherDimension
}

type DimensionKind int

const (
	Negation DimensionKind = iota
	Quantifier
	Precedence
	Deictic
	OtherDimension
)

func (d Dimension) String() string {
	switch d.Kind {
	case Negation:
		return "negation"
	case Quantifier:
		return "quantifier"
	case Precedence:
		return "precedence"
	case Deictic:
		return "deictic"
	case OtherDimension:
		return fmt.Sprintf("other(%s)", d.Other)
	default:
		return "unknown-dimension"
	}
}

// Domain carries one or more candidate spans the operator's trigger
// governs, sorted descending by confidence (spec §3 "ScopeDomain").
type Domain struct {
	Candidates []scored.Scored[doc.DocSpan]
}

// Best returns the domain's highest-confidence candidate span.
func (d Domain) Best() (doc.DocSpan, bool) {
	if len(d.Candidates) == 0 {
		return doc.DocSpan{}, false
	}
	return d.Candidates[0].Value, true
}

// Operator is a document-scoped, dimension-tagged governance relation:
// Trigger governs Domain along Dimension, carrying an arbitrary
// downstream-interpreted Payload (spec §3 "Scope operator").
type Operator struct {
	Dimension Dimension
	Trigger   doc.DocSpan
	Domain    Domain
	Payload   any
}

// SpanTargetMarker lets Operator's trigger-anchored occurrences also be
// referenced as an association target if a downstream resolver wants to
// point at "the operator as a whole" via its trigger span. Operator
// itself is stored as an attribute value, not an association target;
// this method exists only so callers that generically walk SpanTarget
// values by convention can include it. (No-op: operators are identified
// by their trigger span, not by this marker.)
func (Operator) SpanTargetMarker() {}

// OfDimension filters a slice of Operators down to one dimension. Callers
// typically obtain the slice from the Values of
// doc.QueryDoc[scope.Operator](d) and then narrow with this helper, which
// corresponds to spec §4.6's of_dimension_covering_span once combined
// with a span-overlap filter.
func OfDimension(ops []Operator, dim Dimension) []Operator {
	var out []Operator
	for _, op := range ops {
		if op.Dimension == dim {
			out = append(out, op)
		}
	}
	return out
}

// CoveringSpan narrows ops (already filtered to one dimension via
// OfDimension) to those whose Trigger overlaps q — spec §4.6's
// of_dimension_covering_span restricted to scope operators.
func CoveringSpan(ops []Operator, q doc.DocSpan) []Operator {
	var out []Operator
	for _, op := range ops {
		if op.Trigger.Overlaps(q) {
			out = append(out, op)
		}
	}
	return out
}
