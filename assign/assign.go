// Package assign implements the two-phase assignment builder (spec
// §4.4): a resolver accumulates associations onto a selection and a
// value, then Build()s a CursorAssignment the orchestrator commits after
// the resolver returns. Modeled on the teacher's sqlparser/sqldocument
// Create builder, which likewise accumulates fields (DependsOn,
// Docstring, Body) before a later pass (TopologicalSort) consumes the
// finished record.
package assign

import (
	"github.com/vippsas/layeredspan/assoc"
	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/sel"
)

// CursorAssignment is a finished, pending write to a line's attribute
// store: a range, a typed value, and the associations attached to it.
// The runtime (package pipeline, via package resolver) commits it after
// the producing resolver's pass completes; resolvers themselves never
// write to a store directly.
type CursorAssignment[T any] struct {
	Range        attrstore.TokenRange
	Value        T
	Associations []assoc.Association
}

// Builder accumulates associations for a pending assignment anchored at
// a selection. Obtain one with Assign; finish it with Build.
type Builder[T any] struct {
	sel          sel.Sel
	value        T
	associations []assoc.Association
}

// Assign begins constructing an assignment of value, anchored at s.
func Assign[T any](s sel.Sel, value T) *Builder[T] {
	return &Builder[T]{sel: s, value: value}
}

// WithAssociation appends a typed link with the given role and target.
// The substrate does not forbid or interpret self-referential
// associations (target == the builder's own selection); spec §9 leaves
// that semantics to the caller.
func (b *Builder[T]) WithAssociation(role assoc.Role, target assoc.SpanTarget) *Builder[T] {
	b.associations = append(b.associations, assoc.Association{Role: role, Target: target})
	return b
}

// WithLink appends an already-built Association (e.g. from
// assoc.Provenance or a SpanLink.Association call).
func (b *Builder[T]) WithLink(a assoc.Association) *Builder[T] {
	b.associations = append(b.associations, a)
	return b
}

// Build finalizes the assignment.
func (b *Builder[T]) Build() CursorAssignment[T] {
	return CursorAssignment[T]{
		Range:        b.sel.TokenRange(),
		Value:        b.value,
		Associations: b.associations,
	}
}

// FinishWithAttr is the no-association shortcut for Assign(s,
// value).Build().
func FinishWithAttr[T any](s sel.Sel, value T) CursorAssignment[T] {
	return Assign(s, value).Build()
}

// Commit writes a's value into store at a's range, as the opaque
// attribute type T. This is the runtime's sole write entry point; it is
// called by package pipeline after a resolver's pass completes, never by
// the resolver itself.
func Commit[T any](store *attrstore.Store, a CursorAssignment[T]) error {
	return attrstore.Commit(store, a.Range, a.Value, a.Associations...)
}
