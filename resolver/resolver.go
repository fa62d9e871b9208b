// Package resolver defines the resolver protocol (spec §4.5, §4.8): the
// descriptor metadata a resolver declares (id, phase, produces/requires
// type sets), the two resolver entry-point shapes (line and document),
// and the type-erased assignment wrappers the pipeline orchestrator needs
// to commit a resolver's output without knowing its concrete attribute
// type at compile time. This plays the role the teacher's sqlparser
// statement-node interfaces play: a small, closed set of method sets that
// let a generic orchestrator drive heterogeneous concrete types.
package resolver

import (
	"github.com/vippsas/layeredspan/assign"
	"github.com/vippsas/layeredspan/assoc"
	"github.com/vippsas/layeredspan/attrstore"
	"github.com/vippsas/layeredspan/doc"
	"github.com/vippsas/layeredspan/sel"
)

// Phase is the two scheduling phases a resolver may run in.
type Phase int

const (
	Line Phase = iota
	Document
)

func (p Phase) String() string {
	switch p {
	case Line:
		return "line"
	case Document:
		return "document"
	default:
		return "unknown-phase"
	}
}

// LineAssignment is a type-erased assign.CursorAssignment[T]: enough for
// the orchestrator to identify the produced type, validate it against a
// descriptor's Produces set, and commit it to a line's attrstore.Store
// without a compile-time T.
type LineAssignment interface {
	Type() attrstore.AttrType
	Range() attrstore.TokenRange
	Commit(store *attrstore.Store) error
}

type lineAssignment[T any] struct {
	a assign.CursorAssignment[T]
}

// WrapLine erases a's concrete type, producing a value a LineFunc can
// return alongside assignments of other attribute types.
func WrapLine[T any](a assign.CursorAssignment[T]) LineAssignment {
	return lineAssignment[T]{a: a}
}

func (w lineAssignment[T]) Type() attrstore.AttrType    { return attrstore.TypeOf[T]() }
func (w lineAssignment[T]) Range() attrstore.TokenRange { return w.a.Range }
func (w lineAssignment[T]) Commit(store *attrstore.Store) error {
	return assign.Commit(store, w.a)
}

// DocAssignment is a document-phase assignment (spec §4.5): the same
// shape as assign.CursorAssignment[T] but targeting a DocSpan rather than
// a line-local TokenRange.
type DocAssignment[T any] struct {
	Span         doc.DocSpan
	Value        T
	Associations []assoc.Association
}

// DocResult is a type-erased DocAssignment[T], the document-phase analog
// of LineAssignment.
type DocResult interface {
	Type() attrstore.AttrType
	Span() doc.DocSpan
	Commit(d *doc.Doc) error
}

type docResult[T any] struct {
	a DocAssignment[T]
}

// WrapDoc erases a's concrete type for return from a DocFunc.
func WrapDoc[T any](a DocAssignment[T]) DocResult {
	return docResult[T]{a: a}
}

func (w docResult[T]) Type() attrstore.AttrType { return attrstore.TypeOf[T]() }
func (w docResult[T]) Span() doc.DocSpan        { return w.a.Span }
func (w docResult[T]) Commit(d *doc.Doc) error {
	return doc.CommitDoc(d, w.a.Span, w.a.Value, w.a.Associations...)
}

// LineFunc is a line resolver's entry point: given the whole-line
// selection, return zero or more assignments of the resolver's declared
// produces types. A LineFunc must not mutate sel's line; it observes the
// attribute store as committed so far in the line-phase plan.
type LineFunc func(whole sel.Sel) []LineAssignment

// DocFunc is a document resolver's entry point: given the finalized
// document (all line-phase output committed), return zero or more
// document-scoped assignments.
type DocFunc func(d *doc.Doc) []DocResult

// Descriptor is the metadata a resolver contributes to a pipeline (spec
// §4.8 "resolver descriptors"): identity, phase, declared type sets, and
// exactly one of LineFunc/DocFunc depending on Phase.
type Descriptor struct {
	ID               string
	Phase            Phase
	Produces         []attrstore.AttrType
	Requires         []attrstore.AttrType
	OptionalRequires []attrstore.AttrType
	LineFunc         LineFunc
	DocFunc          DocFunc
}

// NewLine builds a Line-phase Descriptor.
func NewLine(id string, produces, requires, optionalRequires []attrstore.AttrType, fn LineFunc) Descriptor {
	return Descriptor{
		ID: id, Phase: Line,
		Produces: produces, Requires: requires, OptionalRequires: optionalRequires,
		LineFunc: fn,
	}
}

// NewDocument builds a Document-phase Descriptor.
func NewDocument(id string, produces, requires, optionalRequires []attrstore.AttrType, fn DocFunc) Descriptor {
	return Descriptor{
		ID: id, Phase: Document,
		Produces: produces, Requires: requires, OptionalRequires: optionalRequires,
		DocFunc: fn,
	}
}

// Produces1 is a convenience for the common case of a single declared
// output type, avoiding attrstore.TypeOf[T]() boilerplate at call sites.
func Produces1[T any]() []attrstore.AttrType { return []attrstore.AttrType{attrstore.TypeOf[T]()} }
