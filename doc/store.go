package doc

import (
	"fmt"

	"github.com/vippsas/layeredspan/assoc"
	"github.com/vippsas/layeredspan/attrstore"
)

// InvalidDocSpanError reports a document assignment whose span does not
// fit within the document (a line index out of range, or Start > End).
type InvalidDocSpanError struct {
	Given   DocSpan
	LineCnt int
}

func (e InvalidDocSpanError) Error() string {
	return fmt.Sprintf("doc: span %s invalid for a document of %d lines", e.Given, e.LineCnt)
}

type docOccurrence struct {
	value        any
	associations []assoc.Association
}

type docSlot struct {
	typ   attrstore.AttrType
	span  DocSpan
	items []docOccurrence
}

// store is the document-level attribute store: the same stacking,
// type-indexed semantics as package attrstore's line-level Store, keyed
// by DocSpan instead of TokenRange (spec §4.6).
type store struct {
	lineCount int
	byType    map[attrstore.AttrType][]*docSlot
	order     []*docSlot
	index     *Index
}

func newStore(lineCount int) *store {
	return &store{
		lineCount: lineCount,
		byType:    make(map[attrstore.AttrType][]*docSlot),
		index:     newIndex(),
	}
}

func (s *store) findOrCreateSlot(typ attrstore.AttrType, span DocSpan) *docSlot {
	for _, sl := range s.byType[typ] {
		if sl.span == span {
			return sl
		}
	}
	sl := &docSlot{typ: typ, span: span}
	s.byType[typ] = append(s.byType[typ], sl)
	s.order = append(s.order, sl)
	return sl
}

// CommitDoc appends one document-scoped occurrence of type T at span.
func CommitDoc[T any](d *Doc, span DocSpan, value T, associations ...assoc.Association) error {
	if span.Start.Line < 0 || span.End.Line >= d.LineCount() || span.End.Line < span.Start.Line ||
		(span.Start.Line == span.End.Line && span.Start.Token > span.End.Token) {
		return InvalidDocSpanError{Given: span, LineCnt: d.LineCount()}
	}
	typ := attrstore.TypeOf[T]()
	sl := d.store.findOrCreateSlot(typ, span)
	sl.items = append(sl.items, docOccurrence{value: value, associations: associations})
	d.store.index.add(typ, span, len(sl.items)-1)
	return nil
}

// DocOccurrence is one document-level query result.
type DocOccurrence[T any] struct {
	Span  DocSpan
	Value T
}

// QueryDoc returns every document-scoped occurrence of type T.
func QueryDoc[T any](d *Doc) []DocOccurrence[T] {
	typ := attrstore.TypeOf[T]()
	var out []DocOccurrence[T]
	for _, sl := range d.store.byType[typ] {
		for _, item := range sl.items {
			out = append(out, DocOccurrence[T]{Span: sl.span, Value: item.value.(T)})
		}
	}
	return out
}

// SpanSource tells an aggregated query result (QueryAll) whether it came
// from a line-local attribute or a document-scoped one.
type SpanSource struct {
	IsLine    bool
	LineIndex int
	Range     attrstore.TokenRange
	Span      DocSpan
}

// AllOccurrence is one QueryAll result: the unifying SpanSource plus the
// typed value.
type AllOccurrence[T any] struct {
	Source SpanSource
	Value  T
}

// QueryAll returns every occurrence of type T across the whole document:
// every line's local attribute store, and the document attribute store,
// unified via SpanSource (spec §4.6).
func QueryAll[T any](d *Doc) []AllOccurrence[T] {
	var out []AllOccurrence[T]
	for i, ln := range d.lines {
		for _, occ := range attrstore.Query[T](ln.Store()) {
			out = append(out, AllOccurrence[T]{
				Source: SpanSource{IsLine: true, LineIndex: i, Range: occ.Range},
				Value:  occ.Value,
			})
		}
	}
	for _, occ := range QueryDoc[T](d) {
		out = append(out, AllOccurrence[T]{
			Source: SpanSource{IsLine: false, Span: occ.Span},
			Value:  occ.Value,
		})
	}
	return out
}
