package doc

import (
	"sort"

	"github.com/vippsas/layeredspan/attrstore"
)

// Entry is one span-index result: the attribute type, its span, and the
// index of the occurrence within that (type, span) slot (so callers can
// re-fetch the exact value via QueryDoc and match it back up).
type Entry struct {
	Type          attrstore.AttrType
	Span          DocSpan
	OccurrenceIdx int
}

// Index is the secondary structure over the document attribute store
// (spec §4.6 "Span index"), updated incrementally on every commit.
// Each type's entries are kept sorted by span start. Overlapping and
// CoveringPosition scan every entry of the queried type, so a lookup
// takes time linear in that type's entry count.
type Index struct {
	byType map[attrstore.AttrType][]Entry
}

func newIndex() *Index {
	return &Index{byType: make(map[attrstore.AttrType][]Entry)}
}

func (ix *Index) add(typ attrstore.AttrType, span DocSpan, occurrenceIdx int) {
	entries := ix.byType[typ]
	e := Entry{Type: typ, Span: span, OccurrenceIdx: occurrenceIdx}
	i := sort.Search(len(entries), func(i int) bool {
		return span.Start.Less(entries[i].Span.Start) || span.Start == entries[i].Span.Start
	})
	entries = append(entries, Entry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = e
	ix.byType[typ] = entries
}

// OfType returns every indexed entry for attribute type T, ordered by
// span start.
func OfType[T any](d *Doc) []Entry {
	typ := attrstore.TypeOf[T]()
	return append([]Entry(nil), d.store.index.byType[typ]...)
}

// Overlapping returns every entry of type T whose span overlaps q.
func Overlapping[T any](d *Doc, q DocSpan) []Entry {
	var out []Entry
	for _, e := range OfType[T](d) {
		if e.Span.Overlaps(q) {
			out = append(out, e)
		}
	}
	return out
}

// CoveringPosition returns every entry of type T whose span contains p.
func CoveringPosition[T any](d *Doc, p DocPos) []Entry {
	var out []Entry
	for _, e := range OfType[T](d) {
		if e.Span.Contains(p) {
			out = append(out, e)
		}
	}
	return out
}

// CoveringSpan returns every entry of type T whose span overlaps q (an
// alias of Overlapping kept distinct per spec §4.6 naming: "overlap
// test").
func CoveringSpan[T any](d *Doc, q DocSpan) []Entry {
	return Overlapping[T](d, q)
}
