// Package attrstore implements the line-level attribute store: a
// type-indexed container mapping (attribute type, token range) to a
// stacked list of occurrences (spec §3, §4.1).
//
// The source this substrate is modeled on keys its attribute map by
// runtime type identity. In Go that becomes an opaque AttrType wrapping
// reflect.Type (spec §9), with Query/Commit dispatching through a small
// generic layer so callers never touch reflect directly.
package attrstore

import (
	"fmt"
	"reflect"

	"github.com/vippsas/layeredspan/assoc"
)

// AttrType is an opaque, comparable key identifying a stored attribute's
// Go type. Two AttrTypes compare equal iff they were derived from the same
// type.
type AttrType struct {
	rt   reflect.Type
	name string
}

// TypeOf returns the AttrType for T. Calling TypeOf[Foo]() twice always
// yields equal values, so AttrType is safe to use as a map key.
func TypeOf[T any]() AttrType {
	var zero T
	rt := reflect.TypeOf(&zero).Elem()
	return AttrType{rt: rt, name: rt.String()}
}

func (t AttrType) String() string { return t.name }

// TokenRange is an inclusive [Start, End] range of token indices within a
// single line. Start <= End always; a single-token range has Start == End.
type TokenRange struct {
	Start, End int
}

// Contains reports whether idx falls within the range.
func (r TokenRange) Contains(idx int) bool { return idx >= r.Start && idx <= r.End }

// Overlaps reports whether the two ranges share at least one token index.
func (r TokenRange) Overlaps(other TokenRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

func (r TokenRange) String() string { return fmt.Sprintf("[%d,%d]", r.Start, r.End) }

// AttrOccurrence is one stored value at a (type, range) slot, together
// with any associations attached to it.
type AttrOccurrence struct {
	Value        any
	Associations []assoc.Association
}

// Superseded wraps a value to mark it as no longer authoritative without
// removing it — spec §9 calls this out as the intended mechanism since the
// store has no remove operation. Writing Superseded[T]{Value: v} at the
// same (AttrType-of-Superseded[T], range) as the original T leaves the
// original occurrence in place for audit/provenance purposes.
type Superseded[T any] struct {
	Value T
	// Reason is an optional free-text note on why the value was
	// superseded (e.g. "corrected by HumanVerified pass").
	Reason string
}

// InvalidRangeError reports an assignment whose range exceeds the line it
// targets.
type InvalidRangeError struct {
	Given      TokenRange
	LineLength int
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("attrstore: range %s exceeds line of length %d", e.Given, e.LineLength)
}

type slot struct {
	typ   AttrType
	rng   TokenRange
	items []AttrOccurrence
}

// Store is the type-indexed, append-only container for one line's
// attributes. Create one with New: the zero value has no map to commit
// into and a line length of 0, so it cannot accept any commit.
type Store struct {
	lineLength int
	byType     map[AttrType][]*slot
	order      []*slot // insertion order of (type, range) slots, for stable iteration
}

// New creates a Store bound to a line of the given token length; commits
// whose range exceeds lineLength-1 are rejected with InvalidRangeError.
func New(lineLength int) *Store {
	return &Store{
		lineLength: lineLength,
		byType:     make(map[AttrType][]*slot),
	}
}

func (s *Store) findOrCreateSlot(typ AttrType, rng TokenRange) *slot {
	for _, sl := range s.byType[typ] {
		if sl.rng == rng {
			return sl
		}
	}
	sl := &slot{typ: typ, rng: rng}
	s.byType[typ] = append(s.byType[typ], sl)
	s.order = append(s.order, sl)
	return sl
}

// Commit appends one occurrence of type T at rng. Stacking is intentional:
// repeated commits at the same (T, rng) accumulate rather than overwrite,
// and insertion order is preserved (spec invariant: "insertion order is
// preserved within a (type, range) slot").
func Commit[T any](s *Store, rng TokenRange, value T, associations ...assoc.Association) error {
	if rng.Start < 0 || rng.End >= s.lineLength || rng.Start > rng.End {
		return InvalidRangeError{Given: rng, LineLength: s.lineLength}
	}
	typ := TypeOf[T]()
	sl := s.findOrCreateSlot(typ, rng)
	sl.items = append(sl.items, AttrOccurrence{Value: value, Associations: associations})
	return nil
}

// Occurrence is one query result: the range it was found at, and the
// typed value.
type Occurrence[T any] struct {
	Range TokenRange
	Value T
}

// Query returns every occurrence of attribute type T, in the order their
// (range, slot) were first committed, and within a slot in commit order.
func Query[T any](s *Store) []Occurrence[T] {
	typ := TypeOf[T]()
	var out []Occurrence[T]
	for _, sl := range s.byType[typ] {
		for _, item := range sl.items {
			out = append(out, Occurrence[T]{Range: sl.rng, Value: item.Value.(T)})
		}
	}
	return out
}

// QueryRange returns the occurrences of type T committed exactly at rng,
// in commit order.
func QueryRange[T any](s *Store, rng TokenRange) []T {
	typ := TypeOf[T]()
	for _, sl := range s.byType[typ] {
		if sl.rng == rng {
			out := make([]T, len(sl.items))
			for i, item := range sl.items {
				out[i] = item.Value.(T)
			}
			return out
		}
	}
	return nil
}

// OccurrenceWithAssociations pairs a query result with its associations.
type OccurrenceWithAssociations[T any] struct {
	Range        TokenRange
	Value        T
	Associations []assoc.Association
}

// QueryWithAssociations is like Query but also returns each occurrence's
// associations (provenance pointers and/or first-class SpanLinks).
func QueryWithAssociations[T any](s *Store) []OccurrenceWithAssociations[T] {
	typ := TypeOf[T]()
	var out []OccurrenceWithAssociations[T]
	for _, sl := range s.byType[typ] {
		for _, item := range sl.items {
			out = append(out, OccurrenceWithAssociations[T]{
				Range:        sl.rng,
				Value:        item.Value.(T),
				Associations: item.Associations,
			})
		}
	}
	return out
}

// HasType reports whether any occurrence of type T has been committed,
// anywhere on the line, without allocating a query result.
func HasType[T any](s *Store) bool {
	typ := TypeOf[T]()
	return len(s.byType[typ]) > 0
}

// RangesOfType returns the distinct ranges carrying at least one
// occurrence of type T, in first-commit order.
func RangesOfType[T any](s *Store) []TokenRange {
	typ := TypeOf[T]()
	out := make([]TokenRange, 0, len(s.byType[typ]))
	for _, sl := range s.byType[typ] {
		out = append(out, sl.rng)
	}
	return out
}

// RangesOfTypeErased is RangesOfType for callers holding a runtime
// AttrType rather than a compile-time T — the shape a generic renderer
// that lists whichever types a caller names needs (package resolverlib).
func RangesOfTypeErased(s *Store, typ AttrType) []TokenRange {
	out := make([]TokenRange, 0, len(s.byType[typ]))
	for _, sl := range s.byType[typ] {
		out = append(out, sl.rng)
	}
	return out
}

// LineLength returns the token length the Store was created for.
func (s *Store) LineLength() int { return s.lineLength }

// AllTypes returns every AttrType with at least one committed occurrence,
// in first-commit order. Intended for renderers/diagnostics, not for
// typed querying.
func (s *Store) AllTypes() []AttrType {
	seen := make(map[AttrType]bool)
	var out []AttrType
	for _, sl := range s.order {
		if !seen[sl.typ] {
			seen[sl.typ] = true
			out = append(out, sl.typ)
		}
	}
	return out
}
