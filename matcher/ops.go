package matcher

import "github.com/vippsas/layeredspan/sel"

// FindBy returns every maximal, non-overlapping match of m within s,
// scanned greedy-leftmost: the cursor starts at s.Start, and each time a
// match is found the cursor jumps past it; there is no backtracking
// across an already-consumed match (spec §4.3, §8 property 3).
func FindBy[V any](s sel.Sel, m M[V]) []Match[V] {
	var out []Match[V]
	if s.IsEmpty() {
		return out
	}
	pos := s.Start
	for pos <= s.End {
		matched, value, ok := m.MatchAt(s, pos)
		if !ok {
			pos++
			continue
		}
		out = append(out, Match[V]{Sel: matched, Value: value})
		pos = matched.End + 1
	}
	return out
}

// FindFirstBy returns the first (leftmost) match of m within s, if any.
func FindFirstBy[V any](s sel.Sel, m M[V]) (Match[V], bool) {
	if s.IsEmpty() {
		return Match[V]{}, false
	}
	for pos := s.Start; pos <= s.End; pos++ {
		if matched, value, ok := m.MatchAt(s, pos); ok {
			return Match[V]{Sel: matched, Value: value}, true
		}
	}
	return Match[V]{}, false
}

// MatchFirstForwards extends s to include the next region matched by m
// immediately after s's end, returning the extended selection and the
// matched value. It fails if m does not match starting exactly at
// s.End+1.
func MatchFirstForwards[V any](s sel.Sel, m M[V]) (sel.Sel, V, bool) {
	var zero V
	lineLen := s.Line.Len()
	bounds := sel.Sel{Line: s.Line, Start: s.Start, End: lineLen - 1}
	at := s.End + 1
	if at >= lineLen {
		return sel.Sel{}, zero, false
	}
	matched, value, ok := m.MatchAt(bounds, at)
	if !ok {
		return sel.Sel{}, zero, false
	}
	return sel.Sel{Line: s.Line, Start: s.Start, End: matched.End}, value, true
}

// MatchFirstBackwards extends s to include the region matched by m
// immediately preceding s's start. Since M only matches forward from a
// given position, this scans candidate start positions from s.Start-1
// down to 0 and accepts the first (nearest) one whose match ends exactly
// at s.Start-1.
func MatchFirstBackwards[V any](s sel.Sel, m M[V]) (sel.Sel, V, bool) {
	var zero V
	if s.Start == 0 {
		return sel.Sel{}, zero, false
	}
	target := s.Start - 1
	bounds := sel.Sel{Line: s.Line, Start: 0, End: s.End}
	for start := target; start >= 0; start-- {
		matched, value, ok := m.MatchAt(bounds, start)
		if ok && matched.End == target {
			return sel.Sel{Line: s.Line, Start: matched.Start, End: s.End}, value, true
		}
	}
	return sel.Sel{}, zero, false
}

// SplitBy yields the sub-selections of s separated by matches of m; the
// separator regions themselves are dropped. Leading/trailing/adjacent
// separators yield empty selections in their place, the way
// strings.Split does.
func SplitBy[V any](s sel.Sel, m M[V]) []sel.Sel {
	var out []sel.Sel
	if s.IsEmpty() {
		return []sel.Sel{s}
	}
	matches := FindBy(s, m)
	cursor := s.Start
	for _, mt := range matches {
		out = append(out, sel.Sel{Line: s.Line, Start: cursor, End: mt.Sel.Start - 1})
		cursor = mt.Sel.End + 1
	}
	out = append(out, sel.Sel{Line: s.Line, Start: cursor, End: s.End})
	return out
}

// Trim drops leading and trailing tokens matched by m from s, repeatedly,
// until neither end matches.
func Trim[V any](s sel.Sel, m M[V]) sel.Sel {
	for !s.IsEmpty() {
		matched, _, ok := m.MatchAt(s, s.Start)
		if !ok || matched.Start != s.Start {
			break
		}
		s = sel.Sel{Line: s.Line, Start: matched.End + 1, End: s.End}
	}
	for !s.IsEmpty() {
		found := false
		for start := s.End; start >= s.Start; start-- {
			matched, _, ok := m.MatchAt(s, start)
			if ok && matched.End == s.End {
				s = sel.Sel{Line: s.Line, Start: s.Start, End: matched.Start - 1}
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return s
}
