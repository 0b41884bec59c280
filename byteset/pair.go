package byteset

import (
	"fmt"
	"sort"
	"strings"
)

// Pair is an ordered two-byte sequence: First appears in the input
// immediately before Second.
type Pair struct {
	First  byte
	Second byte
}

// String renders the pair as "(0x41,0x42)".
func (p Pair) String() string {
	return fmt.Sprintf("(0x%02x,0x%02x)", p.First, p.Second)
}

// less orders pairs by First, then Second.
func (p Pair) less(o Pair) bool {
	if p.First != o.First {
		return p.First < o.First
	}
	return p.Second < o.Second
}

// PairSet is a set of byte pairs kept in ascending order.
//
// The zero value is the empty set. Like a slice or map field, a PairSet
// copied by value shares storage with the original; mutate through one
// reference only. Stop-condition pair sets stay small (the selection logic
// caps them at single digits), so storage is a sorted slice.
type PairSet struct {
	pairs []Pair
}

// OfPairs builds a PairSet containing the given pairs.
func OfPairs(ps ...Pair) PairSet {
	var s PairSet
	for _, p := range ps {
		s.Add(p)
	}
	return s
}

// Add inserts p into the set. Duplicates are ignored.
func (s *PairSet) Add(p Pair) {
	i := sort.Search(len(s.pairs), func(i int) bool { return !s.pairs[i].less(p) })
	if i < len(s.pairs) && s.pairs[i] == p {
		return
	}
	s.pairs = append(s.pairs, Pair{})
	copy(s.pairs[i+1:], s.pairs[i:])
	s.pairs[i] = p
}

// Len returns the number of members.
func (s PairSet) Len() int {
	return len(s.pairs)
}

// Contains reports whether p is a member of the set.
func (s PairSet) Contains(p Pair) bool {
	i := sort.Search(len(s.pairs), func(i int) bool { return !s.pairs[i].less(p) })
	return i < len(s.pairs) && s.pairs[i] == p
}

// Min returns the smallest member, or ok=false for an empty set.
func (s PairSet) Min() (Pair, bool) {
	if len(s.pairs) == 0 {
		return Pair{}, false
	}
	return s.pairs[0], true
}

// Pairs returns the members in ascending order. The slice is a copy; the
// caller may keep or modify it.
func (s PairSet) Pairs() []Pair {
	out := make([]Pair, len(s.pairs))
	copy(out, s.pairs)
	return out
}

// String renders the set as a pair list, e.g. "{(0x41,0x42) (0x41,0x62)}".
func (s PairSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range s.pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte('}')
	return sb.String()
}
