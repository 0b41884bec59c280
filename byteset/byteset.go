// Package byteset provides fixed-size sets over byte values: a 256-bit
// bitset for single bytes and an ordered set of two-byte sequences.
//
// Both containers describe scan stop conditions: which byte values (or byte
// pairs) are interesting to a byte-driven automaton at some lookahead. They
// are plain value types with deterministic iteration order, small enough to
// embed in compile-time descriptors.
package byteset

import (
	"fmt"
	"math/bits"
	"strings"
)

// Set is a fixed 256-bit set of byte values.
//
// The zero value is the empty set. Set is a small value type; assignment
// copies it. Query methods take value receivers, mutators take pointers.
type Set struct {
	bits [4]uint64
}

// Of builds a Set containing the given byte values.
func Of(bs ...byte) Set {
	var s Set
	for _, b := range bs {
		s.Add(b)
	}
	return s
}

// Add inserts b into the set.
func (s *Set) Add(b byte) {
	s.bits[b>>6] |= 1 << (b & 63)
}

// AddRange inserts every byte value in [lo, hi] into the set.
func (s *Set) AddRange(lo, hi byte) {
	for b := int(lo); b <= int(hi); b++ {
		s.Add(byte(b))
	}
}

// Contains reports whether b is a member of the set.
func (s Set) Contains(b byte) bool {
	return s.bits[b>>6]&(1<<(b&63)) != 0
}

// Count returns the number of members.
func (s Set) Count() int {
	return bits.OnesCount64(s.bits[0]) + bits.OnesCount64(s.bits[1]) +
		bits.OnesCount64(s.bits[2]) + bits.OnesCount64(s.bits[3])
}

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool {
	return s.bits == [4]uint64{}
}

// IsFull reports whether all 256 byte values are members.
func (s Set) IsFull() bool {
	const full = ^uint64(0)
	return s.bits == [4]uint64{full, full, full, full}
}

// First returns the smallest member, or ok=false for an empty set.
func (s Set) First() (b byte, ok bool) {
	return s.Next(0)
}

// Next returns the smallest member greater than or equal to b, or ok=false
// when no such member exists. Callers iterating the whole set should prefer
// Bytes, which has no wraparound hazard at 255.
func (s Set) Next(b byte) (byte, bool) {
	word := int(b >> 6)
	cur := s.bits[word] >> (b & 63) << (b & 63)
	for {
		if cur != 0 {
			return byte(word<<6 + bits.TrailingZeros64(cur)), true
		}
		word++
		if word == 4 {
			return 0, false
		}
		cur = s.bits[word]
	}
}

// Bytes returns the members in ascending order.
func (s Set) Bytes() []byte {
	out := make([]byte, 0, s.Count())
	for word := 0; word < 4; word++ {
		cur := s.bits[word]
		for cur != 0 {
			bit := bits.TrailingZeros64(cur)
			out = append(out, byte(word<<6+bit))
			cur &= cur - 1
		}
	}
	return out
}

// Equal reports whether both sets have exactly the same members.
func (s Set) Equal(o Set) bool {
	return s.bits == o.bits
}

// String renders the set as a hex member list, e.g. "{0x41 0x61}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, b := range s.Bytes() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02x", b)
	}
	sb.WriteByte('}')
	return sb.String()
}
