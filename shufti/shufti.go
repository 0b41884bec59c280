// Package shufti builds nibble-indexed class tables for byte-set scanning.
//
// Shufti answers "is this byte in the stop set?" with two 16-entry tables and
// a pair of shuffle lookups instead of a 256-entry table load. It originates
// in the Hyperscan pattern-matching library and maps directly onto vector
// shuffle instructions (PSHUFB and friends); the builders here produce the
// table layout, which is the contract with whatever scan kernel consumes it.
//
// Single-byte layout (BuildMasks):
//
//	Byte b is a member  <=>  lo[b&0xF] & hi[b>>4] != 0
//
// Each of the 8 bits of a table entry is a bucket. Stop bytes are grouped by
// high nibble; high nibbles sharing an identical low-nibble set share one
// bucket. A set needing more than 8 buckets cannot be represented and the
// builder reports failure.
//
// Double-byte layout (BuildDoubleMasks):
//
//	Position i stops  <=>  lo1[b1&0xF] | hi1[b1>>4] | lo2[b2&0xF] | hi2[b2>>4] != 0xFF
//
// where b1, b2 are the bytes at i and i+1. The double tables are inverted
// (bits clear mark membership) so the scan side can OR the four lookups and
// test against all-ones. Every entry occupies its own bucket, which keeps
// matching exact: with at most 8 entries there is no cross-product between
// first and second bytes of different entries.
package shufti

import "github.com/coregx/accel/byteset"

// Mask is one nibble-indexed class table: 16 entries of 8 bucket bits each.
type Mask [16]byte

const (
	// MaxBuckets is the number of buckets a single-byte table can carry,
	// fixed by the bit width of a table entry.
	MaxBuckets = 8

	// MaxDoubleEntries is the capacity of the double tables: one bucket per
	// stop entry (wildcard first bytes plus exact pairs). Selection logic
	// must gate on this before calling BuildDoubleMasks.
	MaxDoubleEntries = 8
)

// Contains evaluates the single-byte table layout for one byte.
func Contains(lo, hi Mask, b byte) bool {
	return lo[b&0x0F]&hi[b>>4] != 0
}

// ContainsPair evaluates the double-byte table layout for the bytes at a
// position and the one following it.
func ContainsPair(lo1, hi1, lo2, hi2 Mask, b1, b2 byte) bool {
	return lo1[b1&0x0F]|hi1[b1>>4]|lo2[b2&0x0F]|hi2[b2>>4] != 0xFF
}

// ContainsLast evaluates the double-byte table layout for the final byte of
// the input, where no second byte exists. Only wildcard entries (buckets
// whose second-position tables are cleared at every nibble) can stop there;
// an exact pair cannot complete.
func ContainsLast(lo1, hi1, lo2, hi2 Mask, b1 byte) bool {
	var second byte
	for i := 0; i < 16; i++ {
		second |= lo2[i] | hi2[i]
	}
	return lo1[b1&0x0F]|hi1[b1>>4]|second != 0xFF
}

// BuildMasks constructs the single-byte class tables for stops.
//
// It reports ok=false when the set cannot be represented: more than
// MaxBuckets distinct low-nibble groups, an empty set, or the full set
// (neither of which a caller should be offering for class-table scanning).
func BuildMasks(stops byteset.Set) (lo, hi Mask, ok bool) {
	if stops.IsEmpty() || stops.IsFull() {
		return Mask{}, Mask{}, false
	}

	// Group stop bytes by high nibble: one 16-bit set of low nibbles each.
	var loSets [16]uint16
	for _, b := range stops.Bytes() {
		loSets[b>>4] |= 1 << (b & 0x0F)
	}

	// High nibbles with identical low-nibble sets share a bucket. Buckets
	// are assigned in high-nibble order, so the tables are deterministic.
	bucketOf := make(map[uint16]int, MaxBuckets)
	next := 0
	for hiNib := 0; hiNib < 16; hiNib++ {
		set := loSets[hiNib]
		if set == 0 {
			continue
		}
		bucket, seen := bucketOf[set]
		if !seen {
			if next == MaxBuckets {
				return Mask{}, Mask{}, false
			}
			bucket = next
			next++
			bucketOf[set] = bucket
			for loNib := 0; loNib < 16; loNib++ {
				if set&(1<<loNib) != 0 {
					lo[loNib] |= byte(1) << bucket
				}
			}
		}
		hi[hiNib] |= byte(1) << bucket
	}
	return lo, hi, true
}

// BuildDoubleMasks constructs the inverted double-byte class tables.
//
// Each member of firsts is a wildcard entry: it stops the scan regardless of
// the following byte, so its bucket is cleared in the second-position tables
// at every nibble. Each member of pairs is exact in both positions.
//
// The combined entry count must not exceed MaxDoubleEntries; a violation is
// a defect in the caller's gating and panics.
func BuildDoubleMasks(firsts byteset.Set, pairs byteset.PairSet) (lo1, hi1, lo2, hi2 Mask) {
	if firsts.Count()+pairs.Len() > MaxDoubleEntries {
		panic("shufti: double table entries exceed bucket capacity")
	}

	for i := 0; i < 16; i++ {
		lo1[i], hi1[i], lo2[i], hi2[i] = 0xFF, 0xFF, 0xFF, 0xFF
	}

	bucket := 0
	for _, b := range firsts.Bytes() {
		bit := byte(1) << bucket
		lo1[b&0x0F] &^= bit
		hi1[b>>4] &^= bit
		for nib := 0; nib < 16; nib++ {
			lo2[nib] &^= bit
			hi2[nib] &^= bit
		}
		bucket++
	}
	for _, p := range pairs.Pairs() {
		bit := byte(1) << bucket
		lo1[p.First&0x0F] &^= bit
		hi1[p.First>>4] &^= bit
		lo2[p.Second&0x0F] &^= bit
		hi2[p.Second>>4] &^= bit
		bucket++
	}
	return lo1, hi1, lo2, hi2
}
