// Package truffle builds the full-bitmap byte classifier.
//
// Truffle is the last-resort classifier for stop sets too irregular for
// nibble class tables: a complete 256-bit membership bitmap, split into two
// 128-bit halves so vectorized consumers can keep each half in one shuffle
// register. Like shufti it originates in the Hyperscan pattern-matching
// library. It represents any byte set exactly, trading the class table's
// tighter encoding for universality.
//
// Layout: the lo mask covers bytes 0x00-0x7F, the hi mask bytes 0x80-0xFF.
// Within its half, byte b owns bit (b>>4)&0x7 of entry b&0xF:
//
//	mask := lo; if b&0x80 != 0 { mask = hi }
//	member  <=>  mask[b&0xF] & (1 << ((b>>4)&0x7)) != 0
package truffle

import "github.com/coregx/accel/byteset"

// Mask is one half of the bitmap: 16 entries indexed by low nibble, one bit
// per high-nibble value within the half.
type Mask [16]byte

// BuildMasks constructs the two bitmap halves for stops. It succeeds for any
// set, including the degenerate empty and full sets.
func BuildMasks(stops byteset.Set) (lo, hi Mask) {
	for _, b := range stops.Bytes() {
		half := &lo
		if b&0x80 != 0 {
			half = &hi
		}
		half[b&0x0F] |= 1 << ((b >> 4) & 0x7)
	}
	return lo, hi
}

// Contains evaluates the bitmap layout for one byte.
func Contains(lo, hi Mask, b byte) bool {
	mask := lo
	if b&0x80 != 0 {
		mask = hi
	}
	return mask[b&0x0F]&(1<<((b>>4)&0x7)) != 0
}
