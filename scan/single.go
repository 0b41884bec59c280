package scan

import (
	"encoding/binary"
	"math/bits"

	"github.com/coregx/accel/shufti"
	"github.com/coregx/accel/truffle"
)

const caseClear = 0xDF

// indexFold returns the index of the first byte matching needle under ASCII
// case folding, or -1. Both the needle and each scanned byte have the case
// bit masked off before comparison, so either case form of the needle finds
// either case form in the haystack.
//
// Word-at-a-time SWAR: fold a chunk, XOR with the broadcast needle, and
// detect a zero byte. The tail shorter than a word falls back to a byte loop.
func indexFold(haystack []byte, needle byte) int {
	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080
	const foldMask = uint64(caseClear) * lo8

	needle &= caseClear
	needleMask := uint64(needle) * lo8

	idx := 0
	for ; idx+8 <= len(haystack); idx += 8 {
		chunk := binary.LittleEndian.Uint64(haystack[idx:])
		xor := (chunk & foldMask) ^ needleMask
		if hasZero := (xor - lo8) & ^xor & hi8; hasZero != 0 {
			return idx + bits.TrailingZeros64(hasZero)/8
		}
	}
	for ; idx < len(haystack); idx++ {
		if haystack[idx]&caseClear == needle {
			return idx
		}
	}
	return -1
}

// indexClass returns the index of the first byte that is a member of the
// nibble class tables, or -1.
func indexClass(haystack []byte, lo, hi *shufti.Mask) int {
	for i, b := range haystack {
		if lo[b&0x0F]&hi[b>>4] != 0 {
			return i
		}
	}
	return -1
}

// indexBitmap returns the index of the first byte set in the split bitmap,
// or -1.
func indexBitmap(haystack []byte, lo, hi *truffle.Mask) int {
	for i, b := range haystack {
		half := lo
		if b&0x80 != 0 {
			half = hi
		}
		if half[b&0x0F]&(1<<((b>>4)&0x7)) != 0 {
			return i
		}
	}
	return -1
}
