// Package scan executes compiled acceleration schemes over byte slices.
//
// The accel package selects a scheme; this package runs it. Skip jumps the
// cursor to the next position whose lookahead byte (or byte pair) can change
// the automaton's state, so the scanning loop only simulates positions that
// matter. The kernels are portable Go counterparts of the vectorized
// primitives the scheme layouts were designed for; vectorized engines are
// free to consume the same descriptors with their own kernels.
//
// Every kernel evaluates exact stop-set membership: a returned position
// really holds a stop, and no stop is ever skipped. Pairs use block
// semantics: the second byte must lie inside the haystack, so a lone
// trailing first byte does not stop an exact-pair scan. A byte that stops
// regardless of what follows (a wildcard entry of a double class table)
// still stops at the final byte.
package scan

import (
	"bytes"

	"github.com/coregx/accel"
)

// Skip returns the smallest cursor position at or after pos from which the
// automaton must resume byte-wise simulation: the scheme's stop condition
// holds at that cursor's lookahead, cursor + s.SkipOffset(). It returns -1
// when no stop condition holds before the end of haystack; the caller may
// dismiss the rest of the block.
func Skip(s accel.Scheme, haystack []byte, pos int) int {
	if pos < 0 || pos >= len(haystack) {
		return -1
	}
	offset := int(s.SkipOffset())
	if pos+offset >= len(haystack) {
		return -1
	}
	window := haystack[pos+offset:]

	var found int
	switch v := s.(type) {
	case accel.RedTape:
		return -1
	case accel.SingleByte:
		found = bytes.IndexByte(window, v.Byte)
	case accel.SingleByteFold:
		found = indexFold(window, v.Byte)
	case accel.ClassTable:
		found = indexClass(window, &v.Lo, &v.Hi)
	case accel.Bitmap:
		found = indexBitmap(window, &v.Lo, &v.Hi)
	case accel.DoubleByte:
		found = indexPair(window, v.Byte1, v.Byte2)
	case accel.DoubleByteFold:
		found = indexPairFold(window, v.Byte1, v.Byte2)
	case accel.DoubleClassTable:
		found = indexDoubleClass(window, &v.Lo1, &v.Hi1, &v.Lo2, &v.Hi2)
	default:
		// Unknown scheme: stay at the current position and let the
		// caller simulate.
		return pos
	}

	if found == -1 {
		return -1
	}
	return pos + found
}
