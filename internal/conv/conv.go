// Package conv provides safe integer conversion helpers for the scheme
// compiler.
//
// These functions perform bounds checking before narrowing integer conversions
// to prevent silent overflow. They panic on overflow since this indicates a
// programming error (e.g., an automaton handing over a lookahead offset wider
// than the scheme descriptors can carry).
package conv

import "math"

// IntToUint8 safely converts an int to uint8.
// Panics if n < 0 or n > math.MaxUint8.
//
//go:inline
func IntToUint8(n int) uint8 {
	if n < 0 || n > math.MaxUint8 {
		panic("integer overflow: int value out of uint8 range")
	}
	return uint8(n)
}
