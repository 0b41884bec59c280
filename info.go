package accel

import "github.com/coregx/accel/byteset"

// Info describes the stop conditions of one automaton position: which byte
// values (and, when the automaton can look one byte further, which two-byte
// sequences) are interesting enough to end a skip, and at which lookahead
// they apply. Automaton analysis produces Info; Compile consumes it.
//
// Offsets are engine-internal lookaheads bounded by the automaton's own
// construction and must fit in a byte. A wider value is a defect in the
// producing analysis; Compile panics on it rather than truncating.
type Info struct {
	// SingleStops holds the byte values that end single-byte skipping.
	// An empty set means nothing can stop the scan (red tape); a full set
	// means single-byte skipping can never advance.
	SingleStops byteset.Set

	// SingleOffset is the lookahead at which SingleStops applies.
	SingleOffset int

	// DoubleFirsts holds byte values that end double-byte skipping on
	// their own, regardless of the byte that follows. Its size feeds the
	// pair-table cost heuristic; its members become wildcard entries of
	// the double class tables. The selector never matches them as exact
	// literals.
	DoubleFirsts byteset.Set

	// DoublePairs holds the ordered two-byte sequences that end
	// double-byte skipping.
	DoublePairs byteset.PairSet

	// DoubleOffset is the lookahead at which DoubleFirsts and DoublePairs
	// apply.
	DoubleOffset int
}
