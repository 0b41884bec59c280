package accel

import (
	"github.com/coregx/accel/byteset"
	"github.com/coregx/accel/internal/conv"
	"github.com/coregx/accel/shufti"
	"github.com/coregx/accel/truffle"
)

// Case handling works on the raw case bit: clearing it maps a lower-case
// ASCII letter onto its upper-case partner. The relation is purely bitwise,
// so byte values outside the letters participate under the same rule, which
// keeps selection and the scan kernels consistent with each other.
const (
	caseBit   = 0x20
	caseClear = byte(0xFF &^ caseBit) // 0xDF
)

// Compile selects the cheapest acceleration scheme able to honor info's stop
// conditions. It reports ok=false when no scheme applies; acceleration is an
// optimization, and "none" is an ordinary outcome, not an error.
//
// An empty SingleStops set short-circuits to RedTape: when nothing stops the
// single-byte scan, two bytes of context cannot stop it either, so the pair
// data is not consulted. Otherwise pair schemes are preferred over
// single-byte schemes, because two bytes of context make stops rarer.
//
// Compile is a pure function of its arguments: equal inputs yield equal
// descriptors, and a declined path leaves no residue. It panics only on
// caller contract violations (a lookahead offset wider than a byte).
func Compile(info Info, config Config) (Scheme, bool) {
	if info.SingleStops.IsEmpty() {
		return RedTape{Offset: conv.IntToUint8(info.SingleOffset)}, true
	}
	if s := compileDouble(info, config); s != nil {
		return s, true
	}
	if s := compileSingle(info, config); s != nil {
		return s, true
	}
	return nil, false
}

// compileSingle selects among the single-byte schemes, cheapest first.
// It returns nil when none applies.
func compileSingle(info Info, config Config) Scheme {
	if info.SingleStops.IsFull() {
		// Every byte value stops the scan; skipping cannot advance.
		return nil
	}
	offset := conv.IntToUint8(info.SingleOffset)
	outs := info.SingleStops.Count()

	if outs == 1 {
		b, _ := info.SingleStops.First()
		return SingleByte{Offset: offset, Byte: b}
	}
	if b, ok := caseFoldByte(info.SingleStops); ok {
		return SingleByteFold{Offset: offset, Byte: b}
	}
	if lo, hi, ok := shufti.BuildMasks(info.SingleStops); ok {
		return ClassTable{Offset: offset, Lo: lo, Hi: hi}
	}
	if outs <= config.MaxStopChars {
		lo, hi := truffle.BuildMasks(info.SingleStops)
		return Bitmap{Offset: offset, Lo: lo, Hi: hi}
	}
	return nil
}

// compileDouble selects among the pair schemes, cheapest first. It returns
// nil when none applies, and the single-byte path then decides from scratch.
func compileDouble(info Info, config Config) Scheme {
	// The width contract on the pair offset is checked before anything
	// else: it is a caller defect even when the pair data gets declined.
	offset := conv.IntToUint8(info.DoubleOffset)

	outs1 := info.DoubleFirsts.Count()
	outs2 := info.DoublePairs.Len()
	if outs2 == 0 {
		return nil
	}
	if outs1 == 0 && outs2 == 1 {
		p, _ := info.DoublePairs.Min()
		return DoubleByte{Offset: offset, Byte1: p.First, Byte2: p.Second}
	}
	if outs1 == 0 {
		if b1, b2, ok := caseFoldPair(info.DoublePairs); ok {
			return DoubleByteFold{Offset: offset, Byte1: b1, Byte2: b2}
		}
	}
	// Pair-table profitability: the combined entries must fit the table,
	// and solo first bytes must stay in the minority and under their own
	// cap. Wildcard entries stop on one byte of context and fire too
	// often to dominate a pair table.
	if outs1+outs2 <= config.DoubleEntryLimit && outs1 < outs2 && outs1 <= config.DoubleFirstLimit {
		lo1, hi1, lo2, hi2 := shufti.BuildDoubleMasks(info.DoubleFirsts, info.DoublePairs)
		return DoubleClassTable{Offset: offset, Lo1: lo1, Hi1: hi1, Lo2: lo2, Hi2: hi2}
	}
	return nil
}

// caseFoldByte reports whether the set is exactly one byte value and its
// case partner, returning the case-cleared form.
func caseFoldByte(s byteset.Set) (byte, bool) {
	if s.Count() != 2 {
		return 0, false
	}
	first, _ := s.First()
	second, _ := s.Next(first + 1)
	if first|caseBit != second {
		return 0, false
	}
	// first is the smaller member, so its case bit is clear.
	return first, true
}

// caseFoldPair reports whether the pair set is exactly the four case
// permutations of one two-byte sequence, returning the case-cleared forms.
// Members are distinct by construction, so four of them sharing one
// case-cleared form are exactly the four permutations.
func caseFoldPair(pairs byteset.PairSet) (b1, b2 byte, ok bool) {
	if pairs.Len() != 4 {
		return 0, 0, false
	}
	base, _ := pairs.Min()
	b1 = base.First & caseClear
	b2 = base.Second & caseClear
	for _, p := range pairs.Pairs() {
		if p.First&caseClear != b1 || p.Second&caseClear != b2 {
			return 0, 0, false
		}
	}
	return b1, b2, true
}
