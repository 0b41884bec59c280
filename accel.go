// Package accel compiles skip-acceleration schemes for byte-driven automata.
//
// When an automaton state reacts to only a handful of byte values, the
// scanning loop does not need to simulate every input position: a vector
// primitive can find the next interesting byte and the loop can jump straight
// to it. accel is the compile-time half of that bargain. Given a description
// of the bytes (or two-byte sequences) that are interesting at a state
// (Info), Compile selects the cheapest scan primitive able to honor it and
// returns an immutable descriptor (Scheme) carrying exactly the metadata that
// primitive needs: literal bytes to compare, nibble class tables, or a full
// 256-bit bitmap.
//
// Selection walks from cheapest to most general:
//   - RedTape: nothing stops the scan (empty stop set)
//   - DoubleByte / DoubleByteFold: one exact or case-insensitive byte pair
//   - DoubleClassTable: small mixed sets of pairs and solo first bytes
//   - SingleByte / SingleByteFold: one exact or case-insensitive byte
//   - ClassTable: byte sets encodable in two 16-entry nibble tables
//   - Bitmap: any byte set, up to a configured density limit
//
// Pair schemes are preferred over single-byte schemes when both are
// admissible: two bytes of context make stops rarer. Compile performs no
// scanning itself; the scan package executes the descriptors, and vectorized
// engines can consume the same table layouts directly.
//
// Basic usage:
//
//	info := accel.Info{
//	    SingleStops:  byteset.Of('<'),
//	    SingleOffset: 0,
//	}
//	scheme, ok := accel.Compile(info, accel.DefaultConfig())
//	if ok {
//	    pos := scan.Skip(scheme, input, 0) // next '<' or -1
//	}
package accel

import (
	"fmt"

	"github.com/coregx/accel/shufti"
	"github.com/coregx/accel/truffle"
)

// Scheme is an acceleration scheme descriptor. Each variant is a small
// immutable struct naming one scan primitive plus the metadata it needs;
// callers embed descriptors by value into compiled automaton states and
// dispatch on the concrete type in the scan loop.
//
// The interface is sealed: the variant set is fixed by the selection
// procedure in Compile.
type Scheme interface {
	// SkipOffset returns the lookahead distance, in bytes ahead of the
	// cursor, at which the scheme's stop condition is evaluated.
	SkipOffset() uint8

	// String renders the descriptor for debugging and test output.
	String() string

	isScheme()
}

// RedTape advances unconditionally: the stop set is empty, so no byte value
// can end the skip and the scanner may dismiss the rest of the input.
type RedTape struct {
	Offset uint8
}

// SingleByte stops on one exact byte value.
type SingleByte struct {
	Offset uint8
	Byte   byte
}

// SingleByteFold stops on a byte value and its case partner. Byte holds the
// case-cleared form (case bit masked off); a scanned byte matches when it
// case-clears to Byte.
type SingleByteFold struct {
	Offset uint8
	Byte   byte
}

// ClassTable stops on membership in a byte set encoded as two nibble-indexed
// tables (see shufti.BuildMasks for the layout).
type ClassTable struct {
	Offset uint8
	Lo     shufti.Mask
	Hi     shufti.Mask
}

// Bitmap stops on membership in a full 256-bit bitmap split into a
// high-bit-clear and a high-bit-set half (see truffle.BuildMasks).
type Bitmap struct {
	Offset uint8
	Lo     truffle.Mask
	Hi     truffle.Mask
}

// DoubleByte stops on one exact ordered two-byte sequence.
type DoubleByte struct {
	Offset uint8
	Byte1  byte
	Byte2  byte
}

// DoubleByteFold stops on a two-byte sequence matched case-insensitively.
// Byte1 and Byte2 hold the case-cleared forms.
type DoubleByteFold struct {
	Offset uint8
	Byte1  byte
	Byte2  byte
}

// DoubleClassTable stops on pair membership via nibble class tables for both
// positions, covering solo first bytes (wildcard entries) and exact pairs
// jointly (see shufti.BuildDoubleMasks for the layout).
type DoubleClassTable struct {
	Offset uint8
	Lo1    shufti.Mask
	Hi1    shufti.Mask
	Lo2    shufti.Mask
	Hi2    shufti.Mask
}

// SkipOffset implements Scheme.
func (s RedTape) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s SingleByte) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s SingleByteFold) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s ClassTable) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s Bitmap) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s DoubleByte) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s DoubleByteFold) SkipOffset() uint8 { return s.Offset }

// SkipOffset implements Scheme.
func (s DoubleClassTable) SkipOffset() uint8 { return s.Offset }

// String implements Scheme.
func (s RedTape) String() string {
	return fmt.Sprintf("RedTape(offset=%d)", s.Offset)
}

// String implements Scheme.
func (s SingleByte) String() string {
	return fmt.Sprintf("SingleByte(offset=%d, byte=0x%02x)", s.Offset, s.Byte)
}

// String implements Scheme.
func (s SingleByteFold) String() string {
	return fmt.Sprintf("SingleByteFold(offset=%d, byte=0x%02x)", s.Offset, s.Byte)
}

// String implements Scheme.
func (s ClassTable) String() string {
	return fmt.Sprintf("ClassTable(offset=%d)", s.Offset)
}

// String implements Scheme.
func (s Bitmap) String() string {
	return fmt.Sprintf("Bitmap(offset=%d)", s.Offset)
}

// String implements Scheme.
func (s DoubleByte) String() string {
	return fmt.Sprintf("DoubleByte(offset=%d, bytes=0x%02x 0x%02x)", s.Offset, s.Byte1, s.Byte2)
}

// String implements Scheme.
func (s DoubleByteFold) String() string {
	return fmt.Sprintf("DoubleByteFold(offset=%d, bytes=0x%02x 0x%02x)", s.Offset, s.Byte1, s.Byte2)
}

// String implements Scheme.
func (s DoubleClassTable) String() string {
	return fmt.Sprintf("DoubleClassTable(offset=%d)", s.Offset)
}

func (RedTape) isScheme()          {}
func (SingleByte) isScheme()       {}
func (SingleByteFold) isScheme()   {}
func (ClassTable) isScheme()       {}
func (Bitmap) isScheme()           {}
func (DoubleByte) isScheme()       {}
func (DoubleByteFold) isScheme()   {}
func (DoubleClassTable) isScheme() {}
