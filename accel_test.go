package accel

import (
	"strings"
	"testing"
)

func TestSchemeSkipOffset(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   uint8
	}{
		{RedTape{Offset: 0}, 0},
		{RedTape{Offset: 255}, 255},
		{SingleByte{Offset: 3, Byte: 0x41}, 3},
		{SingleByteFold{Offset: 1, Byte: 0x41}, 1},
		{ClassTable{Offset: 7}, 7},
		{Bitmap{Offset: 9}, 9},
		{DoubleByte{Offset: 5, Byte1: 0x0d, Byte2: 0x0a}, 5},
		{DoubleByteFold{Offset: 2, Byte1: 0x41, Byte2: 0x42}, 2},
		{DoubleClassTable{Offset: 4}, 4},
	}
	for _, tt := range tests {
		if got := tt.scheme.SkipOffset(); got != tt.want {
			t.Errorf("%s SkipOffset() = %d, want %d", tt.scheme, got, tt.want)
		}
	}
}

func TestSchemeString(t *testing.T) {
	tests := []struct {
		scheme Scheme
		want   string
	}{
		{RedTape{Offset: 2}, "RedTape(offset=2)"},
		{SingleByte{Offset: 3, Byte: 0x41}, "SingleByte(offset=3, byte=0x41)"},
		{SingleByteFold{Offset: 0, Byte: 0x41}, "SingleByteFold(offset=0, byte=0x41)"},
		{ClassTable{Offset: 1}, "ClassTable(offset=1)"},
		{Bitmap{Offset: 0}, "Bitmap(offset=0)"},
		{DoubleByte{Offset: 5, Byte1: 0x0d, Byte2: 0x0a}, "DoubleByte(offset=5, bytes=0x0d 0x0a)"},
		{DoubleByteFold{Offset: 0, Byte1: 0x41, Byte2: 0x5a}, "DoubleByteFold(offset=0, bytes=0x41 0x5a)"},
		{DoubleClassTable{Offset: 6}, "DoubleClassTable(offset=6)"},
	}
	for _, tt := range tests {
		if got := tt.scheme.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSchemeStringNamesVariant(t *testing.T) {
	// Every rendering starts with the variant name, so test failures that
	// print a Scheme identify themselves.
	schemes := []Scheme{
		RedTape{}, SingleByte{}, SingleByteFold{}, ClassTable{}, Bitmap{},
		DoubleByte{}, DoubleByteFold{}, DoubleClassTable{},
	}
	for _, s := range schemes {
		if !strings.Contains(s.String(), "(") {
			t.Errorf("String() = %q, want name(...) form", s.String())
		}
	}
}
