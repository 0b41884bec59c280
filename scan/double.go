package scan

import (
	"bytes"

	"github.com/coregx/accel/shufti"
)

// indexPair returns the index of the first occurrence of the exact byte
// sequence b1 b2, or -1. Both bytes must lie inside the haystack: a lone b1
// as the final byte is not a match, because the pair cannot complete within
// this block.
func indexPair(haystack []byte, b1, b2 byte) int {
	i := 0
	for i < len(haystack)-1 {
		j := bytes.IndexByte(haystack[i:len(haystack)-1], b1)
		if j == -1 {
			return -1
		}
		i += j
		if haystack[i+1] == b2 {
			return i
		}
		i++
	}
	return -1
}

// indexPairFold is indexPair under ASCII case folding: each byte of the
// sequence matches either case form.
func indexPairFold(haystack []byte, b1, b2 byte) int {
	b1 &= caseClear
	b2 &= caseClear
	i := 0
	for i < len(haystack)-1 {
		j := indexFold(haystack[i:len(haystack)-1], b1)
		if j == -1 {
			return -1
		}
		i += j
		if haystack[i+1]&caseClear == b2 {
			return i
		}
		i++
	}
	return -1
}

// indexDoubleClass returns the first position accepted by the double-byte
// class tables, or -1. Interior positions evaluate both bytes; the final
// byte has no successor, so only wildcard entries can stop there.
func indexDoubleClass(haystack []byte, lo1, hi1, lo2, hi2 *shufti.Mask) int {
	n := len(haystack)
	for i := 0; i+1 < n; i++ {
		b1, b2 := haystack[i], haystack[i+1]
		if lo1[b1&0x0F]|hi1[b1>>4]|lo2[b2&0x0F]|hi2[b2>>4] != 0xFF {
			return i
		}
	}
	if n > 0 && shufti.ContainsLast(*lo1, *hi1, *lo2, *hi2, haystack[n-1]) {
		return n - 1
	}
	return -1
}
