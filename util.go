package huffman

import (
	mathbits "math/bits"
)

// bitLength returns the number of bits needed to represent x, treating 0 as
// if it were 1 so that no field is ever zero bits wide.
func bitLength(x uint64) uint8 {
	if x == 0 {
		x = 1
	}
	return uint8(64 - mathbits.LeadingZeros64(x))
}

// addSaturating returns a+b, clamped to math.MaxUint64.
func addSaturating(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return ^uint64(0)
	}
	return sum
}
