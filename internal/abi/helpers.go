package abi

import (
	"math"
)

func SafeMulU32(a, b uint32) (uint32, bool) {
	if b != 0 && a > math.MaxUint32/b {
		return 0, false
	}
	return a * b, true
}

func SafeAddU32(a, b uint32) (uint32, bool) {
	if a > math.MaxUint32-b {
		return 0, false
	}
	return a + b, true
}

// SafeMulAddU32 returns base + n*elem, or false if any step overflows.
func SafeMulAddU32(base, n, elem uint32) (uint32, bool) {
	m, ok := SafeMulU32(n, elem)
	if !ok {
		return 0, false
	}
	return SafeAddU32(base, m)
}

// CellCount returns rows*cols for host dimensions. It fails on negative
// dimensions and on products that do not fit an int32, testing by division.
func CellCount(rows, cols int32) (uint32, bool) {
	if rows < 0 || cols < 0 {
		return 0, false
	}
	if cols > 0 && rows > math.MaxInt32/cols {
		return 0, false
	}
	return uint32(rows) * uint32(cols), true
}

func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// IsPow2 reports whether align is a non-zero power of two.
func IsPow2(align uint32) bool {
	return align != 0 && align&(align-1) == 0
}
