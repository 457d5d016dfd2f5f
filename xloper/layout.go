package xloper

import (
	"github.com/wippyai/xlcodec/internal/abi"
)

// Host structure layout for a 32-bit address space.
const (
	CellSize   = 32
	CellAlign  = 8
	typeOffset = 24

	// XLREF12: rwFirst, rwLast, colFirst, colLast.
	RefSize = 16

	// XLMREF12: count at 0, reftbl at 4. The base size covers the header
	// and one spare entry.
	MRefBaseSize = 20
	MRefAlign    = 4
	mrefTable    = 4

	// FP12: rows at 0, columns at 4, doubles from 8.
	FP12Header = 8
	FP12Align  = 8

	StringAlign = 2
)

// ArraySize returns the byte size of n cells.
func ArraySize(n uint32) (uint32, bool) {
	return abi.SafeMulU32(n, CellSize)
}

// MRefSize returns the allocation size of a reference table with n entries.
func MRefSize(n uint32) (uint32, bool) {
	return abi.SafeMulAddU32(MRefBaseSize, n, RefSize)
}

// FP12Size returns the allocation size of an FP12 holding count doubles.
func FP12Size(count uint32) (uint32, bool) {
	return abi.SafeMulAddU32(FP12Header, count, 8)
}

// StringSize returns the allocation size of a string of n units: length
// prefix, units, terminator.
func StringSize(n uint32) uint32 {
	return (n + 2) * 2
}
