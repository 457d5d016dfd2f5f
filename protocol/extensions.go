package protocol

import (
	"errors"
	"fmt"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
)

// MaxRefs is the largest reference count the host's 16-bit count field holds.
const MaxRefs = math.MaxUint16

var (
	// ErrInvalidDimensions indicates that the grid dimensions do not match the data length.
	ErrInvalidDimensions = errors.New("rows * cols does not match data length")
	// ErrOverflow indicates that the dimensions exceed the maximum supported limits.
	ErrOverflow = errors.New("dimensions exceed maximum supported limits (int32)")
	// ErrTooManyRefs indicates that the range has too many references.
	ErrTooManyRefs = errors.New("too many references (> 65535)")
)

// Dims interprets wire dimensions the way the host does: as signed 32-bit
// values. Rows or columns above MaxInt32 come back negative.
func Dims(rows, cols uint32) (int32, int32) {
	return int32(rows), int32(cols)
}

// CheckDims validates host dimensions and returns the element count. The
// product is checked against MaxInt32 by division so the check itself
// cannot overflow.
func CheckDims(rows, cols int32) (int, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("negative dimensions: %d x %d", rows, cols)
	}
	if cols > 0 && rows > math.MaxInt32/cols {
		return 0, fmt.Errorf("%w: %d x %d > MaxInt32", ErrOverflow, rows, cols)
	}
	return int(rows) * int(cols), nil
}

// Validate checks if the Grid dimensions match the data length.
func (rcv *Grid) Validate() error {
	count, err := CheckDims(Dims(rcv.Rows(), rcv.Cols()))
	if err != nil {
		return err
	}
	if rcv.DataLength() != count {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidDimensions, count, rcv.DataLength())
	}
	return nil
}

// Validate checks if the NumGrid dimensions match the data length.
func (rcv *NumGrid) Validate() error {
	count, err := CheckDims(Dims(rcv.Rows(), rcv.Cols()))
	if err != nil {
		return err
	}
	if rcv.DataLength() != count {
		return fmt.Errorf("%w: expected %d, got %d", ErrInvalidDimensions, count, rcv.DataLength())
	}
	return nil
}

// Validate checks if the Range has valid references.
func (rcv *Range) Validate() error {
	if rcv.RefsLength() > MaxRefs {
		return fmt.Errorf("%w: got %d", ErrTooManyRefs, rcv.RefsLength())
	}
	return nil
}

// DataBytes returns the raw little-endian float64 payload of the grid, or
// nil when the vector is absent. The slice aliases the message buffer.
func (rcv *NumGrid) DataBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o == 0 {
		return nil
	}
	start := rcv._tab.Vector(o)
	n := flatbuffers.UOffsetT(rcv._tab.VectorLen(o))
	return rcv._tab.Bytes[start : start+n*flatbuffers.SizeFloat64]
}

// Valid reports whether the rectangle's bounds are ordered. The codec
// itself passes rectangles through unchecked.
func (rcv *Rect) Valid() bool {
	return rcv.RowFirst() <= rcv.RowLast() && rcv.ColFirst() <= rcv.ColLast()
}

// Name returns the union member name of the value held by the Any.
func (rcv *Any) Name() string {
	return rcv.ValType().String()
}

// HasRefs reports whether the refs vector is present. A present but empty
// vector is distinct from an absent one.
func (rcv *Range) HasRefs() bool {
	return rcv._tab.Offset(6) != 0
}

// HasData reports whether the data vector is present.
func (rcv *Grid) HasData() bool {
	return rcv._tab.Offset(8) != 0
}

// HasData reports whether the data vector is present.
func (rcv *NumGrid) HasData() bool {
	return rcv._tab.Offset(8) != 0
}
