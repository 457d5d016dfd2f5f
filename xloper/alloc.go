package xloper

import (
	"encoding/binary"

	"github.com/wippyai/xlcodec/errors"
	"github.com/wippyai/xlcodec/internal/abi"
)

const zeroChunk = 4096

var zeros [zeroChunk]byte

func alloc(a Allocator, size, align uint32) (uint32, error) {
	ptr, err := a.Alloc(size, align)
	if err != nil {
		return 0, errors.AllocationFailed(errors.PhaseHost, size, align, err)
	}
	if ptr == 0 {
		return 0, errors.AllocationFailed(errors.PhaseHost, size, align, nil)
	}
	return ptr, nil
}

// Zero clears size bytes at ptr.
func Zero(mem Memory, ptr, size uint32) error {
	for size > 0 {
		n := min(size, zeroChunk)
		if err := mem.Write(ptr, zeros[:n]); err != nil {
			return errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "zero memory")
		}
		ptr += n
		size -= n
	}
	return nil
}

// NewCell allocates a cell and stores c in it.
func NewCell(mem Memory, a Allocator, c Cell) (uint32, error) {
	ptr, err := alloc(a, CellSize, CellAlign)
	if err != nil {
		return 0, err
	}
	if err := Store(mem, ptr, c); err != nil {
		a.Free(ptr, CellSize, CellAlign)
		return 0, err
	}
	return ptr, nil
}

// NewArray allocates n zeroed cells. A zeroed cell has type 0 and owns
// nothing, so a partially populated array is always safe to release. A
// zero-length array is the null pointer.
func NewArray(mem Memory, a Allocator, n uint32) (uint32, error) {
	if n == 0 {
		return 0, nil
	}
	size, ok := ArraySize(n)
	if !ok || size > abi.MaxAlloc {
		return 0, errors.Overflow(errors.PhaseHost, []string{"lparray"}, n, "array size")
	}
	ptr, err := alloc(a, size, CellAlign)
	if err != nil {
		return 0, err
	}
	if err := Zero(mem, ptr, size); err != nil {
		a.Free(ptr, size, CellAlign)
		return 0, err
	}
	return ptr, nil
}

// FreeArray frees an array allocated by NewArray without touching the
// cells it holds.
func FreeArray(a Allocator, ptr, n uint32) {
	if ptr == 0 || n == 0 {
		return
	}
	size, ok := ArraySize(n)
	if !ok {
		return
	}
	a.Free(ptr, size, CellAlign)
}

// NewString allocates a host string from UTF-16LE units. The length prefix
// and terminator are written; units beyond MaxHostStringUnits are an error.
func NewString(mem Memory, a Allocator, units []byte) (uint32, error) {
	n := uint32(len(units) / 2)
	if n > abi.MaxHostStringUnits {
		return 0, errors.New(errors.PhaseHost, errors.KindOverflow).
			Path("str").
			Value(n).
			Detail("%d units exceed host limit %d", n, abi.MaxHostStringUnits).
			Build()
	}
	size := StringSize(n)
	ptr, err := alloc(a, size, StringAlign)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, size)
	binary.LittleEndian.PutUint16(buf, uint16(n))
	copy(buf[2:], units[:n*2])
	if err := mem.Write(ptr, buf); err != nil {
		a.Free(ptr, size, StringAlign)
		return 0, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "write string")
	}
	return ptr, nil
}

// StringLen reads the length prefix of the host string at ptr.
func StringLen(mem Memory, ptr uint32) (uint32, error) {
	if ptr == 0 {
		return 0, errors.NilPointer(errors.PhaseHost, nil, "string pointer")
	}
	n, err := mem.ReadU16(ptr)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read string length")
	}
	return uint32(n), nil
}

// ReadString returns a copy of the UTF-16LE units of the host string at ptr.
func ReadString(mem Memory, ptr uint32) ([]byte, error) {
	n, err := StringLen(mem, ptr)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return []byte{}, nil
	}
	raw, err := mem.Read(ptr+2, n*2)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read string")
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// FreeString frees the host string at ptr, sizing it from its prefix.
func FreeString(mem Memory, a Allocator, ptr uint32) error {
	n, err := StringLen(mem, ptr)
	if err != nil {
		return err
	}
	a.Free(ptr, StringSize(n), StringAlign)
	return nil
}

// NewMRef allocates a reference table holding refs.
func NewMRef(mem Memory, a Allocator, refs []Ref) (uint32, error) {
	if len(refs) > abi.MaxRefs {
		return 0, errors.TooManyRefs(errors.PhaseHost, len(refs), abi.MaxRefs)
	}
	size, _ := MRefSize(uint32(len(refs)))
	ptr, err := alloc(a, size, MRefAlign)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, size)
	binary.LittleEndian.PutUint16(buf, uint16(len(refs)))
	for i, r := range refs {
		encodeRef(buf[mrefTable+i*RefSize:], r)
	}
	if err := mem.Write(ptr, buf); err != nil {
		a.Free(ptr, size, MRefAlign)
		return 0, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "write reference table")
	}
	return ptr, nil
}

// ReadRefs reads the reference table at ptr.
func ReadRefs(mem Memory, ptr uint32) ([]Ref, error) {
	if ptr == 0 {
		return nil, errors.NilPointer(errors.PhaseHost, []string{"lpmref"}, "reference table")
	}
	count, err := mem.ReadU16(ptr)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read reference count")
	}
	refs := make([]Ref, count)
	if count == 0 {
		return refs, nil
	}
	raw, err := mem.Read(ptr+mrefTable, uint32(count)*RefSize)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read reference table")
	}
	for i := range refs {
		refs[i] = decodeRef(raw[i*RefSize:])
	}
	return refs, nil
}

// FreeMRef frees the reference table at ptr, sizing it from its count.
func FreeMRef(mem Memory, a Allocator, ptr uint32) error {
	count, err := mem.ReadU16(ptr)
	if err != nil {
		return errors.Wrap(errors.PhaseRelease, errors.KindOutOfBounds, err, "read reference count")
	}
	size, _ := MRefSize(uint32(count))
	a.Free(ptr, size, MRefAlign)
	return nil
}

// NewFP12 allocates an FP12 and fills it from data, the little-endian
// float64 payload. len(data) must be rows*cols*8.
func NewFP12(mem Memory, a Allocator, rows, cols int32, data []byte) (uint32, error) {
	count, ok := abi.CellCount(rows, cols)
	if !ok {
		return 0, errors.New(errors.PhaseHost, errors.KindOverflow).
			Path("fp12").
			Detail("invalid dimensions %d x %d", rows, cols).
			Build()
	}
	size, ok := FP12Size(count)
	if !ok || size > abi.MaxAlloc {
		return 0, errors.Overflow(errors.PhaseHost, []string{"fp12"}, count, "fp12 size")
	}
	if uint32(len(data)) != size-FP12Header {
		return 0, errors.DimensionMismatch(errors.PhaseHost, int64(rows), int64(cols), len(data)/8)
	}
	ptr, err := alloc(a, size, FP12Align)
	if err != nil {
		return 0, err
	}
	var hdr [FP12Header]byte
	binary.LittleEndian.PutUint32(hdr[:], uint32(rows))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(cols))
	err = mem.Write(ptr, hdr[:])
	if err == nil && len(data) > 0 {
		err = mem.Write(ptr+FP12Header, data)
	}
	if err != nil {
		a.Free(ptr, size, FP12Align)
		return 0, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "write fp12")
	}
	return ptr, nil
}

// ReadFP12 reads an FP12's dimensions and payload. The payload is a view
// into host memory.
func ReadFP12(mem Memory, ptr uint32) (rows, cols int32, data []byte, err error) {
	if ptr == 0 {
		return 0, 0, nil, errors.NilPointer(errors.PhaseHost, []string{"fp12"}, "fp12 pointer")
	}
	hdr, err := mem.Read(ptr, FP12Header)
	if err != nil {
		return 0, 0, nil, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read fp12 header")
	}
	rows = int32(binary.LittleEndian.Uint32(hdr))
	cols = int32(binary.LittleEndian.Uint32(hdr[4:]))
	count, ok := abi.CellCount(rows, cols)
	if !ok {
		return rows, cols, nil, errors.New(errors.PhaseHost, errors.KindOverflow).
			Path("fp12").
			Detail("invalid dimensions %d x %d", rows, cols).
			Build()
	}
	n, ok := abi.SafeMulU32(count, 8)
	if !ok {
		return rows, cols, nil, errors.Overflow(errors.PhaseHost, []string{"fp12"}, count, "fp12 size")
	}
	if n == 0 {
		return rows, cols, nil, nil
	}
	data, err = mem.Read(ptr+FP12Header, n)
	if err != nil {
		return rows, cols, nil, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read fp12 data")
	}
	return rows, cols, data, nil
}
