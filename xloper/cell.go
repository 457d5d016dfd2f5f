package xloper

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/xlcodec/errors"
)

// Ref is an XLREF12 rectangle. Bounds are inclusive and not checked for
// ordering.
type Ref struct {
	RowFirst, RowLast int32
	ColFirst, ColLast int32
}

// Cell is the decoded form of one XLOPER12. Only the fields belonging to
// Type's base are meaningful.
type Cell struct {
	Type    Type
	Num     float64 // xltypeNum
	W       int32   // xltypeInt, xltypeBool, xltypeErr
	Ptr     uint32  // str, lparray or lpmref
	Rows    int32   // xltypeMulti
	Cols    int32   // xltypeMulti
	Count   uint16  // xltypeSRef
	Ref     Ref     // xltypeSRef
	SheetID uint64  // xltypeRef
}

// DecodeCell parses one cell from raw, which must hold CellSize bytes.
func DecodeCell(raw []byte) Cell {
	_ = raw[CellSize-1]
	c := Cell{Type: Type(binary.LittleEndian.Uint32(raw[typeOffset:]))}
	switch c.Type.Base() {
	case TypeNum:
		c.Num = math.Float64frombits(binary.LittleEndian.Uint64(raw))
	case TypeInt, TypeBool, TypeErr:
		c.W = int32(binary.LittleEndian.Uint32(raw))
	case TypeStr:
		c.Ptr = binary.LittleEndian.Uint32(raw)
	case TypeMulti:
		c.Ptr = binary.LittleEndian.Uint32(raw)
		c.Rows = int32(binary.LittleEndian.Uint32(raw[4:]))
		c.Cols = int32(binary.LittleEndian.Uint32(raw[8:]))
	case TypeRef:
		c.Ptr = binary.LittleEndian.Uint32(raw)
		c.SheetID = binary.LittleEndian.Uint64(raw[8:])
	case TypeSRef:
		c.Count = binary.LittleEndian.Uint16(raw)
		c.Ref = decodeRef(raw[4:])
	}
	return c
}

// EncodeCell serializes c into raw, which must hold CellSize bytes. Bytes
// not used by the type are zeroed.
func EncodeCell(raw []byte, c Cell) {
	_ = raw[CellSize-1]
	clear(raw[:CellSize])
	switch c.Type.Base() {
	case TypeNum:
		binary.LittleEndian.PutUint64(raw, math.Float64bits(c.Num))
	case TypeInt, TypeBool, TypeErr:
		binary.LittleEndian.PutUint32(raw, uint32(c.W))
	case TypeStr:
		binary.LittleEndian.PutUint32(raw, c.Ptr)
	case TypeMulti:
		binary.LittleEndian.PutUint32(raw, c.Ptr)
		binary.LittleEndian.PutUint32(raw[4:], uint32(c.Rows))
		binary.LittleEndian.PutUint32(raw[8:], uint32(c.Cols))
	case TypeRef:
		binary.LittleEndian.PutUint32(raw, c.Ptr)
		binary.LittleEndian.PutUint64(raw[8:], c.SheetID)
	case TypeSRef:
		binary.LittleEndian.PutUint16(raw, c.Count)
		encodeRef(raw[4:], c.Ref)
	}
	binary.LittleEndian.PutUint32(raw[typeOffset:], uint32(c.Type))
}

func decodeRef(raw []byte) Ref {
	return Ref{
		RowFirst: int32(binary.LittleEndian.Uint32(raw)),
		RowLast:  int32(binary.LittleEndian.Uint32(raw[4:])),
		ColFirst: int32(binary.LittleEndian.Uint32(raw[8:])),
		ColLast:  int32(binary.LittleEndian.Uint32(raw[12:])),
	}
}

func encodeRef(raw []byte, r Ref) {
	binary.LittleEndian.PutUint32(raw, uint32(r.RowFirst))
	binary.LittleEndian.PutUint32(raw[4:], uint32(r.RowLast))
	binary.LittleEndian.PutUint32(raw[8:], uint32(r.ColFirst))
	binary.LittleEndian.PutUint32(raw[12:], uint32(r.ColLast))
}

// Load reads the cell at ptr.
func Load(mem Memory, ptr uint32) (Cell, error) {
	if ptr == 0 {
		return Cell{}, errors.NilPointer(errors.PhaseHost, nil, "cell pointer")
	}
	raw, err := mem.Read(ptr, CellSize)
	if err != nil {
		return Cell{}, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read cell")
	}
	return DecodeCell(raw), nil
}

// Store writes c at ptr.
func Store(mem Memory, ptr uint32, c Cell) error {
	if ptr == 0 {
		return errors.NilPointer(errors.PhaseHost, nil, "cell pointer")
	}
	var raw [CellSize]byte
	EncodeCell(raw[:], c)
	if err := mem.Write(ptr, raw[:]); err != nil {
		return errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "write cell")
	}
	return nil
}

// LoadArray reads n consecutive cells starting at ptr.
func LoadArray(mem Memory, ptr, n uint32) ([]Cell, error) {
	if n == 0 {
		return nil, nil
	}
	if ptr == 0 {
		return nil, errors.NilPointer(errors.PhaseHost, nil, "array pointer")
	}
	size, ok := ArraySize(n)
	if !ok {
		return nil, errors.Overflow(errors.PhaseHost, nil, n, "array size")
	}
	raw, err := mem.Read(ptr, size)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "read array")
	}
	cells := make([]Cell, n)
	for i := range cells {
		cells[i] = DecodeCell(raw[i*CellSize:])
	}
	return cells, nil
}
