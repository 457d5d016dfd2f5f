package transcoder

import (
	"encoding/binary"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
	"go.uber.org/zap"

	"github.com/wippyai/xlcodec/errors"
	"github.com/wippyai/xlcodec/internal/abi"
	"github.com/wippyai/xlcodec/protocol"
	"github.com/wippyai/xlcodec/xloper"
)

// Encoder serializes host cells into wire messages. Host data is read in
// full before the matching wire table is started, so builder calls are
// never nested. Unreadable or malformed host data degrades to Nil values
// and empty grids rather than failing, and so does a panic raised by the
// Memory while a conversion is reading.
type Encoder struct {
	mem Memory
	cfg Config
}

// NewEncoder creates an Encoder reading from mem.
func NewEncoder(mem Memory, opts ...Option) *Encoder {
	return &Encoder{mem: mem, cfg: newConfig(opts)}
}

// guard runs fn and, if it panics, logs the fault and builds fallback
// instead. Panics only come from host reads, which happen while no table
// is open, so the builder is still usable.
func (e *Encoder) guard(op string, b *flatbuffers.Builder, fallback func(*flatbuffers.Builder) flatbuffers.UOffsetT, fn func() flatbuffers.UOffsetT) (off flatbuffers.UOffsetT) {
	defer func() {
		if r := recover(); r != nil {
			e.cfg.debug(op, errors.Recovered(errors.PhaseEncode, r))
			off = fallback(b)
		}
	}()
	return fn()
}

// load reads the cell at ptr. On failure it logs and reports false.
func (e *Encoder) load(op string, ptr uint32) (xloper.Cell, bool) {
	c, err := xloper.Load(e.mem, ptr)
	if err != nil {
		e.cfg.debug(op, err, zap.Uint32("ptr", ptr))
		return xloper.Cell{}, false
	}
	return c, true
}

// ConvertScalar serializes the cell at ptr as a Scalar. Types outside the
// scalar set become Nil.
func (e *Encoder) ConvertScalar(b *flatbuffers.Builder, ptr uint32) flatbuffers.UOffsetT {
	return e.guard("ConvertScalar", b, nilScalar, func() flatbuffers.UOffsetT {
		c, ok := e.load("ConvertScalar", ptr)
		if !ok {
			return nilScalar(b)
		}
		return e.scalar(b, c)
	})
}

func nilScalar(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return protocol.CreateScalar(b, protocol.ScalarValueNil, protocol.CreateNil(b))
}

func (e *Encoder) scalar(b *flatbuffers.Builder, c xloper.Cell) flatbuffers.UOffsetT {
	switch c.Type.Base() {
	case xloper.TypeNum:
		return protocol.CreateScalar(b, protocol.ScalarValueNum, protocol.CreateNum(b, c.Num))
	case xloper.TypeInt:
		return protocol.CreateScalar(b, protocol.ScalarValueInt, protocol.CreateInt(b, c.W))
	case xloper.TypeBool:
		return protocol.CreateScalar(b, protocol.ScalarValueBool, protocol.CreateBool(b, c.W != 0))
	case xloper.TypeStr:
		s := e.ConvertExcelString(c.Ptr)
		return protocol.CreateScalar(b, protocol.ScalarValueStr, protocol.CreateStr(b, s))
	case xloper.TypeErr:
		return protocol.CreateScalar(b, protocol.ScalarValueErr,
			protocol.CreateErr(b, WireError(xloper.ErrorCode(c.W))))
	default:
		return nilScalar(b)
	}
}

// ConvertGrid serializes the cell at ptr as a Grid. A Multi keeps its
// shape; any other cell becomes a 1x1 grid. Invalid dimensions, a missing
// element array or unreadable memory produce an empty 0x0 grid.
func (e *Encoder) ConvertGrid(b *flatbuffers.Builder, ptr uint32) flatbuffers.UOffsetT {
	return e.guard("ConvertGrid", b, emptyGrid, func() flatbuffers.UOffsetT {
		c, ok := e.load("ConvertGrid", ptr)
		if !ok {
			return emptyGrid(b)
		}
		if c.Type.Base() != xloper.TypeMulti {
			return protocol.CreateGrid(b, 1, 1, []flatbuffers.UOffsetT{e.scalar(b, c)})
		}
		cells, ok := e.elements("ConvertGrid", c)
		if !ok {
			return emptyGrid(b)
		}
		return e.grid(b, c, cells)
	})
}

func emptyGrid(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return protocol.CreateGrid(b, 0, 0, nil)
}

// elements loads the element array of a Multi cell after validating its
// dimensions.
func (e *Encoder) elements(op string, c xloper.Cell) ([]xloper.Cell, bool) {
	n, ok := abi.CellCount(c.Rows, c.Cols)
	if !ok {
		e.cfg.debug(op, protocol.ErrOverflow, zap.Int32("rows", c.Rows), zap.Int32("cols", c.Cols))
		return nil, false
	}
	if n == 0 {
		return []xloper.Cell{}, true
	}
	cells, err := xloper.LoadArray(e.mem, c.Ptr, n)
	if err != nil {
		e.cfg.debug(op, err, zap.Uint32("lparray", c.Ptr), zap.Uint32("count", n))
		return nil, false
	}
	return cells, true
}

func (e *Encoder) grid(b *flatbuffers.Builder, c xloper.Cell, cells []xloper.Cell) flatbuffers.UOffsetT {
	scalars := make([]flatbuffers.UOffsetT, len(cells))
	for i, elem := range cells {
		scalars[i] = e.scalar(b, elem)
	}
	return protocol.CreateGrid(b, uint32(c.Rows), uint32(c.Cols), scalars)
}

// ConvertNumGrid serializes the FP12 at fp as a NumGrid. The payload is
// copied straight from host memory into the builder. A null pointer or
// invalid header produces an empty 0x0 grid.
func (e *Encoder) ConvertNumGrid(b *flatbuffers.Builder, fp uint32) flatbuffers.UOffsetT {
	return e.guard("ConvertNumGrid", b, emptyNumGrid, func() flatbuffers.UOffsetT {
		rows, cols, data, err := xloper.ReadFP12(e.mem, fp)
		if err != nil {
			e.cfg.debug("ConvertNumGrid", err, zap.Uint32("ptr", fp))
			return emptyNumGrid(b)
		}
		if uint64(len(data)) > abi.MaxAlloc {
			e.cfg.debug("ConvertNumGrid", protocol.ErrOverflow, zap.Int("bytes", len(data)))
			return emptyNumGrid(b)
		}
		return numGrid(b, rows, cols, numVector(b, data))
	})
}

func numGrid(b *flatbuffers.Builder, rows, cols int32, vec flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	protocol.NumGridStart(b)
	protocol.NumGridAddRows(b, uint32(rows))
	protocol.NumGridAddCols(b, uint32(cols))
	protocol.NumGridAddData(b, vec)
	return protocol.NumGridEnd(b)
}

func emptyNumGrid(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return protocol.CreateNumGrid(b, 0, 0, []float64{})
}

// numVector writes little-endian float64 data as a NumGrid data vector.
func numVector(b *flatbuffers.Builder, data []byte) flatbuffers.UOffsetT {
	n := len(data) / 8
	protocol.NumGridStartDataVector(b, n)
	for i := n - 1; i >= 0; i-- {
		b.PlaceFloat64(math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:])))
	}
	return b.EndVector(n)
}

// ConvertRange serializes the reference cell at ptr as a Range carrying
// format verbatim. Rectangles are copied without checking their order.
// Cells that are not references, and unreadable reference tables, give a
// Range without refs.
func (e *Encoder) ConvertRange(b *flatbuffers.Builder, ptr uint32, format string) flatbuffers.UOffsetT {
	noRefs := func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateRange(b, nil, format)
	}
	return e.guard("ConvertRange", b, noRefs, func() flatbuffers.UOffsetT {
		c, ok := e.load("ConvertRange", ptr)
		if !ok {
			return noRefs(b)
		}
		return e.rangeOf(b, c, format)
	})
}

func (e *Encoder) rangeOf(b *flatbuffers.Builder, c xloper.Cell, format string) flatbuffers.UOffsetT {
	var rects []protocol.RectT
	switch c.Type.Base() {
	case xloper.TypeSRef:
		rects = []protocol.RectT{rect(c.Ref)}
	case xloper.TypeRef:
		refs, err := xloper.ReadRefs(e.mem, c.Ptr)
		if err != nil {
			e.cfg.debug("ConvertRange", err, zap.Uint32("lpmref", c.Ptr))
			break
		}
		rects = make([]protocol.RectT, len(refs))
		for i, r := range refs {
			rects[i] = rect(r)
		}
	}
	return protocol.CreateRange(b, rects, format)
}

func rect(r xloper.Ref) protocol.RectT {
	return protocol.RectT{
		RowFirst: r.RowFirst,
		RowLast:  r.RowLast,
		ColFirst: r.ColFirst,
		ColLast:  r.ColLast,
	}
}

// ConvertMultiToAny serializes the Multi cell at ptr as an Any. Arrays made
// only of numbers become a NumGrid, anything else a Grid. Invalid arrays
// become an empty Grid.
func (e *Encoder) ConvertMultiToAny(b *flatbuffers.Builder, ptr uint32) flatbuffers.UOffsetT {
	return e.guard("ConvertMultiToAny", b, emptyGridAny, func() flatbuffers.UOffsetT {
		c, ok := e.load("ConvertMultiToAny", ptr)
		if !ok || c.Type.Base() != xloper.TypeMulti {
			return emptyGridAny(b)
		}
		return e.multiToAny(b, c)
	})
}

func emptyGridAny(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return protocol.CreateAny(b, protocol.AnyValueGrid, emptyGrid(b))
}

func (e *Encoder) multiToAny(b *flatbuffers.Builder, c xloper.Cell) flatbuffers.UOffsetT {
	cells, ok := e.elements("ConvertMultiToAny", c)
	if !ok {
		return emptyGridAny(b)
	}
	for _, elem := range cells {
		if elem.Type.Base() != xloper.TypeNum {
			return protocol.CreateAny(b, protocol.AnyValueGrid, e.grid(b, c, cells))
		}
	}
	protocol.NumGridStartDataVector(b, len(cells))
	for i := len(cells) - 1; i >= 0; i-- {
		b.PlaceFloat64(cells[i].Num)
	}
	vec := b.EndVector(len(cells))
	return protocol.CreateAny(b, protocol.AnyValueNumGrid, numGrid(b, c.Rows, c.Cols, vec))
}

// ConvertAny serializes the cell at ptr as an Any. Ownership bits are
// ignored. References become a Range with an empty format, Missing and
// unknown types become Nil.
func (e *Encoder) ConvertAny(b *flatbuffers.Builder, ptr uint32) flatbuffers.UOffsetT {
	return e.guard("ConvertAny", b, nilAny, func() flatbuffers.UOffsetT {
		return e.anyOf(b, ptr)
	})
}

func nilAny(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return protocol.CreateAny(b, protocol.AnyValueNil, protocol.CreateNil(b))
}

func (e *Encoder) anyOf(b *flatbuffers.Builder, ptr uint32) flatbuffers.UOffsetT {
	c, ok := e.load("ConvertAny", ptr)
	if !ok {
		return nilAny(b)
	}
	switch c.Type.Base() {
	case xloper.TypeNum:
		return protocol.CreateAny(b, protocol.AnyValueNum, protocol.CreateNum(b, c.Num))
	case xloper.TypeInt:
		return protocol.CreateAny(b, protocol.AnyValueInt, protocol.CreateInt(b, c.W))
	case xloper.TypeBool:
		return protocol.CreateAny(b, protocol.AnyValueBool, protocol.CreateBool(b, c.W != 0))
	case xloper.TypeStr:
		s := e.ConvertExcelString(c.Ptr)
		return protocol.CreateAny(b, protocol.AnyValueStr, protocol.CreateStr(b, s))
	case xloper.TypeErr:
		return protocol.CreateAny(b, protocol.AnyValueErr, protocol.CreateErr(b, WireError(xloper.ErrorCode(c.W))))
	case xloper.TypeRef, xloper.TypeSRef:
		return protocol.CreateAny(b, protocol.AnyValueRange, e.rangeOf(b, c, ""))
	case xloper.TypeMulti:
		return e.multiToAny(b, c)
	default:
		return nilAny(b)
	}
}
