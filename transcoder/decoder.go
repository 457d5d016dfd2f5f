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

// Decoder materializes wire messages as host cells. Every cell it returns
// is marked xlbitDLLFree and is released with xloper.Release (FP12 arrays
// with xloper.ReleaseFP12).
//
// The exported methods never fail: malformed input, size overflow and
// allocation failure all become a #VALUE! cell (a 0x0 FP12 for
// NumGridToFP12), and nothing allocated along the way is leaked. A zero
// pointer is returned only when even that fallback cannot be allocated, or
// when the input itself is nil.
type Decoder struct {
	mem   Memory
	alloc Allocator
	cfg   Config
}

// NewDecoder creates a Decoder writing into mem with memory from alloc.
func NewDecoder(mem Memory, alloc Allocator, opts ...Option) *Decoder {
	return &Decoder{mem: mem, alloc: alloc, cfg: newConfig(opts)}
}

// guard runs fn, turning a panic into an error and logging any failure.
func (d *Decoder) guard(op string, fn func() (uint32, error)) (ptr uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			ptr, err = 0, errors.Recovered(errors.PhaseDecode, r)
		}
		if err != nil {
			d.cfg.debug(op, err)
		}
	}()
	return fn()
}

// cell allocates a standalone owned cell holding c.
func (d *Decoder) cell(c xloper.Cell) (uint32, error) {
	c.Type |= xloper.BitDLLFree
	return xloper.NewCell(d.mem, d.alloc, c)
}

// rollback frees what allocs recorded unless it was committed, noting how
// many allocations were undone.
func (d *Decoder) rollback(op string, allocs *AllocationList) {
	if n := allocs.Count(); n > 0 && !allocs.committed && d.cfg.Debug {
		d.cfg.Logger.Debug(op+" rolled back", zap.Int("allocations", n))
	}
	allocs.Rollback(d.alloc)
}

func (d *Decoder) errorCell(code xloper.ErrorCode) uint32 {
	ptr, err := d.cell(xloper.Cell{Type: xloper.TypeErr, W: int32(code)})
	if err != nil {
		d.cfg.debug("error cell", err)
		return 0
	}
	return ptr
}

// AnyToXLOPER12 materializes v. A nil v gives a Nil cell. RefCache values
// become a string token prefixed with RefCacheTokenPrefix (#N/A for an
// empty key) and AsyncHandle values become AsyncSentinel.
func (d *Decoder) AnyToXLOPER12(v *protocol.Any) uint32 {
	ptr, err := d.guard("AnyToXLOPER12", func() (uint32, error) {
		return d.anyToXLOPER12(v)
	})
	if err != nil {
		return d.errorCell(xloper.ErrorValue)
	}
	return ptr
}

func (d *Decoder) anyToXLOPER12(v *protocol.Any) (uint32, error) {
	if v == nil {
		return d.cell(xloper.Cell{Type: xloper.TypeNil})
	}
	typ := v.ValType()
	var tab flatbuffers.Table
	if typ != protocol.AnyValueNONE && !v.Val(&tab) {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path("any").
			WireType(typ.String()).
			Detail("union tag without value").
			Build()
	}

	switch typ {
	case protocol.AnyValueNum:
		var n protocol.Num
		n.Init(tab.Bytes, tab.Pos)
		return d.cell(xloper.Cell{Type: xloper.TypeNum, Num: n.Val()})
	case protocol.AnyValueInt:
		var n protocol.Int
		n.Init(tab.Bytes, tab.Pos)
		return d.cell(xloper.Cell{Type: xloper.TypeInt, W: n.Val()})
	case protocol.AnyValueBool:
		var bv protocol.Bool
		bv.Init(tab.Bytes, tab.Pos)
		return d.cell(xloper.Cell{Type: xloper.TypeBool, W: boolWord(bv.Val())})
	case protocol.AnyValueStr:
		var s protocol.Str
		s.Init(tab.Bytes, tab.Pos)
		return d.newStringCell(s.Val())
	case protocol.AnyValueErr:
		var e protocol.Err
		e.Init(tab.Bytes, tab.Pos)
		return d.cell(xloper.Cell{Type: xloper.TypeErr, W: int32(HostError(e.Val()))})
	case protocol.AnyValueGrid:
		var g protocol.Grid
		g.Init(tab.Bytes, tab.Pos)
		return d.gridToXLOPER12(&g)
	case protocol.AnyValueNumGrid:
		var ng protocol.NumGrid
		ng.Init(tab.Bytes, tab.Pos)
		return d.numGridToMulti(&ng)
	case protocol.AnyValueRange:
		var r protocol.Range
		r.Init(tab.Bytes, tab.Pos)
		return d.rangeToXLOPER12(&r)
	case protocol.AnyValueRefCache:
		var rc protocol.RefCache
		rc.Init(tab.Bytes, tab.Pos)
		key := rc.Key()
		if len(key) == 0 {
			return d.cell(xloper.Cell{Type: xloper.TypeErr, W: int32(xloper.ErrorNA)})
		}
		token := make([]byte, 0, len(RefCacheTokenPrefix)+len(key))
		token = append(token, RefCacheTokenPrefix...)
		token = append(token, key...)
		return d.newStringCell(token)
	case protocol.AnyValueAsyncHandle:
		return d.newStringCell([]byte(AsyncSentinel))
	default:
		return d.cell(xloper.Cell{Type: xloper.TypeNil})
	}
}

func boolWord(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// GridToXLOPER12 materializes g as an xltypeMulti. The data vector must be
// present and its length must equal rows*cols exactly. A nil g gives a
// zero pointer.
func (d *Decoder) GridToXLOPER12(g *protocol.Grid) uint32 {
	if g == nil {
		return 0
	}
	ptr, err := d.guard("GridToXLOPER12", func() (uint32, error) {
		return d.gridToXLOPER12(g)
	})
	if err != nil {
		return d.errorCell(xloper.ErrorValue)
	}
	return ptr
}

func (d *Decoder) gridToXLOPER12(g *protocol.Grid) (uint32, error) {
	if !g.HasData() {
		return 0, errors.InvalidData(errors.PhaseValidate, []string{"grid", "data"}, "missing data vector")
	}
	if err := g.Validate(); err != nil {
		return 0, errors.Wrap(errors.PhaseValidate, errors.KindDimensionMismatch, err, "grid")
	}
	rows, cols := protocol.Dims(g.Rows(), g.Cols())
	n := uint32(g.DataLength())

	allocs := NewAllocationList()
	defer d.rollback("GridToXLOPER12", allocs)

	ptr, arr, err := d.newMulti(allocs, n)
	if err != nil {
		return 0, err
	}
	var s protocol.Scalar
	err = d.fillCells(arr, n, func(i int) (xloper.Cell, error) {
		if !g.Data(&s, i) {
			return xloper.Cell{Type: xloper.TypeNil}, nil
		}
		return d.gridElement(&s, allocs)
	})
	if err != nil {
		return 0, err
	}
	return d.commitMulti(allocs, ptr, arr, rows, cols)
}

// gridElement converts one grid scalar. Strings it allocates are recorded
// in allocs. Elements carry no ownership bits.
func (d *Decoder) gridElement(s *protocol.Scalar, allocs *AllocationList) (xloper.Cell, error) {
	typ := s.ValType()
	var tab flatbuffers.Table
	if typ == protocol.ScalarValueNONE || !s.Val(&tab) {
		return xloper.Cell{Type: xloper.TypeNil}, nil
	}
	switch typ {
	case protocol.ScalarValueNum:
		var n protocol.Num
		n.Init(tab.Bytes, tab.Pos)
		return xloper.Cell{Type: xloper.TypeNum, Num: n.Val()}, nil
	case protocol.ScalarValueInt:
		var n protocol.Int
		n.Init(tab.Bytes, tab.Pos)
		return xloper.Cell{Type: xloper.TypeInt, W: n.Val()}, nil
	case protocol.ScalarValueBool:
		var bv protocol.Bool
		bv.Init(tab.Bytes, tab.Pos)
		return xloper.Cell{Type: xloper.TypeBool, W: boolWord(bv.Val())}, nil
	case protocol.ScalarValueErr:
		var e protocol.Err
		e.Init(tab.Bytes, tab.Pos)
		return xloper.Cell{Type: xloper.TypeErr, W: int32(HostError(e.Val()))}, nil
	case protocol.ScalarValueStr:
		var str protocol.Str
		str.Init(tab.Bytes, tab.Pos)
		ptr, size, err := d.newString(str.Val())
		if err != nil {
			return xloper.Cell{}, err
		}
		allocs.Add(ptr, size, xloper.StringAlign)
		return xloper.Cell{Type: xloper.TypeStr, Ptr: ptr}, nil
	default:
		return xloper.Cell{Type: xloper.TypeNil}, nil
	}
}

// newMulti allocates the outer cell and a zeroed array of n cells, both
// recorded in allocs. The outer cell holds Nil until commitMulti.
func (d *Decoder) newMulti(allocs *AllocationList, n uint32) (ptr, arr uint32, err error) {
	size, ok := xloper.ArraySize(n)
	if !ok || size > abi.MaxAlloc {
		return 0, 0, errors.Overflow(errors.PhaseDecode, []string{"lparray"}, n, "array size")
	}
	ptr, err = xloper.NewCell(d.mem, d.alloc, xloper.Cell{Type: xloper.TypeNil})
	if err != nil {
		return 0, 0, err
	}
	allocs.Add(ptr, xloper.CellSize, xloper.CellAlign)

	arr, err = xloper.NewArray(d.mem, d.alloc, n)
	if err != nil {
		return 0, 0, err
	}
	allocs.Add(arr, size, xloper.CellAlign)
	return ptr, arr, nil
}

func (d *Decoder) commitMulti(allocs *AllocationList, ptr, arr uint32, rows, cols int32) (uint32, error) {
	err := xloper.Store(d.mem, ptr, xloper.Cell{
		Type: xloper.TypeMulti | xloper.BitDLLFree,
		Ptr:  arr,
		Rows: rows,
		Cols: cols,
	})
	if err != nil {
		return 0, err
	}
	allocs.Commit()
	return ptr, nil
}

var zeroCell [xloper.CellSize]byte

// fillCells writes n cells produced by elem into the array at arr, a chunk
// at a time.
func (d *Decoder) fillCells(arr, n uint32, elem func(i int) (xloper.Cell, error)) error {
	bufp := getCellBuf()
	defer putCellBuf(bufp)

	buf := (*bufp)[:0]
	dst := arr
	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := d.mem.Write(dst, buf); err != nil {
			return errors.Wrap(errors.PhaseHost, errors.KindOutOfBounds, err, "write array")
		}
		dst += uint32(len(buf))
		buf = buf[:0]
		return nil
	}

	for i := 0; i < int(n); i++ {
		c, err := elem(i)
		if err != nil {
			return err
		}
		off := len(buf)
		buf = append(buf, zeroCell[:]...)
		xloper.EncodeCell(buf[off:], c)
		if len(buf) >= cellChunk*xloper.CellSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	err := flush()
	*bufp = buf
	return err
}

// numGridToMulti materializes a NumGrid carried in an Any as an
// xltypeMulti of numbers. Data longer than rows*cols is accepted and the
// excess ignored.
func (d *Decoder) numGridToMulti(ng *protocol.NumGrid) (uint32, error) {
	rows, cols := protocol.Dims(ng.Rows(), ng.Cols())
	count, err := protocol.CheckDims(rows, cols)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseValidate, errors.KindOverflow, err, "numgrid")
	}
	data := ng.DataBytes()
	if data == nil {
		return 0, errors.InvalidData(errors.PhaseValidate, []string{"numgrid", "data"}, "missing data vector")
	}
	if len(data)/8 < count {
		return 0, errors.DimensionMismatch(errors.PhaseValidate, int64(rows), int64(cols), len(data)/8)
	}
	n := uint32(count)

	allocs := NewAllocationList()
	defer d.rollback("AnyToXLOPER12", allocs)

	ptr, arr, err := d.newMulti(allocs, n)
	if err != nil {
		return 0, err
	}
	err = d.fillCells(arr, n, func(i int) (xloper.Cell, error) {
		v := math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
		return xloper.Cell{Type: xloper.TypeNum, Num: v}, nil
	})
	if err != nil {
		return 0, err
	}
	return d.commitMulti(allocs, ptr, arr, rows, cols)
}

// RangeToXLOPER12 materializes r as an xltypeRef with sheet id 0. A Range
// without a refs vector, or with more refs than the host table can count,
// gives #VALUE! without allocating anything else. Rectangles are copied as
// given. A nil r gives a zero pointer.
func (d *Decoder) RangeToXLOPER12(r *protocol.Range) uint32 {
	if r == nil {
		return 0
	}
	ptr, err := d.guard("RangeToXLOPER12", func() (uint32, error) {
		return d.rangeToXLOPER12(r)
	})
	if err != nil {
		return d.errorCell(xloper.ErrorValue)
	}
	return ptr
}

func (d *Decoder) rangeToXLOPER12(r *protocol.Range) (uint32, error) {
	if !r.HasRefs() {
		return 0, errors.InvalidData(errors.PhaseValidate, []string{"range", "refs"}, "missing refs vector")
	}
	n := r.RefsLength()
	if err := r.Validate(); err != nil {
		return 0, errors.TooManyRefs(errors.PhaseValidate, n, abi.MaxRefs)
	}
	refs := make([]xloper.Ref, n)
	var rc protocol.Rect
	for i := range refs {
		if !r.Refs(&rc, i) {
			return 0, errors.OutOfBounds(errors.PhaseDecode, []string{"range", "refs"}, i, n)
		}
		refs[i] = xloper.Ref{
			RowFirst: rc.RowFirst(),
			RowLast:  rc.RowLast(),
			ColFirst: rc.ColFirst(),
			ColLast:  rc.ColLast(),
		}
	}

	allocs := NewAllocationList()
	defer d.rollback("RangeToXLOPER12", allocs)

	table, err := xloper.NewMRef(d.mem, d.alloc, refs)
	if err != nil {
		return 0, err
	}
	size, _ := xloper.MRefSize(uint32(n))
	allocs.Add(table, size, xloper.MRefAlign)

	ptr, err := d.cell(xloper.Cell{Type: xloper.TypeRef, Ptr: table})
	if err != nil {
		return 0, err
	}
	allocs.Commit()
	return ptr, nil
}

// NumGridToFP12 materializes g as an FP12 array, released with
// xloper.ReleaseFP12. Any validation or allocation failure gives a 0x0
// FP12 instead of an error cell. A nil g gives a zero pointer.
func (d *Decoder) NumGridToFP12(g *protocol.NumGrid) uint32 {
	if g == nil {
		return 0
	}
	ptr, err := d.guard("NumGridToFP12", func() (uint32, error) {
		return d.numGridToFP12(g)
	})
	if err == nil {
		return ptr
	}
	ptr, err = xloper.NewFP12(d.mem, d.alloc, 0, 0, nil)
	if err != nil {
		d.cfg.debug("empty fp12", err)
		return 0
	}
	return ptr
}

func (d *Decoder) numGridToFP12(g *protocol.NumGrid) (uint32, error) {
	if !g.HasData() {
		return 0, errors.InvalidData(errors.PhaseValidate, []string{"numgrid", "data"}, "missing data vector")
	}
	if err := g.Validate(); err != nil {
		return 0, errors.Wrap(errors.PhaseValidate, errors.KindDimensionMismatch, err, "numgrid")
	}
	rows, cols := protocol.Dims(g.Rows(), g.Cols())
	return xloper.NewFP12(d.mem, d.alloc, rows, cols, g.DataBytes())
}
