package protocol

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// detach finishes b at off and returns a copy of the bytes that owns its
// own backing array.
func detach(b *flatbuffers.Builder, off flatbuffers.UOffsetT) []byte {
	b.Finish(off)
	buf := b.FinishedBytes()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}

// copyUnion copies a union member addressed by tab into b. ok is false for
// NONE and for tags this schema version does not know.
func copyUnion(b *flatbuffers.Builder, tag AnyValue, tab flatbuffers.Table) (off flatbuffers.UOffsetT, ok bool) {
	switch tag {
	case AnyValueBool:
		return (&Bool{_tab: tab}).DeepCopy(b), true
	case AnyValueNum:
		return (&Num{_tab: tab}).DeepCopy(b), true
	case AnyValueInt:
		return (&Int{_tab: tab}).DeepCopy(b), true
	case AnyValueStr:
		return (&Str{_tab: tab}).DeepCopy(b), true
	case AnyValueErr:
		return (&Err{_tab: tab}).DeepCopy(b), true
	case AnyValueAsyncHandle:
		return (&AsyncHandle{_tab: tab}).DeepCopy(b), true
	case AnyValueNil:
		return (&Nil{_tab: tab}).DeepCopy(b), true
	case AnyValueGrid:
		return (&Grid{_tab: tab}).DeepCopy(b), true
	case AnyValueNumGrid:
		return (&NumGrid{_tab: tab}).DeepCopy(b), true
	case AnyValueRange:
		return (&Range{_tab: tab}).DeepCopy(b), true
	case AnyValueRefCache:
		return (&RefCache{_tab: tab}).DeepCopy(b), true
	}
	return 0, false
}

// Clone creates a deep copy of the Scalar in a new buffer.
func (rcv *Scalar) Clone() *Scalar {
	if rcv == nil {
		return nil
	}
	b := flatbuffers.NewBuilder(0)
	return GetRootAsScalar(detach(b, rcv.DeepCopy(b)), 0)
}

// DeepCopy serializes the Scalar into the builder. ScalarValue tags share
// their numbering with AnyValue, so the member copy is shared too.
func (rcv *Scalar) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if rcv == nil {
		return 0
	}
	typ := rcv.ValType()
	var val flatbuffers.UOffsetT
	var tab flatbuffers.Table
	ok := false
	if typ <= ScalarValueNil && rcv.Val(&tab) {
		val, ok = copyUnion(b, AnyValue(typ), tab)
	}
	ScalarStart(b)
	if ok {
		ScalarAddValType(b, typ)
		ScalarAddVal(b, val)
	}
	return ScalarEnd(b)
}

func (rcv *Bool) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateBool(b, rcv.Val())
}

func (rcv *Num) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateNum(b, rcv.Val())
}

func (rcv *Int) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateInt(b, rcv.Val())
}

func (rcv *Str) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	off := b.CreateByteString(rcv.Val())
	StrStart(b)
	StrAddVal(b, off)
	return StrEnd(b)
}

func (rcv *Err) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateErr(b, rcv.Val())
}

func (rcv *AsyncHandle) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateAsyncHandle(b, rcv.ValBytes())
}

func (rcv *Nil) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return CreateNil(b)
}

func (rcv *RefCache) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	off := b.CreateByteString(rcv.Key())
	RefCacheStart(b)
	RefCacheAddKey(b, off)
	return RefCacheEnd(b)
}

// Clone creates a deep copy of the Grid in a new buffer.
func (rcv *Grid) Clone() *Grid {
	if rcv == nil {
		return nil
	}
	b := flatbuffers.NewBuilder(0)
	return GetRootAsGrid(detach(b, rcv.DeepCopy(b)), 0)
}

// DeepCopy serializes the Grid into the builder. An absent data vector
// stays absent.
func (rcv *Grid) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if rcv == nil {
		return 0
	}
	var scalars []flatbuffers.UOffsetT
	if rcv.HasData() {
		n := rcv.DataLength()
		scalars = make([]flatbuffers.UOffsetT, n)
		s := new(Scalar)
		for i := 0; i < n; i++ {
			if rcv.Data(s, i) {
				scalars[i] = s.DeepCopy(b)
			} else {
				scalars[i] = CreateScalar(b, ScalarValueNil, CreateNil(b))
			}
		}
	}
	return CreateGrid(b, rcv.Rows(), rcv.Cols(), scalars)
}

// Clone creates a deep copy of the NumGrid in a new buffer.
func (rcv *NumGrid) Clone() *NumGrid {
	if rcv == nil {
		return nil
	}
	b := flatbuffers.NewBuilder(0)
	return GetRootAsNumGrid(detach(b, rcv.DeepCopy(b)), 0)
}

// DeepCopy serializes the NumGrid into the builder.
func (rcv *NumGrid) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if rcv == nil {
		return 0
	}
	var values []float64
	if rcv.HasData() {
		n := rcv.DataLength()
		values = make([]float64, n)
		for i := range values {
			values[i] = rcv.Data(i)
		}
	}
	return CreateNumGrid(b, rcv.Rows(), rcv.Cols(), values)
}

// Clone creates a deep copy of the Range in a new buffer.
func (rcv *Range) Clone() *Range {
	if rcv == nil {
		return nil
	}
	b := flatbuffers.NewBuilder(0)
	return GetRootAsRange(detach(b, rcv.DeepCopy(b)), 0)
}

// DeepCopy serializes the Range into the builder. The sheet id and a
// missing refs vector are preserved.
func (rcv *Range) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if rcv == nil {
		return 0
	}
	var formatOff flatbuffers.UOffsetT
	if format := rcv.Format(); format != nil {
		formatOff = b.CreateByteString(format)
	}

	var refsOff flatbuffers.UOffsetT
	if rcv.HasRefs() {
		n := rcv.RefsLength()
		RangeStartRefsVector(b, n)
		r := new(Rect)
		for i := n - 1; i >= 0; i-- {
			if rcv.Refs(r, i) {
				CreateRect(b, r.RowFirst(), r.RowLast(), r.ColFirst(), r.ColLast())
			}
		}
		refsOff = b.EndVector(n)
	}

	RangeStart(b)
	RangeAddSheetId(b, rcv.SheetId())
	if refsOff != 0 {
		RangeAddRefs(b, refsOff)
	}
	if formatOff != 0 {
		RangeAddFormat(b, formatOff)
	}
	return RangeEnd(b)
}

// Clone creates a deep copy of the Any in a new buffer.
func (rcv *Any) Clone() *Any {
	if rcv == nil {
		return nil
	}
	b := flatbuffers.NewBuilder(0)
	return GetRootAsAny(detach(b, rcv.DeepCopy(b)), 0)
}

// DeepCopy serializes the Any into the builder. Unknown union members are
// dropped and the copy holds NONE.
func (rcv *Any) DeepCopy(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	if rcv == nil {
		return 0
	}
	typ := rcv.ValType()
	var val flatbuffers.UOffsetT
	var tab flatbuffers.Table
	ok := false
	if rcv.Val(&tab) {
		val, ok = copyUnion(b, typ, tab)
	}
	AnyStart(b)
	if ok {
		AnyAddValType(b, typ)
		AnyAddVal(b, val)
	}
	return AnyEnd(b)
}
