package protocol

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// RectT is the plain form of a Rect used when building messages.
type RectT struct {
	RowFirst, RowLast, ColFirst, ColLast int32
}

func CreateBool(b *flatbuffers.Builder, v bool) flatbuffers.UOffsetT {
	BoolStart(b)
	BoolAddVal(b, v)
	return BoolEnd(b)
}

func CreateNum(b *flatbuffers.Builder, v float64) flatbuffers.UOffsetT {
	NumStart(b)
	NumAddVal(b, v)
	return NumEnd(b)
}

func CreateInt(b *flatbuffers.Builder, v int32) flatbuffers.UOffsetT {
	IntStart(b)
	IntAddVal(b, v)
	return IntEnd(b)
}

func CreateStr(b *flatbuffers.Builder, s string) flatbuffers.UOffsetT {
	off := b.CreateString(s)
	StrStart(b)
	StrAddVal(b, off)
	return StrEnd(b)
}

func CreateErr(b *flatbuffers.Builder, v XlError) flatbuffers.UOffsetT {
	ErrStart(b)
	ErrAddVal(b, v)
	return ErrEnd(b)
}

func CreateNil(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	NilStart(b)
	return NilEnd(b)
}

func CreateAsyncHandle(b *flatbuffers.Builder, handle []byte) flatbuffers.UOffsetT {
	vec := b.CreateByteVector(handle)
	AsyncHandleStart(b)
	AsyncHandleAddVal(b, vec)
	return AsyncHandleEnd(b)
}

func CreateRefCache(b *flatbuffers.Builder, key string) flatbuffers.UOffsetT {
	off := b.CreateString(key)
	RefCacheStart(b)
	RefCacheAddKey(b, off)
	return RefCacheEnd(b)
}

func CreateScalar(b *flatbuffers.Builder, typ ScalarValue, val flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	ScalarStart(b)
	ScalarAddValType(b, typ)
	ScalarAddVal(b, val)
	return ScalarEnd(b)
}

func CreateAny(b *flatbuffers.Builder, typ AnyValue, val flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	AnyStart(b)
	AnyAddValType(b, typ)
	AnyAddVal(b, val)
	return AnyEnd(b)
}

// CreateGrid builds a Grid from already-built Scalar offsets. A nil slice
// leaves the data vector absent.
func CreateGrid(b *flatbuffers.Builder, rows, cols uint32, scalars []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	var data flatbuffers.UOffsetT
	if scalars != nil {
		data = b.CreateVectorOfTables(scalars)
	}
	GridStart(b)
	GridAddRows(b, rows)
	GridAddCols(b, cols)
	if data != 0 {
		GridAddData(b, data)
	}
	return GridEnd(b)
}

// CreateNumGrid builds a NumGrid. A nil slice leaves the data vector absent.
func CreateNumGrid(b *flatbuffers.Builder, rows, cols uint32, values []float64) flatbuffers.UOffsetT {
	var data flatbuffers.UOffsetT
	if values != nil {
		NumGridStartDataVector(b, len(values))
		for i := len(values) - 1; i >= 0; i-- {
			b.PrependFloat64(values[i])
		}
		data = b.EndVector(len(values))
	}
	NumGridStart(b)
	NumGridAddRows(b, rows)
	NumGridAddCols(b, cols)
	if data != 0 {
		NumGridAddData(b, data)
	}
	return NumGridEnd(b)
}

// CreateRange builds a Range. A nil slice leaves the refs vector absent.
func CreateRange(b *flatbuffers.Builder, rects []RectT, format string) flatbuffers.UOffsetT {
	fmtOff := b.CreateString(format)
	var refs flatbuffers.UOffsetT
	if rects != nil {
		RangeStartRefsVector(b, len(rects))
		for i := len(rects) - 1; i >= 0; i-- {
			r := rects[i]
			CreateRect(b, r.RowFirst, r.RowLast, r.ColFirst, r.ColLast)
		}
		refs = b.EndVector(len(rects))
	}
	RangeStart(b)
	RangeAddSheetId(b, 0)
	if refs != 0 {
		RangeAddRefs(b, refs)
	}
	RangeAddFormat(b, fmtOff)
	return RangeEnd(b)
}

// FinishAny finishes the builder with root and returns a copy of the
// message bytes that outlives the builder.
func FinishAny(b *flatbuffers.Builder, root flatbuffers.UOffsetT) []byte {
	b.Finish(root)
	buf := b.FinishedBytes()
	out := make([]byte, len(buf))
	copy(out, buf)
	return out
}
