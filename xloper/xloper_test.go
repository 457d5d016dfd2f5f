package xloper

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/xlcodec/hostmem"
)

func newArena(t *testing.T) (*hostmem.Memory, *hostmem.Heap) {
	t.Helper()
	ctx := context.Background()
	a, err := hostmem.New(ctx, hostmem.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })
	return a.Memory(), a.Heap()
}

func TestCell_EncodeDecode(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
	}{
		{"num", Cell{Type: TypeNum, Num: 3.25}},
		{"int", Cell{Type: TypeInt, W: -7}},
		{"bool", Cell{Type: TypeBool, W: 1}},
		{"err", Cell{Type: TypeErr, W: int32(ErrorNA)}},
		{"str", Cell{Type: TypeStr | BitDLLFree, Ptr: 0x1234}},
		{"multi", Cell{Type: TypeMulti, Ptr: 0x40, Rows: 3, Cols: 2}},
		{"ref", Cell{Type: TypeRef, Ptr: 0x80, SheetID: 1 << 40}},
		{"sref", Cell{Type: TypeSRef, Count: 1, Ref: Ref{1, 2, 3, 4}}},
		{"nil", Cell{Type: TypeNil}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := make([]byte, CellSize)
			EncodeCell(raw, tt.cell)
			assert.Equal(t, tt.cell, DecodeCell(raw))
		})
	}
}

func TestCell_TypeOffset(t *testing.T) {
	raw := make([]byte, CellSize)
	EncodeCell(raw, Cell{Type: TypeMulti | BitDLLFree})
	assert.Equal(t, []byte{0x40, 0x40, 0, 0}, raw[24:28])
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "xltypeNum", TypeNum.String())
	assert.Equal(t, "xltypeMulti|xlbitDLLFree", (TypeMulti | BitDLLFree).String())
	assert.Equal(t, "xltype(0x3)", Type(3).String())
	assert.Equal(t, TypeStr, (TypeStr | BitXLFree | BitDLLFree).Base())
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "#VALUE!", ErrorValue.String())
	assert.True(t, ErrorGettingData.Valid())
	assert.False(t, ErrorCode(99).Valid())
	assert.Equal(t, "#ERR(99)", ErrorCode(99).String())
}

func TestString_RoundTrip(t *testing.T) {
	mem, heap := newArena(t)

	ptr, err := NewString(mem, heap, []byte{'h', 0, 'i', 0})
	require.NoError(t, err)

	n, err := StringLen(mem, ptr)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)

	term, err := mem.ReadU16(ptr + 2 + 2*2)
	require.NoError(t, err)
	assert.Zero(t, term, "terminator")

	units, err := ReadString(mem, ptr)
	require.NoError(t, err)
	assert.Equal(t, []byte{'h', 0, 'i', 0}, units)

	require.NoError(t, FreeString(mem, heap, ptr))
	assert.Zero(t, heap.Outstanding())
	assert.Zero(t, heap.Stats().Faults)
}

func TestNewString_TooLong(t *testing.T) {
	mem, heap := newArena(t)
	_, err := NewString(mem, heap, make([]byte, 2*32768))
	assert.Error(t, err)
	assert.Zero(t, heap.Outstanding())
}

func TestFP12(t *testing.T) {
	mem, heap := newArena(t)

	data := make([]byte, 16)
	data[7] = 0x3f
	data[6] = 0xf0 // 1.0
	ptr, err := NewFP12(mem, heap, 1, 2, data)
	require.NoError(t, err)

	rows, cols, got, err := ReadFP12(mem, ptr)
	require.NoError(t, err)
	assert.Equal(t, int32(1), rows)
	assert.Equal(t, int32(2), cols)
	assert.Equal(t, data, got)

	require.NoError(t, ReleaseFP12(mem, heap, ptr))
	assert.Zero(t, heap.Outstanding())

	_, err = NewFP12(mem, heap, 2, 2, data)
	assert.Error(t, err, "payload does not match dimensions")

	empty, err := NewFP12(mem, heap, 0, 0, nil)
	require.NoError(t, err)
	require.NoError(t, ReleaseFP12(mem, heap, empty))
	assert.Zero(t, heap.Stats().Faults)
}

func TestBuildInspectRelease(t *testing.T) {
	values := []Value{
		Num(1.5),
		Int(42),
		Bool(true),
		Err(ErrorDiv0),
		Str("héllo"),
		Str(""),
		Nil(),
		Missing(),
		SRef(Ref{0, 0, 2, 2}),
		MRef(0, Ref{0, 9, 0, 0}, Ref{5, 5, 1, 3}),
		MRef(7),
		Multi(2, 2, Num(1), Str("a"), Bool(false), Err(ErrorNA)),
		Multi(0, 0),
	}
	for _, v := range values {
		t.Run(v.String(), func(t *testing.T) {
			mem, heap := newArena(t)

			ptr, err := Build(mem, heap, v)
			require.NoError(t, err)

			got, err := Inspect(mem, ptr)
			require.NoError(t, err)
			assert.True(t, got.Type.DLLFree())
			got.Type = got.Type.Base()
			if v.Type == TypeMulti && len(v.Items) == 0 {
				v.Items = []Value{}
			}
			if v.Type == TypeRef && v.Refs == nil {
				v.Refs = []Ref{}
			}
			assert.Equal(t, v, got)

			require.NoError(t, Release(mem, heap, ptr))
			assert.Zero(t, heap.Outstanding())
			assert.Zero(t, heap.Stats().Faults)
		})
	}
}

func TestBuild_NoLeakOnFailure(t *testing.T) {
	v := Multi(2, 3, Str("a"), Str("b"), Str("c"), Str("d"), Str("e"), Str("f"))
	// array + six strings + cell
	for n := 0; n < 8; n++ {
		mem, heap := newArena(t)
		heap.FailAfter(n)
		_, err := Build(mem, heap, v)
		require.Error(t, err, "fail after %d", n)
		heap.FailAfter(-1)
		assert.Zero(t, heap.Outstanding(), "fail after %d", n)
		assert.Zero(t, heap.Stats().Faults, "fail after %d", n)
	}
}

func TestBuild_DimensionMismatch(t *testing.T) {
	mem, heap := newArena(t)
	_, err := Build(mem, heap, Multi(2, 2, Num(1)))
	assert.Error(t, err)
	assert.Zero(t, heap.Outstanding())
}

func TestIsSingleCell(t *testing.T) {
	mem, heap := newArena(t)
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"sref 1x1", SRef(Ref{3, 3, 4, 4}), true},
		{"sref 2x1", SRef(Ref{3, 4, 4, 4}), false},
		{"mref single", MRef(0, Ref{0, 0, 0, 0}), true},
		{"mref two areas", MRef(0, Ref{0, 0, 0, 0}, Ref{1, 1, 1, 1}), false},
		{"mref 1x2", MRef(0, Ref{0, 0, 0, 1}), false},
		{"num", Num(1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ptr, err := Build(mem, heap, tt.v)
			require.NoError(t, err)
			defer func() { require.NoError(t, Release(mem, heap, ptr)) }()
			assert.Equal(t, tt.want, IsSingleCell(mem, ptr))
		})
	}
	assert.False(t, IsSingleCell(mem, 0))
}

func TestRelease_Null(t *testing.T) {
	mem, heap := newArena(t)
	assert.NoError(t, Release(mem, heap, 0))
}

func TestRelease_UnreadableString(t *testing.T) {
	mem, heap := newArena(t)
	ptr, err := NewCell(mem, heap, Cell{Type: TypeStr | BitDLLFree, Ptr: 0xfffffff0})
	require.NoError(t, err)

	err = Release(mem, heap, ptr)
	assert.Error(t, err)
	assert.Zero(t, heap.Outstanding(), "the cell itself is still freed")
}

func TestValue_String(t *testing.T) {
	v := Multi(2, 2, Num(1), Str("x"), Bool(true), Err(ErrorNA))
	assert.Equal(t, `{1, "x"; TRUE, #N/A}`, v.String())
	assert.Equal(t, "R1C1:R2C3", Ref{0, 1, 0, 2}.String())
	assert.True(t, strings.HasPrefix(MRef(3, Ref{}).String(), "sheet3!"))
}
