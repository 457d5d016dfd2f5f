package transcoder

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"

	"github.com/wippyai/xlcodec/protocol"
	"github.com/wippyai/xlcodec/xloper"
)

func TestScenario_ScalarRoundTrip(t *testing.T) {
	mem, heap := newArena(t)
	e := NewEncoder(mem)
	d := NewDecoder(mem, heap)

	src, err := xloper.Build(mem, heap, xloper.Num(123.456))
	require.NoError(t, err)
	wire := encodeAny(e, src)
	require.NoError(t, xloper.Release(mem, heap, src))

	require.Equal(t, protocol.AnyValueNum, wire.ValType())
	v := inspect(t, mem, heap, d.AnyToXLOPER12(wire))
	assert.Equal(t, xloper.TypeNum, v.Type.Base())
	assert.Equal(t, 123.456, v.Num)
}

func TestScenario_GridRoundTrip(t *testing.T) {
	mem, heap := newArena(t)
	e := NewEncoder(mem)
	d := NewDecoder(mem, heap)

	src, err := xloper.Build(mem, heap, xloper.Multi(2, 1, xloper.Num(1.23), xloper.Str("Test")))
	require.NoError(t, err)
	b := flatbuffers.NewBuilder(128)
	g := protocol.GetRootAsGrid(protocol.FinishAny(b, e.ConvertGrid(b, src)), 0)
	require.NoError(t, xloper.Release(mem, heap, src))

	require.Equal(t, uint32(2), g.Rows())
	require.Equal(t, uint32(1), g.Cols())

	ptr := d.GridToXLOPER12(g)
	require.NotZero(t, ptr)
	outer, err := xloper.Load(mem, ptr)
	require.NoError(t, err)
	cells, err := xloper.LoadArray(mem, outer.Ptr, 2)
	require.NoError(t, err)
	assert.Equal(t, xloper.TypeStr, cells[1].Type, "elements carry no ownership bits")
	n, err := xloper.StringLen(mem, cells[1].Ptr)
	require.NoError(t, err)
	assert.Equal(t, uint32(4), n)

	v := inspect(t, mem, heap, ptr)
	assert.Equal(t, xloper.TypeMulti|xloper.BitDLLFree, v.Type)
	require.Len(t, v.Items, 2)
	assert.Equal(t, 1.23, v.Items[0].Num)
	assert.Equal(t, "Test", v.Items[1].Str)
}

func TestScenario_NumGridMissingData(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	a := wireAny(func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
		return protocol.AnyValueNumGrid, protocol.CreateNumGrid(b, 10, 10, []float64{})
	})
	v := inspect(t, mem, heap, d.AnyToXLOPER12(a))
	assert.Equal(t, xloper.TypeErr, v.Type.Base())
	assert.Equal(t, xloper.ErrorValue, v.Err)
}

func TestScenario_TooManyRefs(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	rects := make([]protocol.RectT, 70000)
	for i := range rects {
		rects[i] = protocol.RectT{RowFirst: int32(i), RowLast: int32(i)}
	}
	r := wireRange(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateRange(b, rects, "")
	})

	heap.FailAfter(1)
	ptr := d.RangeToXLOPER12(r)
	heap.FailAfter(-1)

	v := inspect(t, mem, heap, ptr)
	assert.Equal(t, xloper.TypeErr, v.Type.Base())
	assert.Equal(t, xloper.ErrorValue, v.Err)
	assert.Equal(t, uint64(1), heap.Stats().Allocs, "only the error cell is allocated")
}

func TestScenario_LongStringTruncated(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 1, 1, []flatbuffers.UOffsetT{strScalar(b, strings.Repeat("A", 32768))})
	})
	ptr := d.GridToXLOPER12(g)
	require.NotZero(t, ptr)

	outer, err := xloper.Load(mem, ptr)
	require.NoError(t, err)
	cells, err := xloper.LoadArray(mem, outer.Ptr, 1)
	require.NoError(t, err)
	units, err := xloper.ReadString(mem, cells[0].Ptr)
	require.NoError(t, err)
	require.Len(t, units, 2*32767)
	assert.Equal(t, []byte{'A', 0}, units[:2])
	assert.Equal(t, []byte{'A', 0}, units[len(units)-2:])

	inspect(t, mem, heap, ptr)
}

func TestDecoder_AnyScalars(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	tests := []struct {
		name  string
		build func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT)
		want  xloper.Value
	}{
		{"num", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueNum, protocol.CreateNum(b, -0.25)
		}, xloper.Num(-0.25)},
		{"int", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueInt, protocol.CreateInt(b, math.MinInt32)
		}, xloper.Int(math.MinInt32)},
		{"bool", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueBool, protocol.CreateBool(b, true)
		}, xloper.Bool(true)},
		{"str", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueStr, protocol.CreateStr(b, "héllo")
		}, xloper.Str("héllo")},
		{"err", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueErr, protocol.CreateErr(b, protocol.XlErrorNA)
		}, xloper.Err(xloper.ErrorNA)},
		{"unknown err", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueErr, protocol.CreateErr(b, protocol.XlError(1234))
		}, xloper.Err(xloper.ErrorValue)},
		{"nil", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueNil, protocol.CreateNil(b)
		}, xloper.Nil()},
		{"ref cache", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueRefCache, protocol.CreateRefCache(b, "k1")
		}, xloper.Str(RefCacheTokenPrefix + "k1")},
		{"empty ref cache", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueRefCache, protocol.CreateRefCache(b, "")
		}, xloper.Err(xloper.ErrorNA)},
		{"async handle", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueAsyncHandle, protocol.CreateAsyncHandle(b, []byte{1, 2, 3})
		}, xloper.Str(AsyncSentinel)},
		{"unknown tag", func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValue(42), protocol.CreateNil(b)
		}, xloper.Nil()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := inspect(t, mem, heap, d.AnyToXLOPER12(wireAny(tt.build)))
			v.Type = v.Type.Base()
			assert.Equal(t, tt.want, v)
		})
	}

	t.Run("nil input", func(t *testing.T) {
		v := inspect(t, mem, heap, d.AnyToXLOPER12(nil))
		assert.Equal(t, xloper.TypeNil|xloper.BitDLLFree, v.Type)
	})

	t.Run("none", func(t *testing.T) {
		b := flatbuffers.NewBuilder(16)
		protocol.AnyStart(b)
		buf := protocol.FinishAny(b, protocol.AnyEnd(b))
		v := inspect(t, mem, heap, d.AnyToXLOPER12(protocol.GetRootAsAny(buf, 0)))
		assert.Equal(t, xloper.TypeNil, v.Type.Base())
	})

	t.Run("tag without value", func(t *testing.T) {
		b := flatbuffers.NewBuilder(16)
		protocol.AnyStart(b)
		protocol.AnyAddValType(b, protocol.AnyValueNum)
		buf := protocol.FinishAny(b, protocol.AnyEnd(b))
		v := inspect(t, mem, heap, d.AnyToXLOPER12(protocol.GetRootAsAny(buf, 0)))
		assert.Equal(t, xloper.Err(xloper.ErrorValue), xloper.Value{Type: v.Type.Base(), Err: v.Err})
	})
}

func TestDecoder_ScalarRoundTrip(t *testing.T) {
	values := []xloper.Value{
		xloper.Num(0),
		xloper.Num(math.Inf(-1)),
		xloper.Num(math.MaxFloat64),
		xloper.Int(-1),
		xloper.Bool(false),
		xloper.Str(""),
		xloper.Str("a😀b"),
		xloper.Err(xloper.ErrorNull),
		xloper.Err(xloper.ErrorGettingData),
		xloper.Nil(),
	}
	for _, want := range values {
		t.Run(want.String(), func(t *testing.T) {
			mem, heap := newArena(t)
			e := NewEncoder(mem)
			d := NewDecoder(mem, heap)

			src, err := xloper.Build(mem, heap, want)
			require.NoError(t, err)
			wire := encodeAny(e, src)
			require.NoError(t, xloper.Release(mem, heap, src))

			got := inspect(t, mem, heap, d.AnyToXLOPER12(wire))
			got.Type = got.Type.Base()
			assert.Equal(t, want, got)
		})
	}
}

func TestDecoder_Grid(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 2, 3, []flatbuffers.UOffsetT{
			numScalar(b, 1),
			protocol.CreateScalar(b, protocol.ScalarValueInt, protocol.CreateInt(b, 2)),
			protocol.CreateScalar(b, protocol.ScalarValueBool, protocol.CreateBool(b, true)),
			protocol.CreateScalar(b, protocol.ScalarValueErr, protocol.CreateErr(b, protocol.XlErrorDiv0)),
			strScalar(b, "x"),
			protocol.CreateScalar(b, protocol.ScalarValueAsyncHandle, protocol.CreateAsyncHandle(b, nil)),
		})
	})
	v := inspect(t, mem, heap, d.GridToXLOPER12(g))
	want := xloper.Multi(2, 3,
		xloper.Num(1), xloper.Int(2), xloper.Bool(true),
		xloper.Err(xloper.ErrorDiv0), xloper.Str("x"), xloper.Nil())
	want.Type |= xloper.BitDLLFree
	assert.Equal(t, want, v)
}

func TestDecoder_GridEmpty(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 0, 0, []flatbuffers.UOffsetT{})
	})
	ptr := d.GridToXLOPER12(g)
	c, err := xloper.Load(mem, ptr)
	require.NoError(t, err)
	assert.Equal(t, xloper.TypeMulti|xloper.BitDLLFree, c.Type)
	assert.Zero(t, c.Ptr, "empty array is the null pointer")
	inspect(t, mem, heap, ptr)
}

func TestDecoder_GridRejected(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *flatbuffers.Builder) flatbuffers.UOffsetT
	}{
		{"too few", func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateGrid(b, 2, 2, []flatbuffers.UOffsetT{numScalar(b, 1)})
		}},
		{"too many", func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateGrid(b, 1, 1, []flatbuffers.UOffsetT{numScalar(b, 1), numScalar(b, 2)})
		}},
		{"missing data", func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateGrid(b, 3, 1, nil)
		}},
		{"missing data empty dims", func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateGrid(b, 0, 0, nil)
		}},
		{"negative rows", func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateGrid(b, math.MaxUint32, 1, nil)
		}},
		{"overflow", func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateGrid(b, 1<<16, 1<<16, nil)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem, heap := newArena(t)
			d := NewDecoder(mem, heap)
			v := inspect(t, mem, heap, d.GridToXLOPER12(wireGrid(tt.build)))
			assert.Equal(t, xloper.TypeErr, v.Type.Base())
			assert.Equal(t, xloper.ErrorValue, v.Err)
			assert.Equal(t, uint64(1), heap.Stats().Allocs)
		})
	}
}

func TestDecoder_GridNoLeakOnFailure(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 2, 2, []flatbuffers.UOffsetT{
			strScalar(b, "one"),
			numScalar(b, 2),
			strScalar(b, strings.Repeat("three", 100)),
			strScalar(b, "four"),
		})
	})

	// outer cell, array, three strings
	const allocations = 5
	for fail := 0; fail < allocations; fail++ {
		heap.FailAfter(fail)
		assert.Zero(t, d.GridToXLOPER12(g), "fail after %d", fail)
		assert.Zero(t, heap.Outstanding(), "leak after %d allocations", fail)
		assert.Zero(t, heap.Stats().Faults)
	}
	heap.FailAfter(-1)

	v := inspect(t, mem, heap, d.GridToXLOPER12(g))
	assert.Equal(t, "four", v.Items[3].Str)
}

func TestDecoder_GridLarge(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	const rows, cols = 300, 3
	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		scalars := make([]flatbuffers.UOffsetT, rows*cols)
		for i := range scalars {
			if i%3 == 0 {
				scalars[i] = strScalar(b, fmt.Sprintf("s%d", i))
			} else {
				scalars[i] = numScalar(b, float64(i))
			}
		}
		return protocol.CreateGrid(b, rows, cols, scalars)
	})
	v := inspect(t, mem, heap, d.GridToXLOPER12(g))
	require.Len(t, v.Items, rows*cols)
	assert.Equal(t, "s897", v.Items[897].Str)
	assert.Equal(t, 899.0, v.Items[899].Num)
}

func TestDecoder_NumGridInAny(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	t.Run("exact", func(t *testing.T) {
		a := wireAny(func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueNumGrid, protocol.CreateNumGrid(b, 2, 2, []float64{1, 2, 3, 4})
		})
		v := inspect(t, mem, heap, d.AnyToXLOPER12(a))
		assert.Equal(t, xloper.TypeMulti, v.Type.Base())
		assert.Equal(t, []xloper.Value{xloper.Num(1), xloper.Num(2), xloper.Num(3), xloper.Num(4)}, v.Items)
	})

	t.Run("longer data accepted", func(t *testing.T) {
		a := wireAny(func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueNumGrid, protocol.CreateNumGrid(b, 1, 2, []float64{5, 6, 7})
		})
		v := inspect(t, mem, heap, d.AnyToXLOPER12(a))
		assert.Equal(t, []xloper.Value{xloper.Num(5), xloper.Num(6)}, v.Items)
	})

	rejected := map[string]func(b *flatbuffers.Builder) flatbuffers.UOffsetT{
		"shorter data": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 2, 2, []float64{1})
		},
		"missing data": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 0, 0, nil)
		},
		"negative cols": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 1, math.MaxUint32, []float64{})
		},
		"overflow": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 1<<20, 1<<20, []float64{})
		},
	}
	for name, fn := range rejected {
		t.Run(name, func(t *testing.T) {
			a := wireAny(func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
				return protocol.AnyValueNumGrid, fn(b)
			})
			v := inspect(t, mem, heap, d.AnyToXLOPER12(a))
			assert.Equal(t, xloper.Err(xloper.ErrorValue), xloper.Value{Type: v.Type.Base(), Err: v.Err})
		})
	}
}

func TestDecoder_NumGridToFP12(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	t.Run("copied", func(t *testing.T) {
		ng := wireNumGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 2, 3, []float64{1, 2, 3, 4, 5, math.NaN()})
		})
		fp := d.NumGridToFP12(ng)
		require.NotZero(t, fp)
		rows, cols, data, err := xloper.ReadFP12(mem, fp)
		require.NoError(t, err)
		assert.Equal(t, int32(2), rows)
		assert.Equal(t, int32(3), cols)
		assert.Equal(t, 5.0, math.Float64frombits(binary.LittleEndian.Uint64(data[32:])))
		assert.True(t, math.IsNaN(math.Float64frombits(binary.LittleEndian.Uint64(data[40:]))))
		require.NoError(t, xloper.ReleaseFP12(mem, heap, fp))
		assert.Zero(t, heap.Outstanding())
	})

	rejected := map[string]func(b *flatbuffers.Builder) flatbuffers.UOffsetT{
		"shorter data": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 10, 10, []float64{})
		},
		"longer data": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 1, 1, []float64{1, 2})
		},
		"negative rows": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, math.MaxUint32, 1, nil)
		},
		"missing data": func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateNumGrid(b, 0, 0, nil)
		},
	}
	for name, fn := range rejected {
		t.Run(name, func(t *testing.T) {
			fp := d.NumGridToFP12(wireNumGrid(fn))
			require.NotZero(t, fp)
			rows, cols, data, err := xloper.ReadFP12(mem, fp)
			require.NoError(t, err)
			assert.Zero(t, rows)
			assert.Zero(t, cols)
			assert.Empty(t, data)
			require.NoError(t, xloper.ReleaseFP12(mem, heap, fp))
			assert.Zero(t, heap.Outstanding())
		})
	}

	t.Run("nil", func(t *testing.T) {
		assert.Zero(t, d.NumGridToFP12(nil))
	})
}

func TestDecoder_Range(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	rects := []protocol.RectT{
		{RowFirst: 0, RowLast: 9, ColFirst: 0, ColLast: 1},
		{RowFirst: 5, RowLast: 2, ColFirst: 3, ColLast: 3},
	}
	r := wireRange(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateRange(b, rects, "")
	})
	ptr := d.RangeToXLOPER12(r)
	require.NotZero(t, ptr)

	c, err := xloper.Load(mem, ptr)
	require.NoError(t, err)
	count, err := mem.ReadU16(c.Ptr)
	require.NoError(t, err)
	assert.Equal(t, uint16(2), count)

	v := inspect(t, mem, heap, ptr)
	assert.Equal(t, xloper.TypeRef|xloper.BitDLLFree, v.Type)
	assert.Zero(t, v.SheetID)
	assert.Equal(t, []xloper.Ref{
		{RowFirst: 0, RowLast: 9, ColFirst: 0, ColLast: 1},
		{RowFirst: 5, RowLast: 2, ColFirst: 3, ColLast: 3},
	}, v.Refs, "inverted rectangles pass through")
}

func TestDecoder_RangeEdges(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	t.Run("missing refs", func(t *testing.T) {
		r := wireRange(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateRange(b, nil, "")
		})
		v := inspect(t, mem, heap, d.RangeToXLOPER12(r))
		assert.Equal(t, xloper.ErrorValue, v.Err)
	})

	t.Run("empty refs", func(t *testing.T) {
		r := wireRange(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateRange(b, []protocol.RectT{}, "")
		})
		v := inspect(t, mem, heap, d.RangeToXLOPER12(r))
		assert.Equal(t, xloper.TypeRef, v.Type.Base())
		assert.Empty(t, v.Refs)
	})

	t.Run("at limit", func(t *testing.T) {
		r := wireRange(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateRange(b, make([]protocol.RectT, protocol.MaxRefs), "")
		})
		v := inspect(t, mem, heap, d.RangeToXLOPER12(r))
		assert.Len(t, v.Refs, protocol.MaxRefs)
	})

	t.Run("via any", func(t *testing.T) {
		a := wireAny(func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT) {
			return protocol.AnyValueRange, protocol.CreateRange(b, []protocol.RectT{{RowLast: 1}}, "")
		})
		v := inspect(t, mem, heap, d.AnyToXLOPER12(a))
		assert.Equal(t, xloper.TypeRef, v.Type.Base())
	})

	t.Run("no leak", func(t *testing.T) {
		r := wireRange(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
			return protocol.CreateRange(b, []protocol.RectT{{RowLast: 1}}, "")
		})
		heap.FailAfter(1)
		assert.Zero(t, d.RangeToXLOPER12(r))
		heap.FailAfter(-1)
		assert.Zero(t, heap.Outstanding())
	})

	t.Run("nil", func(t *testing.T) {
		assert.Zero(t, d.RangeToXLOPER12(nil))
		assert.Zero(t, d.GridToXLOPER12(nil))
	})
}

func TestDecoder_DebugLogging(t *testing.T) {
	mem, heap := newArena(t)
	core, logs := observer.New(zap.DebugLevel)

	d := NewDecoder(mem, heap, WithLogger(zap.New(core)), WithDebug(true))
	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 2, 2, nil)
	})
	inspect(t, mem, heap, d.GridToXLOPER12(g))
	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "GridToXLOPER12")

	quiet := NewDecoder(mem, heap, WithLogger(zap.New(core)))
	inspect(t, mem, heap, quiet.GridToXLOPER12(g))
	assert.Equal(t, 1, logs.Len())
}

func TestDecoder_RollbackLogged(t *testing.T) {
	mem, heap := newArena(t)
	core, logs := observer.New(zap.DebugLevel)
	d := NewDecoder(mem, heap, WithLogger(zap.New(core)), WithDebug(true))

	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 1, 2, []flatbuffers.UOffsetT{strScalar(b, "a"), strScalar(b, "b")})
	})
	// outer cell, element array and the first string succeed
	heap.FailAfter(3)
	assert.Zero(t, d.GridToXLOPER12(g))
	heap.FailAfter(-1)
	assert.Zero(t, heap.Outstanding())

	entries := logs.FilterMessage("GridToXLOPER12 rolled back").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(3), entries[0].ContextMap()["allocations"])
}

func TestDecoder_Concurrent(t *testing.T) {
	mem, heap := newArena(t)
	d := NewDecoder(mem, heap)

	g := wireGrid(func(b *flatbuffers.Builder) flatbuffers.UOffsetT {
		return protocol.CreateGrid(b, 1, 3, []flatbuffers.UOffsetT{
			strScalar(b, "alpha"), numScalar(b, 2), strScalar(b, "gamma"),
		})
	})

	var eg errgroup.Group
	for w := 0; w < 8; w++ {
		eg.Go(func() error {
			for i := 0; i < 50; i++ {
				ptr := d.GridToXLOPER12(g)
				v, err := xloper.Inspect(mem, ptr)
				if err != nil {
					return err
				}
				if v.Items[2].Str != "gamma" {
					return fmt.Errorf("got %q", v.Items[2].Str)
				}
				if err := xloper.Release(mem, heap, ptr); err != nil {
					return err
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Zero(t, heap.Outstanding())
	assert.Zero(t, heap.Stats().Faults)
}
