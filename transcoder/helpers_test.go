package transcoder

import (
	"context"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/xlcodec/hostmem"
	"github.com/wippyai/xlcodec/protocol"
	"github.com/wippyai/xlcodec/xloper"
)

func newArena(t *testing.T) (*hostmem.Memory, *hostmem.Heap) {
	t.Helper()
	ctx := context.Background()
	a, err := hostmem.New(ctx, hostmem.Config{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })
	return a.Memory(), a.Heap()
}

// wireAny builds a standalone Any message.
func wireAny(build func(b *flatbuffers.Builder) (protocol.AnyValue, flatbuffers.UOffsetT)) *protocol.Any {
	b := flatbuffers.NewBuilder(256)
	typ, val := build(b)
	buf := protocol.FinishAny(b, protocol.CreateAny(b, typ, val))
	return protocol.GetRootAsAny(buf, 0)
}

func wireGrid(build func(b *flatbuffers.Builder) flatbuffers.UOffsetT) *protocol.Grid {
	b := flatbuffers.NewBuilder(256)
	buf := protocol.FinishAny(b, build(b))
	return protocol.GetRootAsGrid(buf, 0)
}

func wireNumGrid(build func(b *flatbuffers.Builder) flatbuffers.UOffsetT) *protocol.NumGrid {
	b := flatbuffers.NewBuilder(256)
	buf := protocol.FinishAny(b, build(b))
	return protocol.GetRootAsNumGrid(buf, 0)
}

func wireRange(build func(b *flatbuffers.Builder) flatbuffers.UOffsetT) *protocol.Range {
	b := flatbuffers.NewBuilder(256)
	buf := protocol.FinishAny(b, build(b))
	return protocol.GetRootAsRange(buf, 0)
}

func strScalar(b *flatbuffers.Builder, s string) flatbuffers.UOffsetT {
	return protocol.CreateScalar(b, protocol.ScalarValueStr, protocol.CreateStr(b, s))
}

func numScalar(b *flatbuffers.Builder, f float64) flatbuffers.UOffsetT {
	return protocol.CreateScalar(b, protocol.ScalarValueNum, protocol.CreateNum(b, f))
}

// encodeAny runs ConvertAny on the cell at ptr and reopens the result.
func encodeAny(e *Encoder, ptr uint32) *protocol.Any {
	b := flatbuffers.NewBuilder(256)
	buf := protocol.FinishAny(b, e.ConvertAny(b, ptr))
	return protocol.GetRootAsAny(buf, 0)
}

// inspect lifts the cell at ptr and releases it, asserting the heap is
// left clean.
func inspect(t *testing.T, mem *hostmem.Memory, heap *hostmem.Heap, ptr uint32) xloper.Value {
	t.Helper()
	require.NotZero(t, ptr)
	v, err := xloper.Inspect(mem, ptr)
	require.NoError(t, err)
	require.True(t, v.Type.DLLFree(), "top-level cell must be owned by the add-in")
	require.NoError(t, xloper.Release(mem, heap, ptr))
	require.Zero(t, heap.Outstanding(), "allocations left after release")
	require.Zero(t, heap.Stats().Faults)
	return v
}

// build writes v into host memory and releases it when the test ends.
func build(t *testing.T, mem *hostmem.Memory, heap *hostmem.Heap, v xloper.Value) uint32 {
	t.Helper()
	ptr, err := xloper.Build(mem, heap, v)
	require.NoError(t, err)
	t.Cleanup(func() { _ = xloper.Release(mem, heap, ptr) })
	return ptr
}

// union opens the table held by an Any.
func union(t *testing.T, a *protocol.Any) flatbuffers.Table {
	t.Helper()
	var tab flatbuffers.Table
	require.True(t, a.Val(&tab))
	return tab
}
