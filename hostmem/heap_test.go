package hostmem

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newTestArena(t *testing.T, cfg Config) *Arena {
	t.Helper()
	ctx := context.Background()
	a, err := New(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close(ctx) })
	return a
}

func TestArena_New(t *testing.T) {
	a := newTestArena(t, Config{InitialPages: 2, MaxPages: 4})
	assert.Equal(t, uint32(2*PageSize), a.Memory().Size())

	require.NoError(t, a.Memory().WriteU32(100, 0xdeadbeef))
	v, err := a.Memory().ReadU32(100)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v)

	_, err = a.Memory().ReadU32(2*PageSize - 2)
	assert.Error(t, err)
}

func TestConfig_Defaults(t *testing.T) {
	c := Config{}.withDefaults()
	assert.Equal(t, uint32(defaultInitialPages), c.InitialPages)
	assert.Equal(t, uint32(defaultMaxPages), c.MaxPages)

	c = Config{InitialPages: 10, MaxPages: 70000}.withDefaults()
	assert.Equal(t, uint32(maxPages), c.MaxPages)

	c = Config{InitialPages: 10, MaxPages: 4}.withDefaults()
	assert.Equal(t, uint32(4), c.InitialPages)
}

func TestHeap_AllocAlignment(t *testing.T) {
	h := newTestArena(t, Config{}).Heap()

	for _, align := range []uint32{1, 2, 4, 8, 16} {
		p1, err := h.Alloc(3, align)
		require.NoError(t, err)
		assert.NotZero(t, p1)
		assert.Zero(t, p1%align, "align %d", align)
	}
	_, err := h.Alloc(8, 3)
	assert.Error(t, err)
}

func TestHeap_FreeReuse(t *testing.T) {
	h := newTestArena(t, Config{}).Heap()

	p1, err := h.Alloc(32, 8)
	require.NoError(t, err)
	p2, err := h.Alloc(32, 8)
	require.NoError(t, err)
	assert.NotEqual(t, p1, p2)
	assert.Equal(t, 2, h.Outstanding())
	assert.Equal(t, uint32(64), h.InUse())

	h.Free(p1, 32, 8)
	p3, err := h.Alloc(32, 8)
	require.NoError(t, err)
	assert.Equal(t, p1, p3, "first fit reuses the freed block")

	h.Free(p2, 32, 8)
	h.Free(p3, 32, 8)
	assert.Equal(t, 0, h.Outstanding())
	assert.Zero(t, h.InUse())
	assert.Len(t, h.free, 1, "free list coalesces back to one span")
}

func TestHeap_Faults(t *testing.T) {
	h := newTestArena(t, Config{}).Heap()

	p, err := h.Alloc(16, 4)
	require.NoError(t, err)

	h.Free(p, 8, 4)
	assert.Equal(t, uint64(1), h.Stats().Faults, "size mismatch")
	assert.Equal(t, 1, h.Outstanding())

	h.Free(p, 16, 4)
	h.Free(p, 16, 4)
	st := h.Stats()
	assert.Equal(t, uint64(2), st.Faults, "double free")
	assert.Equal(t, uint64(1), st.Frees)
	assert.Equal(t, 0, st.Outstanding)
}

func TestHeap_Grow(t *testing.T) {
	a := newTestArena(t, Config{InitialPages: 1, MaxPages: 8})
	h := a.Heap()

	p, err := h.Alloc(3*PageSize, 8)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, a.Memory().Size(), p+3*PageSize)

	_, err = h.Alloc(16*PageSize, 8)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestHeap_FailAfter(t *testing.T) {
	h := newTestArena(t, Config{}).Heap()
	h.FailAfter(2)

	_, err := h.Alloc(8, 8)
	require.NoError(t, err)
	_, err = h.Alloc(8, 8)
	require.NoError(t, err)
	_, err = h.Alloc(8, 8)
	assert.ErrorIs(t, err, ErrInjected)
	_, err = h.Alloc(8, 8)
	assert.ErrorIs(t, err, ErrInjected)

	h.FailAfter(-1)
	_, err = h.Alloc(8, 8)
	assert.NoError(t, err)
}

func TestHeap_Concurrent(t *testing.T) {
	h := newTestArena(t, Config{}).Heap()

	var mu sync.Mutex
	seen := make(map[uint32]bool)

	var g errgroup.Group
	for w := 0; w < 8; w++ {
		g.Go(func() error {
			ptrs := make([]uint32, 0, 100)
			for i := 0; i < 100; i++ {
				p, err := h.Alloc(24, 8)
				if err != nil {
					return err
				}
				mu.Lock()
				if seen[p] {
					mu.Unlock()
					t.Errorf("pointer %d handed out twice", p)
					continue
				}
				seen[p] = true
				mu.Unlock()
				ptrs = append(ptrs, p)
			}
			for _, p := range ptrs {
				mu.Lock()
				delete(seen, p)
				mu.Unlock()
				h.Free(p, 24, 8)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, 0, h.Outstanding())
	assert.Zero(t, h.Stats().Faults)
}

func TestMemoryModule(t *testing.T) {
	bin := memoryModule(1, 300)
	assert.Equal(t, []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, bin[:8])
	// memory section: id, size, count, flags, min=1, max=300 as ULEB (0xac 0x02)
	assert.Equal(t, []byte{0x05, 0x05, 0x01, 0x01, 0x01, 0xac, 0x02}, bin[8:15])
}
