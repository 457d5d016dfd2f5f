package hostmem

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	xlcodec "github.com/wippyai/xlcodec"
	"github.com/wippyai/xlcodec/internal/abi"
)

// heapBase keeps the first bytes of memory unused so that zero, and small
// offsets from it, never alias an allocation.
const heapBase = 16

var (
	// ErrOutOfMemory is returned when the arena cannot grow any further.
	ErrOutOfMemory = errors.New("host heap exhausted")
	// ErrInjected is returned by allocations failed through FailAfter.
	ErrInjected = errors.New("injected allocation failure")
)

type span struct {
	start, end uint32
}

type block struct {
	size, align uint32
}

// Heap is a first-fit allocator over an arena's linear memory. It records
// every live block so tests can assert that nothing leaked, and reports
// frees that do not match an allocation. Safe for concurrent use.
type Heap struct {
	mu       sync.Mutex
	mem      *Memory
	maxPages uint32
	free     []span // sorted by start, never adjacent
	live     map[uint32]block
	inUse    uint32
	allocs   uint64
	frees    uint64
	faults   uint64
	failIn   int // allocations left before injected failure; <0 disables
}

func newHeap(mem *Memory, maxPages uint32) *Heap {
	h := &Heap{
		mem:      mem,
		maxPages: maxPages,
		live:     make(map[uint32]block),
		failIn:   -1,
	}
	if size := mem.Size(); size > heapBase {
		h.free = []span{{heapBase, size}}
	}
	return h
}

// Alloc reserves size bytes aligned to align. A zero size reserves one byte
// so every allocation has a distinct address.
func (h *Heap) Alloc(size, align uint32) (uint32, error) {
	if align == 0 {
		align = 1
	}
	if !abi.IsPow2(align) {
		return 0, fmt.Errorf("alignment %d is not a power of two", align)
	}
	if size > abi.MaxAlloc {
		return 0, fmt.Errorf("allocation of %d bytes exceeds limit %d", size, abi.MaxAlloc)
	}
	if size == 0 {
		size = 1
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.failIn == 0 {
		return 0, ErrInjected
	}

	ptr, ok := h.take(size, align)
	if !ok {
		if err := h.grow(size + align); err != nil {
			return 0, err
		}
		if ptr, ok = h.take(size, align); !ok {
			return 0, ErrOutOfMemory
		}
	}

	if h.failIn > 0 {
		h.failIn--
	}
	h.live[ptr] = block{size: size, align: align}
	h.inUse += size
	h.allocs++
	return ptr, nil
}

// take carves an aligned block out of the first span that fits.
func (h *Heap) take(size, align uint32) (uint32, bool) {
	for i, s := range h.free {
		p := abi.AlignTo(s.start, align)
		end, ok := abi.SafeAddU32(p, size)
		if !ok || p < s.start || end > s.end {
			continue
		}
		var repl []span
		if p > s.start {
			repl = append(repl, span{s.start, p})
		}
		if end < s.end {
			repl = append(repl, span{end, s.end})
		}
		h.free = append(h.free[:i], append(repl, h.free[i+1:]...)...)
		return p, true
	}
	return 0, false
}

func (h *Heap) grow(need uint32) error {
	pages := (uint64(need) + PageSize - 1) / PageSize
	cur := uint64(h.mem.Size()) / PageSize
	if cur+pages > uint64(h.maxPages) {
		return ErrOutOfMemory
	}
	prev, ok := h.mem.Grow(uint32(pages))
	if !ok {
		return ErrOutOfMemory
	}
	start := prev * PageSize
	if start < heapBase {
		start = heapBase
	}
	h.release(span{start, h.mem.Size()})
	Logger().Debug("heap grown", zap.Uint64("pages", pages), zap.Uint32("size", h.mem.Size()))
	return nil
}

// Free returns a block. Unknown pointers and size or alignment mismatches
// are logged and counted as faults; the block is not touched.
func (h *Heap) Free(ptr, size, align uint32) {
	if align == 0 {
		align = 1
	}
	if size == 0 {
		size = 1
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.live[ptr]
	if !ok {
		h.faults++
		Logger().Warn("free of unknown pointer", zap.Uint32("ptr", ptr), zap.Uint32("size", size))
		return
	}
	if b.size != size || b.align != align {
		h.faults++
		Logger().Warn("free with mismatched layout",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size), zap.Uint32("align", align),
			zap.Uint32("alloc_size", b.size), zap.Uint32("alloc_align", b.align))
		return
	}
	delete(h.live, ptr)
	h.inUse -= b.size
	h.frees++
	h.release(span{ptr, ptr + b.size})
}

// release inserts s into the free list, merging neighbours.
func (h *Heap) release(s span) {
	i := sort.Search(len(h.free), func(i int) bool { return h.free[i].start >= s.start })
	h.free = append(h.free, span{})
	copy(h.free[i+1:], h.free[i:])
	h.free[i] = s
	if i+1 < len(h.free) && h.free[i].end == h.free[i+1].start {
		h.free[i].end = h.free[i+1].end
		h.free = append(h.free[:i+1], h.free[i+2:]...)
	}
	if i > 0 && h.free[i-1].end == h.free[i].start {
		h.free[i-1].end = h.free[i].end
		h.free = append(h.free[:i], h.free[i+1:]...)
	}
}

// FailAfter makes allocations fail with ErrInjected once n more have
// succeeded. A negative n disables injection.
func (h *Heap) FailAfter(n int) {
	h.mu.Lock()
	h.failIn = n
	h.mu.Unlock()
}

// Outstanding returns the number of live allocations.
func (h *Heap) Outstanding() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

// InUse returns the number of bytes held by live allocations.
func (h *Heap) InUse() uint32 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inUse
}

// Stats is a snapshot of heap counters.
type Stats struct {
	Allocs      uint64
	Frees       uint64
	Faults      uint64
	Outstanding int
	InUse       uint32
}

// Stats returns the current counters.
func (h *Heap) Stats() Stats {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Stats{
		Allocs:      h.allocs,
		Frees:       h.frees,
		Faults:      h.faults,
		Outstanding: len(h.live),
		InUse:       h.inUse,
	}
}

var _ xlcodec.Allocator = (*Heap)(nil)
