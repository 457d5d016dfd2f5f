package transcoder

import (
	"sync"

	xlcodec "github.com/wippyai/xlcodec"
)

type Memory = xlcodec.Memory
type Allocator = xlcodec.Allocator

type Allocation struct {
	Ptr   uint32
	Size  uint32
	Align uint32
}

// AllocationList records host allocations made while building one value.
// Until Commit is called, Rollback frees every recorded allocation, newest
// first; after Commit it frees nothing. Deferring Rollback right after
// NewAllocationList covers every exit path, panics included.
type AllocationList struct {
	allocations []Allocation
	committed   bool
}

var allocationListPool = sync.Pool{
	New: func() any {
		return &AllocationList{allocations: make([]Allocation, 0, 8)}
	},
}

func NewAllocationList() *AllocationList {
	return allocationListPool.Get().(*AllocationList)
}

const maxPooledAllocationCapacity = 128

// Release returns to pool. Must call after Free(); list invalid after Release.
func (al *AllocationList) Release() {
	// Only pool small allocations to prevent memory bloat
	if cap(al.allocations) > maxPooledAllocationCapacity {
		return
	}
	al.Reset()
	allocationListPool.Put(al)
}

// Rollback frees the recorded allocations unless the list was committed,
// then returns the list to the pool.
func (al *AllocationList) Rollback(allocator Allocator) {
	if !al.committed {
		al.Free(allocator)
	}
	al.Release()
}

// Commit transfers ownership of every recorded allocation to the caller.
func (al *AllocationList) Commit() {
	al.committed = true
}

func (al *AllocationList) Add(ptr, size, align uint32) {
	al.allocations = append(al.allocations, Allocation{
		Ptr:   ptr,
		Size:  size,
		Align: align,
	})
}

func (al *AllocationList) Free(allocator Allocator) {
	if allocator == nil {
		return
	}
	for i := len(al.allocations) - 1; i >= 0; i-- {
		a := al.allocations[i]
		if a.Ptr != 0 {
			allocator.Free(a.Ptr, a.Size, a.Align)
		}
	}
	al.allocations = al.allocations[:0]
}

func (al *AllocationList) Reset() {
	al.allocations = al.allocations[:0]
	al.committed = false
}

func (al *AllocationList) Count() int {
	return len(al.allocations)
}
