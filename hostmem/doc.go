// Package hostmem provides a concrete host address space for the codec:
// a wazero linear memory exported by a minimal module, and a first-fit heap
// over it.
//
// The arena stands in for the spreadsheet process: cells, arrays, strings
// and FP12 blocks built by the decoder live in its memory and are returned
// to its heap by xloper.Release. The heap tracks every live block, which
// makes leak checks exact:
//
//	arena, err := hostmem.New(ctx, hostmem.Config{})
//	...
//	defer arena.Close(ctx)
//	heap := arena.Heap()
//	heap.FailAfter(3) // fourth allocation fails
//	...
//	if heap.Outstanding() != 0 { ... }
//
// Memory reads return views into linear memory. Views are invalidated when
// the heap grows the memory, so callers copy what they keep.
package hostmem
