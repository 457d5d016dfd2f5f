package hostmem

import (
	"context"
	"fmt"

	"github.com/tetratelabs/wazero"
	"go.uber.org/zap"
)

const memoryExport = "memory"

// Arena is an isolated host address space: a wazero linear memory plus a
// heap that hands out blocks of it. Pointers are 32-bit offsets and zero
// is never a valid allocation.
type Arena struct {
	runtime wazero.Runtime
	mem     *Memory
	heap    *Heap
}

// New creates an arena backed by a fresh wazero runtime.
func New(ctx context.Context, cfg Config) (*Arena, error) {
	cfg = cfg.withDefaults()

	runtimeCfg := wazero.NewRuntimeConfig().WithMemoryLimitPages(cfg.MaxPages)
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	mod, err := runtime.Instantiate(ctx, memoryModule(cfg.InitialPages, cfg.MaxPages))
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("instantiate memory module: %w", err)
	}
	wmem := mod.ExportedMemory(memoryExport)
	if wmem == nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("memory module has no %q export", memoryExport)
	}

	mem := WrapMemory(wmem)
	Logger().Debug("arena created",
		zap.Uint32("initial_pages", cfg.InitialPages),
		zap.Uint32("max_pages", cfg.MaxPages))

	return &Arena{
		runtime: runtime,
		mem:     mem,
		heap:    newHeap(mem, cfg.MaxPages),
	}, nil
}

// Memory returns the arena's linear memory.
func (a *Arena) Memory() *Memory {
	return a.mem
}

// Heap returns the arena's allocator.
func (a *Arena) Heap() *Heap {
	return a.heap
}

// Close releases the runtime. Outstanding allocations are reported at warn
// level.
func (a *Arena) Close(ctx context.Context) error {
	if n := a.heap.Outstanding(); n > 0 {
		Logger().Warn("arena closed with live allocations",
			zap.Int("count", n),
			zap.Uint32("bytes", a.heap.InUse()))
	}
	return a.runtime.Close(ctx)
}

// memoryModule encodes a wasm module whose only content is one exported
// memory with the given limits.
func memoryModule(minPages, maxPages uint32) []byte {
	bin := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

	var mem []byte
	mem = append(mem, 0x01, 0x01) // one memory, limits with max
	mem = appendULEB(mem, minPages)
	mem = appendULEB(mem, maxPages)
	bin = appendSection(bin, 0x05, mem)

	var exp []byte
	exp = append(exp, 0x01) // one export
	exp = appendULEB(exp, uint32(len(memoryExport)))
	exp = append(exp, memoryExport...)
	exp = append(exp, 0x02, 0x00) // memory index 0
	return appendSection(bin, 0x07, exp)
}

func appendSection(bin []byte, id byte, payload []byte) []byte {
	bin = append(bin, id)
	bin = appendULEB(bin, uint32(len(payload)))
	return append(bin, payload...)
}

func appendULEB(b []byte, v uint32) []byte {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b = append(b, c|0x80)
			continue
		}
		return append(b, c)
	}
}
