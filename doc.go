// Package xlcodec translates spreadsheet values between a host's native
// tagged-variant cells (XLOPER12 / FP12) and a FlatBuffers wire format.
//
// The host side is a C-ABI world: cells are fixed-layout structures living in
// host memory, strings are length-prefixed UTF-16, reference tables carry a
// 16-bit count and every returned cell carries an ownership bit. The wire side
// is a tree of tagged unions rooted at protocol.Any.
//
// # Architecture Overview
//
//	xlcodec/            Root package with the Memory and Allocator interfaces
//	├── protocol/       FlatBuffers schema and generated accessors/builders
//	├── xloper/         Host cell layout, allocation, release and inspection
//	├── transcoder/     Serializer (host -> wire) and deserializer (wire -> host)
//	├── hostmem/        wazero-backed host memory and heap allocator
//	├── errors/         Structured error types for debugging
//	└── cmd/xlwire/     Command-line wire message inspector
//
// # Quick Start
//
// Decode a wire message into host memory:
//
//	arena, err := hostmem.New(ctx, hostmem.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer arena.Close(ctx)
//
//	dec := transcoder.NewDecoder(arena.Memory(), arena.Heap())
//	cell := dec.AnyToXLOPER12(protocol.GetRootAsAny(buf, 0))
//	defer xloper.Release(arena.Memory(), arena.Heap(), cell)
//
// Encode a host cell back to wire bytes:
//
//	b := flatbuffers.NewBuilder(0)
//	enc := transcoder.NewEncoder(arena.Memory())
//	b.Finish(enc.ConvertAny(b, cell))
//	wire := b.FinishedBytes()
//
// # Memory Model
//
// Wire buffers are borrowed and never retained. Every host structure produced
// by the deserializer is a fresh allocation owned by the caller; outer cells
// carry xlbitDLLFree so the host hands them back for release. A conversion
// either returns a fully populated structure or the canonical error value,
// never a partially built one.
//
// # Thread Safety
//
// Encoder and Decoder hold no mutable state and may be shared between
// goroutines provided the Memory and Allocator they wrap are safe for
// concurrent use. hostmem.Heap is.
package xlcodec
