// Package transcoder converts between host cells (XLOPER12 and FP12 in
// host memory) and the FlatBuffers wire messages of package protocol.
//
// An Encoder reads host cells and appends wire tables to a
// flatbuffers.Builder; a Decoder reads wire tables and allocates owned
// host cells.
//
//	┌────────────────────────────────────────────────────────────┐
//	│ host cell ──[Encoder]──▶ flatbuffers ──[Decoder]──▶ host cell │
//	└────────────────────────────────────────────────────────────┘
//
// # Failure Policy
//
// Neither direction returns errors. The Encoder degrades unreadable host
// data to Nil scalars and empty grids. The Decoder returns a #VALUE! cell
// for malformed messages and failed allocations, except NumGridToFP12,
// which returns a 0x0 FP12. Enable WithDebug to log the reason.
//
// # Strings
//
// Wire strings are UTF-8, host strings are length-prefixed UTF-16LE capped
// at 32767 units. Longer text is truncated by units; text that cannot be
// converted becomes the empty string.
//
// # Ownership
//
// Every top-level cell from the Decoder carries xlbitDLLFree and is freed
// with xloper.Release. A failed decode releases everything it allocated,
// tracked in an AllocationList.
//
// # Error Codes
//
// Wire error codes are host codes plus ErrorOffset. See WireError and
// HostError.
package transcoder
