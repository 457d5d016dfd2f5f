// Package xloper models the spreadsheet host's cell structures as they sit
// in a 32-bit little-endian address space.
//
// # Layout
//
//	Structure   Size          Align  Fields
//	─────────────────────────────────────────────────────────────
//	XLOPER12    32            8      payload @0, xltype u32 @24
//	XLREF12     16            4      rwFirst, rwLast, colFirst, colLast
//	XLMREF12    20 + 16*n     4      count u16 @0, reftbl @4
//	FP12        8 + 8*n       8      rows @0, columns @4, doubles @8
//	string      (n + 2) * 2   2      length u16, n UTF-16 units, 0
//
// Payload by type: num f64; w, xbool, err i32; str pointer; sref count u16
// and XLREF12 @4; mref lpmref @0 and idSheet u64 @8; array lparray @0,
// rows @4, columns @8.
//
// # Ownership
//
// Cells produced for the host carry BitDLLFree. Release walks a cell and
// frees every block it owns. Array elements own their strings but never
// carry ownership bits themselves.
//
// Build and Inspect convert between host memory and the Value tree; they
// are used by tests and tooling to create inputs and check outputs.
package xloper
