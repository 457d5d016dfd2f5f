// Package protocol holds the FlatBuffers wire schema for spreadsheet values
// and the Go accessors generated from it.
//
// The root type of every message is Any, a union over scalars (Bool, Num,
// Int, Str, Err, Nil, AsyncHandle), two-dimensional data (Grid, NumGrid) and
// references (Range, RefCache). The schema lives in protocol.fbs.
//
// Beyond the generated code the package adds:
//
//   - Validate on Grid, NumGrid and Range, reporting ErrInvalidDimensions,
//     ErrOverflow or ErrTooManyRefs
//   - Clone and DeepCopy for every table, producing buffers that do not
//     alias the source
//   - Create* helpers for building messages without touching vtables
//
// Accessors read straight from the message bytes and panic on a malformed
// buffer, as all FlatBuffers readers do. Callers that accept untrusted input
// recover at their boundary.
package protocol
