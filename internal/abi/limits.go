package abi

const (
	// MaxHostStringUnits is the longest string a host cell can hold.
	MaxHostStringUnits = 32767

	// MaxStringInputBytes clamps UTF-8 input before conversion. 32767 units
	// never need more than this many bytes.
	MaxStringInputBytes = 200000

	// StackBufferUnits is the size of the fixed first-try conversion buffer.
	StackBufferUnits = 256

	// MaxConvertUnits caps the intermediate buffer of a conversion.
	MaxConvertUnits = 10000000

	// MaxRefs is the largest count a host reference table can carry.
	MaxRefs = 65535

	MaxAlloc = 1 << 30 // 1 GB max single allocation
)
