// Package errors provides structured error types for the codec.
//
// Errors are categorized by Phase (encode, decode, validate, host, release)
// and Kind (error category). The Error type carries the element path, the
// host and wire type names involved, the offending value and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Path("grid", "data", "3").
//		HostType("xltypeStr").
//		WireType("Num").
//		Detail("cannot convert").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.TooManyRefs(errors.PhaseValidate, 70000, 65535)
//	err := errors.AllocationFailed(errors.PhaseHost, size, align, cause)
//
// The decoder never returns these to its callers; they describe why a
// conversion degraded and are logged when debugging is enabled. Error
// implements Is by phase and kind, so errors.Is matches a template.
package errors
