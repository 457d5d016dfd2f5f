package errors

import (
	"fmt"
	"strings"
)

// Phase names the codec stage that produced an error.
type Phase string

const (
	PhaseEncode   Phase = "encode"   // host to wire
	PhaseDecode   Phase = "decode"   // wire to host
	PhaseValidate Phase = "validate" // wire data validation
	PhaseHost     Phase = "host"     // heap and memory access
	PhaseRelease  Phase = "release"  // freeing returned structures
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds       Kind = "out_of_bounds"
	KindInvalidData       Kind = "invalid_data"
	KindInvalidInput      Kind = "invalid_input"
	KindUnsupported       Kind = "unsupported"
	KindAllocation        Kind = "allocation"
	KindOverflow          Kind = "overflow"
	KindNilPointer        Kind = "nil_pointer"
	KindDimensionMismatch Kind = "dimension_mismatch"
	KindTooManyRefs       Kind = "too_many_refs"
	KindPanic             Kind = "panic"
)

// Error is the structured error returned by every codec package. Path
// locates the offending element, for example ["grid", "data", "3"].
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	HostType string
	WireType string
	Detail   string
	Path     []string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Phase, e.Kind)

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	types := e.types()
	if types != "" {
		b.WriteString(": ")
		b.WriteString(types)
	}
	if e.Detail != "" {
		if types != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Cause)
	}
	return b.String()
}

func (e *Error) types() string {
	var parts []string
	if e.HostType != "" {
		parts = append(parts, "host type "+e.HostType)
	}
	if e.WireType != "" {
		parts = append(parts, "wire type "+e.WireType)
	}
	return strings.Join(parts, ", ")
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on phase and kind so callers can test against a bare
// &Error{Phase: ..., Kind: ...} sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder assembles an Error field by field.
type Builder struct {
	err Error
}

func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// HostType records the XLOPER12 type involved, e.g. "xltypeMulti".
func (b *Builder) HostType(t string) *Builder {
	b.err.HostType = t
	return b
}

// WireType records the wire union member involved, e.g. "Grid".
func (b *Builder) WireType(t string) *Builder {
	b.err.WireType = t
	return b
}

func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the message, formatting it when args are given.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	b.err.Detail = msg
	return b
}

func (b *Builder) Build() *Error {
	return &b.err
}

// AllocationFailed reports a heap allocation the host could not satisfy.
func AllocationFailed(phase Phase, size, align uint32, cause error) *Error {
	return New(phase, KindAllocation).
		Detail("failed to allocate %d bytes (align %d)", size, align).
		Cause(cause).
		Build()
}

func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return New(phase, KindOutOfBounds).
		Path(path...).
		Value(index).
		Detail("index %d out of bounds (length %d)", index, length).
		Build()
}

func NilPointer(phase Phase, path []string, what string) *Error {
	return New(phase, KindNilPointer).Path(path...).Detail("nil " + what).Build()
}

// Overflow reports a size computation that does not fit its target type.
func Overflow(phase Phase, path []string, value any, target string) *Error {
	return New(phase, KindOverflow).
		Path(path...).
		Value(value).
		Detail("value %v overflows %s", value, target).
		Build()
}

// DimensionMismatch reports a grid whose data length disagrees with
// rows*cols.
func DimensionMismatch(phase Phase, rows, cols int64, length int) *Error {
	return New(phase, KindDimensionMismatch).
		Value(length).
		Detail("%d x %d grid carries %d elements", rows, cols, length).
		Build()
}

// TooManyRefs reports a reference list longer than the 16-bit count
// field of an xlmref12 table.
func TooManyRefs(phase Phase, count, limit int) *Error {
	return New(phase, KindTooManyRefs).
		Value(count).
		Detail("%d references exceed the limit of %d", count, limit).
		Build()
}

func Unsupported(phase Phase, what string) *Error {
	return New(phase, KindUnsupported).Detail(what).Build()
}

func InvalidData(phase Phase, path []string, detail string) *Error {
	return New(phase, KindInvalidData).Path(path...).Detail(detail).Build()
}

func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidInput).Detail(detail).Build()
}

// Recovered turns a recovered panic value into an error. Error panics
// become the cause so errors.Is still sees them.
func Recovered(phase Phase, r any) *Error {
	b := New(phase, KindPanic).Value(r).Detail("recovered: %v", r)
	if err, ok := r.(error); ok {
		b.Cause(err)
	}
	return b.Build()
}

func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return New(phase, kind).Cause(cause).Detail(detail).Build()
}
