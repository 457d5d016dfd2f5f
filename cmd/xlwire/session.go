package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/wippyai/xlcodec/hostmem"
	"github.com/wippyai/xlcodec/protocol"
	"github.com/wippyai/xlcodec/transcoder"
	"github.com/wippyai/xlcodec/xloper"
)

var sampleKinds = []string{"num", "str", "error", "grid", "numgrid", "range", "refcache", "async"}

// sample builds a wire message of the given kind.
func sample(kind string) ([]byte, error) {
	b := flatbuffers.NewBuilder(256)
	var (
		typ protocol.AnyValue
		val flatbuffers.UOffsetT
	)
	switch kind {
	case "num":
		typ, val = protocol.AnyValueNum, protocol.CreateNum(b, 123.456)
	case "str":
		typ, val = protocol.AnyValueStr, protocol.CreateStr(b, "Hello, wörld")
	case "error":
		typ, val = protocol.AnyValueErr, protocol.CreateErr(b, protocol.XlErrorDiv0)
	case "grid":
		cells := []flatbuffers.UOffsetT{
			protocol.CreateScalar(b, protocol.ScalarValueNum, protocol.CreateNum(b, 1.23)),
			protocol.CreateScalar(b, protocol.ScalarValueStr, protocol.CreateStr(b, "Test")),
			protocol.CreateScalar(b, protocol.ScalarValueBool, protocol.CreateBool(b, true)),
			protocol.CreateScalar(b, protocol.ScalarValueErr, protocol.CreateErr(b, protocol.XlErrorNA)),
		}
		typ, val = protocol.AnyValueGrid, protocol.CreateGrid(b, 2, 2, cells)
	case "numgrid":
		nums := make([]float64, 9)
		for i := range nums {
			nums[i] = float64(i) * 1.5
		}
		typ, val = protocol.AnyValueNumGrid, protocol.CreateNumGrid(b, 3, 3, nums)
	case "range":
		rects := []protocol.RectT{
			{RowFirst: 0, RowLast: 9, ColFirst: 0, ColLast: 1},
			{RowFirst: 4, RowLast: 4, ColFirst: 2, ColLast: 5},
		}
		typ, val = protocol.AnyValueRange, protocol.CreateRange(b, rects, "")
	case "refcache":
		typ, val = protocol.AnyValueRefCache, protocol.CreateRefCache(b, uuid.NewString())
	case "async":
		id := uuid.New()
		typ, val = protocol.AnyValueAsyncHandle, protocol.CreateAsyncHandle(b, id[:])
	default:
		return nil, fmt.Errorf("unknown sample kind %q (want one of %s)", kind, strings.Join(sampleKinds, ", "))
	}
	return protocol.FinishAny(b, protocol.CreateAny(b, typ, val)), nil
}

// session owns one host arena and the codec bound to it. decode is safe
// for concurrent use.
type session struct {
	arena *hostmem.Arena
	mem   *hostmem.Memory
	heap  *hostmem.Heap
	enc   *transcoder.Encoder
	dec   *transcoder.Decoder
}

func newSession(ctx context.Context, cfg hostmem.Config, debug bool) (*session, error) {
	arena, err := hostmem.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create arena: %w", err)
	}
	mem, heap := arena.Memory(), arena.Heap()
	return &session{
		arena: arena,
		mem:   mem,
		heap:  heap,
		enc:   transcoder.NewEncoder(mem, transcoder.WithDebug(debug)),
		dec:   transcoder.NewDecoder(mem, heap, transcoder.WithDebug(debug)),
	}, nil
}

func (s *session) close(ctx context.Context) {
	_ = s.arena.Close(ctx)
}

// report describes one decoded message.
type report struct {
	err      error
	name     string
	wire     string
	hostType string
	host     string
	size     int
	stable   bool
	single   bool
}

// decode materializes a message in host memory, lifts the cell back into
// Go, re-encodes it and checks that decoding the result gives the same host
// value. Every host allocation is released before returning.
func (s *session) decode(name string, buf []byte) (r report) {
	r = report{name: name, size: len(buf)}
	defer func() {
		if rec := recover(); rec != nil {
			r.err = multierr.Append(r.err, fmt.Errorf("malformed message: %v", rec))
		}
	}()

	if len(buf) < flatbuffers.SizeUOffsetT {
		r.err = errors.New("message too short")
		return r
	}
	// Clone detaches the message from buf, which callers reuse.
	msg := protocol.GetRootAsAny(buf, 0).Clone()
	r.wire = msg.Name()

	var again *protocol.Any
	v, err := s.materialize(msg, func(ptr uint32) {
		r.single = xloper.IsSingleCell(s.mem, ptr)
		b := flatbuffers.NewBuilder(len(buf))
		again = protocol.GetRootAsAny(protocol.FinishAny(b, s.enc.ConvertAny(b, ptr)), 0)
	})
	if err != nil {
		r.err = err
		return r
	}
	r.hostType = v.Type.String()
	r.host = v.String()

	v2, err := s.materialize(again, nil)
	if err != nil {
		r.err = err
		return r
	}
	r.stable = v2.String() == r.host
	return r
}

// materialize decodes msg into host memory and lifts the cell. visit, if
// set, sees the cell before it is released.
func (s *session) materialize(msg *protocol.Any, visit func(ptr uint32)) (v xloper.Value, err error) {
	ptr := s.dec.AnyToXLOPER12(msg)
	if ptr == 0 {
		return v, errors.New("host memory exhausted")
	}
	defer func() {
		err = multierr.Append(err, xloper.Release(s.mem, s.heap, ptr))
	}()
	if visit != nil {
		visit(ptr)
	}
	return xloper.Inspect(s.mem, ptr)
}

var (
	nameStyle   = lipgloss.NewStyle().Bold(true)
	wireStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	hostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	unsafeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD166"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

func (r report) render(styled bool) string {
	style := func(st lipgloss.Style, s string) string {
		if styled {
			return st.Render(s)
		}
		return s
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d bytes)\n", style(nameStyle, r.name), r.size)
	if r.wire != "" {
		fmt.Fprintf(&b, "  wire: %s\n", style(wireStyle, r.wire))
	}
	if r.hostType != "" {
		fmt.Fprintf(&b, "  host: %s %s", style(wireStyle, r.hostType), style(hostStyle, r.host))
		if r.single {
			b.WriteString(" (single cell)")
		}
		b.WriteByte('\n')
		if r.stable {
			b.WriteString("  round trip: stable")
		} else {
			b.WriteString("  round trip: " + style(unsafeStyle, "changed"))
		}
	}
	if r.err != nil {
		if r.hostType != "" {
			b.WriteByte('\n')
		}
		b.WriteString("  " + style(errorStyle, "error: "+r.err.Error()))
	}
	return strings.TrimRight(b.String(), "\n")
}
