package transcoder

import (
	"github.com/wippyai/xlcodec/errors"
	"github.com/wippyai/xlcodec/internal/abi"
	"github.com/wippyai/xlcodec/xloper"
)

const (
	// RefCacheTokenPrefix prefixes the key of a RefCache value when it is
	// handed to the host as a string token.
	RefCacheTokenPrefix = "xll.ref:"
	// AsyncSentinel is the string cell produced for an AsyncHandle. The
	// host completes async calls through a separate channel.
	AsyncSentinel = "#ASYNC"
)

// toUTF16 converts src to UTF-16LE units ready for a host string. The
// result is either a view into scratch or a fresh buffer. Conversion
// failures yield an empty result, never an error.
func (c *Config) toUTF16(scratch []byte, src []byte) (units []byte) {
	defer func() {
		if r := recover(); r != nil {
			c.debug("string conversion", errors.Recovered(errors.PhaseDecode, r))
			units = nil
		}
	}()

	if len(src) > c.MaxStringInput {
		src = src[:c.MaxStringInput]
	}
	if len(src) == 0 {
		return nil
	}

	// Short inputs never need more units than bytes.
	if len(src) < abi.StackBufferUnits && len(scratch) >= 2*abi.StackBufferUnits {
		if n := c.Converter.EncodeUTF16(scratch[:2*abi.StackBufferUnits], src); n >= 0 {
			return scratch[:2*n]
		}
	}

	n := c.Converter.UTF16Len(src)
	if n <= 0 || n > abi.MaxConvertUnits {
		return nil
	}
	buf := make([]byte, 2*n)
	got := c.Converter.EncodeUTF16(buf, src)
	if got < 0 || got > n {
		return nil
	}
	if got > abi.MaxHostStringUnits {
		got = abi.MaxHostStringUnits
	}
	return buf[:2*got]
}

// newString materializes src as a host string and returns its pointer and
// allocation size. Only allocation failures are errors; unconvertible input
// becomes the empty string.
func (d *Decoder) newString(src []byte) (uint32, uint32, error) {
	scratch := getScratch()
	defer putScratch(scratch)
	units := d.cfg.toUTF16(scratch[:], src)
	ptr, err := xloper.NewString(d.mem, d.alloc, units)
	if err != nil {
		return 0, 0, err
	}
	return ptr, xloper.StringSize(uint32(len(units) / 2)), nil
}

// newStringCell materializes src as a standalone xltypeStr cell owned by
// the caller.
func (d *Decoder) newStringCell(src []byte) (uint32, error) {
	allocs := NewAllocationList()
	defer d.rollback("string cell", allocs)

	str, size, err := d.newString(src)
	if err != nil {
		return 0, err
	}
	allocs.Add(str, size, xloper.StringAlign)

	ptr, err := xloper.NewCell(d.mem, d.alloc, xloper.Cell{
		Type: xloper.TypeStr | xloper.BitDLLFree,
		Ptr:  str,
	})
	if err != nil {
		return 0, err
	}
	allocs.Commit()
	return ptr, nil
}

// NewExcelString builds an owned xltypeStr cell holding s. Text longer than
// the host limit is truncated; text that cannot be converted becomes the
// empty string. A zero pointer is returned when host memory is exhausted.
func (d *Decoder) NewExcelString(s string) uint32 {
	ptr, err := d.guard("NewExcelString", func() (uint32, error) {
		return d.newStringCell([]byte(s))
	})
	if err != nil {
		return 0
	}
	return ptr
}

// ConvertExcelString reads the host string at ptr as UTF-8. A null pointer
// or unreadable memory yields "".
func (e *Encoder) ConvertExcelString(ptr uint32) (s string) {
	if ptr == 0 {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			e.cfg.debug("ConvertExcelString", errors.Recovered(errors.PhaseEncode, r))
			s = ""
		}
	}()
	units, err := xloper.ReadString(e.mem, ptr)
	if err != nil {
		e.cfg.debug("ConvertExcelString", err)
		return ""
	}
	return e.cfg.Converter.DecodeUTF16(units)
}
