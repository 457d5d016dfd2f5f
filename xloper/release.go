package xloper

import (
	"go.uber.org/multierr"

	"github.com/wippyai/xlcodec/errors"
	"github.com/wippyai/xlcodec/internal/abi"
)

// Release frees the cell at ptr and everything it owns: string storage,
// array elements and the array itself, reference tables. It is the
// counterpart of the host's xlAutoFree12 callback. Problems are collected
// rather than stopping the walk, so as much as possible is returned to
// the heap. A null pointer is a no-op.
func Release(mem Memory, a Allocator, ptr uint32) error {
	if ptr == 0 {
		return nil
	}
	c, err := Load(mem, ptr)
	if err != nil {
		return errors.Wrap(errors.PhaseRelease, errors.KindOutOfBounds, err, "load cell")
	}
	err = ReleaseContents(mem, a, c)
	a.Free(ptr, CellSize, CellAlign)
	return err
}

// ReleaseContents frees what c owns without freeing c's own storage.
func ReleaseContents(mem Memory, a Allocator, c Cell) error {
	switch c.Type.Base() {
	case TypeStr:
		if c.Ptr == 0 {
			return nil
		}
		if err := FreeString(mem, a, c.Ptr); err != nil {
			return errors.Wrap(errors.PhaseRelease, errors.KindOutOfBounds, err, "free string")
		}
	case TypeMulti:
		return releaseArray(mem, a, c)
	case TypeRef:
		if c.Ptr == 0 {
			return nil
		}
		return FreeMRef(mem, a, c.Ptr)
	}
	return nil
}

func releaseArray(mem Memory, a Allocator, c Cell) error {
	n, ok := abi.CellCount(c.Rows, c.Cols)
	if !ok {
		return errors.New(errors.PhaseRelease, errors.KindOverflow).
			Path("lparray").
			Detail("invalid dimensions %d x %d", c.Rows, c.Cols).
			Build()
	}
	if c.Ptr == 0 || n == 0 {
		return nil
	}
	cells, err := LoadArray(mem, c.Ptr, n)
	if err != nil {
		return errors.Wrap(errors.PhaseRelease, errors.KindOutOfBounds, err, "load array")
	}
	var errs error
	for _, elem := range cells {
		errs = multierr.Append(errs, ReleaseContents(mem, a, elem))
	}
	FreeArray(a, c.Ptr, n)
	return errs
}

// ReleaseFP12 frees an FP12 allocated by NewFP12.
func ReleaseFP12(mem Memory, a Allocator, ptr uint32) error {
	if ptr == 0 {
		return nil
	}
	rows, cols, _, err := ReadFP12(mem, ptr)
	if err != nil {
		return errors.Wrap(errors.PhaseRelease, errors.KindInvalidData, err, "read fp12")
	}
	count, _ := abi.CellCount(rows, cols)
	size, _ := FP12Size(count)
	a.Free(ptr, size, FP12Align)
	return nil
}
