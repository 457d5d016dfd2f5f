package xloper

// IsSingleCell reports whether the reference at ptr addresses exactly one
// cell: an SRef of 1x1, or a Ref with a single 1x1 area.
func IsSingleCell(mem Memory, ptr uint32) bool {
	if ptr == 0 {
		return false
	}
	c, err := Load(mem, ptr)
	if err != nil {
		return false
	}
	switch c.Type.Base() {
	case TypeSRef:
		return c.Ref.single()
	case TypeRef:
		refs, err := ReadRefs(mem, c.Ptr)
		if err != nil || len(refs) != 1 {
			return false
		}
		return refs[0].single()
	}
	return false
}

func (r Ref) single() bool {
	return r.Rows() == 1 && r.Cols() == 1
}

// Rows returns the number of rows r spans. Inverted rectangles give a
// non-positive count.
func (r Ref) Rows() int64 {
	return int64(r.RowLast) - int64(r.RowFirst) + 1
}

// Cols returns the number of columns r spans.
func (r Ref) Cols() int64 {
	return int64(r.ColLast) - int64(r.ColFirst) + 1
}
