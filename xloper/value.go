package xloper

import (
	"strconv"
	"strings"

	"github.com/wippyai/xlcodec/errors"
	"github.com/wippyai/xlcodec/internal/abi"
	"github.com/wippyai/xlcodec/internal/utf16x"
)

// Value is a host cell lifted into Go memory. Only the fields belonging to
// Type's base are meaningful.
type Value struct {
	Type    Type
	Num     float64
	Int     int32
	Bool    bool
	Err     ErrorCode
	Str     string
	Rows    int32
	Cols    int32
	Items   []Value // row-major, xltypeMulti
	Refs    []Ref   // xltypeSRef holds exactly one
	SheetID uint64
}

func Num(f float64) Value { return Value{Type: TypeNum, Num: f} }
func Int(i int32) Value { return Value{Type: TypeInt, Int: i} }
func Bool(b bool) Value { return Value{Type: TypeBool, Bool: b} }
func Err(code ErrorCode) Value { return Value{Type: TypeErr, Err: code} }
func Str(s string) Value { return Value{Type: TypeStr, Str: s} }
func Nil() Value { return Value{Type: TypeNil} }
func Missing() Value { return Value{Type: TypeMissing} }
func SRef(r Ref) Value { return Value{Type: TypeSRef, Refs: []Ref{r}} }
func MRef(sheetID uint64, refs ...Ref) Value {
	return Value{Type: TypeRef, SheetID: sheetID, Refs: refs}
}

// Multi builds an array value; items are row-major.
func Multi(rows, cols int32, items ...Value) Value {
	return Value{Type: TypeMulti, Rows: rows, Cols: cols, Items: items}
}

// Inspect lifts the cell at ptr into a Value tree.
func Inspect(mem Memory, ptr uint32) (Value, error) {
	c, err := Load(mem, ptr)
	if err != nil {
		return Value{}, err
	}
	return inspectCell(mem, c, 0)
}

func inspectCell(mem Memory, c Cell, depth int) (Value, error) {
	v := Value{Type: c.Type}
	switch c.Type.Base() {
	case TypeNum:
		v.Num = c.Num
	case TypeInt:
		v.Int = c.W
	case TypeBool:
		v.Bool = c.W != 0
	case TypeErr:
		v.Err = ErrorCode(c.W)
	case TypeStr:
		units, err := ReadString(mem, c.Ptr)
		if err != nil {
			return v, err
		}
		v.Str = utf16x.Decode(units)
	case TypeMulti:
		if depth > 0 {
			return v, errors.Unsupported(errors.PhaseHost, "nested xltypeMulti")
		}
		n, ok := abi.CellCount(c.Rows, c.Cols)
		if !ok {
			return v, errors.New(errors.PhaseHost, errors.KindOverflow).
				Path("lparray").
				Detail("invalid dimensions %d x %d", c.Rows, c.Cols).
				Build()
		}
		v.Rows, v.Cols = c.Rows, c.Cols
		cells, err := LoadArray(mem, c.Ptr, n)
		if err != nil {
			return v, err
		}
		v.Items = make([]Value, len(cells))
		for i, elem := range cells {
			item, err := inspectCell(mem, elem, depth+1)
			if err != nil {
				return v, errors.New(errors.PhaseHost, errors.KindInvalidData).
					Path("lparray", strconv.Itoa(i)).
					Cause(err).
					Build()
			}
			v.Items[i] = item
		}
	case TypeSRef:
		v.Refs = []Ref{c.Ref}
	case TypeRef:
		refs, err := ReadRefs(mem, c.Ptr)
		if err != nil {
			return v, err
		}
		v.Refs = refs
		v.SheetID = c.SheetID
	}
	return v, nil
}

// Build writes v into host memory as a cell marked xlbitDLLFree. On
// failure nothing stays allocated.
func Build(mem Memory, a Allocator, v Value) (uint32, error) {
	c, err := buildContents(mem, a, v, 0)
	if err != nil {
		return 0, err
	}
	c.Type |= BitDLLFree
	ptr, err := NewCell(mem, a, c)
	if err != nil {
		_ = ReleaseContents(mem, a, c)
		return 0, err
	}
	return ptr, nil
}

func buildContents(mem Memory, a Allocator, v Value, depth int) (Cell, error) {
	c := Cell{Type: v.Type.Base()}
	switch c.Type {
	case TypeNum:
		c.Num = v.Num
	case TypeInt:
		c.W = v.Int
	case TypeBool:
		if v.Bool {
			c.W = 1
		}
	case TypeErr:
		c.W = int32(v.Err)
	case TypeStr:
		units, err := utf16x.Encode(v.Str)
		if err != nil {
			return c, errors.Wrap(errors.PhaseHost, errors.KindInvalidData, err, "encode string")
		}
		ptr, err := NewString(mem, a, units)
		if err != nil {
			return c, err
		}
		c.Ptr = ptr
	case TypeMulti:
		if depth > 0 {
			return c, errors.Unsupported(errors.PhaseHost, "nested xltypeMulti")
		}
		return buildArray(mem, a, v)
	case TypeSRef:
		if len(v.Refs) != 1 {
			return c, errors.InvalidInput(errors.PhaseHost, "xltypeSRef needs exactly one rectangle")
		}
		c.Count = 1
		c.Ref = v.Refs[0]
	case TypeRef:
		ptr, err := NewMRef(mem, a, v.Refs)
		if err != nil {
			return c, err
		}
		c.Ptr = ptr
		c.SheetID = v.SheetID
	case TypeNil, TypeMissing:
	default:
		return c, errors.Unsupported(errors.PhaseHost, "build "+c.Type.String())
	}
	return c, nil
}

func buildArray(mem Memory, a Allocator, v Value) (c Cell, err error) {
	n, ok := abi.CellCount(v.Rows, v.Cols)
	if !ok || int(n) != len(v.Items) {
		return c, errors.DimensionMismatch(errors.PhaseHost, int64(v.Rows), int64(v.Cols), len(v.Items))
	}
	arr, err := NewArray(mem, a, n)
	if err != nil {
		return c, err
	}
	c = Cell{Type: TypeMulti, Ptr: arr, Rows: v.Rows, Cols: v.Cols}
	defer func() {
		if err != nil {
			_ = releaseArray(mem, a, c)
			c = Cell{}
		}
	}()
	for i, item := range v.Items {
		elem, err := buildContents(mem, a, item, 1)
		if err != nil {
			return c, err
		}
		if err := Store(mem, arr+uint32(i)*CellSize, elem); err != nil {
			_ = ReleaseContents(mem, a, elem)
			return c, err
		}
	}
	return c, nil
}

// String renders v in spreadsheet notation: numbers as-is, strings quoted,
// arrays as {a, b; c, d}, references in R1C1 form.
func (v Value) String() string {
	var b strings.Builder
	v.format(&b)
	return b.String()
}

func (v Value) format(b *strings.Builder) {
	switch v.Type.Base() {
	case TypeNum:
		b.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
	case TypeInt:
		b.WriteString("int(")
		b.WriteString(strconv.Itoa(int(v.Int)))
		b.WriteByte(')')
	case TypeBool:
		if v.Bool {
			b.WriteString("TRUE")
		} else {
			b.WriteString("FALSE")
		}
	case TypeErr:
		b.WriteString(v.Err.String())
	case TypeStr:
		b.WriteString(strconv.Quote(v.Str))
	case TypeNil:
		b.WriteString("nil")
	case TypeMissing:
		b.WriteString("missing")
	case TypeMulti:
		b.WriteByte('{')
		for i, item := range v.Items {
			if i > 0 {
				if v.Cols > 0 && i%int(v.Cols) == 0 {
					b.WriteString("; ")
				} else {
					b.WriteString(", ")
				}
			}
			item.format(b)
		}
		b.WriteByte('}')
	case TypeSRef, TypeRef:
		if v.Type.Base() == TypeRef {
			b.WriteString("sheet")
			b.WriteString(strconv.FormatUint(v.SheetID, 10))
			b.WriteByte('!')
		}
		for i, r := range v.Refs {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(r.String())
		}
	default:
		b.WriteString(v.Type.String())
	}
}

// String renders r as R1C1:R2C2 with 1-based indices.
func (r Ref) String() string {
	return "R" + strconv.Itoa(int(r.RowFirst)+1) + "C" + strconv.Itoa(int(r.ColFirst)+1) +
		":R" + strconv.Itoa(int(r.RowLast)+1) + "C" + strconv.Itoa(int(r.ColLast)+1)
}
