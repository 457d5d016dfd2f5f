package xloper

import (
	"strconv"
	"strings"

	xlcodec "github.com/wippyai/xlcodec"
)

type Memory = xlcodec.Memory
type Allocator = xlcodec.Allocator

// Type is the xltype field of a cell: a base type plus ownership bits.
type Type uint32

const (
	TypeNum     Type = 0x0001
	TypeStr     Type = 0x0002
	TypeBool    Type = 0x0004
	TypeRef     Type = 0x0008
	TypeErr     Type = 0x0010
	TypeFlow    Type = 0x0020
	TypeMulti   Type = 0x0040
	TypeMissing Type = 0x0080
	TypeNil     Type = 0x0100
	TypeSRef    Type = 0x0400
	TypeInt     Type = 0x0800
	TypeBigData Type = TypeStr | TypeInt

	// BitXLFree marks a cell whose contents the host frees.
	BitXLFree Type = 0x1000
	// BitDLLFree marks a cell the add-in frees through Release.
	BitDLLFree Type = 0x4000
)

// Base strips the ownership bits.
func (t Type) Base() Type {
	return t &^ (BitXLFree | BitDLLFree)
}

// DLLFree reports whether the add-in owns the cell.
func (t Type) DLLFree() bool {
	return t&BitDLLFree != 0
}

var typeNames = map[Type]string{
	TypeNum:     "xltypeNum",
	TypeStr:     "xltypeStr",
	TypeBool:    "xltypeBool",
	TypeRef:     "xltypeRef",
	TypeErr:     "xltypeErr",
	TypeFlow:    "xltypeFlow",
	TypeMulti:   "xltypeMulti",
	TypeMissing: "xltypeMissing",
	TypeNil:     "xltypeNil",
	TypeSRef:    "xltypeSRef",
	TypeInt:     "xltypeInt",
	TypeBigData: "xltypeBigData",
}

func (t Type) String() string {
	var b strings.Builder
	if name, ok := typeNames[t.Base()]; ok {
		b.WriteString(name)
	} else {
		b.WriteString("xltype(0x")
		b.WriteString(strconv.FormatUint(uint64(t.Base()), 16))
		b.WriteByte(')')
	}
	if t&BitXLFree != 0 {
		b.WriteString("|xlbitXLFree")
	}
	if t&BitDLLFree != 0 {
		b.WriteString("|xlbitDLLFree")
	}
	return b.String()
}

// ErrorCode is a host error value carried by an xltypeErr cell.
type ErrorCode int32

const (
	ErrorNull        ErrorCode = 0
	ErrorDiv0        ErrorCode = 7
	ErrorValue       ErrorCode = 15
	ErrorRef         ErrorCode = 23
	ErrorName        ErrorCode = 29
	ErrorNum         ErrorCode = 36
	ErrorNA          ErrorCode = 42
	ErrorGettingData ErrorCode = 43
)

var errorNames = map[ErrorCode]string{
	ErrorNull:        "#NULL!",
	ErrorDiv0:        "#DIV/0!",
	ErrorValue:       "#VALUE!",
	ErrorRef:         "#REF!",
	ErrorName:        "#NAME?",
	ErrorNum:         "#NUM!",
	ErrorNA:          "#N/A",
	ErrorGettingData: "#GETTING_DATA",
}

// Valid reports whether c is one of the defined host error codes.
func (c ErrorCode) Valid() bool {
	_, ok := errorNames[c]
	return ok
}

func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return "#ERR(" + strconv.Itoa(int(c)) + ")"
}
