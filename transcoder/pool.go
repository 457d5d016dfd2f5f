package transcoder

import (
	"sync"

	"github.com/wippyai/xlcodec/internal/abi"
)

// scratchBytes holds StackBufferUnits UTF-16 units: the fixed first-try
// buffer for short string conversions.
const scratchBytes = abi.StackBufferUnits * 2

var scratchPool = sync.Pool{
	New: func() any {
		return new([scratchBytes]byte)
	},
}

func getScratch() *[scratchBytes]byte {
	return scratchPool.Get().(*[scratchBytes]byte)
}

func putScratch(buf *[scratchBytes]byte) {
	if buf == nil {
		return
	}
	scratchPool.Put(buf)
}

const (
	// Cells written per memory call when filling a host array.
	cellChunk = 256
)

var cellBufPool = sync.Pool{
	New: func() any {
		buf := make([]byte, 0, cellChunk*32)
		return &buf
	},
}

func getCellBuf() *[]byte {
	return cellBufPool.Get().(*[]byte)
}

func putCellBuf(buf *[]byte) {
	if buf == nil {
		return
	}
	*buf = (*buf)[:0]
	cellBufPool.Put(buf)
}
