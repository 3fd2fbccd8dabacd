package dyckprng

import (
	"bufio"
	"io"
	"sync"
)

// writeBufSize is the size of the buffered writer used per string.
const writeBufSize = 64 * 1024

// Global pool for output buffer reuse across strings

var writerPool = sync.Pool{
	New: func() interface{} {
		return bufio.NewWriterSize(nil, writeBufSize)
	},
}

// poolGetWriter retrieves a buffered writer from the pool, bound to w.
func poolGetWriter(w io.Writer) *bufio.Writer {
	bw := writerPool.Get().(*bufio.Writer)
	bw.Reset(w)
	return bw
}

// poolPutWriter returns a buffered writer to the pool for reuse.
func poolPutWriter(bw *bufio.Writer) {
	if bw != nil {
		// Drop the reference to the destination
		bw.Reset(nil)
		writerPool.Put(bw)
	}
}
