package handler

import (
	"bytes"
	"sync"
)

const (
	// responseBufferSize fits a calculation result with every note or a ten-run plan.
	responseBufferSize = 2 << 10
	// maxPooledBuffer drops buffers grown by unusually large payloads so the pool stays small.
	maxPooledBuffer = 64 << 10
)

var responseBuffers = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, responseBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return responseBuffers.Get().(*bytes.Buffer)
}

// putBuffer returns buf to the pool unless it outgrew maxPooledBuffer
func putBuffer(buf *bytes.Buffer) bool {
	if buf.Cap() > maxPooledBuffer {
		return false
	}
	buf.Reset()
	responseBuffers.Put(buf)
	return true
}
