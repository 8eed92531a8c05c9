// Package buffers provides reusable byte buffers for download streaming, so
// a long-running slideshow does not allocate a fresh copy buffer per file.
package buffers

import (
	"sync"
	"sync/atomic"
)

// ChunkSize is the copy granularity for streaming a file body.
const ChunkSize = 256 * 1024

var (
	allocations atomic.Int64
	gets        atomic.Int64
)

var chunkPool = &sync.Pool{
	New: func() interface{} {
		allocations.Add(1)
		buf := make([]byte, ChunkSize)
		return &buf
	},
}

// GetChunkBuffer returns a ChunkSize buffer from the pool.
func GetChunkBuffer() *[]byte {
	gets.Add(1)
	return chunkPool.Get().(*[]byte)
}

// PutChunkBuffer returns a buffer to the pool for reuse.
func PutChunkBuffer(buf *[]byte) {
	if buf == nil || len(*buf) != ChunkSize {
		return
	}
	chunkPool.Put(buf)
}

// Stats reports pool activity, for debug logging.
func Stats() (allocated, reused int64) {
	a := allocations.Load()
	return a, gets.Load() - a
}
