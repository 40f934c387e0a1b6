// Package bufpool provides reusable copy buffers for the streaming
// write path.
//
// Regular-file materialization copies content in fixed-size chunks so
// peak memory stays bounded regardless of file size. Pooling the chunk
// buffers removes the per-file allocation and the associated GC
// pressure when a reconciliation touches many files.
//
// All operations are thread-safe via sync.Pool.
package bufpool

import "sync"

// ChunkSize is the copy chunk size used for regular-file content.
const ChunkSize = 64 << 10

var pool = sync.Pool{
	New: func() any {
		buf := make([]byte, ChunkSize)
		return &buf
	},
}

// Get returns a ChunkSize byte slice from the pool.
// Pair every Get with a Put, typically via defer.
func Get() []byte {
	return *pool.Get().(*[]byte)
}

// Put returns a buffer to the pool for reuse.
// Buffers of the wrong capacity are dropped and left to the GC.
func Put(buf []byte) {
	if cap(buf) != ChunkSize {
		return
	}
	buf = buf[:ChunkSize]
	pool.Put(&buf)
}
