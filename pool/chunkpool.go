// File: pool/chunkpool.go
// Author: solarobot <solarobot@gmail.com>

// Package pool provides fixed-size byte buffer recycling for the
// transfer paths, so steady-state file transmission allocates nothing
// per chunk.
package pool

import "sync"

// ChunkPool hands out byte slices of one fixed size.
type ChunkPool struct {
	size int
	p    sync.Pool
}

// NewChunkPool creates a pool of buffers of the given size.
func NewChunkPool(size int) *ChunkPool {
	cp := &ChunkPool{size: size}
	cp.p.New = func() any { return make([]byte, size) }
	return cp
}

// Size returns the buffer size this pool hands out.
func (c *ChunkPool) Size() int { return c.size }

// Get returns a buffer of exactly Size bytes.
func (c *ChunkPool) Get() []byte {
	return c.p.Get().([]byte)
}

// Put returns a buffer to the pool. Buffers of a different capacity
// are dropped so a resized slice can never poison the pool.
func (c *ChunkPool) Put(buf []byte) {
	if cap(buf) != c.size {
		return
	}
	c.p.Put(buf[:c.size])
}
