// File: pool/default.go
// Author: solarobot <solarobot@gmail.com>

package pool

import "sync"

// DefaultChunkSize is the 8 KiB transfer class used by the file
// transmission fallback and other chunked copies.
const DefaultChunkSize = 8192

var (
	defaultOnce sync.Once
	defaultPool *ChunkPool
)

// Default returns the process-wide chunk pool so all components reuse
// the same buffers instead of fragmenting allocations.
func Default() *ChunkPool {
	defaultOnce.Do(func() {
		defaultPool = NewChunkPool(DefaultChunkSize)
	})
	return defaultPool
}
