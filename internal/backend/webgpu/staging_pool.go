package webgpu

import (
	"sync"

	"github.com/go-webgpu/webgpu/wgpu"
)

// bufferSize represents different buffer size categories for pooling.
type bufferSize int

const (
	// smallBuffer for transfers < 4KB.
	smallBuffer bufferSize = iota
	// mediumBuffer for transfers 4KB-1MB.
	mediumBuffer
	// largeBuffer for transfers > 1MB.
	largeBuffer
)

const (
	// Size thresholds for buffer categories.
	smallThreshold  = 4 * 1024    // 4KB
	mediumThreshold = 1024 * 1024 // 1MB
	maxPoolSize     = 100         // Max buffers per category
)

// stagingUsage is the only usage staging buffers need: copy destination of a
// device-to-host transfer, mappable for reading.
const stagingUsage = wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst

// pooledBuffer wraps a staging buffer with its allocated size.
type pooledBuffer struct {
	buffer *wgpu.Buffer
	size   uint64
}

// stagingPool reuses staging buffers across device reads to reduce
// allocation overhead. Buffers are categorized by size.
type stagingPool struct {
	device *wgpu.Device

	// Pools organized by size category
	small  []*pooledBuffer
	medium []*pooledBuffer
	large  []*pooledBuffer

	mu sync.Mutex

	// Statistics
	totalAllocated uint64
	totalReleased  uint64
	poolHits       uint64
	poolMisses     uint64
}

// newStagingPool creates a staging pool for the given device.
func newStagingPool(device *wgpu.Device) *stagingPool {
	return &stagingPool{
		device: device,
		small:  make([]*pooledBuffer, 0, maxPoolSize),
		medium: make([]*pooledBuffer, 0, maxPoolSize),
		large:  make([]*pooledBuffer, 0, maxPoolSize),
	}
}

// acquire gets a staging buffer from the pool or creates a new one.
// Returns a buffer that matches or exceeds the requested size.
func (p *stagingPool) acquire(size uint64) *wgpu.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	category := p.categorize(size)
	pool := p.getPool(category)

	for i, pb := range pool {
		if pb.size >= size {
			buffer := pb.buffer
			p.removeFromPool(category, i)
			p.poolHits++
			return buffer
		}
	}

	// No suitable buffer found - create new one
	p.poolMisses++
	p.totalAllocated++

	return p.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage: stagingUsage,
		Size:  size,
	})
}

// release returns a staging buffer to the pool for reuse.
// If the pool is full, the buffer is immediately released.
func (p *stagingPool) release(buffer *wgpu.Buffer, size uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.totalReleased++

	category := p.categorize(size)
	pool := p.getPool(category)

	if len(pool) >= maxPoolSize {
		buffer.Release()
		return
	}

	p.addToPool(category, &pooledBuffer{buffer: buffer, size: size})
}

// clear releases all pooled buffers.
// Should be called when the backend is released.
func (p *stagingPool) clear() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, pb := range p.small {
		pb.buffer.Release()
	}
	p.small = p.small[:0]

	for _, pb := range p.medium {
		pb.buffer.Release()
	}
	p.medium = p.medium[:0]

	for _, pb := range p.large {
		pb.buffer.Release()
	}
	p.large = p.large[:0]
}

// stats returns statistics about staging pool usage.
func (p *stagingPool) stats() (allocated, released, hits, misses uint64, pooledCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.totalAllocated, p.totalReleased, p.poolHits, p.poolMisses,
		len(p.small) + len(p.medium) + len(p.large)
}

// categorize determines the size category for a buffer.
func (p *stagingPool) categorize(size uint64) bufferSize {
	if size < smallThreshold {
		return smallBuffer
	}
	if size < mediumThreshold {
		return mediumBuffer
	}
	return largeBuffer
}

// getPool returns the pool slice for a given category.
func (p *stagingPool) getPool(category bufferSize) []*pooledBuffer {
	switch category {
	case smallBuffer:
		return p.small
	case mediumBuffer:
		return p.medium
	case largeBuffer:
		return p.large
	default:
		return nil
	}
}

// addToPool adds a buffer to the appropriate pool category.
func (p *stagingPool) addToPool(category bufferSize, pb *pooledBuffer) {
	switch category {
	case smallBuffer:
		p.small = append(p.small, pb)
	case mediumBuffer:
		p.medium = append(p.medium, pb)
	case largeBuffer:
		p.large = append(p.large, pb)
	}
}

// removeFromPool removes a buffer at index i from the appropriate pool.
func (p *stagingPool) removeFromPool(category bufferSize, i int) {
	switch category {
	case smallBuffer:
		p.small = append(p.small[:i], p.small[i+1:]...)
	case mediumBuffer:
		p.medium = append(p.medium[:i], p.medium[i+1:]...)
	case largeBuffer:
		p.large = append(p.large[:i], p.large[i+1:]...)
	}
}
