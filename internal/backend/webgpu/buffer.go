package webgpu

import (
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/recast-ml/recast/internal/storage"
)

// Buffer is dense storage resident in a WebGPU device buffer. It carries the
// shape and element type of the host storage it was uploaded from, so views
// over it keep reporting correct metadata while the data lives on the GPU.
type Buffer struct {
	buffer  *wgpu.Buffer
	shape   storage.Shape
	dtype   storage.DataType
	size    uint64 // allocated byte size, 4-byte aligned
	backend *Backend
}

var _ storage.Storage = (*Buffer)(nil)

// Shape returns the extents of the stored value.
func (b *Buffer) Shape() storage.Shape {
	return b.shape
}

// DType returns the element type of the stored value.
func (b *Buffer) DType() storage.DataType {
	return b.dtype
}

// Device returns storage.WebGPU.
func (b *Buffer) Device() storage.Device {
	return storage.WebGPU
}

// ByteSize returns the unpadded payload size in bytes.
func (b *Buffer) ByteSize() int {
	return b.shape.NumElements() * b.dtype.Size()
}

// ToHost downloads the buffer into freshly allocated dense storage.
func (b *Buffer) ToHost() (*storage.Dense, error) {
	return b.backend.Download(b)
}

// Release frees the device buffer. The Buffer must not be used afterwards.
func (b *Buffer) Release() {
	if b.buffer == nil {
		return
	}
	b.buffer.Release()
	b.buffer = nil
	b.backend.trackBufferRelease(b.size)
}

// String describes the buffer for logs and errors.
func (b *Buffer) String() string {
	return fmt.Sprintf("webgpu.Buffer(shape=%v, dtype=%s)", b.shape, b.dtype)
}
