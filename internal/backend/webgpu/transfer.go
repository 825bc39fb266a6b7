package webgpu

import (
	"fmt"
	"unsafe"

	"github.com/go-webgpu/webgpu/wgpu"
	"go.uber.org/zap"

	"github.com/recast-ml/recast/internal/recast"
	"github.com/recast-ml/recast/internal/storage"
)

// alignedSize rounds n up to the 4-byte alignment WebGPU requires for buffer
// mapping and copies. Bool storage can have odd byte sizes.
func alignedSize(n uint64) uint64 {
	return (n + 3) &^ 3
}

// Upload copies dense host storage into a new device buffer.
func (b *Backend) Upload(d *storage.Dense) (*Buffer, error) {
	if d == nil {
		return nil, fmt.Errorf("webgpu: cannot upload nil storage")
	}

	//nolint:gosec // G115: Safe conversion, ByteSize() returns non-negative int
	size := alignedSize(uint64(d.ByteSize()))

	buffer := b.device.CreateBuffer(&wgpu.BufferDescriptor{
		Usage:            wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst,
		Size:             size,
		MappedAtCreation: wgpu.True,
	})

	// Copy data to mapped buffer; the alignment padding stays zero.
	mappedPtr := buffer.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	copy(mappedSlice, d.Data())
	buffer.Unmap()

	b.trackBufferAllocation(size)
	b.log.Debug("uploaded storage",
		zap.Ints("shape", d.Shape()),
		zap.String("dtype", d.DType().String()),
		zap.Uint64("bytes", size))

	return &Buffer{
		buffer:  buffer,
		shape:   d.Shape().Clone(),
		dtype:   d.DType(),
		size:    size,
		backend: b,
	}, nil
}

// Download copies a device buffer back into freshly allocated dense storage.
// The buffer stays valid and can be downloaded again.
func (b *Backend) Download(buf *Buffer) (*storage.Dense, error) {
	if buf == nil || buf.buffer == nil {
		return nil, fmt.Errorf("webgpu: cannot download a released buffer")
	}

	data, err := b.readBuffer(buf.buffer, buf.size)
	if err != nil {
		return nil, err
	}

	d, err := storage.NewDense(buf.shape, buf.dtype)
	if err != nil {
		return nil, err
	}
	copy(d.Data(), data[:d.ByteSize()])

	b.log.Debug("downloaded storage",
		zap.Ints("shape", buf.shape),
		zap.String("dtype", buf.dtype.String()))

	return d, nil
}

// readBuffer reads data back from a GPU buffer to CPU memory. Goes through a
// pooled staging buffer since storage buffers can't be mapped directly.
func (b *Backend) readBuffer(src *wgpu.Buffer, size uint64) ([]byte, error) {
	staging := b.staging.acquire(size)
	defer b.staging.release(staging, size)

	// Copy from GPU buffer to staging buffer
	encoder := b.device.CreateCommandEncoder(nil)
	encoder.CopyBufferToBuffer(src, 0, staging, 0, size)
	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	// Map staging buffer for reading
	if err := staging.MapAsync(b.device, wgpu.MapModeRead, 0, size); err != nil {
		return nil, fmt.Errorf("webgpu: failed to map staging buffer: %w", err)
	}

	mappedPtr := staging.GetMappedRange(0, size)
	//nolint:gosec // unsafe.Slice for zero-copy conversion from unsafe.Pointer
	mappedSlice := unsafe.Slice((*byte)(mappedPtr), size)
	result := make([]byte, size)
	copy(result, mappedSlice)
	staging.Unmap()

	return result, nil
}

// ToDevice returns a conversion policy that uploads dense host leaves to this
// backend's device. Buffers already on the device pass through unchanged, so
// applying the policy twice is a no-op.
func (b *Backend) ToDevice() recast.Policy {
	return recast.PolicyFunc(func(leaf any) (any, error) {
		switch s := leaf.(type) {
		case *Buffer:
			return s, nil
		case *storage.Dense:
			return b.Upload(s)
		default:
			return nil, fmt.Errorf("webgpu: cannot transfer %T to device", leaf)
		}
	})
}

// ToHost returns the inverse policy: device buffers are downloaded and dense
// host storage passes through unchanged.
func (b *Backend) ToHost() recast.Policy {
	return recast.PolicyFunc(func(leaf any) (any, error) {
		switch s := leaf.(type) {
		case *storage.Dense:
			return s, nil
		case *Buffer:
			return s.ToHost()
		default:
			return nil, fmt.Errorf("webgpu: cannot transfer %T to host", leaf)
		}
	})
}
