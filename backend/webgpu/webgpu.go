// Copyright 2026 Recast ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides WebGPU-backed conversion policies: rewrite a
// wrapped value with ToDevice() to move its storage into GPU buffers, and
// with ToHost() to bring it back.
//
// WebGPU is a cross-platform graphics and compute API that works on:
//   - Windows (via D3D12)
//   - macOS (via Metal)
//   - Linux (via Vulkan)
//
// Example:
//
//	import (
//	    "github.com/recast-ml/recast"
//	    "github.com/recast-ml/recast/backend/webgpu"
//	    "github.com/recast-ml/recast/view"
//	)
//
//	func main() {
//	    gpu, err := webgpu.New()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    defer gpu.Release()
//
//	    moved, err := recast.Rewrite(gpu.ToDevice(), view.NewTranspose(host))
//	}
package webgpu

import (
	"github.com/go-webgpu/webgpu/wgpu"
	"go.uber.org/zap"

	internalwebgpu "github.com/recast-ml/recast/internal/backend/webgpu"
	"github.com/recast-ml/recast/storage"
)

// Backend owns a WebGPU device and issues the ToDevice and ToHost conversion
// policies for it.
type Backend = internalwebgpu.Backend

// Buffer is dense storage resident on the GPU. It satisfies the storage
// contract, so views wrap it the same way they wrap host storage.
type Buffer = internalwebgpu.Buffer

// MemoryStats represents GPU memory usage statistics.
type MemoryStats = internalwebgpu.MemoryStats

// AdapterInfo describes a GPU adapter.
type AdapterInfo = wgpu.AdapterInfo

// Compile-time check that device buffers work as view leaves.
var _ storage.Storage = (*Buffer)(nil)

// New creates a WebGPU backend on the default adapter.
//
// Call Release() when done to free GPU resources. Returns an error if WebGPU
// initialization fails (e.g., no compatible GPU).
func New() (*Backend, error) {
	return internalwebgpu.New(nil)
}

// NewWithLogger is New with debug logging of transfers and lifecycle events.
func NewWithLogger(log *zap.Logger) (*Backend, error) {
	return internalwebgpu.New(log)
}

// IsAvailable checks if WebGPU is available on the current system.
//
// It attempts to initialize a WebGPU adapter to verify that a compatible GPU
// and drivers are present. Useful for graceful fallback when no GPU is
// available:
//
//	if webgpu.IsAvailable() {
//	    gpu, _ := webgpu.New()
//	    policy = gpu.ToDevice()
//	} else {
//	    policy = recast.Identity
//	}
func IsAvailable() bool {
	return internalwebgpu.IsAvailable()
}

// ListAdapters returns information about available GPU adapters.
func ListAdapters() ([]AdapterInfo, error) {
	return internalwebgpu.ListAdapters()
}
