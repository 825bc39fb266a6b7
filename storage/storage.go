// Copyright 2026 Recast ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package storage provides the leaf storage types that views wrap and
// conversion policies move between backends.
package storage

import (
	"github.com/recast-ml/recast/internal/storage"
)

// DType is the constraint for supported element types.
type DType = storage.DType

// DataType identifies the element type of a storage at runtime.
type DataType = storage.DataType

// Supported data types.
const (
	Float32 = storage.Float32
	Float64 = storage.Float64
	Int32   = storage.Int32
	Int64   = storage.Int64
	Uint8   = storage.Uint8
	Bool    = storage.Bool
)

// Device identifies where storage data lives.
type Device = storage.Device

// Supported devices.
const (
	CPU    = storage.CPU
	CUDA   = storage.CUDA
	Vulkan = storage.Vulkan
	Metal  = storage.Metal
	WebGPU = storage.WebGPU
)

// Shape represents the extents of an n-dimensional value.
type Shape = storage.Shape

// Storage is the contract every leaf must satisfy: shape, element type, and
// device. Views forward these from the storage they wrap.
type Storage = storage.Storage

// Dense is contiguous row-major storage in host memory.
//
// Dense provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat32(), AsInt64(), etc.
//   - Deep copies via Clone() and structural comparison via Equal()
type Dense = storage.Dense

// NewDense allocates zeroed dense storage with the given shape and element
// type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return storage.NewDense(shape, dtype)
}

// FromSlice builds dense storage from a typed slice. The slice length must
// equal the number of elements the shape holds; the data is copied.
func FromSlice[T DType](shape Shape, data []T) (*Dense, error) {
	return storage.FromSlice(shape, data)
}
