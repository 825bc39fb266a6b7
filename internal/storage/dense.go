package storage

import (
	"bytes"
	"fmt"
	"unsafe"
)

// Dense is contiguous row-major host storage. It is the default leaf that
// views wrap and that device policies convert from and to.
type Dense struct {
	data  []byte
	shape Shape
	dtype DataType
}

// NewDense allocates zeroed dense storage with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	byteSize := shape.NumElements() * dtype.Size()
	return &Dense{
		data:  make([]byte, byteSize),
		shape: shape.Clone(),
		dtype: dtype,
	}, nil
}

// FromSlice builds dense storage from a typed slice. The slice length must
// equal the shape's element count; the data is copied.
func FromSlice[T DType](shape Shape, data []T) (*Dense, error) {
	var dummy T
	dtype := inferDataType(dummy)

	d, err := NewDense(shape, dtype)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}

	//nolint:gosec // unsafe.Slice for zero-copy reinterpretation, length checked above
	src := unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*dtype.Size())
	copy(d.data, src)
	return d, nil
}

// Shape returns the storage's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// DType returns the storage's element type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// Device returns CPU; dense storage is always host-resident.
func (d *Dense) Device() Device {
	return CPU
}

// Strides returns the row-major memory strides.
func (d *Dense) Strides() []int {
	return d.shape.ComputeStrides()
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (d *Dense) ByteSize() int {
	return d.NumElements() * d.dtype.Size()
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (d *Dense) Data() []byte {
	return d.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the element type is not Float32.
func (d *Dense) AsFloat32() []float32 {
	if d.dtype != Float32 {
		panic(fmt.Sprintf("storage dtype is %s, not float32", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the element type is not Float64.
func (d *Dense) AsFloat64() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("storage dtype is %s, not float64", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the element type is not Int32.
func (d *Dense) AsInt32() []int32 {
	if d.dtype != Int32 {
		panic(fmt.Sprintf("storage dtype is %s, not int32", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int32)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the element type is not Int64.
func (d *Dense) AsInt64() []int64 {
	if d.dtype != Int64 {
		panic(fmt.Sprintf("storage dtype is %s, not int64", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*int64)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsUint8 interprets the data as []uint8.
// Panics if the element type is not Uint8.
func (d *Dense) AsUint8() []uint8 {
	if d.dtype != Uint8 {
		panic(fmt.Sprintf("storage dtype is %s, not uint8", d.dtype))
	}
	return d.data // Already []byte = []uint8
}

// AsBool interprets the data as []bool.
// Panics if the element type is not Bool.
func (d *Dense) AsBool() []bool {
	if d.dtype != Bool {
		panic(fmt.Sprintf("storage dtype is %s, not bool", d.dtype))
	}
	//nolint:gosec // unsafe.Slice for zero-copy access, bounds checked by NumElements()
	return unsafe.Slice((*bool)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// Clone returns a deep copy of the storage.
func (d *Dense) Clone() *Dense {
	data := make([]byte, len(d.data))
	copy(data, d.data)
	return &Dense{
		data:  data,
		shape: d.shape.Clone(),
		dtype: d.dtype,
	}
}

// Equal reports whether two dense storages have the same shape, element type,
// and byte content.
func (d *Dense) Equal(other *Dense) bool {
	if other == nil {
		return false
	}
	return d.dtype == other.dtype &&
		d.shape.Equal(other.shape) &&
		bytes.Equal(d.data, other.data)
}
