package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

// Reinterpreted reads the parent's bytes as another element type. Storage is
// row-major, so the innermost (last) axis is the contiguous one and is the
// axis that rescales. The target element type is part of the view's identity
// and is forwarded unchanged through rewrites.
type Reinterpreted struct {
	parent storage.Storage
	dtype  storage.DataType
	shape  storage.Shape
}

var _ View = (*Reinterpreted)(nil)

// NewReinterpreted builds a reinterpreting view of parent. Panics for scalar
// parents and when the innermost axis's byte extent does not divide evenly by
// the new element size.
func NewReinterpreted(parent storage.Storage, dtype storage.DataType) *Reinterpreted {
	pshape := parent.Shape()
	if len(pshape) == 0 {
		panic("view: cannot reinterpret scalar storage")
	}
	last := pshape[len(pshape)-1]
	byteExtent := last * parent.DType().Size()
	if byteExtent%dtype.Size() != 0 {
		panic(fmt.Sprintf("view: cannot reinterpret innermost axis of %d %s elements as %s",
			last, parent.DType(), dtype))
	}

	shape := pshape.Clone()
	shape[len(shape)-1] = byteExtent / dtype.Size()
	return &Reinterpreted{parent: parent, dtype: dtype, shape: shape}
}

// Kind returns KindReinterpreted.
func (v *Reinterpreted) Kind() Kind {
	return KindReinterpreted
}

// Shape returns the parent's shape with the innermost axis rescaled.
func (v *Reinterpreted) Shape() storage.Shape {
	return v.shape
}

// DType returns the target element type.
func (v *Reinterpreted) DType() storage.DataType {
	return v.dtype
}

// Device returns the parent's device.
func (v *Reinterpreted) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Reinterpreted) Parent() storage.Storage {
	return v.parent
}
