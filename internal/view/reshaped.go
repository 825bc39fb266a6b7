package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

// Reshaped presents the parent's elements under a different shape. The target
// shape is part of the view's identity and is forwarded unchanged through
// rewrites.
type Reshaped struct {
	parent storage.Storage
	shape  storage.Shape
}

var _ View = (*Reshaped)(nil)

// NewReshaped builds a reshaped view of parent. Panics when the target shape
// is invalid or its element count differs from the parent's.
func NewReshaped(parent storage.Storage, shape storage.Shape) *Reshaped {
	if err := shape.Validate(); err != nil {
		panic("view: " + err.Error())
	}
	if shape.NumElements() != parent.Shape().NumElements() {
		panic(fmt.Sprintf("view: cannot reshape %v into %v", parent.Shape(), shape))
	}
	return &Reshaped{parent: parent, shape: shape.Clone()}
}

// Kind returns KindReshaped.
func (v *Reshaped) Kind() Kind {
	return KindReshaped
}

// Shape returns the target shape.
func (v *Reshaped) Shape() storage.Shape {
	return v.shape
}

// DType returns the parent's element type.
func (v *Reshaped) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *Reshaped) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Reshaped) Parent() storage.Storage {
	return v.parent
}
