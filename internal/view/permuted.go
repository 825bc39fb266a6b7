package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

// Permuted reorders the parent's axes: axis i of the view is axis order[i] of
// the parent. The order is part of the view's identity and is forwarded
// unchanged through rewrites.
type Permuted struct {
	parent storage.Storage
	order  []int
	shape  storage.Shape
}

var _ View = (*Permuted)(nil)

// NewPermuted builds an axis-permuted view of parent. Panics unless order is
// a permutation of 0..rank-1.
func NewPermuted(parent storage.Storage, order []int) *Permuted {
	pshape := parent.Shape()
	if len(order) != len(pshape) {
		panic(fmt.Sprintf("view: permutation %v does not cover rank %d", order, len(pshape)))
	}
	seen := make([]bool, len(order))
	for _, axis := range order {
		if axis < 0 || axis >= len(order) || seen[axis] {
			panic(fmt.Sprintf("view: invalid permutation %v for rank %d", order, len(pshape)))
		}
		seen[axis] = true
	}

	ord := append([]int(nil), order...)
	return &Permuted{
		parent: parent,
		order:  ord,
		shape:  pshape.Permute(ord),
	}
}

// Kind returns KindPermuted.
func (v *Permuted) Kind() Kind {
	return KindPermuted
}

// Shape returns the permuted shape.
func (v *Permuted) Shape() storage.Shape {
	return v.shape
}

// DType returns the parent's element type.
func (v *Permuted) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *Permuted) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Permuted) Parent() storage.Storage {
	return v.parent
}

// Order returns the axis permutation.
func (v *Permuted) Order() []int {
	return v.order
}
