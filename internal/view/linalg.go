package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

func requireMatrix(kind string, s storage.Storage) {
	if len(s.Shape()) != 2 {
		panic(fmt.Sprintf("view: %s requires a rank-2 parent, got shape %v", kind, s.Shape()))
	}
}

func requireSquare(kind string, s storage.Storage) {
	requireMatrix(kind, s)
	sh := s.Shape()
	if sh[0] != sh[1] {
		panic(fmt.Sprintf("view: %s requires a square parent, got shape %v", kind, sh))
	}
}

// Adjoint is the conjugate transpose of a matrix. Its shape mirrors the
// parent with the two axes swapped; the rank is always the parent's.
type Adjoint struct {
	parent storage.Storage
}

var _ View = (*Adjoint)(nil)

// NewAdjoint builds the adjoint view of a rank-2 parent.
func NewAdjoint(parent storage.Storage) *Adjoint {
	requireMatrix("adjoint", parent)
	return &Adjoint{parent: parent}
}

// Kind returns KindAdjoint.
func (v *Adjoint) Kind() Kind {
	return KindAdjoint
}

// Shape returns the parent's shape with the axes swapped.
func (v *Adjoint) Shape() storage.Shape {
	return v.parent.Shape().Reversed()
}

// DType returns the parent's element type.
func (v *Adjoint) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *Adjoint) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Adjoint) Parent() storage.Storage {
	return v.parent
}

// Transpose swaps the two axes of a matrix without conjugation.
type Transpose struct {
	parent storage.Storage
}

var _ View = (*Transpose)(nil)

// NewTranspose builds the transposed view of a rank-2 parent.
func NewTranspose(parent storage.Storage) *Transpose {
	requireMatrix("transpose", parent)
	return &Transpose{parent: parent}
}

// Kind returns KindTranspose.
func (v *Transpose) Kind() Kind {
	return KindTranspose
}

// Shape returns the parent's shape with the axes swapped.
func (v *Transpose) Shape() storage.Shape {
	return v.parent.Shape().Reversed()
}

// DType returns the parent's element type.
func (v *Transpose) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *Transpose) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Transpose) Parent() storage.Storage {
	return v.parent
}
