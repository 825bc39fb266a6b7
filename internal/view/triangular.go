package view

import (
	"github.com/recast-ml/recast/internal/storage"
)

// The triangular and diagonal views wrap a square matrix and mask part of it:
// shape, rank, and element type all mirror the parent. The unit variants fix
// the main diagonal at one.

// LowerTriangular masks everything above the main diagonal.
type LowerTriangular struct {
	parent storage.Storage
}

var _ View = (*LowerTriangular)(nil)

// NewLowerTriangular builds a lower-triangular view of a square parent.
func NewLowerTriangular(parent storage.Storage) *LowerTriangular {
	requireSquare("lower triangular", parent)
	return &LowerTriangular{parent: parent}
}

// Kind returns KindLowerTriangular.
func (v *LowerTriangular) Kind() Kind {
	return KindLowerTriangular
}

// Shape returns the parent's shape.
func (v *LowerTriangular) Shape() storage.Shape {
	return v.parent.Shape()
}

// DType returns the parent's element type.
func (v *LowerTriangular) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *LowerTriangular) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *LowerTriangular) Parent() storage.Storage {
	return v.parent
}

// UnitLowerTriangular masks everything above the main diagonal and fixes the
// diagonal at one.
type UnitLowerTriangular struct {
	parent storage.Storage
}

var _ View = (*UnitLowerTriangular)(nil)

// NewUnitLowerTriangular builds a unit lower-triangular view of a square parent.
func NewUnitLowerTriangular(parent storage.Storage) *UnitLowerTriangular {
	requireSquare("unit lower triangular", parent)
	return &UnitLowerTriangular{parent: parent}
}

// Kind returns KindUnitLowerTriangular.
func (v *UnitLowerTriangular) Kind() Kind {
	return KindUnitLowerTriangular
}

// Shape returns the parent's shape.
func (v *UnitLowerTriangular) Shape() storage.Shape {
	return v.parent.Shape()
}

// DType returns the parent's element type.
func (v *UnitLowerTriangular) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *UnitLowerTriangular) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *UnitLowerTriangular) Parent() storage.Storage {
	return v.parent
}

// UpperTriangular masks everything below the main diagonal.
type UpperTriangular struct {
	parent storage.Storage
}

var _ View = (*UpperTriangular)(nil)

// NewUpperTriangular builds an upper-triangular view of a square parent.
func NewUpperTriangular(parent storage.Storage) *UpperTriangular {
	requireSquare("upper triangular", parent)
	return &UpperTriangular{parent: parent}
}

// Kind returns KindUpperTriangular.
func (v *UpperTriangular) Kind() Kind {
	return KindUpperTriangular
}

// Shape returns the parent's shape.
func (v *UpperTriangular) Shape() storage.Shape {
	return v.parent.Shape()
}

// DType returns the parent's element type.
func (v *UpperTriangular) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *UpperTriangular) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *UpperTriangular) Parent() storage.Storage {
	return v.parent
}

// UnitUpperTriangular masks everything below the main diagonal and fixes the
// diagonal at one.
type UnitUpperTriangular struct {
	parent storage.Storage
}

var _ View = (*UnitUpperTriangular)(nil)

// NewUnitUpperTriangular builds a unit upper-triangular view of a square parent.
func NewUnitUpperTriangular(parent storage.Storage) *UnitUpperTriangular {
	requireSquare("unit upper triangular", parent)
	return &UnitUpperTriangular{parent: parent}
}

// Kind returns KindUnitUpperTriangular.
func (v *UnitUpperTriangular) Kind() Kind {
	return KindUnitUpperTriangular
}

// Shape returns the parent's shape.
func (v *UnitUpperTriangular) Shape() storage.Shape {
	return v.parent.Shape()
}

// DType returns the parent's element type.
func (v *UnitUpperTriangular) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *UnitUpperTriangular) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *UnitUpperTriangular) Parent() storage.Storage {
	return v.parent
}

// Diagonal masks everything off the main diagonal of a square matrix.
type Diagonal struct {
	parent storage.Storage
}

var _ View = (*Diagonal)(nil)

// NewDiagonal builds a diagonal view of a square parent.
func NewDiagonal(parent storage.Storage) *Diagonal {
	requireSquare("diagonal", parent)
	return &Diagonal{parent: parent}
}

// Kind returns KindDiagonal.
func (v *Diagonal) Kind() Kind {
	return KindDiagonal
}

// Shape returns the parent's shape.
func (v *Diagonal) Shape() storage.Shape {
	return v.parent.Shape()
}

// DType returns the parent's element type.
func (v *Diagonal) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *Diagonal) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Diagonal) Parent() storage.Storage {
	return v.parent
}
