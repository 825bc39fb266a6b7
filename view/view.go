// Copyright 2026 Recast ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package view provides the closed catalog of wrapper types the rewriting
// engine understands: indexing views, layout views, and linear-algebra
// annotations. Every view reports shape, element type, and device derived
// from the storage it wraps.
package view

import (
	"github.com/recast-ml/recast/internal/view"
	"github.com/recast-ml/recast/storage"
)

// Kind tags a wrapper type from the catalog.
type Kind = view.Kind

// The catalog. KindInvalid tags values outside it.
const (
	KindInvalid             = view.KindInvalid
	KindSub                 = view.KindSub
	KindLogical             = view.KindLogical
	KindPermuted            = view.KindPermuted
	KindReshaped            = view.KindReshaped
	KindReinterpreted       = view.KindReinterpreted
	KindAdjoint             = view.KindAdjoint
	KindTranspose           = view.KindTranspose
	KindLowerTriangular     = view.KindLowerTriangular
	KindUnitLowerTriangular = view.KindUnitLowerTriangular
	KindUpperTriangular     = view.KindUpperTriangular
	KindUnitUpperTriangular = view.KindUnitUpperTriangular
	KindDiagonal            = view.KindDiagonal
	KindTridiagonal         = view.KindTridiagonal
)

// View is a wrapper from the catalog. It satisfies the storage contract by
// deriving its metadata from the storage it wraps.
type View = view.View

// Range selects the half-open interval [Start, Stop) along one axis.
type Range = view.Range

// Sub is a rectangular sub-view of its parent, one index per parent axis.
type Sub = view.Sub

// Logical selects the positions where a boolean mask is true.
type Logical = view.Logical

// Permuted reorders its parent's axes.
type Permuted = view.Permuted

// Reshaped reads its parent's elements in row-major order under a new shape.
type Reshaped = view.Reshaped

// Reinterpreted reads its parent's bytes as a different element type.
type Reinterpreted = view.Reinterpreted

// Adjoint marks a matrix as conjugate-transposed.
type Adjoint = view.Adjoint

// Transpose marks a matrix as transposed.
type Transpose = view.Transpose

// LowerTriangular reads only the lower triangle of a square matrix.
type LowerTriangular = view.LowerTriangular

// UnitLowerTriangular is LowerTriangular with an implicit unit diagonal.
type UnitLowerTriangular = view.UnitLowerTriangular

// UpperTriangular reads only the upper triangle of a square matrix.
type UpperTriangular = view.UpperTriangular

// UnitUpperTriangular is UpperTriangular with an implicit unit diagonal.
type UnitUpperTriangular = view.UnitUpperTriangular

// Diagonal reads only the main diagonal of a square matrix.
type Diagonal = view.Diagonal

// Tridiagonal assembles a square matrix from three independent bands.
type Tridiagonal = view.Tridiagonal

// NewSub builds a sub-view of parent. Indices are int (drops the axis),
// Range, or rank-1 integer storage, one per parent axis.
func NewSub(parent storage.Storage, indices ...any) *Sub {
	return view.NewSub(parent, indices...)
}

// NewLogical builds a mask selection over a boolean mask.
func NewLogical(mask storage.Storage) *Logical {
	return view.NewLogical(mask)
}

// NewPermuted builds an axis permutation of parent. order must be a
// permutation of parent's axes.
func NewPermuted(parent storage.Storage, order []int) *Permuted {
	return view.NewPermuted(parent, order)
}

// NewReshaped builds a reshape of parent. The target shape must hold exactly
// as many elements as the parent.
func NewReshaped(parent storage.Storage, shape storage.Shape) *Reshaped {
	return view.NewReshaped(parent, shape)
}

// NewReinterpreted rereads parent's bytes as dtype. The parent's last axis
// must cover a whole number of new elements.
func NewReinterpreted(parent storage.Storage, dtype storage.DataType) *Reinterpreted {
	return view.NewReinterpreted(parent, dtype)
}

// NewAdjoint marks a matrix as conjugate-transposed.
func NewAdjoint(parent storage.Storage) *Adjoint {
	return view.NewAdjoint(parent)
}

// NewTranspose marks a matrix as transposed.
func NewTranspose(parent storage.Storage) *Transpose {
	return view.NewTranspose(parent)
}

// NewLowerTriangular marks the lower triangle of a square matrix.
func NewLowerTriangular(parent storage.Storage) *LowerTriangular {
	return view.NewLowerTriangular(parent)
}

// NewUnitLowerTriangular marks the strict lower triangle with a unit
// diagonal.
func NewUnitLowerTriangular(parent storage.Storage) *UnitLowerTriangular {
	return view.NewUnitLowerTriangular(parent)
}

// NewUpperTriangular marks the upper triangle of a square matrix.
func NewUpperTriangular(parent storage.Storage) *UpperTriangular {
	return view.NewUpperTriangular(parent)
}

// NewUnitUpperTriangular marks the strict upper triangle with a unit
// diagonal.
func NewUnitUpperTriangular(parent storage.Storage) *UnitUpperTriangular {
	return view.NewUnitUpperTriangular(parent)
}

// NewDiagonal marks the main diagonal of a square matrix.
func NewDiagonal(parent storage.Storage) *Diagonal {
	return view.NewDiagonal(parent)
}

// NewTridiagonal assembles a tridiagonal matrix from its sub-, main, and
// super-diagonal bands. For a main diagonal of length n the off-diagonal
// bands must have length n-1 and all bands must share an element type.
func NewTridiagonal(sub, diag, super storage.Storage) *Tridiagonal {
	return view.NewTridiagonal(sub, diag, super)
}
