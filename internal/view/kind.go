// Package view defines the closed catalog of storage wrappers: non-copying
// array views that change shape, element type, or access pattern of the
// storage they wrap. The catalog is fixed at thirteen kinds; rewrite and
// matching code dispatches over it exhaustively.
package view

import "github.com/recast-ml/recast/internal/storage"

// Kind tags one wrapper shape in the catalog.
type Kind int

// The wrapper catalog. KindInvalid is the zero value and tags nothing.
const (
	KindInvalid Kind = iota
	KindSub
	KindLogical
	KindPermuted
	KindReshaped
	KindReinterpreted
	KindAdjoint
	KindTranspose
	KindLowerTriangular
	KindUnitLowerTriangular
	KindUpperTriangular
	KindUnitUpperTriangular
	KindDiagonal
	KindTridiagonal
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindSub:
		return "Sub"
	case KindLogical:
		return "Logical"
	case KindPermuted:
		return "Permuted"
	case KindReshaped:
		return "Reshaped"
	case KindReinterpreted:
		return "Reinterpreted"
	case KindAdjoint:
		return "Adjoint"
	case KindTranspose:
		return "Transpose"
	case KindLowerTriangular:
		return "LowerTriangular"
	case KindUnitLowerTriangular:
		return "UnitLowerTriangular"
	case KindUpperTriangular:
		return "UpperTriangular"
	case KindUnitUpperTriangular:
		return "UnitUpperTriangular"
	case KindDiagonal:
		return "Diagonal"
	case KindTridiagonal:
		return "Tridiagonal"
	default:
		return "Invalid"
	}
}

// Mirrors reports whether the kind's shape properties mirror the storage it
// wraps (transpose-like views) rather than being declared on the wrapper
// itself (indexing-like views, whose rank can differ from the parent's).
func (k Kind) Mirrors() bool {
	switch k {
	case KindAdjoint, KindTranspose,
		KindLowerTriangular, KindUnitLowerTriangular,
		KindUpperTriangular, KindUnitUpperTriangular,
		KindDiagonal, KindTridiagonal:
		return true
	default:
		return false
	}
}

// Composable reports whether the kind participates in one-level compositions
// recognized by static matching. Only Sub, Reshaped, and Reinterpreted do.
func (k Kind) Composable() bool {
	switch k {
	case KindSub, KindReshaped, KindReinterpreted:
		return true
	default:
		return false
	}
}

// View is implemented by every wrapper in the catalog. A view satisfies the
// storage contract itself, so views nest: any view can be the parent of
// another.
type View interface {
	storage.Storage
	Kind() Kind
}
