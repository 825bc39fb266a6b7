package recast

import (
	"reflect"

	"github.com/recast-ml/recast/internal/storage"
	"github.com/recast-ml/recast/internal/view"
)

// Desc describes the static structure of a wrapper or leaf: the kind tag, the
// declared element type and rank, and the structure of the wrapped storage.
// Descriptors carry no data, so they can be written as literals for dispatch
// decisions that never materialize a value, or derived from a value with
// DescOf.
type Desc struct {
	// Kind tags the wrapper; it is KindInvalid on leaf descriptors.
	Kind view.Kind

	// Elem is the declared element type. For leaves outside the storage
	// contract it carries no information.
	Elem storage.DataType

	// NDims is the declared rank.
	NDims int

	// Leaf is the concrete storage type; set only on leaf descriptors.
	Leaf reflect.Type

	// Parent describes the wrapped storage. Nil for leaves and Tridiagonal.
	Parent *Desc

	// Bands describe Tridiagonal's three band storages (sub, main, super).
	Bands [3]*Desc
}

// IsLeaf reports whether the descriptor names bare storage rather than a
// wrapper from the catalog.
func (d Desc) IsLeaf() bool {
	return d.Leaf != nil
}

// LeafType returns the concrete type of the innermost storage: the leaf's own
// type, the parent chain's innermost type, or the bands' common type for
// Tridiagonal. Nil when the bands disagree or no leaf information exists.
func (d Desc) LeafType() reflect.Type {
	switch {
	case d.IsLeaf():
		return d.Leaf
	case d.Kind == view.KindTridiagonal:
		var common reflect.Type
		for _, b := range d.Bands {
			if b == nil {
				return nil
			}
			bt := b.LeafType()
			if bt == nil {
				return nil
			}
			if common == nil {
				common = bt
				continue
			}
			if common != bt {
				return nil
			}
		}
		return common
	case d.Parent != nil:
		return d.Parent.LeafType()
	default:
		return nil
	}
}

// DescOf derives the descriptor of v. Views recurse into their wrapped
// storage; any other value is a leaf descriptor carrying its concrete type,
// plus element type and rank when it satisfies the storage contract.
func DescOf(v any) Desc {
	switch w := v.(type) {
	case *view.Sub:
		return wrapped(view.KindSub, w.DType(), len(w.Shape()), w.Parent())
	case *view.Logical:
		return wrapped(view.KindLogical, storage.Int64, 1, w.Mask())
	case *view.Permuted:
		return wrapped(view.KindPermuted, w.DType(), len(w.Order()), w.Parent())
	case *view.Reshaped:
		return wrapped(view.KindReshaped, w.DType(), len(w.Shape()), w.Parent())
	case *view.Reinterpreted:
		return wrapped(view.KindReinterpreted, w.DType(), len(w.Shape()), w.Parent())
	case *view.Adjoint:
		return mirrored(view.KindAdjoint, w.DType(), w.Parent())
	case *view.Transpose:
		return mirrored(view.KindTranspose, w.DType(), w.Parent())
	case *view.LowerTriangular:
		return mirrored(view.KindLowerTriangular, w.DType(), w.Parent())
	case *view.UnitLowerTriangular:
		return mirrored(view.KindUnitLowerTriangular, w.DType(), w.Parent())
	case *view.UpperTriangular:
		return mirrored(view.KindUpperTriangular, w.DType(), w.Parent())
	case *view.UnitUpperTriangular:
		return mirrored(view.KindUnitUpperTriangular, w.DType(), w.Parent())
	case *view.Diagonal:
		return mirrored(view.KindDiagonal, w.DType(), w.Parent())
	case *view.Tridiagonal:
		sub, diag, super := w.Bands()
		ds, dd, du := DescOf(sub), DescOf(diag), DescOf(super)
		return Desc{
			Kind:  view.KindTridiagonal,
			Elem:  w.DType(),
			NDims: 2,
			Bands: [3]*Desc{&ds, &dd, &du},
		}
	case storage.Storage:
		return Desc{
			Elem:  w.DType(),
			NDims: len(w.Shape()),
			Leaf:  reflect.TypeOf(v),
		}
	default:
		return Desc{Leaf: reflect.TypeOf(v)}
	}
}

func wrapped(kind view.Kind, elem storage.DataType, ndims int, parent storage.Storage) Desc {
	p := DescOf(parent)
	return Desc{Kind: kind, Elem: elem, NDims: ndims, Parent: &p}
}

func mirrored(kind view.Kind, elem storage.DataType, parent storage.Storage) Desc {
	p := DescOf(parent)
	return Desc{Kind: kind, Elem: elem, NDims: p.NDims, Parent: &p}
}
