package recast

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
	"github.com/recast-ml/recast/internal/view"
)

// Rewrite returns a value structurally equal to v whose innermost storage has
// been converted by p. Dispatch is a closed type switch over the view catalog;
// any value outside it is a leaf and goes to p directly, so unregistered
// wrapper types are converted opaquely rather than rejected.
//
// Per-kind recipes: identity slots (permutation order, target shape, target
// element type, logical index length) are forwarded verbatim; storage slots
// are rewritten recursively. Recursion strictly descends into constituents,
// so it terminates for any finite value.
//
// The only error source is the policy; its failures propagate unchanged with
// no partial reconstruction. Rewrite never mutates its input.
func Rewrite(p Policy, v any) (any, error) {
	switch w := v.(type) {
	case *view.Sub:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		indices := w.Indices()
		converted := make([]any, len(indices))
		for i, in := range indices {
			ix, ok := in.(storage.Storage)
			if !ok {
				converted[i] = in
				continue
			}
			cix, err := rewriteStorage(p, ix)
			if err != nil {
				return nil, err
			}
			converted[i] = cix
		}
		return view.NewSub(parent, converted...), nil

	case *view.Logical:
		mask, err := rewriteStorage(p, w.Mask())
		if err != nil {
			return nil, err
		}
		return w.WithMask(mask), nil

	case *view.Permuted:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewPermuted(parent, w.Order()), nil

	case *view.Reshaped:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewReshaped(parent, w.Shape()), nil

	case *view.Reinterpreted:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewReinterpreted(parent, w.DType()), nil

	case *view.Adjoint:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewAdjoint(parent), nil

	case *view.Transpose:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewTranspose(parent), nil

	case *view.LowerTriangular:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewLowerTriangular(parent), nil

	case *view.UnitLowerTriangular:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewUnitLowerTriangular(parent), nil

	case *view.UpperTriangular:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewUpperTriangular(parent), nil

	case *view.UnitUpperTriangular:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewUnitUpperTriangular(parent), nil

	case *view.Diagonal:
		parent, err := rewriteStorage(p, w.Parent())
		if err != nil {
			return nil, err
		}
		return view.NewDiagonal(parent), nil

	case *view.Tridiagonal:
		sub, diag, super := w.Bands()
		csub, err := rewriteStorage(p, sub)
		if err != nil {
			return nil, err
		}
		cdiag, err := rewriteStorage(p, diag)
		if err != nil {
			return nil, err
		}
		csuper, err := rewriteStorage(p, super)
		if err != nil {
			return nil, err
		}
		return view.NewTridiagonal(csub, cdiag, csuper), nil

	default:
		return p.Convert(v)
	}
}

// rewriteStorage rewrites one storage slot. A policy that hands back a
// non-storage value for a wrapped slot has broken its contract; there is no
// way to rebuild the view around it, so that is a panic rather than an error.
func rewriteStorage(p Policy, s storage.Storage) (storage.Storage, error) {
	converted, err := Rewrite(p, s)
	if err != nil {
		return nil, err
	}
	cs, ok := converted.(storage.Storage)
	if !ok {
		panic(fmt.Sprintf("recast: policy returned %T for a storage slot", converted))
	}
	return cs, nil
}
