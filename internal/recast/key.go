package recast

import (
	"reflect"

	"github.com/recast-ml/recast/internal/storage"
	"github.com/recast-ml/recast/internal/view"
)

// Key parameterizes static membership in the wrapper family. Elem and NDims
// constrain the wrapper's own declared element type and rank. Src names the
// leaf family checked under rank-changing wrappers (Sub, Logical, Permuted,
// Reshaped, Reinterpreted), whose rank is declared on the wrapper itself.
// Dst names the leaf family checked under shape-mirroring wrappers (Adjoint
// through Tridiagonal), whose rank is read off the parent. The two are kept
// separate because dimensionality resolves differently in each case.
type Key struct {
	Elem  storage.DataType
	NDims int
	Src   reflect.Type
	Dst   reflect.Type
}

// Matches reports whether d belongs to the wrapper family described by k.
// It operates on descriptors only, never on values, and cannot fail: an
// unknown structure is a non-match.
//
// Membership is head-directed. Non-composable heads require their storage
// slot to be a leaf of the keyed family directly. The composable heads admit
// exactly three one-level compositions, checked in fixed order:
//
//	Reinterpreted over a Src leaf, or over Sub-of-leaf
//	Reshaped      over a Src leaf, or over Sub-of-leaf, or Reinterpreted-of-leaf
//	Sub           over a Src leaf, or over Reshaped-of-leaf, or Reinterpreted-of-leaf
//
// The inner wrapper must sit directly on the leaf; deeper nesting does not
// match. Each rule targets a distinct head kind, so no descriptor can match
// two rules. Inner wrapper parameters are unconstrained; only the head's
// element type and rank and the innermost leaf family are checked.
func Matches(k Key, d Desc) bool {
	if d.IsLeaf() || d.Elem != k.Elem || d.NDims != k.NDims {
		return false
	}

	if d.Kind.Mirrors() {
		if d.Kind == view.KindTridiagonal {
			for _, b := range d.Bands {
				if !isBandLeaf(b, k) {
					return false
				}
			}
			return true
		}
		p := d.Parent
		return p != nil && p.IsLeaf() &&
			p.Leaf == k.Dst && p.Elem == k.Elem && p.NDims == d.NDims
	}

	switch d.Kind {
	case view.KindLogical, view.KindPermuted:
		return isSrcLeaf(d.Parent, k)
	case view.KindReinterpreted:
		return matchComposed(d.Parent, k, view.KindSub)
	case view.KindReshaped:
		return matchComposed(d.Parent, k, view.KindSub, view.KindReinterpreted)
	case view.KindSub:
		return matchComposed(d.Parent, k, view.KindReshaped, view.KindReinterpreted)
	default:
		return false
	}
}

func isSrcLeaf(p *Desc, k Key) bool {
	return p != nil && p.IsLeaf() && p.Leaf == k.Src
}

func isBandLeaf(b *Desc, k Key) bool {
	return b != nil && b.IsLeaf() &&
		b.Leaf == k.Dst && b.Elem == k.Elem && b.NDims == 1
}

// matchComposed accepts a Src leaf, or one of the allowed inner wrapper kinds
// sitting directly on a Src leaf. Composition stops at depth one.
func matchComposed(p *Desc, k Key, inner ...view.Kind) bool {
	if p == nil {
		return false
	}
	if p.IsLeaf() {
		return p.Leaf == k.Src
	}
	for _, kind := range inner {
		if p.Kind == kind {
			return isSrcLeaf(p.Parent, k)
		}
	}
	return false
}
