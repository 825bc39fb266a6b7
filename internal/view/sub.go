package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

// Range selects the half-open interval [Start, Stop) along one axis.
type Range struct {
	Start, Stop int
}

// Len returns the number of selected positions.
func (r Range) Len() int {
	return r.Stop - r.Start
}

// Sub is a rectangular sub-view of its parent, one index per parent axis.
// A scalar int drops its axis, a Range keeps a contiguous run, and a rank-1
// integer storage selects arbitrary positions along the axis. The view's rank
// is the number of non-scalar indices, so it can differ from the parent's.
type Sub struct {
	parent  storage.Storage
	indices []any
	shape   storage.Shape
}

var _ View = (*Sub)(nil)

// NewSub builds a sub-view of parent. It panics when the index count does not
// match the parent rank, an index is out of bounds, or an index has an
// unsupported form.
func NewSub(parent storage.Storage, indices ...any) *Sub {
	pshape := parent.Shape()
	if len(indices) != len(pshape) {
		panic(fmt.Sprintf("view: sub requires one index per axis: got %d indices for rank %d",
			len(indices), len(pshape)))
	}

	shape := make(storage.Shape, 0, len(pshape))
	idx := make([]any, len(indices))
	for axis, in := range indices {
		switch ix := in.(type) {
		case int:
			if ix < 0 || ix >= pshape[axis] {
				panic(fmt.Sprintf("view: sub index %d out of bounds for axis %d of extent %d",
					ix, axis, pshape[axis]))
			}
			idx[axis] = ix
		case Range:
			if ix.Start < 0 || ix.Stop > pshape[axis] || ix.Start > ix.Stop {
				panic(fmt.Sprintf("view: sub range [%d, %d) invalid for axis %d of extent %d",
					ix.Start, ix.Stop, axis, pshape[axis]))
			}
			idx[axis] = ix
			shape = append(shape, ix.Len())
		case storage.Storage:
			if len(ix.Shape()) != 1 {
				panic(fmt.Sprintf("view: sub index storage for axis %d must be rank-1, got shape %v",
					axis, ix.Shape()))
			}
			if dt := ix.DType(); dt != storage.Int32 && dt != storage.Int64 {
				panic(fmt.Sprintf("view: sub index storage for axis %d must hold integers, got %s",
					axis, dt))
			}
			idx[axis] = ix
			shape = append(shape, ix.Shape()[0])
		default:
			panic(fmt.Sprintf("view: unsupported sub index %T for axis %d", in, axis))
		}
	}

	return &Sub{parent: parent, indices: idx, shape: shape}
}

// Kind returns KindSub.
func (v *Sub) Kind() Kind {
	return KindSub
}

// Shape returns the view's shape: one extent per non-scalar index.
func (v *Sub) Shape() storage.Shape {
	return v.shape
}

// DType returns the parent's element type.
func (v *Sub) DType() storage.DataType {
	return v.parent.DType()
}

// Device returns the parent's device.
func (v *Sub) Device() storage.Device {
	return v.parent.Device()
}

// Parent returns the wrapped storage.
func (v *Sub) Parent() storage.Storage {
	return v.parent
}

// Indices returns the per-axis index set. Elements are int, Range, or a
// rank-1 integer storage.
func (v *Sub) Indices() []any {
	return v.indices
}
