package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

// Logical is the index set formed by the true positions of a boolean mask.
// It is always rank-1 with Int64 elements, regardless of the mask's rank.
// Because a Logical is itself rank-1 integer storage, it can be used as a
// Sub index.
type Logical struct {
	mask storage.Storage
	n    int // true count; -1 when the mask was never host-readable
}

var _ View = (*Logical)(nil)

// NewLogical builds a logical index over mask. Panics if the mask does not
// hold booleans. The selected count is read off the mask when it is
// host-readable; otherwise the view's length stays unknown until the mask is
// brought back to the host.
func NewLogical(mask storage.Storage) *Logical {
	if mask.DType() != storage.Bool {
		panic(fmt.Sprintf("view: logical index requires a bool mask, got %s", mask.DType()))
	}
	return &Logical{mask: mask, n: countTrue(mask)}
}

// WithMask returns a logical index over a converted mask. The mask must
// select the same positions; the cached count carries over, and an unknown
// count is re-read when the new mask is host-readable.
func (v *Logical) WithMask(mask storage.Storage) *Logical {
	if mask.DType() != storage.Bool {
		panic(fmt.Sprintf("view: logical index requires a bool mask, got %s", mask.DType()))
	}
	n := v.n
	if n < 0 {
		n = countTrue(mask)
	}
	return &Logical{mask: mask, n: n}
}

func countTrue(mask storage.Storage) int {
	r, ok := mask.(interface{ AsBool() []bool })
	if !ok {
		return -1
	}
	n := 0
	for _, b := range r.AsBool() {
		if b {
			n++
		}
	}
	return n
}

// Kind returns KindLogical.
func (v *Logical) Kind() Kind {
	return KindLogical
}

// Shape returns the number of selected positions. Panics when the mask lives
// on a device and the count was never observed on the host.
func (v *Logical) Shape() storage.Shape {
	if v.n < 0 {
		panic("view: logical index over a device mask has unknown length")
	}
	return storage.Shape{v.n}
}

// DType returns Int64: a logical index yields element positions.
func (v *Logical) DType() storage.DataType {
	return storage.Int64
}

// Device returns the mask's device.
func (v *Logical) Device() storage.Device {
	return v.mask.Device()
}

// Mask returns the wrapped boolean mask.
func (v *Logical) Mask() storage.Storage {
	return v.mask
}
