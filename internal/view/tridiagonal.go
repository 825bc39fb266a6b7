package view

import (
	"fmt"

	"github.com/recast-ml/recast/internal/storage"
)

// Tridiagonal presents three rank-1 bands (sub, main, super diagonal) as an
// n-by-n matrix. The bands are independent storages, never aliased, and each
// is converted separately by rewrites.
type Tridiagonal struct {
	sub, diag, super storage.Storage
}

var _ View = (*Tridiagonal)(nil)

// NewTridiagonal builds a tridiagonal matrix view from its three bands. The
// main band has length n >= 2 and the off bands length n-1; all three must
// share an element type. Panics on any mismatch.
func NewTridiagonal(sub, diag, super storage.Storage) *Tridiagonal {
	requireBand("main", diag)
	requireBand("sub", sub)
	requireBand("super", super)

	n := diag.Shape()[0]
	if n < 2 {
		panic(fmt.Sprintf("view: tridiagonal requires a main band of length >= 2, got %d", n))
	}
	if sub.Shape()[0] != n-1 || super.Shape()[0] != n-1 {
		panic(fmt.Sprintf("view: tridiagonal band lengths %d/%d/%d, want %d/%d/%d",
			sub.Shape()[0], n, super.Shape()[0], n-1, n, n-1))
	}
	if sub.DType() != diag.DType() || super.DType() != diag.DType() {
		panic(fmt.Sprintf("view: tridiagonal bands disagree on element type: %s/%s/%s",
			sub.DType(), diag.DType(), super.DType()))
	}

	return &Tridiagonal{sub: sub, diag: diag, super: super}
}

func requireBand(name string, s storage.Storage) {
	if len(s.Shape()) != 1 {
		panic(fmt.Sprintf("view: tridiagonal %s band must be rank-1, got shape %v", name, s.Shape()))
	}
}

// Kind returns KindTridiagonal.
func (v *Tridiagonal) Kind() Kind {
	return KindTridiagonal
}

// Shape returns {n, n} where n is the main band's length.
func (v *Tridiagonal) Shape() storage.Shape {
	n := v.diag.Shape()[0]
	return storage.Shape{n, n}
}

// DType returns the bands' common element type.
func (v *Tridiagonal) DType() storage.DataType {
	return v.diag.DType()
}

// Device returns the main band's device.
func (v *Tridiagonal) Device() storage.Device {
	return v.diag.Device()
}

// Bands returns the sub, main, and super diagonal storages in that order.
func (v *Tridiagonal) Bands() (sub, diag, super storage.Storage) {
	return v.sub, v.diag, v.super
}
