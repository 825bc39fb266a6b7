package storage

import (
	"testing"
)

// Dense Tests

func TestNewDenseAllTypes(t *testing.T) {
	types := []struct {
		dtype       DataType
		elementSize int
	}{
		{Float32, 4},
		{Float64, 8},
		{Int32, 4},
		{Int64, 8},
		{Uint8, 1},
		{Bool, 1},
	}

	shape := Shape{2, 3}
	for _, tt := range types {
		d, err := NewDense(shape, tt.dtype)
		if err != nil {
			t.Fatalf("NewDense(%v, %v) failed: %v", shape, tt.dtype, err)
		}
		if d.ByteSize() != 6*tt.elementSize {
			t.Errorf("ByteSize() = %d, want %d", d.ByteSize(), 6*tt.elementSize)
		}
		if d.Device() != CPU {
			t.Errorf("Device() = %v, want CPU", d.Device())
		}
	}
}

func TestNewDenseInvalidShape(t *testing.T) {
	if _, err := NewDense(Shape{2, 0}, Float32); err == nil {
		t.Error("NewDense with zero dimension should fail")
	}
	if _, err := NewDense(Shape{-1}, Float32); err == nil {
		t.Error("NewDense with negative dimension should fail")
	}
}

func TestDenseAsFloat64(t *testing.T) {
	d, _ := NewDense(Shape{3, 2}, Float64)
	data := d.AsFloat64()

	if len(data) != 6 {
		t.Errorf("AsFloat64 length = %d, want 6", len(data))
	}

	// Modify and verify zero-copy
	data[0] = 42
	if d.AsFloat64()[0] != 42 {
		t.Error("AsFloat64 should return zero-copy slice")
	}
}

func TestDenseAsBool(t *testing.T) {
	d, _ := NewDense(Shape{2, 2}, Bool)
	data := d.AsBool()

	if len(data) != 4 {
		t.Errorf("AsBool length = %d, want 4", len(data))
	}

	data[3] = true
	if d.AsBool()[3] != true {
		t.Error("AsBool should return zero-copy slice")
	}
}

func TestDenseAccessorPanicsOnWrongType(t *testing.T) {
	d, _ := NewDense(Shape{2}, Float32)

	defer func() {
		if recover() == nil {
			t.Error("AsInt64 on Float32 storage should panic")
		}
	}()
	d.AsInt64()
}

func TestFromSlice(t *testing.T) {
	d, err := FromSlice(Shape{2, 3}, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	if d.DType() != Float64 {
		t.Errorf("DType() = %v, want Float64", d.DType())
	}
	if !d.Shape().Equal(Shape{2, 3}) {
		t.Errorf("Shape() = %v, want [2 3]", d.Shape())
	}

	data := d.AsFloat64()
	for i, want := range []float64{1, 2, 3, 4, 5, 6} {
		if data[i] != want {
			t.Errorf("data[%d] = %v, want %v", i, data[i], want)
		}
	}
}

func TestFromSliceLengthMismatch(t *testing.T) {
	if _, err := FromSlice(Shape{2, 3}, []int32{1, 2, 3}); err == nil {
		t.Error("FromSlice with short data should fail")
	}
}

func TestDenseCloneIsDeep(t *testing.T) {
	d, _ := FromSlice(Shape{2}, []int64{7, 8})
	clone := d.Clone()

	clone.AsInt64()[0] = 99
	if d.AsInt64()[0] != 7 {
		t.Error("Clone should not share the underlying buffer")
	}
	if !d.Equal(d) {
		t.Error("Equal should be reflexive")
	}
	if d.Equal(clone) {
		t.Error("storages with different content should not be equal")
	}
}

// Shape Tests

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeComputeStrides(t *testing.T) {
	strides := Shape{2, 3, 4}.ComputeStrides()
	want := []int{12, 4, 1}
	for i := range want {
		if strides[i] != want[i] {
			t.Errorf("ComputeStrides() = %v, want %v", strides, want)
			break
		}
	}
}

func TestShapePermute(t *testing.T) {
	got := Shape{2, 3, 4}.Permute([]int{2, 0, 1})
	if !got.Equal(Shape{4, 2, 3}) {
		t.Errorf("Permute = %v, want [4 2 3]", got)
	}
}

func TestShapeReversed(t *testing.T) {
	got := Shape{2, 3}.Reversed()
	if !got.Equal(Shape{3, 2}) {
		t.Errorf("Reversed = %v, want [3 2]", got)
	}
}

// DataType Tests

func TestDataTypeSizeAndString(t *testing.T) {
	if Float64.Size() != 8 || Float64.String() != "float64" {
		t.Errorf("Float64 = (%d, %s), want (8, float64)", Float64.Size(), Float64.String())
	}
	if Bool.Size() != 1 || Bool.String() != "bool" {
		t.Errorf("Bool = (%d, %s), want (1, bool)", Bool.Size(), Bool.String())
	}
}
