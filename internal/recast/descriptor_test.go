package recast

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recast-ml/recast/internal/storage"
	"github.com/recast-ml/recast/internal/view"
)

func TestDescOfLeaf(t *testing.T) {
	dense := mustDense(t, storage.Shape{2, 3})
	d := DescOf(dense)

	assert.True(t, d.IsLeaf())
	assert.Equal(t, denseType, d.Leaf)
	assert.Equal(t, storage.Float64, d.Elem)
	assert.Equal(t, 2, d.NDims)
	assert.Equal(t, denseType, d.LeafType())
	assert.Nil(t, d.Parent)
}

func TestDescOfNonStorageLeaf(t *testing.T) {
	d := DescOf(42)

	assert.True(t, d.IsLeaf())
	assert.Equal(t, reflect.TypeOf(0), d.Leaf)
	assert.Equal(t, 0, d.NDims)
	assert.Equal(t, reflect.TypeOf(0), d.LeafType())
}

func TestDescOfWrappers(t *testing.T) {
	matrix := mustDense(t, storage.Shape{2, 3})

	tests := []struct {
		name  string
		v     any
		kind  view.Kind
		elem  storage.DataType
		ndims int
	}{
		{"sub", view.NewSub(matrix, view.Range{0, 2}, 1), view.KindSub, storage.Float64, 1},
		{"permuted", view.NewPermuted(matrix, []int{1, 0}), view.KindPermuted, storage.Float64, 2},
		{"reshaped", view.NewReshaped(matrix, storage.Shape{3, 2}), view.KindReshaped, storage.Float64, 2},
		{"reinterpreted", view.NewReinterpreted(matrix, storage.Float32), view.KindReinterpreted, storage.Float32, 2},
		{"adjoint", view.NewAdjoint(matrix), view.KindAdjoint, storage.Float64, 2},
		{"transpose", view.NewTranspose(matrix), view.KindTranspose, storage.Float64, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DescOf(tt.v)
			assert.False(t, d.IsLeaf())
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.elem, d.Elem)
			assert.Equal(t, tt.ndims, d.NDims)
			require.NotNil(t, d.Parent)
			assert.True(t, d.Parent.IsLeaf())
			assert.Equal(t, denseType, d.LeafType())
		})
	}
}

func TestDescOfNestedChain(t *testing.T) {
	dense := mustDense(t, storage.Shape{2, 4})
	w := view.NewSub(view.NewReshaped(dense, storage.Shape{4, 2}), view.Range{0, 2}, 1)

	d := DescOf(w)
	assert.Equal(t, view.KindSub, d.Kind)
	assert.Equal(t, 1, d.NDims)

	require.NotNil(t, d.Parent)
	assert.Equal(t, view.KindReshaped, d.Parent.Kind)
	require.NotNil(t, d.Parent.Parent)
	assert.True(t, d.Parent.Parent.IsLeaf())
	assert.Equal(t, denseType, d.LeafType())
}

func TestDescOfLogicalDeviceMask(t *testing.T) {
	host, err := storage.FromSlice(storage.Shape{3}, []bool{true, false, true})
	require.NoError(t, err)
	w := view.NewLogical(&markerStorage{host: host})

	// Deriving the descriptor must not read the mask.
	d := DescOf(w)
	assert.Equal(t, view.KindLogical, d.Kind)
	assert.Equal(t, storage.Int64, d.Elem)
	assert.Equal(t, 1, d.NDims)
	assert.Equal(t, markerType, d.LeafType())
}

func TestDescOfTridiagonal(t *testing.T) {
	w := view.NewTridiagonal(
		mustDense(t, storage.Shape{2}),
		mustDense(t, storage.Shape{3}),
		mustDense(t, storage.Shape{2}),
	)

	d := DescOf(w)
	assert.Equal(t, view.KindTridiagonal, d.Kind)
	assert.Equal(t, 2, d.NDims)
	assert.Nil(t, d.Parent)
	for _, b := range d.Bands {
		require.NotNil(t, b)
		assert.True(t, b.IsLeaf())
		assert.Equal(t, 1, b.NDims)
	}
	assert.Equal(t, denseType, d.LeafType())

	mixed := view.NewTridiagonal(
		&markerStorage{host: mustDense(t, storage.Shape{2})},
		mustDense(t, storage.Shape{3}),
		mustDense(t, storage.Shape{2}),
	)
	assert.Nil(t, DescOf(mixed).LeafType())
}

func TestDescLiteralDispatch(t *testing.T) {
	// Dispatch decisions can be made from literals, with no value in hand.
	leaf := Desc{Elem: storage.Float32, NDims: 2, Leaf: denseType}
	d := Desc{
		Kind:   view.KindTranspose,
		Elem:   storage.Float32,
		NDims:  2,
		Parent: &leaf,
	}

	assert.True(t, Matches(denseKey(storage.Float32, 2), d))
	assert.False(t, Matches(denseKey(storage.Float64, 2), d))
	assert.Equal(t, denseType, d.LeafType())
}

func TestDescZeroValue(t *testing.T) {
	var d Desc
	assert.False(t, d.IsLeaf())
	assert.Nil(t, d.LeafType())
	assert.False(t, Matches(denseKey(storage.Float64, 2), d))
}
