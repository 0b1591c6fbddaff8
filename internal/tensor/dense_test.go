package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_NumElements(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  int
	}{
		{"scalar", Shape{}, 1},
		{"vector", Shape{5}, 5},
		{"matrix", Shape{2, 3}, 6},
		{"3d", Shape{2, 3, 4}, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.shape.NumElements())
		})
	}
}

func TestShape_Validate(t *testing.T) {
	assert.NoError(t, Shape{2, 3}.Validate())
	assert.Error(t, Shape{2, 0}.Validate())
	assert.Error(t, Shape{-1, 3}.Validate())
}

func TestDense_FromFloat32(t *testing.T) {
	d, err := FromFloat32([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)

	assert.True(t, d.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, Float32, d.DType())
	assert.Equal(t, 6, d.NumElements())
	assert.Equal(t, 24, d.ByteSize())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, d.AsFloat32())
}

func TestDense_FromFloat32_CountMismatch(t *testing.T) {
	_, err := FromFloat32([]float32{1, 2, 3}, Shape{2, 3})
	assert.Error(t, err)
}

func TestDense_Reshape(t *testing.T) {
	d, err := FromInt64([]int64{1, 2, 3, 4, 5, 6}, Shape{6})
	require.NoError(t, err)

	r, err := d.Reshape(Shape{3, 2})
	require.NoError(t, err)
	assert.True(t, r.Shape().Equal(Shape{3, 2}))
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, r.AsInt64())

	_, err = d.Reshape(Shape{4, 2})
	assert.Error(t, err)
}

func TestDense_CloneIsDeep(t *testing.T) {
	d, err := FromFloat32([]float32{1, 2}, Shape{2})
	require.NoError(t, err)

	c := d.Clone()
	c.AsFloat32()[0] = 42
	assert.Equal(t, float32(1), d.AsFloat32()[0])
	assert.False(t, d.Equal(c))
}

func TestDense_RoundTripBytes(t *testing.T) {
	d, err := FromFloat64([]float64{0.5, -1.25, 3e9}, Shape{3})
	require.NoError(t, err)

	back, err := NewDenseFromBytes(d.Shape(), d.DType(), d.Data())
	require.NoError(t, err)
	assert.True(t, d.Equal(back))
}

func TestConcatLastAxis_Matrices(t *testing.T) {
	a, err := FromFloat32([]float32{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	b, err := FromFloat32([]float32{10, 20, 30, 40}, Shape{2, 2})
	require.NoError(t, err)

	out, err := ConcatLastAxis([]*Dense{a, b})
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(Shape{2, 5}))
	assert.Equal(t, []float32{1, 2, 3, 10, 20, 4, 5, 6, 30, 40}, out.AsFloat32())
}

func TestConcatLastAxis_PromotesVectors(t *testing.T) {
	a, err := FromFloat32([]float32{1, 2}, Shape{2})
	require.NoError(t, err)
	b, err := FromFloat32([]float32{10, 20, 30, 40}, Shape{2, 2})
	require.NoError(t, err)

	out, err := ConcatLastAxis([]*Dense{a, b})
	require.NoError(t, err)

	assert.True(t, out.Shape().Equal(Shape{2, 3}))
	assert.Equal(t, []float32{1, 10, 20, 2, 30, 40}, out.AsFloat32())
}

func TestConcatLastAxis_ShapeMismatch(t *testing.T) {
	a, err := FromFloat32([]float32{1, 2, 3}, Shape{3})
	require.NoError(t, err)
	b, err := FromFloat32([]float32{10, 20, 30, 40}, Shape{2, 2})
	require.NoError(t, err)

	_, err = ConcatLastAxis([]*Dense{a, b})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestConcatLastAxis_DTypeMismatch(t *testing.T) {
	a, err := FromFloat32([]float32{1, 2}, Shape{2, 1})
	require.NoError(t, err)
	b, err := FromInt32([]int32{1, 2}, Shape{2, 1})
	require.NoError(t, err)

	_, err = ConcatLastAxis([]*Dense{a, b})
	assert.ErrorIs(t, err, ErrDTypeMismatch)
}
