package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

// testCodebook builds a [2, 4, 3] table where row v of group g holds the
// value 100*g + v in all three dimensions.
func testCodebook(t *testing.T) *Codebook {
	t.Helper()

	values := make([]float32, 2*4*3)
	for g := 0; g < 2; g++ {
		for v := 0; v < 4; v++ {
			for d := 0; d < 3; d++ {
				values[(g*4+v)*3+d] = float32(100*g + v)
			}
		}
	}
	table, err := tensor.FromFloat32(values, tensor.Shape{2, 4, 3})
	require.NoError(t, err)

	cb, err := NewCodebook(table)
	require.NoError(t, err)
	return cb
}

func TestCodebook_Lookup(t *testing.T) {
	cb := testCodebook(t)
	assert.Equal(t, 2, cb.NumGroups())
	assert.Equal(t, 4, cb.VocabSize())
	assert.Equal(t, 3, cb.Dim())

	// [5, 2] indices in [0, 4).
	idx, err := tensor.FromInt64([]int64{
		0, 0,
		1, 2,
		3, 1,
		2, 3,
		0, 2,
	}, tensor.Shape{5, 2})
	require.NoError(t, err)

	out, err := cb.Lookup(idx)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{5, 6}))

	// Columns [0:3] come from group 0, [3:6] from group 1.
	got := out.AsFloat32()
	ids := idx.AsInt64()
	for row := 0; row < 5; row++ {
		for d := 0; d < 3; d++ {
			assert.Equal(t, float32(ids[row*2]), got[row*6+d], "row %d group 0", row)
			assert.Equal(t, float32(100+ids[row*2+1]), got[row*6+3+d], "row %d group 1", row)
		}
	}
}

func TestCodebook_LookupInt32AndBatched(t *testing.T) {
	cb := testCodebook(t)

	// [B, L, G] = [2, 2, 2] indices.
	idx, err := tensor.FromInt32([]int32{0, 1, 2, 3, 3, 2, 1, 0}, tensor.Shape{2, 2, 2})
	require.NoError(t, err)

	out, err := cb.Lookup(idx)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 2, 6}))
	assert.Equal(t, float32(0), out.AsFloat32()[0])   // group 0, id 0
	assert.Equal(t, float32(101), out.AsFloat32()[3]) // group 1, id 1
}

func TestCodebook_LookupErrors(t *testing.T) {
	cb := testCodebook(t)

	// Wrong trailing axis.
	idx, err := tensor.FromInt64([]int64{0, 1, 2}, tensor.Shape{3})
	require.NoError(t, err)
	_, err = cb.Lookup(idx)
	assert.Error(t, err)

	// Out-of-range id.
	idx, err = tensor.FromInt64([]int64{0, 4}, tensor.Shape{1, 2})
	require.NoError(t, err)
	_, err = cb.Lookup(idx)
	assert.ErrorContains(t, err, "out of range")

	// Float indices rejected.
	bad, err := tensor.FromFloat32([]float32{0, 1}, tensor.Shape{1, 2})
	require.NoError(t, err)
	_, err = cb.Lookup(bad)
	assert.Error(t, err)
}

func TestNewCodebook_RejectsBadTable(t *testing.T) {
	flat, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)
	_, err = NewCodebook(flat)
	assert.Error(t, err)

	ints, err := tensor.FromInt32([]int32{1, 2, 3, 4, 5, 6, 7, 8}, tensor.Shape{2, 2, 2})
	require.NoError(t, err)
	_, err = NewCodebook(ints)
	assert.Error(t, err)
}

func TestCropSeq(t *testing.T) {
	// [B, C, T] = [2, 2, 4]; values encode (batch, channel, time).
	values := make([]float32, 2*2*4)
	for i := range values {
		values[i] = float32(i)
	}
	x, err := tensor.FromFloat32(values, tensor.Shape{2, 2, 4})
	require.NoError(t, err)

	out, err := CropSeq(x, []int{1, 2}, 2)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 2, 2}))
	assert.Equal(t, []float32{
		1, 2, // batch 0, channel 0, t=1..2
		5, 6, // batch 0, channel 1
		10, 11, // batch 1, channel 0, t=2..3
		14, 15, // batch 1, channel 1
	}, out.AsFloat32())
}

func TestCropSeq_Errors(t *testing.T) {
	x, err := tensor.FromFloat32([]float32{1, 2, 3, 4}, tensor.Shape{1, 1, 4})
	require.NoError(t, err)

	_, err = CropSeq(x, []int{3}, 2) // window [3, 5) past T=4
	assert.ErrorContains(t, err, "outside time axis")

	_, err = CropSeq(x, []int{0, 0}, 2) // offsets/batch mismatch
	assert.Error(t, err)

	flat, err := tensor.FromFloat32([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	_, err = CropSeq(flat, []int{0}, 1)
	assert.Error(t, err)
}
