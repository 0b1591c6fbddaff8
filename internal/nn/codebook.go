// Package nn holds the small inference-side building blocks of the
// pipeline: grouped codebook lookup and padded-sequence cropping.
package nn

import (
	"fmt"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Codebook converts quantized speech-unit indices back into continuous
// feature vectors. It wraps a fixed [numGroups, vocabSize, dim] table of
// group-wise embedding rows (residual/grouped vector quantization): a full
// feature vector is the concatenation of one row per group.
//
// A Codebook is immutable after construction, so lookups are pure and safe
// to run concurrently.
type Codebook struct {
	weights   []float32
	numGroups int
	vocabSize int
	dim       int
}

// NewCodebook builds a Codebook from a [numGroups, vocabSize, dim]
// Float32 table, copying the table so later mutation of the source cannot
// alter lookups.
func NewCodebook(table *tensor.Dense) (*Codebook, error) {
	shape := table.Shape()
	if len(shape) != 3 {
		return nil, fmt.Errorf("codebook table must be [groups, vocab, dim], got %v", shape)
	}
	if table.DType() != tensor.Float32 {
		return nil, fmt.Errorf("codebook table must be float32, got %s", table.DType())
	}

	weights := make([]float32, table.NumElements())
	copy(weights, table.AsFloat32())

	return &Codebook{
		weights:   weights,
		numGroups: shape[0],
		vocabSize: shape[1],
		dim:       shape[2],
	}, nil
}

// NumGroups returns the number of independent groups.
func (c *Codebook) NumGroups() int { return c.numGroups }

// VocabSize returns the per-group vocabulary size.
func (c *Codebook) VocabSize() int { return c.vocabSize }

// Dim returns the per-group vector dimension.
func (c *Codebook) Dim() int { return c.dim }

// Lookup maps an index array of shape [..., numGroups] (Int32 or Int64,
// last axis enumerating groups) to vectors of shape [..., numGroups*dim].
// For each group g, the row table[g][idx[..., g]] is selected; group
// results are concatenated along the last axis in group order.
func (c *Codebook) Lookup(idx *tensor.Dense) (*tensor.Dense, error) {
	shape := idx.Shape()
	if len(shape) == 0 || shape[len(shape)-1] != c.numGroups {
		return nil, fmt.Errorf("index shape %v: last axis must be the group count %d", shape, c.numGroups)
	}

	indices, err := indexValues(idx)
	if err != nil {
		return nil, err
	}

	outShape := append(shape[:len(shape)-1].Clone(), c.numGroups*c.dim)
	out, err := tensor.NewDense(outShape, tensor.Float32)
	if err != nil {
		return nil, err
	}

	dst := out.AsFloat32()
	groupSize := c.vocabSize * c.dim
	rows := len(indices) / c.numGroups
	for row := 0; row < rows; row++ {
		for g := 0; g < c.numGroups; g++ {
			id := indices[row*c.numGroups+g]
			if id < 0 || id >= int64(c.vocabSize) {
				return nil, fmt.Errorf("index %d out of range [0, %d) in group %d", id, c.vocabSize, g)
			}
			src := c.weights[g*groupSize+int(id)*c.dim:]
			copy(dst[row*c.numGroups*c.dim+g*c.dim:], src[:c.dim])
		}
	}

	return out, nil
}

// indexValues widens an Int32 or Int64 index array to int64 values.
func indexValues(idx *tensor.Dense) ([]int64, error) {
	switch idx.DType() {
	case tensor.Int64:
		return idx.AsInt64(), nil
	case tensor.Int32:
		narrow := idx.AsInt32()
		wide := make([]int64, len(narrow))
		for i, v := range narrow {
			wide[i] = int64(v)
		}
		return wide, nil
	default:
		return nil, fmt.Errorf("index array must be int32 or int64, got %s", idx.DType())
	}
}
