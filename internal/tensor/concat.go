package tensor

import (
	"errors"
	"fmt"
)

// Concatenation errors.
var (
	ErrShapeMismatch = errors.New("leading dimensions incompatible for concatenation")
	ErrDTypeMismatch = errors.New("data types incompatible for concatenation")
)

// ConcatLastAxis joins arrays along their last axis, in argument order.
//
// Rank-1 arrays are treated as single-column matrices: [n] becomes [n, 1].
// After that promotion, every part must share the same dtype and the same
// leading dimensions (all but the last); otherwise ErrDTypeMismatch or
// ErrShapeMismatch is returned.
func ConcatLastAxis(parts []*Dense) (*Dense, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("nothing to concatenate")
	}
	if len(parts) == 1 {
		return parts[0].Clone(), nil
	}

	shapes := make([]Shape, len(parts))
	for i, p := range parts {
		s := p.Shape()
		switch len(s) {
		case 0:
			return nil, fmt.Errorf("part %d: %w: cannot concatenate a scalar", i, ErrShapeMismatch)
		case 1:
			s = Shape{s[0], 1}
		}
		shapes[i] = s
		if p.DType() != parts[0].DType() {
			return nil, fmt.Errorf("part %d: %w: %s vs %s", i, ErrDTypeMismatch, p.DType(), parts[0].DType())
		}
	}

	leading := shapes[0][:len(shapes[0])-1]
	lastTotal := 0
	for i, s := range shapes {
		if !leading.Equal(s[:len(s)-1]) {
			return nil, fmt.Errorf("part %d: %w: %v vs %v", i, ErrShapeMismatch, s, shapes[0])
		}
		lastTotal += s[len(s)-1]
	}

	outShape := append(leading.Clone(), lastTotal)
	out, err := NewDense(outShape, parts[0].DType())
	if err != nil {
		return nil, err
	}

	// Row-wise interleave: each output row is the parts' rows back to back.
	elemSize := parts[0].DType().Size()
	rows := leading.NumElements()
	dst := out.Data()
	offset := 0
	for row := 0; row < rows; row++ {
		for i, p := range parts {
			rowBytes := shapes[i][len(shapes[i])-1] * elemSize
			src := p.Data()[row*rowBytes : (row+1)*rowBytes]
			copy(dst[offset:], src)
			offset += rowBytes
		}
	}

	return out, nil
}
