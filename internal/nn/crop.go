package nn

import (
	"fmt"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

// CropSeq crops a padded batch of sequences to a fixed length.
//
// x has shape [B, C, T]; for each batch element i the window
// [offsets[i], offsets[i]+length) is taken along the time axis, giving
// an output of shape [B, C, length]. Every window must lie inside T.
func CropSeq(x *tensor.Dense, offsets []int, length int) (*tensor.Dense, error) {
	shape := x.Shape()
	if len(shape) != 3 {
		return nil, fmt.Errorf("expected [batch, channels, time] input, got %v", shape)
	}
	batch, channels, time := shape[0], shape[1], shape[2]
	if len(offsets) != batch {
		return nil, fmt.Errorf("got %d offsets for batch size %d", len(offsets), batch)
	}
	if length <= 0 || length > time {
		return nil, fmt.Errorf("crop length %d out of range (0, %d]", length, time)
	}

	out, err := tensor.NewDense(tensor.Shape{batch, channels, length}, x.DType())
	if err != nil {
		return nil, err
	}

	elemSize := x.DType().Size()
	src := x.Data()
	dst := out.Data()
	for i, offset := range offsets {
		if offset < 0 || offset+length > time {
			return nil, fmt.Errorf("batch %d: window [%d, %d) outside time axis of size %d", i, offset, offset+length, time)
		}
		for ch := 0; ch < channels; ch++ {
			srcOff := ((i*channels+ch)*time + offset) * elemSize
			dstOff := (i*channels + ch) * length * elemSize
			copy(dst[dstOff:dstOff+length*elemSize], src[srcOff:srcOff+length*elemSize])
		}
	}

	return out, nil
}
