package tensor

import (
	"fmt"
	"unsafe"
)

// Dense is a contiguous, row-major array of numeric values.
//
// The backing storage is a raw little-endian byte slice, which lets the
// file codecs hand buffers straight to and from disk without an element
// copy. Typed access goes through the As* views.
type Dense struct {
	shape Shape
	dtype DataType
	data  []byte
}

// NewDense creates a zero-filled array with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Dense{
		shape: shape.Clone(),
		dtype: dtype,
		data:  make([]byte, shape.NumElements()*dtype.Size()),
	}, nil
}

// NewDenseFromBytes wraps an existing raw buffer. The buffer is used as-is,
// not copied; it must hold exactly NumElements*Size bytes of little-endian
// values.
func NewDenseFromBytes(shape Shape, dtype DataType, data []byte) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	want := shape.NumElements() * dtype.Size()
	if len(data) != want {
		return nil, fmt.Errorf("buffer size mismatch for shape %v dtype %s: got %d bytes, want %d", shape, dtype, len(data), want)
	}

	return &Dense{shape: shape.Clone(), dtype: dtype, data: data}, nil
}

// FromFloat32 creates a Float32 array from a value slice.
func FromFloat32(values []float32, shape Shape) (*Dense, error) {
	d, err := NewDense(shape, Float32)
	if err != nil {
		return nil, err
	}
	if len(values) != d.NumElements() {
		return nil, fmt.Errorf("value count mismatch for shape %v: got %d, want %d", shape, len(values), d.NumElements())
	}
	copy(d.AsFloat32(), values)
	return d, nil
}

// FromFloat64 creates a Float64 array from a value slice.
func FromFloat64(values []float64, shape Shape) (*Dense, error) {
	d, err := NewDense(shape, Float64)
	if err != nil {
		return nil, err
	}
	if len(values) != d.NumElements() {
		return nil, fmt.Errorf("value count mismatch for shape %v: got %d, want %d", shape, len(values), d.NumElements())
	}
	copy(d.AsFloat64(), values)
	return d, nil
}

// FromInt32 creates an Int32 array from a value slice.
func FromInt32(values []int32, shape Shape) (*Dense, error) {
	d, err := NewDense(shape, Int32)
	if err != nil {
		return nil, err
	}
	if len(values) != d.NumElements() {
		return nil, fmt.Errorf("value count mismatch for shape %v: got %d, want %d", shape, len(values), d.NumElements())
	}
	copy(d.AsInt32(), values)
	return d, nil
}

// FromInt64 creates an Int64 array from a value slice.
func FromInt64(values []int64, shape Shape) (*Dense, error) {
	d, err := NewDense(shape, Int64)
	if err != nil {
		return nil, err
	}
	if len(values) != d.NumElements() {
		return nil, fmt.Errorf("value count mismatch for shape %v: got %d, want %d", shape, len(values), d.NumElements())
	}
	copy(d.AsInt64(), values)
	return d, nil
}

// Shape returns the array's shape.
func (d *Dense) Shape() Shape {
	return d.shape
}

// DType returns the array's data type.
func (d *Dense) DType() DataType {
	return d.dtype
}

// NumElements returns the total number of elements.
func (d *Dense) NumElements() int {
	return d.shape.NumElements()
}

// ByteSize returns the total memory size in bytes.
func (d *Dense) ByteSize() int {
	return len(d.data)
}

// Data returns the raw byte slice.
// WARNING: Direct access to underlying memory. Use with caution.
func (d *Dense) Data() []byte {
	return d.data
}

// AsFloat32 interprets the data as []float32.
// Panics if the array's dtype is not Float32.
func (d *Dense) AsFloat32() []float32 {
	if d.dtype != Float32 {
		panic(fmt.Sprintf("array dtype is %s, not float32", d.dtype))
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsFloat64 interprets the data as []float64.
// Panics if the array's dtype is not Float64.
func (d *Dense) AsFloat64() []float64 {
	if d.dtype != Float64 {
		panic(fmt.Sprintf("array dtype is %s, not float64", d.dtype))
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsInt32 interprets the data as []int32.
// Panics if the array's dtype is not Int32.
func (d *Dense) AsInt32() []int32 {
	if d.dtype != Int32 {
		panic(fmt.Sprintf("array dtype is %s, not int32", d.dtype))
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// AsInt64 interprets the data as []int64.
// Panics if the array's dtype is not Int64.
func (d *Dense) AsInt64() []int64 {
	if d.dtype != Int64 {
		panic(fmt.Sprintf("array dtype is %s, not int64", d.dtype))
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&d.data[0])), d.NumElements())
}

// Reshape returns a view of the same data with a new shape.
// The element count must be preserved.
func (d *Dense) Reshape(shape Shape) (*Dense, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != d.NumElements() {
		return nil, fmt.Errorf("cannot reshape %v to %v: element count differs", d.shape, shape)
	}

	return &Dense{shape: shape.Clone(), dtype: d.dtype, data: d.data}, nil
}

// Clone returns a deep copy of the array.
func (d *Dense) Clone() *Dense {
	data := make([]byte, len(d.data))
	copy(data, d.data)
	return &Dense{shape: d.shape.Clone(), dtype: d.dtype, data: data}
}

// Equal reports whether two arrays have the same shape, dtype, and contents.
func (d *Dense) Equal(other *Dense) bool {
	if d.dtype != other.dtype || !d.shape.Equal(other.shape) {
		return false
	}
	if len(d.data) != len(other.data) {
		return false
	}
	for i := range d.data {
		if d.data[i] != other.data[i] {
			return false
		}
	}
	return true
}
