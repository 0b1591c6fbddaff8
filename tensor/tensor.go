// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense arrays that flow
// through UnitVoc's feature loaders and lookup utilities.
//
// Example:
//
//	feats, err := tensor.FromFloat32(values, tensor.Shape{frames, 80})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(feats.Shape(), feats.DType())
package tensor

import (
	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Type aliases for public API

// DataType represents the underlying data type of an array.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of an array.
// Example: Shape{2, 3, 4} represents a 3D array with dimensions 2×3×4.
type Shape = tensor.Shape

// Dense is a contiguous, row-major numeric array backed by raw
// little-endian bytes.
type Dense = tensor.Dense

// Concatenation errors.
var (
	ErrShapeMismatch = tensor.ErrShapeMismatch
	ErrDTypeMismatch = tensor.ErrDTypeMismatch
)

// NewDense creates a zero-filled array with the given shape and type.
func NewDense(shape Shape, dtype DataType) (*Dense, error) {
	return tensor.NewDense(shape, dtype)
}

// NewDenseFromBytes wraps an existing raw little-endian buffer without
// copying it.
func NewDenseFromBytes(shape Shape, dtype DataType, data []byte) (*Dense, error) {
	return tensor.NewDenseFromBytes(shape, dtype, data)
}

// FromFloat32 creates a Float32 array from a value slice.
func FromFloat32(values []float32, shape Shape) (*Dense, error) {
	return tensor.FromFloat32(values, shape)
}

// FromFloat64 creates a Float64 array from a value slice.
func FromFloat64(values []float64, shape Shape) (*Dense, error) {
	return tensor.FromFloat64(values, shape)
}

// FromInt32 creates an Int32 array from a value slice.
func FromInt32(values []int32, shape Shape) (*Dense, error) {
	return tensor.FromInt32(values, shape)
}

// FromInt64 creates an Int64 array from a value slice.
func FromInt64(values []int64, shape Shape) (*Dense, error) {
	return tensor.FromInt64(values, shape)
}

// ConcatLastAxis joins arrays along their last axis, promoting rank-1
// arrays to single columns first.
func ConcatLastAxis(parts []*Dense) (*Dense, error) {
	return tensor.ConcatLastAxis(parts)
}
