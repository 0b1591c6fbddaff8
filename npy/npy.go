// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package npy reads and writes NumPy .npy files (version 1.0, C-order
// numeric arrays), the flat one-array-per-file format used by npy-backed
// feature manifests.
package npy

import (
	"github.com/unitvoc/unitvoc/internal/npy"
	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Read loads the whole file as a single array.
func Read(path string) (*tensor.Dense, error) {
	return npy.Read(path)
}

// Write saves an array to a version 1.0 npy file, creating parent
// directories as needed.
func Write(path string, d *tensor.Dense) error {
	return npy.Write(path, d)
}
