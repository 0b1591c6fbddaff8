// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package featstore provides the public API for feature containers:
// single files holding one or more named numeric datasets, stored in the
// SafeTensors container layout.
//
// Example:
//
//	err := featstore.WriteDataset("utt1.st", "feats", feats, true)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	back, err := featstore.ReadDataset("utt1.st", "feats")
package featstore

import (
	"github.com/unitvoc/unitvoc/internal/featstore"
	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Dataset access errors.
var (
	ErrDatasetNotFound = featstore.ErrDatasetNotFound
	ErrDatasetExists   = featstore.ErrDatasetExists
)

// Reader provides lazy, per-dataset access to a feature container.
type Reader = featstore.Reader

// Open opens a feature container and parses its header. Dataset contents
// are read lazily, per Read call.
func Open(path string) (*Reader, error) {
	return featstore.Open(path)
}

// ReadDataset loads a single named dataset from a container file.
func ReadDataset(path, name string) (*tensor.Dense, error) {
	return featstore.ReadDataset(path, name)
}

// WriteDataset writes one named dataset into a container file, creating
// the file and parent directories if absent. An existing dataset is
// replaced only when overwrite is true; otherwise ErrDatasetExists.
func WriteDataset(path, name string, data *tensor.Dense, overwrite bool) error {
	return featstore.WriteDataset(path, name, data, overwrite)
}

// Write writes a set of named datasets to a container file, replacing any
// existing file at the path.
func Write(path string, datasets map[string]*tensor.Dense, metadata map[string]string) error {
	return featstore.Write(path, datasets, metadata)
}
