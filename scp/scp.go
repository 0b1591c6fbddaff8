// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scp provides lazy, key-based access to feature arrays listed in
// Kaldi-style manifest files.
//
// A manifest maps utterance keys to on-disk locations, one entry per line:
//
//	utt1 /data/feats/a.st:feats
//	utt2 /data/feats/b.st:feats_1,feats_2
//	utt3 /data/feats/c.npy
//
// Example usage:
//
//	loader, err := scp.NewFeatLoader("feats.scp", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	feats, err := loader.Get("utt1")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(feats.Shape())
//
// Locations with several comma-separated dataset names load each dataset
// and concatenate them along the last axis, so per-frame streams stored
// separately (mel, pitch, energy) come back as one array.
package scp

import (
	"github.com/unitvoc/unitvoc/internal/scp"
)

// Manifest errors.
var (
	ErrKeyNotFound   = scp.ErrKeyNotFound
	ErrMalformedLine = scp.ErrMalformedLine
	ErrDuplicateKey  = scp.ErrDuplicateKey
)

// DefaultDataset is the dataset read from container-backed manifests whose
// locations carry no explicit dataset name.
const DefaultDataset = scp.DefaultDataset

// Loader provides key-based, lazy access to feature arrays listed in a
// manifest. Every Get re-reads the backing file; nothing is cached.
type Loader = scp.Loader

// Index is the parsed, immutable manifest: an ordered mapping from key to
// an unresolved location string.
type Index = scp.Index

// NewFeatLoader opens a manifest whose locations point into feature
// containers. Locations without an explicit dataset name resolve to
// defaultDataset; pass "" for DefaultDataset.
func NewFeatLoader(manifestPath, defaultDataset string) (*Loader, error) {
	return scp.NewFeatLoader(manifestPath, defaultDataset)
}

// NewNpyLoader opens a manifest whose locations are plain .npy file paths.
func NewNpyLoader(manifestPath string) (*Loader, error) {
	return scp.NewNpyLoader(manifestPath)
}

// ParseIndex reads a manifest file into an Index without binding it to a
// storage backend. Useful for tooling that only inspects keys and
// locations.
func ParseIndex(path string) (*Index, error) {
	return scp.ParseIndex(path)
}
