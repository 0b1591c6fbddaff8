// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the inference-side building blocks of the pipeline:
// grouped codebook lookup and padded-sequence cropping.
//
// Example:
//
//	table, _ := featstore.ReadDataset("codebook.st", "feats") // [G, V, D]
//	cb, err := nn.NewCodebook(table)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	vectors, err := cb.Lookup(indices) // [..., G] -> [..., G*D]
package nn

import (
	"github.com/unitvoc/unitvoc/internal/nn"
	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Codebook converts quantized speech-unit indices back into continuous
// feature vectors by grouped table lookup.
type Codebook = nn.Codebook

// NewCodebook builds a Codebook from a [numGroups, vocabSize, dim] Float32
// table.
func NewCodebook(table *tensor.Dense) (*Codebook, error) {
	return nn.NewCodebook(table)
}

// CropSeq crops a padded [B, C, T] batch to [B, C, length], taking the
// window [offsets[i], offsets[i]+length) along the time axis of each batch
// element.
func CropSeq(x *tensor.Dense, offsets []int, length int) (*tensor.Dense, error) {
	return nn.CropSeq(x, offsets, length)
}
