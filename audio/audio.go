// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package audio loads waveforms for the vocoder pipeline, normalizing WAV
// input of any rate and channel layout to 16 kHz mono float32 samples.
package audio

import (
	"github.com/unitvoc/unitvoc/internal/audio"
)

// TargetSampleRate is the sample rate every loaded waveform is converted to.
const TargetSampleRate = audio.TargetSampleRate

// ReadWav16k reads a WAV file and returns its samples resampled to
// 16 kHz mono float32.
func ReadWav16k(path string) ([]float32, error) {
	return audio.ReadWav16k(path)
}

// Resample16k converts in-memory WAV bytes to 16 kHz mono float32 samples.
func Resample16k(wav []byte) ([]float32, error) {
	return audio.Resample16k(wav)
}
