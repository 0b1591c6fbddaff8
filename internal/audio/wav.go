// Package audio loads waveforms for the vocoder pipeline, normalizing
// whatever rate and channel layout a WAV file carries to 16 kHz mono
// float32 samples.
package audio

import (
	"fmt"
	"os"

	"github.com/up-zero/gotool/mediautil"
)

// Target format for pipeline input.
const (
	TargetSampleRate = 16000
	channels         = 1
	bitsPerSample    = 16
)

// wavHeaderSize is the canonical RIFF/WAVE header length produced by
// mediautil.ReformatWavBytes.
const wavHeaderSize = 44

// ReadWav16k reads a WAV file and returns its samples resampled to
// 16 kHz mono float32.
func ReadWav16k(path string) ([]float32, error) {
	wav, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav file: %w", err)
	}
	return Resample16k(wav)
}

// Resample16k converts in-memory WAV bytes to 16 kHz mono float32 samples.
func Resample16k(wav []byte) ([]float32, error) {
	target, err := mediautil.ReformatWavBytes(wav, TargetSampleRate, channels, bitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("failed to reformat wav: %w", err)
	}
	return mediautil.PcmBytesToFloat32(target[wavHeaderSize:], bitsPerSample)
}
