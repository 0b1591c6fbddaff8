package audio

import (
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/up-zero/gotool/mediautil"
)

// sine returns one second of a 440 Hz tone at the given rate.
func sine(rate int) []float32 {
	samples := make([]float32, rate)
	for i := range samples {
		samples[i] = 0.5 * float32(math.Sin(2*math.Pi*440*float64(i)/float64(rate)))
	}
	return samples
}

func TestReadWav16k_AlreadyTargetRate(t *testing.T) {
	pcm := sine(TargetSampleRate)
	wav, err := mediautil.Float32ToWavBytes(pcm, TargetSampleRate, channels, bitsPerSample)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tone.wav")
	require.NoError(t, os.WriteFile(path, wav, 0o644))

	got, err := ReadWav16k(path)
	require.NoError(t, err)
	assert.Len(t, got, len(pcm))
}

func TestResample16k_Downsamples(t *testing.T) {
	const sourceRate = 48000
	pcm := sine(sourceRate)
	wav, err := mediautil.Float32ToWavBytes(pcm, sourceRate, channels, bitsPerSample)
	require.NoError(t, err)

	got, err := Resample16k(wav)
	require.NoError(t, err)

	// One second of audio stays one second at the target rate.
	assert.InDelta(t, TargetSampleRate, len(got), float64(TargetSampleRate)/100)
}

func TestReadWav16k_MissingFile(t *testing.T) {
	_, err := ReadWav16k(filepath.Join(t.TempDir(), "absent.wav"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestResample16k_RejectsGarbage(t *testing.T) {
	_, err := Resample16k([]byte("not a wav file"))
	assert.Error(t, err)
}
