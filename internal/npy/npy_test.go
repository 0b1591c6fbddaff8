package npy

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	f32, err := tensor.FromFloat32([]float32{1.5, -2, 0, 4e7, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	f64, err := tensor.FromFloat64([]float64{1e-300, 2}, tensor.Shape{2})
	require.NoError(t, err)
	i32, err := tensor.FromInt32([]int32{-1, 0, 1}, tensor.Shape{3, 1})
	require.NoError(t, err)
	i64, err := tensor.FromInt64([]int64{1 << 50}, tensor.Shape{1})
	require.NoError(t, err)

	for name, d := range map[string]*tensor.Dense{
		"f32": f32, "f64": f64, "i32": i32, "i64": i64,
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name+".npy")
			require.NoError(t, Write(path, d))

			got, err := Read(path)
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "array differs after round trip")
		})
	}
}

func TestWrite_AlignsDataSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.npy")
	d, err := tensor.FromFloat32([]float32{1, 2, 3}, tensor.Shape{3})
	require.NoError(t, err)
	require.NoError(t, Write(path, d))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	// 6-byte magic, 2-byte version, 2-byte header length, then the header.
	headerLen := int(raw[8]) | int(raw[9])<<8
	assert.Equal(t, 0, (10+headerLen)%64, "data section is not 64-byte aligned")
}

func TestRead_RejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.npy")
	require.NoError(t, os.WriteFile(path, []byte("NOTNUMPYDATA"), 0o644))

	_, err := Read(path)
	assert.ErrorContains(t, err, "magic")
}

func TestRead_RejectsFortranOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.npy")
	d, err := tensor.FromFloat32([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	require.NoError(t, Write(path, d))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	idx := bytes.Index(raw, []byte("False"))
	require.GreaterOrEqual(t, idx, 0)
	copy(raw[idx:], []byte("True ")) // same length, keeps the header size
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err = Read(path)
	assert.ErrorContains(t, err, "fortran")
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.npy"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}
