package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestFindFiles_Recursive(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "a.wav"))
	touch(t, filepath.Join(root, "sub", "b.wav"))
	touch(t, filepath.Join(root, "sub", "deep", "c.wav"))
	touch(t, filepath.Join(root, "sub", "notes.txt"))

	files, err := FindFiles(root, "*.wav", true)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a.wav"),
		filepath.Join(root, "sub", "b.wav"),
		filepath.Join(root, "sub", "deep", "c.wav"),
	}, files)
}

func TestFindFiles_StripsRoot(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "sub", "b.wav"))

	files, err := FindFiles(root, "*.wav", false)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("sub", "b.wav")}, files)
}

func TestFindFiles_NoMatches(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "notes.txt"))

	files, err := FindFiles(root, "*.wav", true)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFiles_BadPattern(t *testing.T) {
	_, err := FindFiles(t.TempDir(), "[", true)
	assert.ErrorIs(t, err, filepath.ErrBadPattern)
}

func TestFindFiles_MissingRoot(t *testing.T) {
	_, err := FindFiles(filepath.Join(t.TempDir(), "absent"), "*.wav", true)
	assert.Error(t, err)
}
