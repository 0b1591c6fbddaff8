package featstore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Write writes a set of named datasets to a container file, replacing any
// existing file at the path. Parent directories are created as needed.
//
// Datasets are written in alphabetical order by name.
func Write(path string, datasets map[string]*tensor.Dense, metadata map[string]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	names := make([]string, 0, len(datasets))
	for name := range datasets {
		names = append(names, name)
	}
	sort.Strings(names)

	header := make(map[string]interface{})
	if len(metadata) > 0 {
		header["__metadata__"] = metadata
	}

	var currentOffset int64
	for _, name := range names {
		d := datasets[name]
		dtype, err := dtypeName(d.DType())
		if err != nil {
			return fmt.Errorf("dataset %q: %w", name, err)
		}
		size := int64(d.ByteSize())
		header[name] = datasetInfo{
			DType:       dtype,
			Shape:       []int(d.Shape()),
			DataOffsets: [2]int64{currentOffset, currentOffset + size},
		}
		currentOffset += size
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create container: %w", err)
	}
	defer func() {
		_ = file.Close() // Best effort close
	}()

	if err := binary.Write(file, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := file.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, name := range names {
		if _, err := file.Write(datasets[name].Data()); err != nil {
			return fmt.Errorf("failed to write dataset %q: %w", name, err)
		}
	}

	return file.Close()
}

// WriteDataset writes one named dataset into a container file, creating the
// file (and parent directories) if absent and merging with any datasets the
// file already holds.
//
// When the dataset already exists, it is replaced if overwrite is true;
// otherwise ErrDatasetExists is returned and the file is left untouched.
//
// The merge rewrites the whole file. That keeps the container format simple
// at the cost of write amplification, which is fine for the one-shot feature
// extraction flows this utility serves — the read path never pays it.
func WriteDataset(path, name string, data *tensor.Dense, overwrite bool) error {
	existing := make(map[string]*tensor.Dense)
	var metadata map[string]string

	r, err := Open(path)
	switch {
	case err == nil:
		if r.Has(name) && !overwrite {
			_ = r.Close()
			return fmt.Errorf("%w: %q in %s", ErrDatasetExists, name, path)
		}
		existing, err = r.ReadAll()
		if err != nil {
			_ = r.Close()
			return err
		}
		metadata = r.Metadata()
		if err := r.Close(); err != nil {
			return fmt.Errorf("failed to close container: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// New file.
	default:
		return err
	}

	existing[name] = data
	return Write(path, existing, metadata)
}
