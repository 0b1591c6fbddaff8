// Package featstore reads and writes feature containers: single files
// holding one or more named numeric datasets.
//
// The on-disk layout is the SafeTensors container:
//
//	[8 bytes: header_size (uint64 LE)]
//	[header_size bytes: JSON header]
//	[dataset data: raw little-endian bytes]
//
// Datasets are located through the JSON header and read lazily, so a
// Reader over a large container only touches the rows a caller asks for.
package featstore

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

// Dataset access errors.
var (
	ErrDatasetNotFound = errors.New("dataset not found in container")
	ErrDatasetExists   = errors.New("dataset already exists in container")
)

// maxHeaderSize bounds the JSON header to keep a corrupt length field from
// driving a giant allocation.
const maxHeaderSize = 100 * 1024 * 1024

// datasetInfo describes one dataset in the container header.
type datasetInfo struct {
	DType       string   `json:"dtype"`
	Shape       []int    `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"` // [start, end], relative to the data section
}

// Data type names used in container headers (SafeTensors convention).
const (
	dtypeF32 = "F32"
	dtypeF64 = "F64"
	dtypeI32 = "I32"
	dtypeI64 = "I64"
)

func dtypeName(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float32:
		return dtypeF32, nil
	case tensor.Float64:
		return dtypeF64, nil
	case tensor.Int32:
		return dtypeI32, nil
	case tensor.Int64:
		return dtypeI64, nil
	default:
		return "", fmt.Errorf("unsupported data type: %s", dt)
	}
}

func parseDType(name string) (tensor.DataType, error) {
	switch name {
	case dtypeF32:
		return tensor.Float32, nil
	case dtypeF64:
		return tensor.Float64, nil
	case dtypeI32:
		return tensor.Int32, nil
	case dtypeI64:
		return tensor.Int64, nil
	default:
		return 0, fmt.Errorf("unsupported dtype %q", name)
	}
}

// Reader provides lazy, per-dataset access to a feature container.
type Reader struct {
	file       *os.File
	datasets   map[string]datasetInfo
	metadata   map[string]string
	dataOffset int64 // Offset where dataset data starts
}

// Open opens a feature container and parses its header.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open container: %w", err)
	}

	var headerSize uint64
	if err := binary.Read(file, binary.LittleEndian, &headerSize); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > maxHeaderSize {
		_ = file.Close()
		return nil, fmt.Errorf("invalid header size: %d (too large)", headerSize)
	}

	headerBytes := make([]byte, headerSize)
	if _, err := io.ReadFull(file, headerBytes); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var rawMap map[string]json.RawMessage
	if err := json.Unmarshal(headerBytes, &rawMap); err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to parse header JSON: %w", err)
	}

	r := &Reader{
		file:       file,
		datasets:   make(map[string]datasetInfo),
		dataOffset: int64(8 + headerSize),
	}
	for key, value := range rawMap {
		if key == "__metadata__" {
			if err := json.Unmarshal(value, &r.metadata); err != nil {
				_ = file.Close()
				return nil, fmt.Errorf("failed to parse metadata: %w", err)
			}
			continue
		}
		var info datasetInfo
		if err := json.Unmarshal(value, &info); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("failed to parse dataset %s: %w", key, err)
		}
		r.datasets[key] = info
	}

	return r, nil
}

// Close closes the container file.
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Metadata returns the metadata map from the header.
func (r *Reader) Metadata() map[string]string {
	return r.metadata
}

// Datasets returns the names of all datasets in the container, sorted.
func (r *Reader) Datasets() []string {
	names := make([]string, 0, len(r.datasets))
	for name := range r.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether the container holds a dataset with the given name.
func (r *Reader) Has(name string) bool {
	_, ok := r.datasets[name]
	return ok
}

// Read loads a single dataset by name.
func (r *Reader) Read(name string) (*tensor.Dense, error) {
	info, ok := r.datasets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
	}

	dtype, err := parseDType(info.DType)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}

	start := r.dataOffset + info.DataOffsets[0]
	size := info.DataOffsets[1] - info.DataOffsets[0]
	if size < 0 {
		return nil, fmt.Errorf("dataset %q: invalid data offsets [%d, %d]",
			name, info.DataOffsets[0], info.DataOffsets[1])
	}

	if _, err := r.file.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to dataset %q: %w", name, err)
	}
	data := make([]byte, size)
	if _, err := io.ReadFull(r.file, data); err != nil {
		return nil, fmt.Errorf("failed to read dataset %q: %w", name, err)
	}

	d, err := tensor.NewDenseFromBytes(tensor.Shape(info.Shape), dtype, data)
	if err != nil {
		return nil, fmt.Errorf("dataset %q: %w", name, err)
	}
	return d, nil
}

// ReadAll loads every dataset in the container into a map.
func (r *Reader) ReadAll() (map[string]*tensor.Dense, error) {
	out := make(map[string]*tensor.Dense, len(r.datasets))
	for name := range r.datasets {
		d, err := r.Read(name)
		if err != nil {
			return nil, err
		}
		out[name] = d
	}
	return out, nil
}

// ReadDataset loads a single named dataset from a container file.
// It opens the file, reads the dataset, and closes the file again.
func ReadDataset(path, name string) (*tensor.Dense, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = r.Close() // Best effort close
	}()

	return r.Read(name)
}
