// Package npy reads and writes NumPy .npy files, the flat one-array-per-file
// format used by npy-backed feature manifests.
//
// Only version 1.0 files with C-order numeric arrays are supported:
//
//	[6 bytes: magic "\x93NUMPY"]
//	[2 bytes: version major.minor]
//	[2 bytes: header length (uint16 LE)]
//	[header: Python dict literal with descr, fortran_order, shape]
//	[array data: raw little-endian bytes]
package npy

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/unitvoc/unitvoc/internal/tensor"
)

const magic = "\x93NUMPY"

// headerAlignment pads the written header so array data starts on a 64-byte
// boundary, matching what NumPy itself emits.
const headerAlignment = 64

func dtypeDescr(dt tensor.DataType) (string, error) {
	switch dt {
	case tensor.Float32:
		return "<f4", nil
	case tensor.Float64:
		return "<f8", nil
	case tensor.Int32:
		return "<i4", nil
	case tensor.Int64:
		return "<i8", nil
	default:
		return "", fmt.Errorf("unsupported data type: %s", dt)
	}
}

func parseDescr(descr string) (tensor.DataType, error) {
	switch descr {
	case "<f4":
		return tensor.Float32, nil
	case "<f8":
		return tensor.Float64, nil
	case "<i4":
		return tensor.Int32, nil
	case "<i8":
		return tensor.Int64, nil
	default:
		return 0, fmt.Errorf("unsupported descr %q", descr)
	}
}

// Read loads the whole file as a single array.
func Read(path string) (*tensor.Dense, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open npy file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best effort close
	}()

	preamble := make([]byte, 8)
	if _, err := io.ReadFull(file, preamble); err != nil {
		return nil, fmt.Errorf("failed to read npy preamble: %w", err)
	}
	if string(preamble[:6]) != magic {
		return nil, fmt.Errorf("invalid npy magic in %s", path)
	}
	if major := preamble[6]; major != 1 {
		return nil, fmt.Errorf("unsupported npy version %d.%d", preamble[6], preamble[7])
	}

	var headerLen uint16
	if err := binary.Read(file, binary.LittleEndian, &headerLen); err != nil {
		return nil, fmt.Errorf("failed to read npy header length: %w", err)
	}
	headerBytes := make([]byte, headerLen)
	if _, err := io.ReadFull(file, headerBytes); err != nil {
		return nil, fmt.Errorf("failed to read npy header: %w", err)
	}

	descr, fortran, shape, err := parseHeader(string(headerBytes))
	if err != nil {
		return nil, fmt.Errorf("malformed npy header in %s: %w", path, err)
	}
	if fortran {
		return nil, fmt.Errorf("fortran-order npy files are not supported (%s)", path)
	}
	dtype, err := parseDescr(descr)
	if err != nil {
		return nil, err
	}

	data := make([]byte, shape.NumElements()*dtype.Size())
	if _, err := io.ReadFull(file, data); err != nil {
		return nil, fmt.Errorf("failed to read npy data: %w", err)
	}

	return tensor.NewDenseFromBytes(shape, dtype, data)
}

// Write saves an array to a version 1.0 npy file, creating parent
// directories as needed.
func Write(path string, d *tensor.Dense) error {
	descr, err := dtypeDescr(d.DType())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	header := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': %s, }",
		descr, shapeTuple(d.Shape()))
	// Pad with spaces so the data section starts 64-byte aligned; the
	// header always ends with a newline.
	total := len(magic) + 2 + 2 + len(header) + 1
	if pad := total % headerAlignment; pad != 0 {
		header += strings.Repeat(" ", headerAlignment-pad)
	}
	header += "\n"

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create npy file: %w", err)
	}
	defer func() {
		_ = file.Close() // Best effort close
	}()

	if _, err := file.Write([]byte(magic)); err != nil {
		return fmt.Errorf("failed to write npy magic: %w", err)
	}
	if _, err := file.Write([]byte{1, 0}); err != nil {
		return fmt.Errorf("failed to write npy version: %w", err)
	}
	if err := binary.Write(file, binary.LittleEndian, uint16(len(header))); err != nil {
		return fmt.Errorf("failed to write npy header length: %w", err)
	}
	if _, err := file.Write([]byte(header)); err != nil {
		return fmt.Errorf("failed to write npy header: %w", err)
	}
	if _, err := file.Write(d.Data()); err != nil {
		return fmt.Errorf("failed to write npy data: %w", err)
	}

	return file.Close()
}

// shapeTuple renders a shape as a Python tuple literal: (2, 3), (5,), ().
func shapeTuple(s tensor.Shape) string {
	switch len(s) {
	case 0:
		return "()"
	case 1:
		return fmt.Sprintf("(%d,)", s[0])
	default:
		parts := make([]string, len(s))
		for i, dim := range s {
			parts[i] = strconv.Itoa(dim)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	}
}

// parseHeader extracts descr, fortran_order, and shape from the Python dict
// literal in an npy header. The dict is flat with known keys, so targeted
// string scanning is enough.
func parseHeader(h string) (descr string, fortran bool, shape tensor.Shape, err error) {
	descr, err = quotedValue(h, "descr")
	if err != nil {
		return "", false, nil, err
	}

	switch {
	case strings.Contains(h, "'fortran_order': False"):
		fortran = false
	case strings.Contains(h, "'fortran_order': True"):
		fortran = true
	default:
		return "", false, nil, fmt.Errorf("missing fortran_order field")
	}

	open := strings.Index(h, "(")
	clos := strings.Index(h, ")")
	if open < 0 || clos < open {
		return "", false, nil, fmt.Errorf("missing shape tuple")
	}
	for _, part := range strings.Split(h[open+1:clos], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim, convErr := strconv.Atoi(part)
		if convErr != nil {
			return "", false, nil, fmt.Errorf("bad shape dimension %q", part)
		}
		shape = append(shape, dim)
	}

	return descr, fortran, shape, nil
}

// quotedValue returns the single-quoted value of a key in the header dict.
func quotedValue(h, key string) (string, error) {
	marker := "'" + key + "':"
	i := strings.Index(h, marker)
	if i < 0 {
		return "", fmt.Errorf("missing %s field", key)
	}
	rest := h[i+len(marker):]
	start := strings.Index(rest, "'")
	if start < 0 {
		return "", fmt.Errorf("missing %s value", key)
	}
	end := strings.Index(rest[start+1:], "'")
	if end < 0 {
		return "", fmt.Errorf("unterminated %s value", key)
	}
	return rest[start+1 : start+1+end], nil
}
