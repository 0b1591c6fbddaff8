// Package scp implements Kaldi-style feature manifests: text files mapping
// utterance keys to on-disk feature locations, one entry per line, with
// lazy per-key loading of the referenced arrays.
//
// Manifest format (whitespace-separated, exactly two fields per line):
//
//	<key> <path>[:<dataset>[,<dataset>...]]
//
// Examples:
//
//	utt1 /some/path/a.st:feats
//	utt2 /some/path/b.st:feats_1,feats_2
//	utt3 /some/path/c.npy
package scp

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Manifest errors.
var (
	ErrKeyNotFound   = errors.New("key not found in manifest")
	ErrMalformedLine = errors.New("malformed manifest line")
	ErrDuplicateKey  = errors.New("duplicate key in manifest")
)

// Index is an immutable, ordered mapping from utterance key to an
// unresolved location string. It is built once from a manifest file and
// never mutated afterwards.
type Index struct {
	keys      []string
	locations map[string]string
}

// ParseIndex reads a manifest file into an Index.
//
// Every non-blank line must split into exactly two whitespace-separated
// fields; anything else fails with ErrMalformedLine and no index is
// produced. Duplicate keys fail with ErrDuplicateKey: a manifest naming
// the same utterance twice is almost certainly generator error, and
// silently keeping one of the two locations would hide it.
func ParseIndex(path string) (*Index, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest: %w", err)
	}
	defer func() {
		_ = file.Close() // Best effort close
	}()

	idx := &Index{locations: make(map[string]string)}
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: %s:%d: want 2 fields, got %d", ErrMalformedLine, path, lineNo, len(fields))
		}
		key, location := fields[0], fields[1]
		if _, ok := idx.locations[key]; ok {
			return nil, fmt.Errorf("%w: %s:%d: %q", ErrDuplicateKey, path, lineNo, key)
		}
		idx.keys = append(idx.keys, key)
		idx.locations[key] = location
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	return idx, nil
}

// Len returns the number of keys in the index.
func (idx *Index) Len() int {
	return len(idx.keys)
}

// Keys returns the keys in manifest declaration order.
func (idx *Index) Keys() []string {
	return append([]string(nil), idx.keys...)
}

// Path returns the raw, unresolved location string for a key.
func (idx *Index) Path(key string) (string, error) {
	location, ok := idx.locations[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return location, nil
}

// splitLocation separates a location into the file path and the optional
// comma-separated dataset names after the first colon.
func splitLocation(location string) (file string, datasets []string) {
	file, rest, ok := strings.Cut(location, ":")
	if !ok {
		return location, nil
	}
	return file, strings.Split(rest, ",")
}
