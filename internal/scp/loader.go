package scp

import (
	"fmt"
	"iter"

	"github.com/unitvoc/unitvoc/internal/featstore"
	"github.com/unitvoc/unitvoc/internal/npy"
	"github.com/unitvoc/unitvoc/internal/tensor"
)

// DefaultDataset is the dataset read from container-backed manifests whose
// locations carry no explicit dataset name.
const DefaultDataset = "feats"

// readFunc resolves one raw location string to an array. The two loader
// variants differ only in this function.
type readFunc func(location string) (*tensor.Dense, error)

// Loader provides key-based, lazy access to feature arrays listed in a
// manifest. Every Get re-reads the backing file; nothing is cached.
//
// The Loader itself is read-only after construction. Whether concurrent
// Gets are safe depends on the backing files being opened independently
// per call, which holds for both built-in backends, but callers mixing in
// their own storage should serialize access.
type Loader struct {
	index *Index
	read  readFunc
}

// NewFeatLoader opens a manifest whose locations point into feature
// containers (see package featstore). Locations without an explicit
// dataset name resolve to defaultDataset; pass "" for DefaultDataset.
func NewFeatLoader(manifestPath, defaultDataset string) (*Loader, error) {
	if defaultDataset == "" {
		defaultDataset = DefaultDataset
	}
	index, err := ParseIndex(manifestPath)
	if err != nil {
		return nil, err
	}
	return &Loader{index: index, read: containerRead(defaultDataset)}, nil
}

// NewNpyLoader opens a manifest whose locations are plain .npy file paths.
// Locations are used verbatim; npy manifests carry no dataset names.
func NewNpyLoader(manifestPath string) (*Loader, error) {
	index, err := ParseIndex(manifestPath)
	if err != nil {
		return nil, err
	}
	return &Loader{index: index, read: npy.Read}, nil
}

// containerRead resolves container-backed locations:
//
//   - no dataset name: read defaultDataset
//   - one name: read that dataset
//   - several names: read each, promote rank-1 arrays to single columns,
//     and concatenate along the last axis in listed order
func containerRead(defaultDataset string) readFunc {
	return func(location string) (*tensor.Dense, error) {
		file, datasets := splitLocation(location)
		switch len(datasets) {
		case 0:
			return featstore.ReadDataset(file, defaultDataset)
		case 1:
			return featstore.ReadDataset(file, datasets[0])
		default:
			r, err := featstore.Open(file)
			if err != nil {
				return nil, err
			}
			defer func() {
				_ = r.Close() // Best effort close
			}()

			parts := make([]*tensor.Dense, len(datasets))
			for i, name := range datasets {
				if parts[i], err = r.Read(name); err != nil {
					return nil, err
				}
			}
			out, err := tensor.ConcatLastAxis(parts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", location, err)
			}
			return out, nil
		}
	}
}

// Get loads the array for a key. A miss fails with ErrKeyNotFound and
// leaves the index untouched; storage errors for one key do not affect
// lookups of other keys.
func (l *Loader) Get(key string) (*tensor.Dense, error) {
	location, err := l.index.Path(key)
	if err != nil {
		return nil, err
	}
	return l.read(location)
}

// Path returns the raw, unresolved location string for a key.
func (l *Loader) Path(key string) (string, error) {
	return l.index.Path(key)
}

// Len returns the number of keys in the manifest.
func (l *Loader) Len() int {
	return l.index.Len()
}

// Keys returns the keys in manifest declaration order.
func (l *Loader) Keys() []string {
	return l.index.Keys()
}

// Values returns a lazy, restartable sequence of the arrays for every key,
// in Keys() order. Each element triggers its own disk read, and iteration
// continues past per-key errors so callers can decide whether to skip or
// abort.
func (l *Loader) Values() iter.Seq2[*tensor.Dense, error] {
	return func(yield func(*tensor.Dense, error) bool) {
		for _, key := range l.index.keys {
			if !yield(l.Get(key)) {
				return
			}
		}
	}
}
