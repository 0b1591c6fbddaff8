// Copyright 2026 UnitVoc Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package fsutil provides filesystem helpers for corpus preparation.
package fsutil

import (
	"github.com/unitvoc/unitvoc/internal/fsutil"
)

// FindFiles walks root recursively and returns every regular file whose
// base name matches the glob pattern (e.g. "*.wav"). With includeRoot
// false, the returned paths are relative to root.
func FindFiles(root, pattern string, includeRoot bool) ([]string, error) {
	return fsutil.FindFiles(root, pattern, includeRoot)
}
