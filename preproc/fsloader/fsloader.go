// Copyright 2026 EngFlow Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package fsloader implements preproc.Loader against an io/fs.FS, searching
// a configurable ordered list of roots. Roots may be glob patterns, expanded
// once at construction time against a real io/fs.FS via doublestar.Glob.
package fsloader

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// FS is a preproc.Loader backed by an io/fs.FS. It tries, in order: the
// literal requested path, then the requested path joined to each resolved
// search root. The first root that yields a readable file wins.
type FS struct {
	fsys  fs.FS
	roots []string
}

// New constructs an FS loader over fsys. Each entry in searchRoots is either
// a plain directory (used as-is) or a doublestar glob pattern, expanded once
// here against fsys into the set of matching directories. A pattern that
// matches nothing contributes no roots but is not itself an error.
func New(fsys fs.FS, searchRoots ...string) (*FS, error) {
	l := &FS{fsys: fsys}
	for _, root := range searchRoots {
		if !doublestar.ValidatePattern(root) {
			return nil, fmt.Errorf("fsloader: invalid search root pattern %q", root)
		}
		if !containsGlobMeta(root) {
			l.roots = append(l.roots, root)
			continue
		}
		matches, err := doublestar.Glob(fsys, root)
		if err != nil {
			return nil, fmt.Errorf("fsloader: expanding search root %q: %w", root, err)
		}
		sort.Strings(matches)
		l.roots = append(l.roots, matches...)
	}
	return l, nil
}

func containsGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// Load implements preproc.Loader.
func (l *FS) Load(requested string) ([]byte, error) {
	candidates := make([]string, 0, len(l.roots)+1)
	candidates = append(candidates, requested)
	for _, root := range l.roots {
		candidates = append(candidates, path.Join(root, requested))
	}

	var firstErr error
	for _, candidate := range candidates {
		data, err := fs.ReadFile(l.fsys, candidate)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, fmt.Errorf("fsloader: %q not found in any of %d search locations: %w", requested, len(candidates), firstErrOrNotExist(firstErr))
}

func firstErrOrNotExist(err error) error {
	if err == nil {
		return fs.ErrNotExist
	}
	return err
}
