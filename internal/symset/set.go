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

// Package symset implements the symbol set used to evaluate conditional
// compilation expressions: an unordered collection of defined names, always
// pre-populated with the sentinel members "1" and "true" so an expression
// can force a branch on ("#if 1"). It is a thin domain naming layer over
// collections.PinnedSet[string], which carries the sentinel/mutable-member
// split as a generic concept.
package symset

import (
	"cmp"
	"iter"

	"github.com/lassade/preproc/internal/collections"
)

// Set is the set of symbol names currently considered "defined".
type Set collections.PinnedSet[string]

// New returns a Set pre-populated with the sentinel members and the given
// initial symbols.
func New(initial ...string) Set {
	s := collections.NewPinned("1", "true")
	s.Set.AddSlice(initial)
	return Set(s)
}

// Clone returns an independent copy of the set.
func (s Set) Clone() Set {
	clone := collections.NewPinned("1", "true")
	clone.Set.Join(s.Set)
	return Set(clone)
}

// Define inserts name into the set. Defining an already-defined name is a
// silent no-op.
func (s Set) Define(name string) {
	collections.PinnedSet[string](s).Add(name)
}

// Undefine removes name from the set. Undefining an unknown name, or a
// sentinel, is a silent no-op.
func (s Set) Undefine(name string) {
	ps := collections.PinnedSet[string](s)
	if ps.IsPinned(name) {
		return
	}
	ps.Remove(name)
}

// Contains reports whether name is currently defined.
func (s Set) Contains(name string) bool {
	return collections.PinnedSet[string](s).Contains(name)
}

// All returns the sequence of defined names, in no particular order. The
// permanent sentinels are not included unless also explicitly defined.
func (s Set) All() iter.Seq[string] {
	return collections.PinnedSet[string](s).All()
}

// Sorted returns the defined names sorted lexicographically.
func (s Set) Sorted() []string {
	return collections.PinnedSet[string](s).SortedValues(cmp.Compare)
}

// Remove deletes every name in names from the set unconditionally, including
// a sentinel if it happens to be present. Used by FindDefinesOf to strip
// sentinel names from a discovered-symbols result, where they would
// otherwise appear whenever an expression references them literally (e.g.
// "#if 1").
func (s Set) Remove(names ...string) {
	ps := collections.PinnedSet[string](s)
	for _, n := range names {
		ps.Remove(n)
	}
}
