// Copyright 2025 EngFlow Inc. All rights reserved.
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

package collections

import (
	"slices"
	"testing"
)

func TestFilterMapSlice(t *testing.T) {
	input := []int{1, -1, 2}
	expected := []int{2, 4}

	result := FilterMapSlice(input, func(i int) (int, bool) {
		if i < 0 {
			return 0, false
		}
		return i * 2, true
	})

	if len(result) != len(expected) {
		t.Fatalf("Collect length mismatch: expected %d, got %d", len(expected), len(result))
	}

	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("Collect failed at index %d: expected %d, got %d", i, expected[i], result[i])
		}
	}
}

func TestPinnedSetContainsPinnedWithoutAdd(t *testing.T) {
	s := NewPinned("1", "true")

	if !s.Contains("1") || !s.Contains("true") {
		t.Fatal("pinned members must report Contains true")
	}
	if s.Contains("other") {
		t.Fatal("non-pinned, non-added member must not report Contains true")
	}
}

func TestPinnedSetAllExcludesPinned(t *testing.T) {
	s := NewPinned("1", "true")
	s.Add("A")

	got := slices.Collect(s.All())
	if len(got) != 1 || got[0] != "A" {
		t.Fatalf("All should only enumerate mutable members, got %v", got)
	}
}

func TestPinnedSetRemoveIsUnguarded(t *testing.T) {
	s := NewPinned("1", "true")
	s.Add("1")
	s.Remove("1")

	if !s.Contains("1") {
		t.Fatal("pinned member must still report Contains true after Remove")
	}
	if s.IsPinned("1") == false {
		t.Fatal("IsPinned must still report true regardless of Remove")
	}
	got := slices.Collect(s.All())
	if len(got) != 0 {
		t.Fatalf("Remove must delete the mutable entry, got %v", got)
	}
}
