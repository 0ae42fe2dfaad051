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

package platform

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateResolvesAliases(t *testing.T) {
	p, err := Create("macos", "amd64")
	require.NoError(t, err)
	assert.Equal(t, Platform{OS: osx, Arch: x86_64}, p)
}

func TestCreateRejectsUnknownOS(t *testing.T) {
	_, err := Create("plan9", "x86_64")
	assert.Error(t, err)
}

func TestMacrosLinuxX86_64(t *testing.T) {
	p, err := Create("linux", "x86_64")
	require.NoError(t, err)

	names := Macros(p)
	for _, want := range []string{"linux", "__linux__", "unix", "__x86_64__"} {
		assert.True(t, slices.Contains(names, want), "expected %q in %v", want, names)
	}
	assert.False(t, slices.Contains(names, "_WIN32"))
}

func TestMacrosWindowsX86_64(t *testing.T) {
	p, err := Create("windows", "x86_64")
	require.NoError(t, err)

	names := Macros(p)
	assert.True(t, slices.Contains(names, "_WIN32"))
	assert.True(t, slices.Contains(names, "_WIN64"))
	assert.True(t, slices.Contains(names, "_M_X64"))
	assert.False(t, slices.Contains(names, "__linux__"))
}

func TestMacrosAreSortedAndDeduplicated(t *testing.T) {
	p, err := Create("linux", "x86_64")
	require.NoError(t, err)

	names := Macros(p)
	assert.True(t, slices.IsSorted(names))
	deduped := slices.Clone(names)
	deduped = slices.Compact(deduped)
	assert.Equal(t, deduped, names)
}

func TestCompareOrdersByOSThenArch(t *testing.T) {
	a := Platform{OS: linux, Arch: x86_64}
	b := Platform{OS: linux, Arch: aarch64}
	c := Platform{OS: osx, Arch: x86_64}

	assert.True(t, Compare(a, b) > 0) // x86_64 > aarch64
	assert.True(t, Compare(a, c) < 0) // linux < osx
}
