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

package symset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelsAlwaysDefined(t *testing.T) {
	s := New()
	assert.True(t, s.Contains("1"))
	assert.True(t, s.Contains("true"))

	s.Undefine("1")
	s.Undefine("true")
	assert.True(t, s.Contains("1"), "sentinels cannot be undefined")
	assert.True(t, s.Contains("true"))
}

func TestDefineUndefine(t *testing.T) {
	s := New("SHADOWS")
	assert.True(t, s.Contains("SHADOWS"))
	assert.False(t, s.Contains("OTHER"))

	s.Define("OTHER")
	assert.True(t, s.Contains("OTHER"))

	s.Undefine("OTHER")
	assert.False(t, s.Contains("OTHER"))

	// undefining an unknown name, or redefining a known one, is a silent no-op
	s.Undefine("NEVER_DEFINED")
	s.Define("SHADOWS")
	assert.True(t, s.Contains("SHADOWS"))
}

func TestClone(t *testing.T) {
	s := New("A")
	clone := s.Clone()
	clone.Define("B")

	assert.False(t, s.Contains("B"))
	assert.True(t, clone.Contains("A"))
	assert.True(t, clone.Contains("B"))
}

func TestRemove(t *testing.T) {
	s := New("0", "1", "true", "false", "FOO")
	s.Remove("0", "1", "true", "false")
	assert.Equal(t, []string{"FOO"}, s.Sorted())
}
