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

package fsloader

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLiteralPath(t *testing.T) {
	fsys := fstest.MapFS{
		"main.h": {Data: []byte("content")},
	}
	l, err := New(fsys)
	require.NoError(t, err)

	data, err := l.Load("main.h")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestLoadSearchRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"vendor/lib/foo.h": {Data: []byte("vendored")},
	}
	l, err := New(fsys, "vendor/lib")
	require.NoError(t, err)

	data, err := l.Load("foo.h")
	require.NoError(t, err)
	assert.Equal(t, "vendored", string(data))
}

func TestLoadGlobSearchRoot(t *testing.T) {
	fsys := fstest.MapFS{
		"vendor/alpha/include/foo.h": {Data: []byte("alpha")},
		"vendor/beta/include/bar.h":  {Data: []byte("beta")},
	}
	l, err := New(fsys, "vendor/*/include")
	require.NoError(t, err)

	data, err := l.Load("foo.h")
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(data))

	data, err = l.Load("bar.h")
	require.NoError(t, err)
	assert.Equal(t, "beta", string(data))
}

func TestLoadMissingReturnsError(t *testing.T) {
	fsys := fstest.MapFS{}
	l, err := New(fsys)
	require.NoError(t, err)

	_, err = l.Load("nope.h")
	require.Error(t, err)
}

func TestNewRejectsInvalidPattern(t *testing.T) {
	_, err := New(fstest.MapFS{}, "[invalid")
	require.Error(t, err)
}
