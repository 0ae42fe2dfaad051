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

package preproc

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memLoader(files map[string]string) Loader {
	return LoaderFunc(func(path string) ([]byte, error) {
		content, ok := files[path]
		if !ok {
			return nil, assert.AnError
		}
		return []byte(content), nil
	})
}

func TestProcessSimpleConditionalSymbolDefined(t *testing.T) {
	root := "// hdr\n#if SHADOWS\nA\n#else\nB\n#endif\n"
	p := New(memLoader(map[string]string{"root": root}), DefaultConfig(), "SHADOWS")

	out, err := p.ProcessToString(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, "// hdr\nA", out)
}

func TestProcessSimpleConditionalSymbolNotDefined(t *testing.T) {
	root := "// hdr\n#if SHADOWS\nA\n#else\nB\n#endif\n"
	p := New(memLoader(map[string]string{"root": root}), DefaultConfig())

	out, err := p.ProcessToString(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, "// hdr\nB", out)
}

func TestProcessElifChain(t *testing.T) {
	root := "#if A\n1\n#elif B\n2\n#elif C\n3\n#else\n4\n#endif\n"

	cases := []struct {
		name    string
		defines []string
		want    string
	}{
		{"only B", []string{"B"}, "2"},
		{"A and B", []string{"A", "B"}, "1"},
		{"none", nil, "4"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := New(memLoader(map[string]string{"root": root}), DefaultConfig(), tc.defines...)
			out, err := p.ProcessToString(context.Background(), "root")
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestProcessNestedIncludeWithDefineFlow(t *testing.T) {
	files := map[string]string{
		"main": "#include \"a\"\nX\n#if FOO\nY\n#endif\n",
		"a":    "#define FOO\n",
	}
	p := New(memLoader(files), DefaultConfig())

	out, err := p.ProcessToString(context.Background(), "main")
	require.NoError(t, err)
	assert.Equal(t, "X\nY", out)
}

func TestProcessStructuralErrorStrayElse(t *testing.T) {
	files := map[string]string{"root": "#else\n#endif\n"}
	p := New(memLoader(files), DefaultConfig())

	_, err := p.ProcessToString(context.Background(), "root")
	require.Error(t, err)
	var se *StructuralError
	require.ErrorAs(t, err, &se)
}

func TestProcessUnterminatedIf(t *testing.T) {
	files := map[string]string{"root": "#if A\ncode\n"}
	p := New(memLoader(files), DefaultConfig())

	_, err := p.ProcessToString(context.Background(), "root")
	require.Error(t, err)
	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Message, "unterminated")
}

func TestProcessIncludeCycleIsFatal(t *testing.T) {
	files := map[string]string{
		"a": "#include \"b\"\n",
		"b": "#include \"a\"\n",
	}
	p := New(memLoader(files), DefaultConfig())

	_, err := p.ProcessToString(context.Background(), "a")
	require.Error(t, err)
	var se *StructuralError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Message, "cycle")
}

func TestProcessDisabledIncludeIsStillLoaded(t *testing.T) {
	files := map[string]string{
		"root": "#if NOPE\n#include \"missing_but_loaded\"\n#endif\n",
		"missing_but_loaded": "#define SEEN\n",
	}
	p := New(memLoader(files), DefaultConfig())

	out, err := p.ProcessToString(context.Background(), "root")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	defines, err := p.FindDefinesOf(context.Background(), "root")
	require.NoError(t, err)
	assert.True(t, defines.Contains("SEEN"))
	assert.True(t, defines.Contains("NOPE"))
}

func TestFindDefinesOfRemovesSentinels(t *testing.T) {
	files := map[string]string{
		"root": "#if A || 1\n#define B\n#endif\n",
	}
	p := New(memLoader(files), DefaultConfig())

	defines, err := p.FindDefinesOf(context.Background(), "root")
	require.NoError(t, err)
	assert.True(t, defines.Contains("A"))
	assert.True(t, defines.Contains("B"))

	names := defines.Sorted()
	for _, sentinel := range []string{"0", "1", "true", "false"} {
		assert.NotContains(t, names, sentinel)
	}
}

func TestProcessToWriterInjectsNewlines(t *testing.T) {
	files := map[string]string{"root": "a\nb\nc\n"}
	p := New(memLoader(files), DefaultConfig())

	var buf strings.Builder
	err := p.ProcessToWriter(context.Background(), "root", &buf)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc", buf.String())
}

// Passthrough idempotence: a file with no directives re-emitted and re-run
// through Process again yields the same stream (testable property 2).
func TestProcessPassthroughIdempotence(t *testing.T) {
	files := map[string]string{"root": "alpha\nbeta\ngamma\n"}
	p := New(memLoader(files), DefaultConfig())

	first, err := p.ProcessToString(context.Background(), "root")
	require.NoError(t, err)

	files2 := map[string]string{"root2": first + "\n"}
	p2 := New(memLoader(files2), DefaultConfig())
	second, err := p2.ProcessToString(context.Background(), "root2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPreloadPopulatesCacheWithoutProcessing(t *testing.T) {
	files := map[string]string{"root": "#define X\n"}
	p := New(memLoader(files), DefaultConfig())

	err := p.Preload(context.Background(), "root")
	require.NoError(t, err)

	pf, ok := p.fileCache["root"]
	require.True(t, ok)
	require.Len(t, pf.lines, 1)
}
