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

// Package preproc implements the preprocessing driver: it resolves a root
// file through a Loader, walks its classified line sequence (internal/pplex),
// maintains the conditional-compilation state machine, recursively follows
// #include directives, and streams the conditionally-enabled lines to a
// Sink.
package preproc

import (
	"context"
	"io"

	"github.com/lassade/preproc/internal/collections"
	"github.com/lassade/preproc/internal/pplex"
	"github.com/lassade/preproc/internal/symset"
)

// Config controls the byte-level directive conventions recognized by the
// line scanner. The zero value is not usable; use DefaultConfig.
type Config = pplex.Config

// DefaultConfig returns the conventional C-style configuration: '#'
// directives, "//" comments, and quoted include paths.
func DefaultConfig() Config { return pplex.DefaultConfig() }

// condState is one level of the conditional-compilation stack.
type condState struct {
	enabled       bool
	flippedByElse bool
	taken         bool // some branch of the current #if/#elif chain was enabled
}

// Preprocessor is the single-threaded driver described in the package
// comment. Its mutable state (symbol set, conditional stack, file cache) is
// not safe for concurrent use; run multiple instances, one per goroutine, to
// process disjoint file sets in parallel.
type Preprocessor struct {
	loader Loader
	config Config

	fileCache map[string]*parsedFile

	symbols symset.Set
	stack   []condState
	current condState

	currentlyIncluding collections.Set[string]
}

// New creates a Preprocessor backed by loader. defines seeds the symbol set
// for every subsequent Process call in addition to the permanent sentinels
// "1" and "true".
func New(loader Loader, cfg Config, defines ...string) *Preprocessor {
	return &Preprocessor{
		loader:    loader,
		config:    cfg,
		fileCache: make(map[string]*parsedFile),
		symbols:   symset.New(defines...),
	}
}

// reset clears per-call transient state before a Process invocation. The file cache is NOT cleared; it is keyed by path and
// persists for the Preprocessor's lifetime.
func (p *Preprocessor) reset(userDefines symset.Set) {
	p.symbols = userDefines.Clone()
	p.stack = p.stack[:0]
	p.current = condState{enabled: true, flippedByElse: true}
	p.currentlyIncluding = make(collections.Set[string])
}

// Preload loads and parses path into the file cache if it is not already
// cached. It returns only the load or scan error; the cached entry itself is
// not exposed.
func (p *Preprocessor) Preload(ctx context.Context, path string) error {
	_, err := p.parse(path)
	return err
}

// Process walks rootPath's transitively included content and feeds every
// enabled Code/Rem line to sink, in source order. A fresh symbol set (the
// sentinels plus the defines passed to New) and a fresh conditional stack
// are established at the start of every call.
func (p *Preprocessor) Process(ctx context.Context, rootPath string, sink Sink) error {
	seed := p.symbols
	p.reset(seed)
	defer func() { p.symbols = seed }()
	return p.processFile(ctx, rootPath, sink)
}

// ProcessToString is a convenience wrapper that collects the emitted lines,
// joined by "\n".
func (p *Preprocessor) ProcessToString(ctx context.Context, rootPath string) (string, error) {
	sink := newStringSink()
	if err := p.Process(ctx, rootPath, sink); err != nil {
		return "", err
	}
	return sink.String(), nil
}

// ProcessToWriter is a convenience wrapper that streams emitted lines to w,
// joined by "\n".
func (p *Preprocessor) ProcessToWriter(ctx context.Context, rootPath string, w io.Writer) error {
	return p.Process(ctx, rootPath, NewWriterSink(w))
}

// processFile walks one file's cached line sequence, recursing into
// #include targets. It is re-entered for every level of inclusion, sharing
// the driver's symbol set and conditional stack (an #include inherits the
// including context and its own conditional blocks are self-contained).
func (p *Preprocessor) processFile(ctx context.Context, path string, sink Sink) error {
	if p.currentlyIncluding.Contains(path) {
		return &StructuralError{Path: path, Message: "include cycle detected"}
	}
	p.currentlyIncluding.Add(path)
	defer delete(p.currentlyIncluding, path)

	pf, err := p.parse(path)
	if err != nil {
		return err
	}

	stackDepthOnEntry := len(p.stack)

	for _, line := range pf.lines {
		switch line.Kind {
		case pplex.KindCode, pplex.KindRem:
			if p.current.enabled {
				if err := sink.Emit(line.Span.Text(pf.buf)); err != nil {
					return err
				}
			}

		case pplex.KindInclude:
			if err := ctx.Err(); err != nil {
				return err
			}
			if p.current.enabled {
				includePath := line.Span.Text(pf.buf)
				if err := p.processFile(ctx, includePath, sink); err != nil {
					return err
				}
			} else {
				// Still loaded (not emitted): find_defines_of and process
				// must see the same line structure regardless of whether
				// this branch is taken.
				includePath := line.Span.Text(pf.buf)
				if _, err := p.parse(includePath); err != nil {
					return err
				}
			}

		case pplex.KindDefine:
			p.symbols.Define(line.Span.Text(pf.buf))

		case pplex.KindUndef:
			p.symbols.Undefine(line.Span.Text(pf.buf))

		case pplex.KindIf:
			p.stack = append(p.stack, p.current)
			enabled := line.Expr.Eval(p.symbols)
			p.current = condState{enabled: enabled, taken: enabled}

		case pplex.KindElif:
			if len(p.stack) == 0 {
				return &StructuralError{Path: path, Line: line.Cursor.Line, Message: "#elif without matching #if"}
			}
			if p.current.flippedByElse {
				return &StructuralError{Path: path, Line: line.Cursor.Line, Message: "#elif after #else"}
			}
			if p.current.taken {
				p.current.enabled = false
			} else {
				p.current.enabled = line.Expr.Eval(p.symbols)
				p.current.taken = p.current.enabled
			}

		case pplex.KindElse:
			if len(p.stack) == 0 {
				return &StructuralError{Path: path, Line: line.Cursor.Line, Message: "#else without matching #if"}
			}
			if p.current.flippedByElse {
				return &StructuralError{Path: path, Line: line.Cursor.Line, Message: "#else after #else"}
			}
			p.current.enabled = !p.current.taken
			p.current.taken = true
			p.current.flippedByElse = true

		case pplex.KindEndif:
			if len(p.stack) == 0 {
				return &StructuralError{Path: path, Line: line.Cursor.Line, Message: "#endif without matching #if"}
			}
			p.current = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
		}
	}

	if len(p.stack) != stackDepthOnEntry {
		return &StructuralError{Path: path, Message: "unterminated #if"}
	}
	return nil
}
