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
	"errors"
	"unicode/utf8"

	"github.com/lassade/preproc/internal/ppexpr"
	"github.com/lassade/preproc/internal/pplex"
)

// parsedFile owns one path's immutable source buffer and its derived line
// sequence. The two are never separated: Lines borrows byte ranges into buf,
// so neither may outlive the other, and parsedFile is never mutated once
// inserted into a Preprocessor's cache.
type parsedFile struct {
	path  string
	buf   []byte
	lines []pplex.Line
}

// loadAndParse fetches path through loader, validates it as UTF-8, and scans
// it into a parsedFile. It performs no caching; callers go through
// Preprocessor.parse, which memoizes by path.
func loadAndParse(loader Loader, cfg pplex.Config, path string) (*parsedFile, error) {
	buf, err := loader.Load(path)
	if err != nil {
		return nil, &ResourceError{Path: path, Message: "could not load source", Cause: err}
	}
	if !utf8.Valid(buf) {
		return nil, &ResourceError{Path: path, Message: "source is not valid UTF-8"}
	}

	lines, err := pplex.Scan(buf, cfg)
	if err != nil {
		return nil, translateScanError(path, err)
	}

	return &parsedFile{path: path, buf: buf, lines: lines}, nil
}

// translateScanError adapts a *pplex.ScanError or *ppexpr.ParseError raised
// during scanning into the driver's own public error types.
func translateScanError(path string, err error) error {
	var se *pplex.ScanError
	if errors.As(err, &se) {
		var pe *ppexpr.ParseError
		if errors.As(se.Cause, &pe) {
			return &ParseError{Path: path, Offset: pe.Offset, Length: pe.Length, Message: pe.Message}
		}
		return &StructuralError{Path: path, Line: se.Cursor.Line, Message: se.Message}
	}
	return &StructuralError{Path: path, Message: err.Error()}
}

// parse returns the cached *parsedFile for path, loading and scanning it on
// first use.
func (p *Preprocessor) parse(path string) (*parsedFile, error) {
	if pf, ok := p.fileCache[path]; ok {
		return pf, nil
	}
	pf, err := loadAndParse(p.loader, p.config, path)
	if err != nil {
		return nil, err
	}
	p.fileCache[path] = pf
	return pf, nil
}
