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

package pplex

import (
	"bytes"

	"github.com/lassade/preproc/internal/ppexpr"
)

var directiveKeywords = []struct {
	name string
	kind Kind
}{
	// no shared prefixes among these names, so order does not matter for
	// correctness, but longer-first mirrors the convention used for C
	// preprocessor keyword tables in general.
	{"include", KindInclude},
	{"define", KindDefine},
	{"undef", KindUndef},
	{"endif", KindEndif},
	{"elif", KindElif},
	{"else", KindElse},
	{"if", KindIf},
}

// Scan classifies every line in buf, in source order.
func Scan(buf []byte, cfg Config) ([]Line, error) {
	var lines []Line
	cursor := CursorInit
	pos := 0

	for pos < len(buf) {
		line, next, err := scanOneLine(buf, pos, cfg, cursor)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line...)
		pos = next
		cursor = cursor.Next()
	}

	return lines, nil
}

// scanOneLine classifies the line beginning at pos, returning the records it
// produced (one or two: a directive plus its optional Rem) and the offset of
// the following line.
func scanOneLine(buf []byte, pos int, cfg Config, cursor Cursor) ([]Line, int, error) {
	lineStart := pos
	eol := scanToAny(buf[pos:], '\n')
	eol += pos // absolute index of '\n', or len(buf) if none

	p := pos + countLeadingSpaces(buf[pos:eol])

	switch {
	case p >= eol:
		// Blank (or whitespace-only) line.
		return []Line{{Kind: KindCode, Span: Span{lineStart, lineStart}, Cursor: cursor}}, nextLineStart(buf, eol), nil

	case buf[p] == cfg.DirectiveChar:
		return scanDirectiveLine(buf, lineStart, p, eol, cfg, cursor)

	default:
		return []Line{{Kind: KindCode, Span: codeSpan(buf, lineStart, eol), Cursor: cursor}}, nextLineStart(buf, eol), nil
	}
}

// codeSpan returns the span for a passthrough code line: from the original
// line start (leading whitespace preserved) to end of line, with a trailing
// '\r' stripped.
func codeSpan(buf []byte, start, eol int) Span {
	end := eol
	if end > start && buf[end-1] == '\r' {
		end--
	}
	return Span{start, end}
}

// nextLineStart returns the offset just past the newline at eol (or len(buf)
// if eol is already the end of the buffer).
func nextLineStart(buf []byte, eol int) int {
	if eol >= len(buf) {
		return len(buf)
	}
	return eol + 1
}

func countLeadingSpaces(data []byte) int {
	i := 0
	for i < len(data) && (data[i] == ' ' || data[i] == '\t' || data[i] == '\v' || data[i] == '\f' || data[i] == '\r') {
		i++
	}
	return i
}

// scanDirectiveLine handles a line whose first non-space byte is the
// directive character. dirPos is the index of that byte.
func scanDirectiveLine(buf []byte, lineStart, dirPos, eol int, cfg Config, cursor Cursor) ([]Line, int, error) {
	nameStart := dirPos + 1
	if nameStart >= eol {
		// "#" immediately followed by newline or EOF: passthrough.
		return []Line{{Kind: KindCode, Span: codeSpan(buf, lineStart, eol), Cursor: cursor}}, nextLineStart(buf, eol), nil
	}

	nameEnd := nameStart + scanToAny(buf[nameStart:eol], ' ', '\t', '\r')
	name := string(buf[nameStart:nameEnd])

	var kind Kind
	known := false
	for _, d := range directiveKeywords {
		if d.name == name {
			kind, known = d.kind, true
			break
		}
	}
	if !known {
		return []Line{{Kind: KindCode, Span: codeSpan(buf, lineStart, eol), Cursor: cursor}}, nextLineStart(buf, eol), nil
	}

	argStart := nameEnd
	next := nextLineStart(buf, eol)

	switch kind {
	case KindIf, KindElif:
		expr, consumed, err := ppexpr.Parse(buf[argStart:eol], cfg.exprOptions())
		if err != nil {
			return nil, 0, &ScanError{Cursor: cursor, Message: err.Error(), Cause: err}
		}
		line := Line{Kind: kind, Expr: expr, Cursor: cursor}
		// Any text beyond the parsed expression up to end of line is
		// swallowed (comment or trailing end-of-line whitespace); the
		// directive never emits a Rem for it.
		_ = consumed
		return []Line{line}, next, nil

	case KindDefine, KindUndef:
		nameSpan, remStart, err := scanName(buf, argStart, eol, cfg, cursor)
		if err != nil {
			return nil, 0, err
		}
		lines := []Line{{Kind: kind, Span: nameSpan, Cursor: cursor}}
		if rem := remSpan(buf, remStart, eol); !rem.Empty() {
			lines = append(lines, Line{Kind: KindRem, Span: rem, Cursor: cursor})
		}
		return lines, next, nil

	case KindInclude:
		pathSpan, remStart, err := scanIncludePath(buf, argStart, eol, cfg, cursor)
		if err != nil {
			return nil, 0, err
		}
		lines := []Line{{Kind: kind, Span: pathSpan, Cursor: cursor}}
		if rem := remSpan(buf, remStart, eol); !rem.Empty() {
			lines = append(lines, Line{Kind: KindRem, Span: rem, Cursor: cursor})
		}
		return lines, next, nil

	case KindElse, KindEndif:
		lines := []Line{{Kind: kind, Cursor: cursor}}
		if rem := remSpan(buf, argStart, eol); !rem.Empty() {
			lines = append(lines, Line{Kind: KindRem, Span: rem, Cursor: cursor})
		}
		return lines, next, nil

	default:
		panic("pplex: unreachable directive kind")
	}
}

// remSpan returns the trailing-text span between start and eol: leading
// spaces are skipped (so a bare trailing space after the directive's
// argument does not turn into a spurious Rem), and a trailing '\r' is
// stripped.
func remSpan(buf []byte, start, eol int) Span {
	p := start + countLeadingSpaces(buf[start:eol])
	end := eol
	if end > p && buf[end-1] == '\r' {
		end--
	}
	if p >= end {
		return Span{p, p}
	}
	return Span{p, end}
}

// scanName scans the bare symbol name of a #define/#undef directive: leading
// spaces are skipped, then the name runs until whitespace, newline, or the
// comment lead. A comment lead where a name is expected is an error.
func scanName(buf []byte, start, eol int, cfg Config, cursor Cursor) (nameSpan Span, remStart int, err error) {
	p := start + countLeadingSpaces(buf[start:eol])
	if p >= eol {
		return Span{}, 0, &ScanError{Cursor: cursor, Message: "missing name after directive"}
	}
	if buf[p] == cfg.CommentLead {
		return Span{}, 0, &ScanError{Cursor: cursor, Message: "missing name after directive: found comment"}
	}

	end := p + scanToAny(buf[p:eol], ' ', '\t', '\r', cfg.CommentLead)
	return Span{p, end}, end, nil
}

// scanIncludePath scans `#include <begin>path<end>`, requiring both
// delimiters even at end of file.
func scanIncludePath(buf []byte, start, eol int, cfg Config, cursor Cursor) (pathSpan Span, remStart int, err error) {
	p := start + countLeadingSpaces(buf[start:eol])
	if p >= eol || buf[p] != cfg.IncludeBegin {
		return Span{}, 0, &ScanError{Cursor: cursor, Message: "missing include-begin delimiter"}
	}
	p++

	rel := bytes.IndexByte(buf[p:eol], cfg.IncludeEnd)
	if rel < 0 {
		return Span{}, 0, &ScanError{Cursor: cursor, Message: "missing include-end delimiter"}
	}
	end := p + rel
	return Span{p, end}, end + 1, nil
}
