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

// Package pplex implements the line classifier: a byte-level scanner that
// turns a source buffer into a sequence of typed Line records (code,
// directive remainder, include, define, undef, if/elif with a parsed
// expression, else, endif).
package pplex

import (
	"fmt"

	"github.com/lassade/preproc/internal/ppexpr"
)

// Kind identifies the variant of a Line record.
type Kind int

const (
	KindCode Kind = iota
	KindRem
	KindInclude
	KindDefine
	KindUndef
	KindIf
	KindElif
	KindElse
	KindEndif
)

func (k Kind) String() string {
	switch k {
	case KindCode:
		return "Code"
	case KindRem:
		return "Rem"
	case KindInclude:
		return "Include"
	case KindDefine:
		return "Define"
	case KindUndef:
		return "Undef"
	case KindIf:
		return "If"
	case KindElif:
		return "Elif"
	case KindElse:
		return "Else"
	case KindEndif:
		return "Endif"
	default:
		return "Unknown"
	}
}

// Span is a byte range into the buffer a Line was scanned from. Go has no
// borrow checker, so a Span is only meaningful alongside the []byte it was
// produced against; callers must keep the two together (see preproc's
// parsedFile).
type Span struct {
	Start, End int
}

func (s Span) Slice(buf []byte) []byte { return buf[s.Start:s.End] }
func (s Span) Text(buf []byte) string  { return string(buf[s.Start:s.End]) }
func (s Span) Empty() bool             { return s.Start == s.End }

// Line is one classified line of source, in source order.
type Line struct {
	Kind   Kind
	Span   Span        // meaningful for Code, Rem, Include, Define, Undef
	Expr   ppexpr.Expr // meaningful for If, Elif
	Cursor Cursor      // logical line number this record begins on
}

// ScanError is a diagnostic raised while classifying a directive line, e.g. a
// malformed #include or a #define missing its name. Cause holds the
// underlying *ppexpr.ParseError when the failure came from expression
// parsing inside an #if/#elif, so callers can recover the byte offset.
type ScanError struct {
	Cursor  Cursor
	Message string
	Cause   error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %s", e.Cursor, e.Message)
}

func (e *ScanError) Unwrap() error { return e.Cause }

// Config controls the byte-level conventions the scanner recognizes.
type Config struct {
	DirectiveChar byte // default '#'

	// CommentLead is the leading byte of the single-line comment marker
	// (default '/' for "//"). It terminates expression/identifier scanning
	// and makes a comment where a name is expected an error.
	CommentLead byte

	IncludeBegin byte // default '"'
	IncludeEnd   byte // default '"'
}

// DefaultConfig returns the conventional C-style configuration: '#'
// directives, "//" comments, and quoted include paths.
func DefaultConfig() Config {
	return Config{
		DirectiveChar: '#',
		CommentLead:   '/',
		IncludeBegin:  '"',
		IncludeEnd:    '"',
	}
}

func (c Config) exprOptions() ppexpr.Options {
	return ppexpr.Options{CommentLead: c.CommentLead, HasCommentLead: true}
}
