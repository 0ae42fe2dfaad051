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
	"io"
	"strings"
)

// Sink receives each enabled output line in source order, exactly as it
// appeared in the input (no trailing newline attached).
type Sink interface {
	Emit(line string) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(line string) error

func (f SinkFunc) Emit(line string) error { return f(line) }

// StringSink accumulates emitted lines, joined by "\n", for ProcessToString.
type StringSink struct {
	b     strings.Builder
	first bool
}

func newStringSink() *StringSink {
	return &StringSink{first: true}
}

func (s *StringSink) Emit(line string) error {
	if !s.first {
		s.b.WriteByte('\n')
	}
	s.first = false
	s.b.WriteString(line)
	return nil
}

func (s *StringSink) String() string { return s.b.String() }

// WriterSink streams emitted lines to an io.Writer, injecting "\n" between
// them, for ProcessToWriter.
type WriterSink struct {
	w     io.Writer
	first bool
}

func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w, first: true}
}

func (s *WriterSink) Emit(line string) error {
	if !s.first {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}
	s.first = false
	_, err := io.WriteString(s.w, line)
	return err
}
