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

import "fmt"

// Cursor is a 1-based line position in a source buffer, used for diagnostics.
type Cursor struct {
	Line int
}

// CursorInit is the position at the very beginning of a buffer.
var CursorInit = Cursor{Line: 1}

func (c Cursor) String() string {
	return fmt.Sprintf("line %d", c.Line)
}

// Next returns the cursor advanced by one logical line.
func (c Cursor) Next() Cursor {
	return Cursor{Line: c.Line + 1}
}
