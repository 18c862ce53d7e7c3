// Copyright 2015 Google Inc.
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

// Package verse implements the data model shared by the verse lexer and
// parser: source locations, lexeme metadata, tokens and the syntax tree they
// assemble into.
package verse

import "fmt"

// Location identifies a single character position in a source file.  Lines
// are 1-based; columns are 1-based except for the synthetic end-of-line
// anchor, which uses column 0.
type Location struct {
	Line   uint32
	Column uint32
}

// BeforeStart returns the sentinel location that precedes any real character.
func BeforeStart() Location {
	return Location{Line: 1, Column: 0}
}

// String returns "line L, column C".
func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// Metadata records the start and end location of a lexeme or tree node.
// Either end may be unset, matching the four display forms required of it.
type Metadata struct {
	Start *Location
	End   *Location
}

// Unspecified returns metadata with neither end set.
func Unspecified() Metadata {
	return Metadata{}
}

// String renders metadata in one of four canonical forms.
func (m Metadata) String() string {
	switch {
	case m.Start == nil && m.End == nil:
		return "unspecified location"
	case m.Start != nil && m.End == nil:
		return fmt.Sprintf("region after %s", *m.Start)
	case m.Start == nil && m.End != nil:
		return fmt.Sprintf("region before %s", *m.End)
	default:
		start, end := *m.Start, *m.End
		if start.Line == end.Line {
			if start.Column == end.Column {
				return fmt.Sprintf("line %d, column %d", start.Line, start.Column)
			}
			return fmt.Sprintf("line %d, columns %d to %d", start.Line, start.Column, end.Column)
		}
		return fmt.Sprintf("%s to %s", start, end)
	}
}
