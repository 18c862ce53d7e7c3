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

package lexer

import "github.com/caseywolf/verse"

// reader wraps Graphemes with a lookahead queue so the lexer can make one-
// and two-character-ahead decisions ('.' or '-' followed by a digit), and
// scan a whole run of symbol bytes before consuming any of it, without ever
// having to back up over already-consumed input. The queue holds as many
// characters as the furthest peekN has asked for.
type reader struct {
	g     *Graphemes
	queue []queuedChar
	line  uint32
	col   uint32 // count of characters already consumed on the current line
	eof   bool
}

type queuedChar struct {
	offset int
	gr     Grapheme
}

func newReader(source []byte) *reader {
	return &reader{g: NewGraphemes(source), line: 1}
}

func (r *reader) fillTo(n int) {
	for len(r.queue) <= n && !r.eof {
		off, gr, ok := r.g.Next()
		if !ok {
			r.eof = true
			break
		}
		r.queue = append(r.queue, queuedChar{off, gr})
	}
}

func (r *reader) peekN(n int) (Grapheme, int, bool) {
	r.fillTo(n)
	if n >= len(r.queue) {
		return Grapheme{}, 0, false
	}
	return r.queue[n].gr, r.queue[n].offset, true
}

// peek returns the next character to be consumed, without consuming it.
func (r *reader) peek() (Grapheme, int, bool) {
	return r.peekN(0)
}

// peek2 returns the character after the one peek returns.
func (r *reader) peek2() (Grapheme, int, bool) {
	return r.peekN(1)
}

// loc is the location the next call to peek/advance would report.
func (r *reader) loc() verse.Location {
	return verse.Location{Line: r.line, Column: r.col + 1}
}

// advance consumes and returns the next character.
func (r *reader) advance() (Grapheme, int, bool) {
	gr, off, ok := r.peek()
	if !ok {
		return gr, off, false
	}
	r.queue = r.queue[1:]
	if gr.Rune() == '\n' {
		r.line++
		r.col = 0
	} else {
		r.col++
	}
	return gr, off, true
}
