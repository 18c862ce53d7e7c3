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

// Grapheme holds one UTF-8 scalar value as up to 4 raw bytes, tagged
// implicitly by how many of the trailing bytes are zero. This mirrors the
// source format's own fixed [u8; 4] representation rather than using Go's
// native rune, so that the byte-offset bookkeeping in CharBuffer lines up
// exactly with what was read off the wire.
type Grapheme [4]byte

// Len returns the number of UTF-8 bytes this grapheme occupies.
func (g Grapheme) Len() int {
	switch {
	case g[1] == 0:
		return 1
	case g[2] == 0:
		return 2
	case g[3] == 0:
		return 3
	default:
		return 4
	}
}

// Rune decodes the grapheme back to a Go rune.
func (g Grapheme) Rune() rune {
	r, _ := decodeRune(g[:g.Len()])
	return r
}

func decodeRune(b []byte) (rune, int) {
	switch len(b) {
	case 1:
		return rune(b[0]), 1
	case 2:
		return rune(b[0]&0x1f)<<6 | rune(b[1]&0x3f), 2
	case 3:
		return rune(b[0]&0x0f)<<12 | rune(b[1]&0x3f)<<6 | rune(b[2]&0x3f), 3
	default:
		return rune(b[0]&0x07)<<18 | rune(b[1]&0x3f)<<12 | rune(b[2]&0x3f)<<6 | rune(b[3]&0x3f), 4
	}
}

// GraphemeFromRune encodes r as a Grapheme.
func GraphemeFromRune(r rune) Grapheme {
	var g Grapheme
	switch {
	case r < 0x80:
		g[0] = byte(r)
	case r < 0x800:
		g[0] = 0xC0 | byte(r>>6)
		g[1] = 0x80 | byte(r&0x3f)
	case r < 0x10000:
		g[0] = 0xE0 | byte(r>>12)
		g[1] = 0x80 | byte((r>>6)&0x3f)
		g[2] = 0x80 | byte(r&0x3f)
	default:
		g[0] = 0xF0 | byte(r>>18)
		g[1] = 0x80 | byte((r>>12)&0x3f)
		g[2] = 0x80 | byte((r>>6)&0x3f)
		g[3] = 0x80 | byte(r&0x3f)
	}
	return g
}

// Graphemes iterates a byte slice one UTF-8 scalar at a time, synthesizing a
// trailing newline if the source does not already end in one. This removes
// every end-of-input special case from the lexer's mode state machine: every
// phrase and token is guaranteed a terminating '\n'.
//
// Lead-byte classification only looks at the first byte's range
// (< 0x80 -> 1 byte, [0xC0,0xE0) -> 2, [0xE0,0xF0) -> 3, >= 0xF0 -> 4); a
// continuation byte (0x80..0xC0) appearing as a lead byte is undefined input,
// left unvalidated exactly as the original source leaves it (see Open
// Question #1 in SPEC_FULL.md: its byte-classification table is present only
// as a comment, never consulted).
type Graphemes struct {
	src       []byte
	pos       int
	suffixed  bool // true once the synthetic trailing '\n' has been emitted
	emittedAt int  // offset at which the synthetic '\n' was emitted
}

// NewGraphemes returns an iterator over src.
func NewGraphemes(src []byte) *Graphemes {
	return &Graphemes{src: src}
}

// Next returns the next (byte offset, Grapheme) pair, or ok=false at the
// true end of input (after any synthesized trailing newline).
func (g *Graphemes) Next() (offset int, gr Grapheme, ok bool) {
	if g.pos >= len(g.src) {
		if !g.suffixed && (len(g.src) == 0 || g.src[len(g.src)-1] != '\n') {
			g.suffixed = true
			g.emittedAt = len(g.src)
			return g.emittedAt, Grapheme{'\n', 0, 0, 0}, true
		}
		return 0, Grapheme{}, false
	}

	start := g.pos
	b0 := g.src[g.pos]
	var n int
	switch {
	case b0 < 0x80:
		n = 1
	case b0 < 0xE0:
		n = 2
	case b0 < 0xF0:
		n = 3
	default:
		n = 4
	}
	if g.pos+n > len(g.src) {
		n = len(g.src) - g.pos
	}
	copy(gr[:], g.src[g.pos:g.pos+n])
	g.pos += n
	return start, gr, true
}
