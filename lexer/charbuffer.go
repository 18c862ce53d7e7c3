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

import (
	"strconv"
	"strings"
)

// CharBuffer accumulates the contents of the lexeme currently being
// scanned. It starts out borrowing a contiguous run of the source (Slice
// mode) and only switches to an owned builder (Copy mode) the moment an
// escape sequence forces a byte to be written that isn't literally present
// in the source at that position. This is the zero-copy mechanism
// spec.md requires for the common case of unescaped identifiers and text.
type CharBuffer struct {
	offset int
	length int
	copied strings.Builder
	copy   bool
}

// IsEmpty reports whether the buffer holds no characters.
func (b *CharBuffer) IsEmpty() bool {
	if b.copy {
		return b.copied.Len() == 0
	}
	return b.length == 0
}

// Len returns the accumulated byte length.
func (b *CharBuffer) Len() int {
	if b.copy {
		return b.copied.Len()
	}
	return b.length
}

// Borrowed reports whether the buffer is still in Slice (zero-copy) mode.
func (b *CharBuffer) Borrowed() bool {
	return !b.copy
}

// Push appends a character read from offset in the source. In Slice mode,
// offset must be contiguous with whatever has already been buffered; this
// is checked the way the original implementation's debug assertion does,
// since a gap would mean the caller skipped bytes the buffer doesn't know
// about.
func (b *CharBuffer) Push(offset int, r rune) {
	if b.copy {
		b.copied.WriteRune(r)
		return
	}
	n := runeLen(r)
	if b.length == 0 {
		b.offset = offset
	} else if b.offset+b.length != offset {
		panic("wrong character offset: expected " + strconv.Itoa(b.offset+b.length) + ", got " + strconv.Itoa(offset))
	}
	b.length += n
}

// Clear empties the buffer and resets it to Slice mode.
func (b *CharBuffer) Clear() {
	b.offset = 0
	b.length = 0
	b.copy = false
	b.copied.Reset()
}

// switchToCopy forces the buffer into Copy mode, seeding the builder with
// whatever has been accumulated in Slice mode so far.
func (b *CharBuffer) switchToCopy(source []byte) {
	if b.copy {
		return
	}
	b.copied.Reset()
	b.copied.WriteString(string(source[b.offset : b.offset+b.length]))
	b.offset = 0
	b.length = 0
	b.copy = true
}

// PushEscaped appends a rune that is not literally present in source at the
// current position (the result of decoding an escape sequence), forcing a
// transition to Copy mode on first use.
func (b *CharBuffer) PushEscaped(source []byte, r rune) {
	b.switchToCopy(source)
	b.copied.WriteRune(r)
}

// String materializes the buffer's contents as a Go string, borrowing from
// source when possible.
func (b *CharBuffer) String(source []byte) string {
	if b.copy {
		return b.copied.String()
	}
	return string(source[b.offset : b.offset+b.length])
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	default:
		return 4
	}
}
