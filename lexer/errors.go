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
	"fmt"

	"github.com/caseywolf/verse"
)

// ErrorKind identifies the taxonomy of lexer failure. A lexer error always
// aborts the fragment iterator: no fragment follows an error fragment.
type ErrorKind int

const (
	KindIO ErrorKind = iota
	KindUnexpectedChar
	KindUnterminatedLiteral
	KindUnknownEscape
	KindInvalidCodepoint
	KindUnparsableInteger
	KindUnparsableDecimal
)

// Error is the concrete error type every lexer failure site returns.
type Error struct {
	Kind     ErrorKind
	Location verse.Location
	message  string
}

func (e *Error) Error() string {
	return e.message
}

// These three strings are Rust's std::num::ParseIntError::Display wording,
// not Go's strconv wording, because the exact text is part of the external
// interface tests assert against.
const (
	reasonOverflow       = "number too large to fit in target type"
	reasonInvalidDigit   = "invalid digit found in string"
	reasonCodepointRange = "codepoint out of range"
)

func newUnexpectedChar(c rune, loc verse.Location) *Error {
	return &Error{Kind: KindUnexpectedChar, Location: loc,
		message: fmt.Sprintf("unexpected character %q at %s", c, loc)}
}

func newEmptyCharLiteral(loc verse.Location) *Error {
	return &Error{Kind: KindUnexpectedChar, Location: loc,
		message: fmt.Sprintf("empty character literal at %s", loc)}
}

func newUnterminatedLiteral(loc verse.Location) *Error {
	return &Error{Kind: KindUnterminatedLiteral, Location: loc,
		message: fmt.Sprintf("unterminated literal at %s", loc)}
}

func newUnknownEscape(c rune, loc verse.Location) *Error {
	return &Error{Kind: KindUnknownEscape, Location: loc,
		message: fmt.Sprintf("unknown escape sequence %q at %s", string(c), loc)}
}

func newInvalidCodepoint(digits, reason string, loc verse.Location) *Error {
	return &Error{Kind: KindInvalidCodepoint, Location: loc,
		message: fmt.Sprintf("invalid codepoint %q (%s) at %s", digits, reason, loc)}
}

func newUnparsableInteger(literal, reason string, loc verse.Location) *Error {
	return &Error{Kind: KindUnparsableInteger, Location: loc,
		message: fmt.Sprintf("unparsable integer %s (%s) at %s", literal, reason, loc)}
}

func newUnparsableDecimal(whole, frac, reason string, loc verse.Location) *Error {
	return &Error{Kind: KindUnparsableDecimal, Location: loc,
		message: fmt.Sprintf("unparsable decimal %s.%s (%s) at %s", whole, frac, reason, loc)}
}
