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

// Package lexer turns a UTF-8 source slice into a stream of located tokens.
// It is a hand-written mode state machine in the style of the teacher's
// pkg/yang/lex.go, generalized from YANG's fixed keyword/statement grammar
// to this format's identifiers, symbols, text/character literals and
// numeric literals.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/caseywolf/verse"
)

// Fragment is one lexer output unit: a token with its metadata, or an error.
// Once Err is non-nil, the Lexer that produced it yields no further
// fragments.
type Fragment struct {
	Token    verse.Token
	Metadata verse.Metadata
	Err      error
}

// Lexer is a pull iterator over Fragments. It holds no buffered lookahead
// beyond what reader keeps queued for '.'/'-' digit lookahead and for
// scanning a run of symbol bytes, and no mutable
// global state: every Lexer owns its own CharBuffer use and SymbolTable
// reference.
type Lexer struct {
	source  []byte
	reader  *reader
	symbols *SymbolTable
	done    bool

	// Trace, if non-nil, receives one line per emitted fragment. It exists
	// purely as a development aid, the same role lex.go's debug-gated
	// stderr writes play in the teacher, and costs nothing when left nil.
	Trace func(format string, args ...interface{})
}

// New returns a Lexer over source. A nil symbols uses DefaultSymbolTable.
func New(source []byte, symbols *SymbolTable) *Lexer {
	if symbols == nil {
		symbols = DefaultSymbolTable()
	}
	return &Lexer{source: source, reader: newReader(source), symbols: symbols}
}

// Next returns the next fragment and whether more fragments follow it. ok is
// false on the last fragment: the Newline that consumed the final character
// of input, or an error fragment. Calls after that return an empty Fragment
// with ok=false.
func (l *Lexer) Next() (Fragment, bool) {
	if l.done {
		return Fragment{}, false
	}
	for {
		gr, _, ok := l.reader.peek()
		if !ok {
			return Fragment{}, false
		}
		r := gr.Rune()
		startLoc := l.reader.loc()

		switch {
		case r == ' ' || r == '\t' || r == '\r':
			l.reader.advance()
			continue

		case r == '\n':
			l.reader.advance()
			end := verse.Location{Line: startLoc.Line + 1, Column: 0}
			frag := l.trace(l.emit(verse.NewlineToken(), startLoc, end))
			if _, _, more := l.reader.peek(); !more {
				l.done = true
				return frag, false
			}
			return frag, true

		case r == '"':
			l.reader.advance()
			return l.finish(l.lexText(startLoc))

		case r == '\'':
			l.reader.advance()
			return l.finish(l.lexCharacter(startLoc))

		case r == '(':
			l.reader.advance()
			return l.trace(l.emit(verse.LeftToken(verse.Paren), startLoc, startLoc)), true
		case r == ')':
			l.reader.advance()
			return l.trace(l.emit(verse.RightToken(verse.Paren), startLoc, startLoc)), true
		case r == '{':
			l.reader.advance()
			return l.trace(l.emit(verse.LeftToken(verse.Brace), startLoc, startLoc)), true
		case r == '}':
			l.reader.advance()
			return l.trace(l.emit(verse.RightToken(verse.Brace), startLoc, startLoc)), true
		case r == '[':
			l.reader.advance()
			return l.trace(l.emit(verse.LeftToken(verse.Bracket), startLoc, startLoc)), true
		case r == ']':
			l.reader.advance()
			return l.trace(l.emit(verse.RightToken(verse.Bracket), startLoc, startLoc)), true

		case r >= '0' && r <= '9':
			return l.finish(l.lexNumber(startLoc))

		case r == '.':
			if l.dotStartsDecimal() {
				l.reader.advance()
				return l.finish(l.lexDecimal(startLoc, 0, ""))
			}
			l.reader.advance()
			return l.trace(l.emit(verse.SymbolToken('.'), startLoc, startLoc)), true

		case r == '-':
			if gr2, _, ok2 := l.reader.peek2(); ok2 && isASCIIDigit(gr2.Rune()) {
				l.reader.advance()
				return l.trace(l.emit(verse.SymbolToken('-'), startLoc, startLoc)), true
			}
			return l.finish(l.lexSymbolRun(startLoc))

		case r == '\\':
			l.reader.advance()
			return l.fail(newUnexpectedChar(r, startLoc)), false

		case r < 128 && IsSymbolByte(byte(r)):
			return l.finish(l.lexSymbolRun(startLoc))

		default:
			return l.finish(l.lexIdent(startLoc))
		}
	}
}

// finish adapts the (Fragment, bool) a lexing helper returns straight back
// out of Next, tracing on the way.
func (l *Lexer) finish(frag Fragment, more bool) (Fragment, bool) {
	return l.trace(frag), more
}

func (l *Lexer) trace(frag Fragment) Fragment {
	if l.Trace != nil {
		if frag.Err != nil {
			l.Trace("lex error: %s", frag.Err)
		} else {
			l.Trace("lex %#v %s", frag.Token, frag.Metadata)
		}
	}
	return frag
}

func (l *Lexer) emit(tok verse.Token, start, end verse.Location) Fragment {
	s, e := start, end
	return Fragment{Token: tok, Metadata: verse.Metadata{Start: &s, End: &e}}
}

func (l *Lexer) fail(err error) Fragment {
	l.done = true
	return l.trace(Fragment{Err: err})
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// isTerminatorByte reports whether r ends a run of digits or an identifier:
// whitespace, newline, a bracket, a quote, or any symbol-set byte (which
// includes ':', ',', '.' and '-').
func isTerminatorByte(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\n', '(', ')', '{', '}', '[', ']', '"', '\'':
		return true
	}
	return r < 128 && IsSymbolByte(byte(r))
}

// dotStartsDecimal reports whether the '.' the caller just peeked is
// followed by a digit, i.e. whether it opens a Decimal rather than standing
// alone as Symbol(b'.').
func (l *Lexer) dotStartsDecimal() bool {
	gr, _, ok := l.reader.peek()
	if !ok || gr.Rune() != '.' {
		return false
	}
	gr2, _, ok2 := l.reader.peek2()
	return ok2 && isASCIIDigit(gr2.Rune())
}

// --- Text and character literals -------------------------------------------

func (l *Lexer) lexText(start verse.Location) (Fragment, bool) {
	var buf CharBuffer
	for {
		gr, off, ok := l.reader.peek()
		if !ok || gr.Rune() == '\n' {
			return l.fail(newUnterminatedLiteral(start)), false
		}
		r := gr.Rune()
		if r == '"' {
			end := l.reader.loc()
			l.reader.advance()
			return l.emit(verse.TextToken(buf.String(l.source), buf.Borrowed()), start, end), true
		}
		if r == '\\' {
			l.reader.advance()
			decoded, err := l.decodeEscape(true, start)
			if err != nil {
				return l.fail(err), false
			}
			buf.PushEscaped(l.source, decoded)
			continue
		}
		l.reader.advance()
		buf.Push(off, r)
	}
}

func (l *Lexer) lexCharacter(start verse.Location) (Fragment, bool) {
	gr, _, ok := l.reader.peek()
	if !ok || gr.Rune() == '\n' {
		return l.fail(newUnterminatedLiteral(start)), false
	}
	if gr.Rune() == '\'' {
		closeLoc := l.reader.loc()
		l.reader.advance()
		return l.fail(newEmptyCharLiteral(closeLoc)), false
	}

	var value rune
	if gr.Rune() == '\\' {
		l.reader.advance()
		decoded, err := l.decodeEscape(false, start)
		if err != nil {
			return l.fail(err), false
		}
		value = decoded
	} else {
		value = gr.Rune()
		l.reader.advance()
	}

	gr2, _, ok2 := l.reader.peek()
	if !ok2 || gr2.Rune() == '\n' {
		return l.fail(newUnterminatedLiteral(start)), false
	}
	if gr2.Rune() != '\'' {
		secondLoc := l.reader.loc()
		return l.fail(newUnexpectedChar(gr2.Rune(), secondLoc)), false
	}
	end := l.reader.loc()
	l.reader.advance()
	return l.emit(verse.CharacterToken(value), start, end), true
}

// decodeEscape consumes one escape body (the bytes after the backslash) and
// returns the decoded scalar. restrictXHH enforces Text's <0x80 limit on
// \xHH; Character lifts that restriction per spec.
func (l *Lexer) decodeEscape(restrictXHH bool, litStart verse.Location) (rune, error) {
	gr, _, ok := l.reader.peek()
	if !ok || gr.Rune() == '\n' {
		return 0, newUnterminatedLiteral(litStart)
	}
	c := gr.Rune()
	loc := l.reader.loc()
	switch c {
	case '"':
		l.reader.advance()
		return '"', nil
	case '\\':
		l.reader.advance()
		return '\\', nil
	case '0':
		l.reader.advance()
		return 0, nil
	case 'n':
		l.reader.advance()
		return '\n', nil
	case 'r':
		l.reader.advance()
		return '\r', nil
	case 't':
		l.reader.advance()
		return '\t', nil
	case 'x':
		l.reader.advance()
		return l.decodeHexByte(restrictXHH)
	case 'u':
		l.reader.advance()
		return l.decodeUnicodeEscape(litStart)
	default:
		l.reader.advance()
		return 0, newUnknownEscape(c, loc)
	}
}

// decodeHexByte decodes the two hex digits of a \xHH escape. Both
// characters are consumed unconditionally, even if one isn't a valid hex
// digit, so "fg" (only the first digit valid) reports the full two-
// character string rather than aborting after the first bad digit.
// Errors report the location of the last character consumed, matching the
// ground-truth column for "invalid digit found in string".
func (l *Lexer) decodeHexByte(restrict bool) (rune, error) {
	var digits []rune
	var lastLoc verse.Location
	for i := 0; i < 2; i++ {
		gr, _, ok := l.reader.peek()
		if !ok {
			break
		}
		lastLoc = l.reader.loc()
		digits = append(digits, gr.Rune())
		l.reader.advance()
	}
	s := string(digits)
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, newInvalidCodepoint(s, reasonInvalidDigit, lastLoc)
	}
	if restrict && v >= 0x80 {
		return 0, newInvalidCodepoint(s, reasonInvalidDigit, lastLoc)
	}
	return rune(v), nil
}

// decodeUnicodeEscape decodes a \u escape, either the braced variable-width
// form \u{H..H} or the fixed 4-digit form \uHHHH. litStart is the
// enclosing literal's start, used only for the unterminated-literal case.
func (l *Lexer) decodeUnicodeEscape(litStart verse.Location) (rune, error) {
	gr, _, ok := l.reader.peek()
	if ok && gr.Rune() == '{' {
		l.reader.advance()
		var sb strings.Builder
		var closeLoc verse.Location
		for {
			gr2, _, ok2 := l.reader.peek()
			if !ok2 || gr2.Rune() == '\n' {
				return 0, newUnterminatedLiteral(litStart)
			}
			if gr2.Rune() == '}' {
				closeLoc = l.reader.loc()
				l.reader.advance()
				break
			}
			sb.WriteRune(gr2.Rune())
			l.reader.advance()
		}
		digits := sb.String()
		if digits == "" {
			return 0, newInvalidCodepoint(digits, reasonInvalidDigit, closeLoc)
		}
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return 0, newInvalidCodepoint(digits, reasonInvalidDigit, closeLoc)
		}
		if v > 0x10FFFF || !isValidScalar(rune(v)) {
			return 0, newInvalidCodepoint(digits, reasonCodepointRange, closeLoc)
		}
		return rune(v), nil
	}

	// \u must be followed by '{' or a hex digit to be recognized as a
	// unicode escape at all; anything else (including a newline) is an
	// unknown escape sequence naming that character, not a malformed one.
	// Running out of input here is an unterminated literal.
	if !ok {
		return 0, newUnterminatedLiteral(litStart)
	}
	if !isHexDigit(gr.Rune()) {
		c := gr.Rune()
		loc := l.reader.loc()
		l.reader.advance()
		return 0, newUnknownEscape(c, loc)
	}

	var sb strings.Builder
	var lastLoc verse.Location
	for i := 0; i < 4; i++ {
		gr2, _, ok2 := l.reader.peek()
		if !ok2 {
			break
		}
		lastLoc = l.reader.loc()
		sb.WriteRune(gr2.Rune())
		l.reader.advance()
	}
	digits := sb.String()
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, newInvalidCodepoint(digits, reasonInvalidDigit, lastLoc)
	}
	if !isValidScalar(rune(v)) {
		return 0, newInvalidCodepoint(digits, reasonCodepointRange, lastLoc)
	}
	return rune(v), nil
}

func isValidScalar(r rune) bool {
	if r < 0 || r > 0x10FFFF {
		return false
	}
	return r < 0xD800 || r > 0xDFFF
}

// --- Numeric literals --------------------------------------------------

// digitRun is the result of scanning one contiguous run of digits/underscores
// (the whole part of an Integer, or the fractional part of a Decimal).
type digitRun struct {
	literal  string
	value    uint64
	overflow bool
	invalid  bool
	lastLoc  verse.Location // location of the last digit consumed, for a token's End
	endLoc   verse.Location // location of the terminator that closed the run, for errors
}

// scanDigits accumulates digits and underscores into value/literal until a
// terminator byte is reached. A byte that is neither digit, underscore, nor
// terminator is still appended to literal (but not to value), which is how
// an embedded non-digit byte such as 'µ' surfaces as a delayed
// "invalid digit found in string" once the run finally ends. endLoc is the
// terminator's own column (one past the last byte consumed), which is where
// overflow/invalid-digit errors are reported, per the Rust lexer's
// ParseIntError-style column convention.
func (l *Lexer) scanDigits() digitRun {
	var sb strings.Builder
	var run digitRun
	var value uint64
	for {
		gr, _, ok := l.reader.peek()
		if !ok {
			run.endLoc = l.reader.loc()
			break
		}
		r := gr.Rune()
		if isTerminatorByte(r) {
			run.endLoc = l.reader.loc()
			break
		}
		curLoc := l.reader.loc()
		l.reader.advance()
		run.lastLoc = curLoc
		sb.WriteRune(r)
		switch {
		case r == '_':
			// ignored in value, still consumes a column and the literal text
		case r >= '0' && r <= '9':
			d := uint64(r - '0')
			if !run.invalid {
				if value > (^uint64(0)-d)/10 {
					run.overflow = true
				} else {
					value = value*10 + d
				}
			}
		default:
			run.invalid = true
		}
	}
	run.literal = sb.String()
	run.value = value
	return run
}

func (l *Lexer) lexNumber(start verse.Location) (Fragment, bool) {
	whole := l.scanDigits()
	if whole.overflow {
		return l.fail(newUnparsableInteger(whole.literal, reasonOverflow, whole.endLoc)), false
	}
	if whole.invalid {
		return l.fail(newUnparsableInteger(whole.literal, reasonInvalidDigit, whole.endLoc)), false
	}
	if l.dotStartsDecimal() {
		l.reader.advance()
		return l.lexDecimal(start, whole.value, whole.literal)
	}
	return l.emit(verse.IntegerToken(whole.value), start, whole.lastLoc), true
}

func (l *Lexer) lexDecimal(start verse.Location, wholeVal uint64, wholeLiteral string) (Fragment, bool) {
	frac := l.scanDigits()
	if frac.overflow {
		return l.fail(newUnparsableDecimal(wholeLiteral, frac.literal, reasonOverflow, frac.endLoc)), false
	}
	if frac.invalid {
		return l.fail(newUnparsableDecimal(wholeLiteral, frac.literal, reasonInvalidDigit, frac.endLoc)), false
	}
	scale := len(strings.ReplaceAll(frac.literal, "_", ""))
	return l.emit(verse.DecimalToken(wholeVal, frac.value, uint8(scale)), start, frac.lastLoc), true
}

// --- Symbols -------------------------------------------------------------

// lexSymbolRun accumulates the maximal run of symbol-set bytes starting at
// the current character (comma excluded once the run has already begun,
// since comma always tokenizes alone), then applies the symbol table's
// greedy longest-prefix match to decide how many bytes form one
// ExtendedSymbol versus standalone Symbols.
func (l *Lexer) lexSymbolRun(start verse.Location) (Fragment, bool) {
	var run []byte
	n := 0
	for {
		gr, _, ok := l.reader.peekN(n)
		if !ok {
			break
		}
		r := gr.Rune()
		if r >= 128 || !IsSymbolByte(byte(r)) {
			break
		}
		if r == ',' {
			if n == 0 {
				run = append(run, ',')
				n++
			}
			break
		}
		run = append(run, byte(r))
		n++
	}

	matched := l.symbols.Lookup(run)
	take := matched
	if take < 1 {
		take = 1
	}
	var end verse.Location
	for i := 0; i < take; i++ {
		end = l.reader.loc()
		l.reader.advance()
	}
	if matched >= 2 {
		extended := append([]byte(nil), run[:take]...)
		return l.emit(verse.ExtendedSymbolToken(extended), start, end), true
	}
	return l.emit(verse.SymbolToken(run[0]), start, end), true
}

// --- Identifiers -----------------------------------------------------------

func (l *Lexer) lexIdent(start verse.Location) (Fragment, bool) {
	var buf CharBuffer
	end := start
	for {
		gr, off, ok := l.reader.peek()
		if !ok || isTerminatorByte(gr.Rune()) {
			break
		}
		end = l.reader.loc()
		l.reader.advance()
		buf.Push(off, gr.Rune())
	}
	text := buf.String(l.source)
	switch text {
	case "true":
		return l.emit(verse.BooleanToken(true), start, end), true
	case "false":
		return l.emit(verse.BooleanToken(false), start, end), true
	default:
		return l.emit(verse.IdentToken(text, buf.Borrowed()), start, end), true
	}
}

// sanity check referenced by tests wanting a human-readable dump of a
// fragment without importing fmt themselves.
func (f Fragment) String() string {
	if f.Err != nil {
		return f.Err.Error()
	}
	return fmt.Sprintf("%#v@%s", f.Token, f.Metadata)
}
