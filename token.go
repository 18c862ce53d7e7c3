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

package verse

import "fmt"

// Ascii wraps a single ASCII byte so its debug representation reads
// Ascii(b'x') rather than a bare numeric value, matching the fixed error
// scenarios this front-end's callers assert against.
type Ascii byte

// GoString implements fmt.GoStringer, which both %#v and
// github.com/alecthomas/repr honor when rendering a value.
func (a Ascii) GoString() string {
	return fmt.Sprintf("Ascii(b'%c')", byte(a))
}

func (a Ascii) String() string {
	return a.GoString()
}

// AsciiSlice wraps a borrowed run of ASCII symbol bytes, again purely for its
// debug representation: [b'a', b'b'].
type AsciiSlice []byte

// GoString implements fmt.GoStringer.
func (s AsciiSlice) GoString() string {
	buf := make([]byte, 0, len(s)*6+2)
	buf = append(buf, '[')
	for i, b := range s {
		if i > 0 {
			buf = append(buf, ',', ' ')
		}
		buf = append(buf, "b'"...)
		buf = append(buf, b)
		buf = append(buf, '\'')
	}
	buf = append(buf, ']')
	return string(buf)
}

func (s AsciiSlice) String() string {
	return s.GoString()
}

// ListDelimiter identifies a bracket pair used to open and close a List node.
type ListDelimiter int

const (
	Paren ListDelimiter = iota
	Brace
	Bracket
	// Angle is reserved: the grammar defines it but the lexer never emits
	// it (see Open Question #2 in SPEC_FULL.md). Code that switches on
	// ListDelimiter still covers it so a future lexer change needs no
	// parser change.
	Angle
)

func (d ListDelimiter) GoString() string {
	switch d {
	case Paren:
		return "Paren"
	case Brace:
		return "Brace"
	case Bracket:
		return "Bracket"
	case Angle:
		return "Angle"
	default:
		return fmt.Sprintf("ListDelimiter(%d)", int(d))
	}
}

func (d ListDelimiter) String() string {
	return d.GoString()
}

// Decimal is a fixed-point number in the form (whole part, fractional part,
// scale), where scale counts the digits making up the fractional part
// (including leading zeros).
type Decimal struct {
	Whole      uint64
	Fractional uint64
	Scale      uint8
}

// Float64 converts d to whole + fractional/10^scale.
func (d Decimal) Float64() float64 {
	scale := 1.0
	for i := uint8(0); i < d.Scale; i++ {
		scale *= 10
	}
	return float64(d.Whole) + float64(d.Fractional)/scale
}

func (d Decimal) GoString() string {
	return fmt.Sprintf("Decimal(%d, %d, %d)", d.Whole, d.Fractional, d.Scale)
}

// TokenKind identifies which variant of Token is populated.
type TokenKind int

const (
	KindText TokenKind = iota
	KindCharacter
	KindInteger
	KindDecimal
	KindBoolean
	KindLeft
	KindRight
	KindSymbol
	KindExtendedSymbol
	KindIdent
	KindNewline
)

// Token is a tagged union over every lexeme this front-end produces. Only
// the fields relevant to Kind are meaningful; this mirrors the teacher's
// (pkg/yang) single concrete token type carrying a Text string for every
// code, generalized here to a small closed set of payload fields since this
// format's lexemes are typed rather than uniformly textual.
type Token struct {
	Kind TokenKind

	Text      string // KindText, KindIdent: borrowed-or-owned string payload
	Character rune   // KindCharacter
	Integer   uint64 // KindInteger
	Decimal   Decimal
	Boolean   bool
	Delimiter ListDelimiter      // KindLeft, KindRight
	Symbol    Ascii              // KindSymbol
	Extended  AsciiSlice         // KindExtendedSymbol
	Borrowed  bool               // true if Text/Extended reference the source rather than owning a copy
}

func (t Token) GoString() string {
	switch t.Kind {
	case KindText:
		return fmt.Sprintf("Text(%q)", t.Text)
	case KindCharacter:
		return fmt.Sprintf("Character(%q)", t.Character)
	case KindInteger:
		return fmt.Sprintf("Integer(%d)", t.Integer)
	case KindDecimal:
		return t.Decimal.GoString()
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", t.Boolean)
	case KindLeft:
		return fmt.Sprintf("Left(%s)", t.Delimiter.GoString())
	case KindRight:
		return fmt.Sprintf("Right(%s)", t.Delimiter.GoString())
	case KindSymbol:
		return fmt.Sprintf("Symbol(%s)", t.Symbol.GoString())
	case KindExtendedSymbol:
		return fmt.Sprintf("ExtendedSymbol(%s)", t.Extended.GoString())
	case KindIdent:
		return fmt.Sprintf("Ident(%q)", t.Text)
	case KindNewline:
		return "Newline"
	default:
		return fmt.Sprintf("Token(kind=%d)", int(t.Kind))
	}
}

func (t Token) String() string {
	return t.GoString()
}

// Text/ident/symbol constructors below make call sites read the way the
// spec's token grammar reads, rather than spelling out the struct literal.

func TextToken(s string, borrowed bool) Token {
	return Token{Kind: KindText, Text: s, Borrowed: borrowed}
}

func IdentToken(s string, borrowed bool) Token {
	return Token{Kind: KindIdent, Text: s, Borrowed: borrowed}
}

func CharacterToken(r rune) Token {
	return Token{Kind: KindCharacter, Character: r}
}

func IntegerToken(v uint64) Token {
	return Token{Kind: KindInteger, Integer: v}
}

func DecimalToken(whole, fractional uint64, scale uint8) Token {
	return Token{Kind: KindDecimal, Decimal: Decimal{whole, fractional, scale}}
}

func BooleanToken(v bool) Token {
	return Token{Kind: KindBoolean, Boolean: v}
}

func LeftToken(d ListDelimiter) Token {
	return Token{Kind: KindLeft, Delimiter: d}
}

func RightToken(d ListDelimiter) Token {
	return Token{Kind: KindRight, Delimiter: d}
}

func SymbolToken(b byte) Token {
	return Token{Kind: KindSymbol, Symbol: Ascii(b)}
}

func ExtendedSymbolToken(bytes []byte) Token {
	return Token{Kind: KindExtendedSymbol, Extended: AsciiSlice(bytes)}
}

func NewlineToken() Token {
	return Token{Kind: KindNewline}
}
