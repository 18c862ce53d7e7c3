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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/caseywolf/verse"
)

func lexAll(t *testing.T, source string) []Fragment {
	t.Helper()
	l := New([]byte(source), DefaultSymbolTable())
	var frags []Fragment
	for {
		frag, more := l.Next()
		frags = append(frags, frag)
		if !more {
			break
		}
	}
	return frags
}

func loc(line, col uint32) *verse.Location {
	return &verse.Location{Line: line, Column: col}
}

func TestFlatTextAndInteger(t *testing.T) {
	frags := lexAll(t, `"hello" 42`+"\n")
	require.Len(t, frags, 3)

	require.NoError(t, frags[0].Err)
	require.Equal(t, verse.TextToken("hello", true), frags[0].Token)
	require.Equal(t, loc(1, 1), frags[0].Metadata.Start)
	require.Equal(t, loc(1, 7), frags[0].Metadata.End)

	require.NoError(t, frags[1].Err)
	require.Equal(t, verse.IntegerToken(42), frags[1].Token)
	require.Equal(t, loc(1, 9), frags[1].Metadata.Start)
	require.Equal(t, loc(1, 10), frags[1].Metadata.End)

	require.NoError(t, frags[2].Err)
	require.Equal(t, verse.NewlineToken(), frags[2].Token)
	require.Equal(t, loc(1, 11), frags[2].Metadata.Start)
	require.Equal(t, loc(2, 0), frags[2].Metadata.End)
}

func TestDecimalAndExtendedSymbol(t *testing.T) {
	frags := lexAll(t, "1_234.56 ::\n")
	require.Len(t, frags, 3)

	require.Equal(t, verse.DecimalToken(1234, 56, 2), frags[0].Token)
	require.Equal(t, loc(1, 1), frags[0].Metadata.Start)
	require.Equal(t, loc(1, 8), frags[0].Metadata.End)

	require.Equal(t, verse.ExtendedSymbolToken([]byte("::")), frags[1].Token)
	require.Equal(t, loc(1, 10), frags[1].Metadata.Start)
	require.Equal(t, loc(1, 11), frags[1].Metadata.End)

	require.Equal(t, verse.NewlineToken(), frags[2].Token)
}

func TestCommaNeverMerges(t *testing.T) {
	frags := lexAll(t, ":,:\n")
	require.Equal(t, verse.SymbolToken(':'), frags[0].Token)
	require.Equal(t, verse.SymbolToken(','), frags[1].Token)
	require.Equal(t, verse.SymbolToken(':'), frags[2].Token)
	require.Equal(t, verse.NewlineToken(), frags[3].Token)
}

func TestDashFollowedByDigitIsTwoTokens(t *testing.T) {
	frags := lexAll(t, "-345\n")
	require.Equal(t, verse.SymbolToken('-'), frags[0].Token)
	require.Equal(t, verse.IntegerToken(345), frags[1].Token)
}

func TestDashRunFormsExtendedSymbol(t *testing.T) {
	frags := lexAll(t, "--\n")
	require.Equal(t, verse.ExtendedSymbolToken([]byte("--")), frags[0].Token)
}

func TestBooleans(t *testing.T) {
	frags := lexAll(t, "true false maybe\n")
	require.Equal(t, verse.BooleanToken(true), frags[0].Token)
	require.Equal(t, verse.BooleanToken(false), frags[1].Token)
	require.Equal(t, verse.IdentToken("maybe", true), frags[2].Token)
}

func TestLeadingDotDecimal(t *testing.T) {
	frags := lexAll(t, ".5\n")
	require.Equal(t, verse.DecimalToken(0, 5, 1), frags[0].Token)
}

func TestDotNotFollowedByDigitIsSymbol(t *testing.T) {
	frags := lexAll(t, ".x\n")
	require.Equal(t, verse.SymbolToken('.'), frags[0].Token)
	require.Equal(t, verse.IdentToken("x", true), frags[1].Token)
}

func TestBrackets(t *testing.T) {
	frags := lexAll(t, "(){}[]\n")
	want := []verse.Token{
		verse.LeftToken(verse.Paren), verse.RightToken(verse.Paren),
		verse.LeftToken(verse.Brace), verse.RightToken(verse.Brace),
		verse.LeftToken(verse.Bracket), verse.RightToken(verse.Bracket),
		verse.NewlineToken(),
	}
	got := make([]verse.Token, len(frags))
	for i, f := range frags {
		got[i] = f.Token
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTextEscapes(t *testing.T) {
	frags := lexAll(t, `"a\nb\tc\"d\\e\x41B\u{43}"`+"\n")
	require.NoError(t, frags[0].Err)
	require.Equal(t, verse.TextToken("a\nb\tc\"d\\eABC", false), frags[0].Token)
}

func TestCharacterLiteral(t *testing.T) {
	frags := lexAll(t, "'x'\n")
	require.Equal(t, verse.CharacterToken('x'), frags[0].Token)
}

func TestEmptyCharacterLiteralError(t *testing.T) {
	frags := lexAll(t, "''\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, "empty character literal at line 1, column 2", frags[0].Err.Error())
}

func TestTwoCharCharacterLiteralError(t *testing.T) {
	frags := lexAll(t, "'ab'\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, "unexpected character 'b' at line 1, column 3", frags[0].Err.Error())
}

func TestUnterminatedTextLiteral(t *testing.T) {
	frags := lexAll(t, "\"abc\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, "unterminated literal at line 1, column 1", frags[0].Err.Error())
}

func TestUnknownEscape(t *testing.T) {
	frags := lexAll(t, `"\q"`+"\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, `unknown escape sequence "q" at line 1, column 3`, frags[0].Err.Error())
}

func TestInvalidCodepointOutOfRange(t *testing.T) {
	frags := lexAll(t, `"\u{110000}"`+"\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, `invalid codepoint "110000" (codepoint out of range) at line 1, column 11`, frags[0].Err.Error())
}

func TestHexEscapeUnparsableReportsLastDigit(t *testing.T) {
	frags := lexAll(t, `"hel\xfglo"`+"\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, `invalid codepoint "fg" (invalid digit found in string) at line 1, column 8`, frags[0].Err.Error())
}

func TestVariableUnicodeEscapeAccumulatesFullRun(t *testing.T) {
	frags := lexAll(t, `"hel\u{ffffffff}lo"`+"\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, `invalid codepoint "ffffffff" (codepoint out of range) at line 1, column 16`, frags[0].Err.Error())
}

func TestUnterminatedUnicodeEscapeIsUnknownEscape(t *testing.T) {
	frags := lexAll(t, `"hel\u`+"\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, `unknown escape sequence "\n" at line 1, column 7`, frags[0].Err.Error())
}

func TestIntegerOverflowReportsTerminatorColumn(t *testing.T) {
	frags := lexAll(t, "1234567890123456789012345678901234567890:\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, "unparsable integer 1234567890123456789012345678901234567890 (number too large to fit in target type) at line 1, column 41", frags[0].Err.Error())
}

func TestIntegerInvalidDigitReportsTerminatorColumn(t *testing.T) {
	frags := lexAll(t, "1k1:\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, "unparsable integer 1k1 (invalid digit found in string) at line 1, column 4", frags[0].Err.Error())
}

func TestUnexpectedBackslashOutsideLiteral(t *testing.T) {
	frags := lexAll(t, "\\\n")
	require.Error(t, frags[0].Err)
	require.Equal(t, "unexpected character '\\\\' at line 1, column 1", frags[0].Err.Error())
}

func TestIntegerOverflow(t *testing.T) {
	frags := lexAll(t, "99999999999999999999999999999999999999999\n")
	require.Error(t, frags[0].Err)
	require.Contains(t, frags[0].Err.Error(), "number too large to fit in target type")
}

func TestIntegerInvalidEmbeddedByte(t *testing.T) {
	frags := lexAll(t, "123\xC2\xB5 \n")
	require.Error(t, frags[0].Err)
	require.Contains(t, frags[0].Err.Error(), "invalid digit found in string")
}

func TestSourceWithoutTrailingNewlineGetsOne(t *testing.T) {
	frags := lexAll(t, `"x"`)
	require.Equal(t, verse.NewlineToken(), frags[1].Token)
}
