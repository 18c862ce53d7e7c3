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

package parser

import (
	"fmt"

	"github.com/caseywolf/verse"
)

// ErrorKind identifies the taxonomy of parser failure. Parsing stops at the
// innermost frame on the first error; there is no recovery or
// resynchronization.
type ErrorKind int

const (
	KindLexer ErrorKind = iota
	KindUnterminatedList
	KindUnterminatedRelation
	KindUnterminatedPhrase
	KindUnexpectedToken
	KindEmptyVerse
	KindEmptyRelationSegment
)

// Error is the concrete error type every parser failure site returns.
type Error struct {
	Kind  ErrorKind
	Token verse.Token // populated for KindUnexpectedToken
	err   error       // wrapped lexer error for KindLexer
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindLexer:
		return e.err.Error()
	case KindUnterminatedList:
		return "unterminated list"
	case KindUnterminatedRelation:
		return "unterminated relation"
	case KindUnterminatedPhrase:
		return "unterminated phrase"
	case KindUnexpectedToken:
		return fmt.Sprintf("unexpected token %#v", e.Token)
	case KindEmptyVerse:
		return "empty verse"
	case KindEmptyRelationSegment:
		return "empty relation segment"
	default:
		return fmt.Sprintf("parser error (kind=%d)", int(e.Kind))
	}
}

// Unwrap exposes the wrapped lexer error so callers can use errors.As against
// the underlying *lexer.Error, matching spec.md's "Lexer(Box<LexerError>)"
// variant.
func (e *Error) Unwrap() error {
	return e.err
}

func wrapLexerError(err error) *Error {
	return &Error{Kind: KindLexer, err: err}
}

func newUnterminatedList() *Error {
	return &Error{Kind: KindUnterminatedList}
}

func newUnterminatedRelation() *Error {
	return &Error{Kind: KindUnterminatedRelation}
}

func newUnterminatedPhrase() *Error {
	return &Error{Kind: KindUnterminatedPhrase}
}

func newUnexpectedToken(tok verse.Token) *Error {
	return &Error{Kind: KindUnexpectedToken, Token: tok}
}

func newEmptyVerse() *Error {
	return &Error{Kind: KindEmptyVerse}
}

func newEmptyRelationSegment() *Error {
	return &Error{Kind: KindEmptyRelationSegment}
}
