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
	"github.com/caseywolf/verse"
	"github.com/caseywolf/verse/lexer"
)

// Parse consumes src to EOF and returns the resulting Verse: the top-level
// sequence of phrases. src is typically a *lexer.Lexer; any pull source with
// a matching Next method works.
func Parse(src source) (verse.Verse, error) {
	stream := newFragmentStream(src)
	verses, _, err := parseLevel(stream, nil)
	if err != nil {
		return nil, err
	}
	if len(verses) == 0 {
		return verse.Verse{}, nil
	}
	return verses[0], nil
}

// phraseFrom wraps a non-empty node slice into a Phrase spanning its first
// node's start to its last node's end, per spec.md §3's Phrase invariant.
func phraseFrom(nodes []verse.Node) verse.Phrase {
	return verse.Phrase{
		Nodes: nodes,
		Metadata: verse.Metadata{
			Start: nodes[0].Metadata.Start,
			End:   nodes[len(nodes)-1].Metadata.End,
		},
	}
}

// parseLevel runs the recursive-descent algorithm of spec.md §4.5 at one
// nesting level. delim is nil at the top level (no enclosing list, so Right
// and Symbol(',') are always errors) or the opening delimiter of the
// enclosing list. It returns the verses collected (comma-separated groups of
// newline-separated phrases) and, when delim != nil, the location of the
// matching closing delimiter.
func parseLevel(stream *fragmentStream, delim *verse.ListDelimiter) (verses []verse.Verse, closeEnd verse.Location, err error) {
	var currentVerse []verse.Phrase
	var phrase []verse.Node

	for {
		frag, more := stream.next()
		if frag.Err != nil {
			return nil, verse.Location{}, wrapLexerError(frag.Err)
		}
		tok := frag.Token

		switch {
		case tok.Kind == verse.KindNewline:
			if len(phrase) > 0 {
				currentVerse = append(currentVerse, phraseFrom(phrase))
				phrase = nil
			}

		case tok.Kind == verse.KindLeft:
			d := tok.Delimiter
			innerVerses, innerCloseEnd, err := parseLevel(stream, &d)
			if err != nil {
				return nil, verse.Location{}, err
			}
			end := innerCloseEnd
			listMeta := verse.Metadata{Start: frag.Metadata.Start, End: &end}
			phrase = append(phrase, verse.ListNode(innerVerses, listMeta))

		case tok.Kind == verse.KindRight:
			if delim == nil || tok.Delimiter != *delim {
				return nil, verse.Location{}, newUnexpectedToken(tok)
			}
			if len(phrase) > 0 {
				currentVerse = append(currentVerse, phraseFrom(phrase))
				phrase = nil
			}
			if len(currentVerse) > 0 {
				verses = append(verses, verse.Verse(currentVerse))
			}
			return verses, *frag.Metadata.End, nil

		case tok.Kind == verse.KindSymbol && tok.Symbol == verse.Ascii(':'):
			if len(phrase) == 0 {
				return nil, verse.Location{}, newEmptyRelationSegment()
			}
			head := phrase[len(phrase)-1]
			phrase = phrase[:len(phrase)-1]
			relNode, err := parseRelation(stream, head)
			if err != nil {
				return nil, verse.Location{}, err
			}
			phrase = append(phrase, relNode)

		case tok.Kind == verse.KindSymbol && tok.Symbol == verse.Ascii(','):
			if delim == nil {
				return nil, verse.Location{}, newUnexpectedToken(tok)
			}
			if len(phrase) > 0 {
				currentVerse = append(currentVerse, phraseFrom(phrase))
				phrase = nil
			}
			if len(currentVerse) == 0 {
				return nil, verse.Location{}, newEmptyVerse()
			}
			verses = append(verses, verse.Verse(currentVerse))
			currentVerse = nil

		default:
			phrase = append(phrase, verse.RawNode(tok, frag.Metadata))
		}

		if !more {
			break
		}
	}

	if delim != nil {
		return nil, verse.Location{}, newUnterminatedList()
	}
	if len(phrase) > 0 {
		// Unreachable for well-formed input: the source reader always
		// synthesizes a trailing newline, so the top level always sees a
		// final Newline before the stream is exhausted.
		return nil, verse.Location{}, newUnterminatedPhrase()
	}
	if len(currentVerse) > 0 {
		verses = append(verses, verse.Verse(currentVerse))
	}
	return verses, verse.Location{}, nil
}

// parseRelation collects the tail of a colon relation until a structural
// delimiter (Right, comma, or newline) ends it, per spec.md §4.5's
// parse_relation table. A second colon recurses, building the left-
// associative nesting described in §9: the just-built Relation becomes the
// new head and a fresh tail accumulates after it.
func parseRelation(stream *fragmentStream, head verse.Node) (verse.Node, error) {
	var tail []verse.Node

	for {
		frag, more := stream.next()
		if frag.Err != nil {
			return verse.Node{}, wrapLexerError(frag.Err)
		}
		tok := frag.Token

		switch {
		case tok.Kind == verse.KindLeft:
			d := tok.Delimiter
			innerVerses, innerCloseEnd, err := parseLevel(stream, &d)
			if err != nil {
				return verse.Node{}, err
			}
			end := innerCloseEnd
			listMeta := verse.Metadata{Start: frag.Metadata.Start, End: &end}
			tail = append(tail, verse.ListNode(innerVerses, listMeta))

		case tok.Kind == verse.KindRight, tok.Kind == verse.KindNewline:
			return finishRelation(stream, frag, head, tail)

		case tok.Kind == verse.KindSymbol && tok.Symbol == verse.Ascii(','):
			return finishRelation(stream, frag, head, tail)

		case tok.Kind == verse.KindSymbol && tok.Symbol == verse.Ascii(':'):
			if len(tail) == 0 {
				return verse.Node{}, newEmptyRelationSegment()
			}
			innerPhrase := phraseFrom(tail)
			inner := verse.RelationNode(head, innerPhrase, verse.Metadata{
				Start: head.Metadata.Start,
				End:   innerPhrase.Metadata.End,
			})
			return parseRelation(stream, inner)

		default:
			tail = append(tail, verse.RawNode(tok, frag.Metadata))
		}

		if !more {
			return verse.Node{}, newUnterminatedRelation()
		}
	}
}

// finishRelation handles the Right/comma/Newline terminal case: a trailing
// colon with nothing collected is EmptyRelationSegment (spec.md §4.5's "a
// trailing : at end of line" scenario); otherwise the terminal token is
// stashed back onto the stream unconsumed and the Relation node returned.
func finishRelation(stream *fragmentStream, frag lexer.Fragment, head verse.Node, tail []verse.Node) (verse.Node, error) {
	if len(tail) == 0 {
		return verse.Node{}, newEmptyRelationSegment()
	}
	stream.stash(frag)
	tailPhrase := phraseFrom(tail)
	meta := verse.Metadata{Start: head.Metadata.Start, End: tailPhrase.Metadata.End}
	return verse.RelationNode(head, tailPhrase, meta), nil
}
