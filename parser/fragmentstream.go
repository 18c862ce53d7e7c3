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

// Package parser builds a Verse tree from a stream of lexer fragments via a
// hand-written recursive descent, the same shape as the teacher's
// pkg/yang/parse.go but generalized from YANG's fixed statement grammar to
// nested lists and colon relations.
package parser

import "github.com/caseywolf/verse/lexer"

// source is anything that can hand the parser fragments one at a time,
// typically a *lexer.Lexer.
type source interface {
	Next() (lexer.Fragment, bool)
}

// fragmentStream wraps a fragment source with exactly one slot of push-back,
// so the parser can peek a delimiter inside parseRelation and hand it back
// to the caller unconsumed.
type fragmentStream struct {
	src     source
	stashed *lexer.Fragment
	done    bool
}

func newFragmentStream(src source) *fragmentStream {
	return &fragmentStream{src: src}
}

// next returns the stashed fragment if one is waiting, else pulls from the
// underlying source. The second return is false once the source is
// exhausted (mirroring lexer.Lexer.Next's "has more" signal), including for a
// stashed fragment that was the source's last.
func (s *fragmentStream) next() (lexer.Fragment, bool) {
	if s.stashed != nil {
		frag := *s.stashed
		s.stashed = nil
		return frag, !s.done
	}
	if s.done {
		return lexer.Fragment{}, false
	}
	frag, more := s.src.Next()
	if !more {
		s.done = true
	}
	return frag, more
}

// stash returns frag to the stream so the next call to next() yields it
// again. Stashing a second fragment before an intervening next() is a
// programmer bug.
func (s *fragmentStream) stash(frag lexer.Fragment) {
	if s.stashed != nil {
		panic("fragmentstream: stash slot already occupied")
	}
	s.stashed = &frag
}
