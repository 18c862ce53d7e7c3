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
	"bytes"
	"fmt"
	"sort"
)

// symbolByteTable marks each of the 22 ASCII bytes that may participate in a
// (possibly extended) symbol: ! # $ % & * + , - . / : ; < = > ? @ ^ ` | ~
var symbolByteTable = [256]bool{}

func init() {
	for _, b := range []byte("!#$%&*+,-./:;<=>?@^`|~") {
		symbolByteTable[b] = true
	}
}

// IsSymbolByte reports whether b is one of the fixed symbol-set bytes.
func IsSymbolByte(b byte) bool {
	return symbolByteTable[b]
}

// SymbolString is a borrowed or owned run of ASCII symbol bytes at least two
// bytes long, the unit the SymbolTable is built from.
type SymbolString []byte

// NewSymbolString validates str as a symbol string: every byte must be a
// symbol-set byte and it must be at least 2 bytes long.
func NewSymbolString(str string) (SymbolString, error) {
	if len(str) < 2 {
		return nil, fmt.Errorf("symbol string should be at least 2 bytes long")
	}
	for i := 0; i < len(str); i++ {
		if !IsSymbolByte(str[i]) {
			return nil, fmt.Errorf("invalid symbol %#x at offset %d", str[i], i)
		}
	}
	return SymbolString(str), nil
}

// SymbolTable is a sorted set of extended symbol strings, consulted by the
// lexer to greedily form multi-byte symbols such as "::" or "--".
type SymbolTable struct {
	symbols []SymbolString
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{}
}

// Contains reports whether symbol is already present.
func (t *SymbolTable) Contains(symbol SymbolString) bool {
	i := sort.Search(len(t.symbols), func(i int) bool {
		return bytes.Compare(t.symbols[i], symbol) >= 0
	})
	return i < len(t.symbols) && bytes.Equal(t.symbols[i], symbol)
}

// Add inserts symbol into the table. A length-2 symbol is always accepted
// (absent a duplicate); a longer symbol requires its length-1 prefix to
// already be present, so the table can never contain an unreachable longest
// match.
func (t *SymbolTable) Add(symbol SymbolString) error {
	prefixExists := len(symbol) == 2
	if !prefixExists {
		prefixExists = t.Contains(symbol[:len(symbol)-1])
	}
	if !prefixExists {
		return fmt.Errorf("missing prefix for %s", formatSymbolString(symbol))
	}

	i := sort.Search(len(t.symbols), func(i int) bool {
		return bytes.Compare(t.symbols[i], symbol) >= 0
	})
	if i < len(t.symbols) && bytes.Equal(t.symbols[i], symbol) {
		return fmt.Errorf("duplicate %s", formatSymbolString(symbol))
	}
	t.symbols = append(t.symbols, nil)
	copy(t.symbols[i+1:], t.symbols[i:])
	t.symbols[i] = symbol
	return nil
}

func formatSymbolString(s SymbolString) string {
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

// DefaultSymbolTable returns a table seeded with "::" "--" "-=" "++" "+=",
// the same defaults the original format ships with. Comma is deliberately
// absent: it always lexes as a standalone Symbol, never as part of an
// extended run.
func DefaultSymbolTable() *SymbolTable {
	t := NewSymbolTable()
	for _, s := range []string{"::", "--", "-=", "++", "+="} {
		sym, err := NewSymbolString(s)
		if err != nil {
			panic(err)
		}
		if err := t.Add(sym); err != nil {
			panic(err)
		}
	}
	return t
}

// Lookup performs a greedy longest-prefix match of run (a maximal run of
// symbol-set bytes starting at run[0]) against the table, starting at
// candidate lengths of 2 or more. It returns the length of the longest
// matching prefix, or 0 if no multi-byte match exists.
func (t *SymbolTable) Lookup(run []byte) int {
	if len(run) < 2 || !t.Contains(run[:2]) {
		return 0
	}
	best := 2
	// Every entry of length n > 2 requires its length n-1 prefix to also
	// be an entry (enforced by Add), so the first length at which Contains
	// fails ends the search: no longer entry sharing this prefix can exist.
	for n := 3; n <= len(run) && t.Contains(run[:n]); n++ {
		best = n
	}
	return best
}
