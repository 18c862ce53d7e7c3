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

import (
	"strings"
	"testing"
)

// TestDumpMatchesDebugScenarios checks that Dump renders the canonical debug
// shapes spec.md §6/§8 quote in error messages and scenario fixtures.
func TestDumpMatchesDebugScenarios(t *testing.T) {
	cases := []struct {
		name string
		v    interface{}
		want string
	}{
		{"symbol", SymbolToken(','), "Symbol(Ascii(b','))"},
		{"right brace", RightToken(Brace), "Right(Brace)"},
		{"extended symbol", ExtendedSymbolToken([]byte("::")), "ExtendedSymbol([b':', b':'])"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Dump(tc.v)
			if !strings.Contains(got, tc.want) {
				t.Errorf("Dump(%v) = %q, want to contain %q", tc.v, got, tc.want)
			}
		})
	}
}
