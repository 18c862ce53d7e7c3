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

import "github.com/alecthomas/repr"

// Dump renders a Verse (or any tree fragment) as a readable, Go-syntax-like
// string, using the same debug format tests assert against (Symbol(Ascii(b','))
// etc.) via Ascii/AsciiSlice/Token's GoString methods. It exists purely as a
// debugging aid for callers comparing mismatched trees in test failures, the
// way lukeod-gosmi leans on alecthomas/repr for its own mibdump CLI output.
func Dump(v interface{}) string {
	return repr.String(v)
}
