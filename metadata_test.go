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
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestMetadataStringCanonicalForms(t *testing.T) {
	start := Location{Line: 1, Column: 3}
	end := Location{Line: 1, Column: 7}
	sameCol := Location{Line: 1, Column: 3}
	endOtherLine := Location{Line: 2, Column: 1}

	cases := []struct {
		name string
		meta Metadata
		want string
	}{
		{"unspecified", Unspecified(), "unspecified location"},
		{"start only", Metadata{Start: &start}, "region after line 1, column 3"},
		{"end only", Metadata{End: &end}, "region before line 1, column 7"},
		{"same point", Metadata{Start: &start, End: &sameCol}, "line 1, column 3"},
		{"same line", Metadata{Start: &start, End: &end}, "line 1, columns 3 to 7"},
		{"different lines", Metadata{Start: &start, End: &endOtherLine}, "line 1, column 3 to line 2, column 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := pretty.Compare(tc.meta.String(), tc.want); diff != "" {
				t.Errorf("Metadata.String() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestBeforeStartSentinel(t *testing.T) {
	want := Location{Line: 1, Column: 0}
	if diff := pretty.Compare(BeforeStart(), want); diff != "" {
		t.Errorf("BeforeStart() mismatch (-got +want):\n%s", diff)
	}
}
