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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caseywolf/verse"
)

// TestJSONShapedDocument exercises the generic grammar on a realistic
// nested-object/array document, the grounding fixture for spec.md §1's "JSON
// parsing demonstrated as a special case" line and §8 scenario 7. This is
// not a JSON parser: keys are plain Text tokens related by ':', objects and
// arrays are ordinary Brace/Bracket lists, and a negative number surfaces as
// two adjacent nodes (Raw(Symbol('-')), Raw(Integer n)), never a single
// signed literal.
func TestJSONShapedDocument(t *testing.T) {
	const source = `{
  "name": "Ada",
  "age": 36,
  "balance": -120,
  "tags": ["admin", "user"],
  "address": {"city": "NYC", "zip": 10001}
}
`
	v, err := parseString(t, source)
	require.NoError(t, err)
	require.Len(t, v, 1)
	require.Len(t, v[0].Nodes, 1)

	object := v[0].Nodes[0]
	require.Equal(t, verse.NodeList, object.Kind)
	require.Len(t, object.Verses, 5)

	pairs := make(map[string]verse.Node)
	for _, vs := range object.Verses {
		require.Len(t, vs, 1)
		require.Len(t, vs[0].Nodes, 1)
		rel := vs[0].Nodes[0]
		require.Equal(t, verse.NodeRelation, rel.Kind)
		require.Equal(t, verse.KindText, rel.Head.Token.Kind)
		pairs[rel.Head.Token.Text] = rel
	}
	require.Len(t, pairs, 5)

	name := pairs["name"]
	require.Len(t, name.Tail.Nodes, 1)
	require.Equal(t, verse.TextToken("Ada", true), name.Tail.Nodes[0].Token)

	age := pairs["age"]
	require.Len(t, age.Tail.Nodes, 1)
	require.Equal(t, verse.IntegerToken(36), age.Tail.Nodes[0].Token)

	balance := pairs["balance"]
	require.Len(t, balance.Tail.Nodes, 2)
	require.Equal(t, verse.SymbolToken('-'), balance.Tail.Nodes[0].Token)
	require.Equal(t, verse.IntegerToken(120), balance.Tail.Nodes[1].Token)

	tags := pairs["tags"]
	require.Len(t, tags.Tail.Nodes, 1)
	tagList := tags.Tail.Nodes[0]
	require.Equal(t, verse.NodeList, tagList.Kind)
	require.Len(t, tagList.Verses, 2)
	require.Equal(t, verse.TextToken("admin", true), tagList.Verses[0][0].Nodes[0].Token)
	require.Equal(t, verse.TextToken("user", true), tagList.Verses[1][0].Nodes[0].Token)

	address := pairs["address"]
	require.Len(t, address.Tail.Nodes, 1)
	addressObj := address.Tail.Nodes[0]
	require.Equal(t, verse.NodeList, addressObj.Kind)
	require.Len(t, addressObj.Verses, 2)

	inner := make(map[string]verse.Node)
	for _, vs := range addressObj.Verses {
		rel := vs[0].Nodes[0]
		inner[rel.Head.Token.Text] = rel
	}
	require.Equal(t, verse.TextToken("NYC", true), inner["city"].Tail.Nodes[0].Token)
	require.Equal(t, verse.IntegerToken(10001), inner["zip"].Tail.Nodes[0].Token)
}
