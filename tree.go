package verse

import (
	"fmt"
	"strings"
)

// NodeKind identifies which variant of Node is populated.
type NodeKind int

const (
	NodeRaw NodeKind = iota
	NodeList
	NodeRelation
)

// Node is the parser's tree unit: a leaf token, a bracketed list of verses,
// or a colon relation binding a head node to a tail phrase. Go has no sum
// type, so Node is a small struct with a Kind discriminant, the same
// approach the teacher takes with Statement-derived AST nodes in
// pkg/yang/ast.go, generalized here to three shapes instead of one.
type Node struct {
	Kind     NodeKind
	Metadata Metadata

	Token  Token   // NodeRaw
	Verses []Verse // NodeList
	Head   *Node   // NodeRelation
	Tail   Phrase  // NodeRelation
}

// RawNode wraps a single lexed token as a leaf.
func RawNode(tok Token, metadata Metadata) Node {
	return Node{Kind: NodeRaw, Token: tok, Metadata: metadata}
}

// ListNode wraps the verses found between a matching bracket pair.
func ListNode(verses []Verse, metadata Metadata) Node {
	return Node{Kind: NodeList, Verses: verses, Metadata: metadata}
}

// RelationNode binds head to tail via a colon.
func RelationNode(head Node, tail Phrase, metadata Metadata) Node {
	return Node{Kind: NodeRelation, Head: &head, Tail: tail, Metadata: metadata}
}

func (n Node) GoString() string {
	switch n.Kind {
	case NodeRaw:
		return fmt.Sprintf("Raw(%#v)", n.Token)
	case NodeList:
		parts := make([]string, len(n.Verses))
		for i, v := range n.Verses {
			parts[i] = v.GoString()
		}
		return fmt.Sprintf("List([%s])", strings.Join(parts, ", "))
	case NodeRelation:
		return fmt.Sprintf("Relation(%s, %s)", n.Head.GoString(), n.Tail.GoString())
	default:
		return fmt.Sprintf("Node(kind=%d)", int(n.Kind))
	}
}

func (n Node) String() string {
	return n.GoString()
}

// Phrase is a non-empty sequence of nodes on one logical source line.
type Phrase struct {
	Nodes    []Node
	Metadata Metadata
}

func (p Phrase) GoString() string {
	parts := make([]string, len(p.Nodes))
	for i, n := range p.Nodes {
		parts[i] = n.GoString()
	}
	return fmt.Sprintf("Phrase([%s])", strings.Join(parts, ", "))
}

// Verse is a sequence of phrases separated by newlines within one list
// segment, or at the top level.
type Verse []Phrase

func (v Verse) GoString() string {
	parts := make([]string, len(v))
	for i, p := range v {
		parts[i] = p.GoString()
	}
	return fmt.Sprintf("Verse([%s])", strings.Join(parts, ", "))
}
