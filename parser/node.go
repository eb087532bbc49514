package parser

import "github.com/mkantor/node-json5-parser/token"

// Node is a single element of the tree [ParseTree] builds. Rather than the
// six-struct tagged-interface shape a richer AST (like the teacher's
// cue/ast package) uses, Node is a single struct carrying a Kind tag plus
// the union of fields each kind needs -- the arena-of-nodes shape spec.md
// §9 calls for when a target language has no sum type, with Parent as a
// plain back-pointer since the tree here is a single owned, acyclic
// structure (unlike cue/ast's larger graph, which avoids parent pointers
// entirely).
//
// Offset/Length are bit-exact source spans: for Object/Array they include
// the delimiters; for Property they extend from the key's first character
// to the end of the value, or to the end of the key if no value was
// parsed.
type Node struct {
	Kind   token.NodeKind
	Offset int
	Length int

	// Parent is nil only for the root node.
	Parent *Node
	// Children holds: Property nodes for an Object; value nodes for an
	// Array; exactly [key] or [key, value] for a Property.
	Children []*Node

	// ColonOffset is set on Property nodes once the ':' separator has
	// been seen; it is -1 if no ':' followed the key. A property can
	// have a ColonOffset and still have no value child.
	ColonOffset int

	// Value holds the decoded value for String/Number/Boolean/Null
	// nodes. It is nil (and unused) for Object/Array/Property.
	Value any
}

// IsContainer reports whether n can have children of its own kind of
// significance (object or array).
func (n *Node) IsContainer() bool {
	return n.Kind == token.KindObject || n.Kind == token.KindArray
}

// PropertyKey returns the key name of a Property node's first child, or
// ("", false) if n is not a Property node or has no key child yet.
func (n *Node) PropertyKey() (string, bool) {
	if n.Kind != token.KindProperty || len(n.Children) == 0 {
		return "", false
	}
	k := n.Children[0]
	if k.Kind != token.KindString {
		return "", false
	}
	s, _ := k.Value.(string)
	return s, true
}

// PropertyValue returns a Property node's value child, or nil if the
// property has none (incomplete input).
func (n *Node) PropertyValue() *Node {
	if n.Kind != token.KindProperty || len(n.Children) < 2 {
		return nil
	}
	return n.Children[1]
}
