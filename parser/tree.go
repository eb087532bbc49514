package parser

import "github.com/mkantor/node-json5-parser/token"

// ParseTree builds a typed Node tree from text via the same visitor events
// Parse consumes (spec.md §4.6). A property whose value never arrives
// (incomplete input) is still emitted, with only its key child and a
// Length equal to the key's. An empty document produces a synthesized
// root Node of kind array so ParseTree always returns a non-nil *Node.
func ParseTree(text string, errs *ErrorList, opts *Options) *Node {
	b := &treeBuilder{}
	v := &Visitor{
		OnObjectBegin: func(offset, length, line, char int) {
			n := &Node{Kind: token.KindObject, Offset: offset}
			b.attach(n)
			b.push(n)
		},
		OnObjectProperty: func(key string, offset, length, line, char int) {
			b.beginProperty(key, offset, length)
		},
		OnObjectEnd: func(offset, length, line, char int) {
			b.endContainer(offset, length)
		},
		OnArrayBegin: func(offset, length, line, char int) {
			n := &Node{Kind: token.KindArray, Offset: offset}
			b.attach(n)
			b.push(n)
		},
		OnArrayEnd: func(offset, length, line, char int) {
			b.endContainer(offset, length)
		},
		OnLiteralValue: func(value any, offset, length, line, char int) {
			n := &Node{Kind: literalKind(value), Offset: offset, Length: length, Value: value}
			b.attach(n)
			b.closeValue(n)
		},
		OnSeparator: func(c byte, offset, length, line, char int) {
			if c == ':' && b.pendingProperty != nil {
				b.pendingProperty.ColonOffset = offset
			}
		},
		OnError: func(code token.ErrorCode, offset, length int) {
			errs.add(&Error{Code: code, Offset: offset, Length: length})
		},
	}
	Visit(text, v, opts)

	if b.root == nil {
		return &Node{Kind: token.KindArray, Offset: 0, Length: 0}
	}
	return b.root
}

func literalKind(value any) token.NodeKind {
	switch value.(type) {
	case string:
		return token.KindString
	case bool:
		return token.KindBoolean
	case nil:
		return token.KindNull
	default:
		return token.KindNumber
	}
}

// treeBuilder mirrors materializer's push/assign/pop shape but assembles
// Nodes, and additionally tracks the one open property (if any) of the
// innermost container, since a property's value is attached one event
// after its key is known.
type treeBuilder struct {
	root            *Node
	stack           []*Node
	pendingProperty *Node
}

// attach links n as a child of whatever is currently open: the pending
// property's value slot if one is open, otherwise the innermost
// container's next child, otherwise the document root.
func (b *treeBuilder) attach(n *Node) {
	if b.pendingProperty != nil {
		n.Parent = b.pendingProperty
		b.pendingProperty.Children = append(b.pendingProperty.Children, n)
		b.pendingProperty = nil
		return
	}
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		n.Parent = top
		top.Children = append(top.Children, n)
		return
	}
	b.root = n
}

func (b *treeBuilder) push(n *Node) {
	b.stack = append(b.stack, n)
}

func (b *treeBuilder) beginProperty(key string, offset, length int) {
	keyNode := &Node{Kind: token.KindString, Offset: offset, Length: length, Value: key}
	prop := &Node{
		Kind:        token.KindProperty,
		Offset:      offset,
		Length:      length,
		ColonOffset: -1,
		Children:    []*Node{keyNode},
	}
	keyNode.Parent = prop

	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		prop.Parent = top
		top.Children = append(top.Children, prop)
	} else {
		b.root = prop
	}
	b.pendingProperty = prop
}

// closeValue extends an enclosing property's Length to cover n, now that
// n's own final extent is known (immediately for a literal; at the
// matching End event for a container).
func (b *treeBuilder) closeValue(n *Node) {
	if n.Parent != nil && n.Parent.Kind == token.KindProperty {
		prop := n.Parent
		end := n.Offset + n.Length
		if end-prop.Offset > prop.Length {
			prop.Length = end - prop.Offset
		}
	}
}

func (b *treeBuilder) endContainer(offset, length int) {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	n.Length = offset + length - n.Offset
	if b.pendingProperty != nil && b.pendingProperty.Parent == n {
		b.pendingProperty = nil
	}
	b.closeValue(n)
}
