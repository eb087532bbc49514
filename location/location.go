// Copyright 2018 The CUE Authors
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

// Package location implements the location and path queries of spec.md
// §4.7: GetLocation re-scans the source independently of any built tree;
// FindNodeAtLocation, FindNodeAtOffset, GetNodePath and GetNodeValue all
// walk an already-built parser.Node tree.
package location

import (
	"github.com/mkantor/node-json5-parser/parser"
	"github.com/mkantor/node-json5-parser/scanner"
	"github.com/mkantor/node-json5-parser/token"
)

// PathSegment is one step in a path: a property name (string) or an array
// index (non-negative int). Use IsIndex, then String or Int, to inspect it.
type PathSegment struct {
	name    string
	index   int
	isIndex bool
}

// Name constructs a property-name segment.
func Name(name string) PathSegment { return PathSegment{name: name} }

// Index constructs an array-index segment.
func Index(i int) PathSegment { return PathSegment{index: i, isIndex: true} }

// IsIndex reports whether the segment is an array index rather than a
// property name.
func (s PathSegment) IsIndex() bool { return s.isIndex }

// String returns the property name; meaningless if IsIndex() is true.
func (s PathSegment) String() string { return s.name }

// Int returns the array index; meaningless if IsIndex() is false.
func (s PathSegment) Int() int { return s.index }

func (s PathSegment) equalsPattern(pat any) bool {
	switch p := pat.(type) {
	case string:
		return !s.isIndex && s.name == p
	case int:
		return s.isIndex && s.index == p
	default:
		return false
	}
}

// Location is the semantic position of a cursor offset within a document,
// per spec.md §4.7.
type Location struct {
	Path            []PathSegment
	PreviousNode    *parser.Node
	IsAtPropertyKey bool
}

// Matches reports whether l.Path matches pattern, where the string "*"
// matches exactly one segment of any kind and "**" matches zero or more
// contiguous segments; any other element must equal the segment at that
// position (a string pattern element against a name segment, or an int
// against an index segment).
func (l *Location) Matches(pattern []any) bool {
	return matchPath(l.Path, pattern)
}

func matchPath(path []PathSegment, pattern []any) bool {
	if len(pattern) == 0 {
		return len(path) == 0
	}
	head := pattern[0]
	if head == "**" {
		for i := 0; i <= len(path); i++ {
			if matchPath(path[i:], pattern[1:]) {
				return true
			}
		}
		return false
	}
	if len(path) == 0 {
		return false
	}
	if head == "*" || path[0].equalsPattern(head) {
		return matchPath(path[1:], pattern[1:])
	}
	return false
}

// scanFrame tracks one open container while GetLocation scans from the
// start of text up to offset.
type scanFrame struct {
	isArray bool
	index   int

	havePendingKey          bool
	pendingKey              string
	pendingKeyOffset, pendingKeyLength int

	// previous is the most recently completed sibling construct in this
	// frame: a Property node for an object frame, or a value node for an
	// array frame.
	previous *parser.Node
}

// GetLocation returns the semantic location of offset within text,
// computed by an independent scan of text rather than by consulting any
// previously built tree (spec.md §4.7).
func GetLocation(text string, offset int) *Location {
	sc := scanner.NewScanner(text, true)

	var path []PathSegment
	var stack []*scanFrame
	isAtPropertyKey := false
	var rootPrevious *parser.Node

	currentPrevious := func() *parser.Node {
		if len(stack) == 0 {
			return rootPrevious
		}
		return stack[len(stack)-1].previous
	}
	setPrevious := func(n *parser.Node) {
		if len(stack) == 0 {
			rootPrevious = n
			return
		}
		stack[len(stack)-1].previous = n
	}

	for {
		k := sc.Scan()
		if k == token.EOF {
			break
		}
		tokOffset, tokLen := sc.TokenOffset(), sc.TokenLength()
		if tokOffset >= offset {
			break
		}
		straddles := tokOffset <= offset && offset < tokOffset+tokLen
		complete := tokOffset+tokLen <= offset

		switch k {
		case token.OpenBrace:
			nf := &scanFrame{}
			if len(stack) > 0 {
				outer := stack[len(stack)-1]
				if !outer.isArray && outer.havePendingKey {
					nf.previous = wrapPendingProperty(outer, tokOffset)
				} else {
					nf.previous = outer.previous
				}
			}
			stack = append(stack, nf)
			isAtPropertyKey = true
		case token.OpenBracket:
			nf := &scanFrame{isArray: true}
			if len(stack) > 0 {
				outer := stack[len(stack)-1]
				if !outer.isArray && outer.havePendingKey {
					nf.previous = wrapPendingProperty(outer, tokOffset)
				} else {
					nf.previous = outer.previous
				}
			}
			stack = append(stack, nf)
			path = append(path, Index(0))
			isAtPropertyKey = false
		case token.CloseBrace, token.CloseBracket:
			if len(stack) == 0 {
				break
			}
			closed := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if closed.isArray {
				path = path[:len(path)-1]
			}
			isAtPropertyKey = false
			n := &parser.Node{Kind: containerKind(k), Offset: tokOffset, Length: tokLen}
			completeValue(stack, n)
		case token.Comma:
			if len(stack) == 0 {
				break
			}
			f := stack[len(stack)-1]
			if f.isArray {
				f.index++
				path[len(path)-1] = Index(f.index)
			} else {
				if len(path) > 0 {
					path = path[:len(path)-1]
				}
				isAtPropertyKey = true
				f.havePendingKey = false
			}
		case token.Colon:
			if len(stack) > 0 {
				f := stack[len(stack)-1]
				if f.havePendingKey {
					path = append(path, Name(f.pendingKey))
				}
			}
			isAtPropertyKey = false
		case token.String, token.Identifier:
			if isAtPropertyKey && len(stack) > 0 && !stack[len(stack)-1].isArray {
				if !straddles {
					f := stack[len(stack)-1]
					f.havePendingKey = true
					f.pendingKey = sc.TokenValue()
					f.pendingKeyOffset, f.pendingKeyLength = tokOffset, tokLen
				}
			} else if complete {
				setPrevious(&parser.Node{Kind: token.KindString, Offset: tokOffset, Length: tokLen, Value: sc.TokenValue()})
			}
		default:
			if complete && isLiteralKind(k) {
				lit := &parser.Node{Kind: literalNodeKind(k), Offset: tokOffset, Length: tokLen, Value: decodeLiteralToken(k, sc.TokenValue())}
				completeValueDirect(stack, setPrevious, lit)
			}
		}

		if straddles {
			break
		}
	}

	return &Location{
		Path:            path,
		PreviousNode:    currentPrevious(),
		IsAtPropertyKey: isAtPropertyKey,
	}
}

func containerKind(k token.Kind) token.NodeKind {
	if k == token.CloseBrace {
		return token.KindObject
	}
	return token.KindArray
}

func isLiteralKind(k token.Kind) bool {
	switch k {
	case token.Number, token.True, token.False, token.Null, token.Infinity, token.NaN:
		return true
	default:
		return false
	}
}

func literalNodeKind(k token.Kind) token.NodeKind {
	switch k {
	case token.True, token.False:
		return token.KindBoolean
	case token.Null:
		return token.KindNull
	default:
		return token.KindNumber
	}
}

func decodeLiteralToken(k token.Kind, raw string) any {
	switch k {
	case token.True:
		return true
	case token.False:
		return false
	case token.Null:
		return nil
	case token.Infinity:
		return scanner.DecodeNumber("Infinity")
	case token.NaN:
		return scanner.DecodeNumber("NaN")
	default:
		return scanner.DecodeNumber(raw)
	}
}

// completeValue records a just-closed container as the completed sibling
// of whichever frame it belongs to -- wraps it in a Property node first if
// the enclosing frame had a pending key.
func completeValue(stack []*scanFrame, n *parser.Node) {
	if len(stack) == 0 {
		return
	}
	f := stack[len(stack)-1]
	if f.isArray {
		f.previous = n
		return
	}
	if f.havePendingKey {
		f.previous = wrapProperty(f, n)
		f.havePendingKey = false
	}
}

func completeValueDirect(stack []*scanFrame, setPrevious func(*parser.Node), n *parser.Node) {
	if len(stack) == 0 {
		setPrevious(n)
		return
	}
	f := stack[len(stack)-1]
	if f.isArray {
		f.previous = n
		return
	}
	if f.havePendingKey {
		f.previous = wrapProperty(f, n)
		f.havePendingKey = false
	}
}

// wrapPendingProperty builds a property node for a key whose value hasn't
// closed yet (we're still scanning inside it) -- used to seed previousNode
// when the cursor sits in the value's own not-yet-resolved key slot, with
// no completed sibling of its own to report instead.
func wrapPendingProperty(f *scanFrame, valueStartOffset int) *parser.Node {
	key := &parser.Node{Kind: token.KindString, Offset: f.pendingKeyOffset, Length: f.pendingKeyLength, Value: f.pendingKey}
	prop := &parser.Node{
		Kind:     token.KindProperty,
		Offset:   f.pendingKeyOffset,
		Length:   valueStartOffset - f.pendingKeyOffset,
		Children: []*parser.Node{key},
	}
	key.Parent = prop
	return prop
}

func wrapProperty(f *scanFrame, value *parser.Node) *parser.Node {
	key := &parser.Node{Kind: token.KindString, Offset: f.pendingKeyOffset, Length: f.pendingKeyLength, Value: f.pendingKey}
	prop := &parser.Node{
		Kind:     token.KindProperty,
		Offset:   f.pendingKeyOffset,
		Length:   value.Offset + value.Length - f.pendingKeyOffset,
		Children: []*parser.Node{key, value},
	}
	key.Parent = prop
	value.Parent = prop
	return prop
}

// FindNodeAtLocation walks root following path, matching property names
// against property children's keys and indices into array children.
func FindNodeAtLocation(root *parser.Node, path []PathSegment) *parser.Node {
	cur := root
	for _, seg := range path {
		if cur == nil {
			return nil
		}
		if seg.IsIndex() {
			if cur.Kind != token.KindArray || seg.Int() < 0 || seg.Int() >= len(cur.Children) {
				return nil
			}
			cur = cur.Children[seg.Int()]
			continue
		}
		if cur.Kind != token.KindObject {
			return nil
		}
		var next *parser.Node
		for _, child := range cur.Children {
			if key, ok := child.PropertyKey(); ok && key == seg.String() {
				next = child.PropertyValue()
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// FindNodeAtOffset descends to the innermost node whose span contains
// offset. With includeRightBound, a node whose span ends exactly at
// offset still counts as containing it.
func FindNodeAtOffset(root *parser.Node, offset int, includeRightBound bool) *parser.Node {
	if root == nil || !contains(root, offset, includeRightBound) {
		return nil
	}
	for _, child := range root.Children {
		search := child
		if search.Kind == token.KindProperty {
			// descend through the property into whichever of its
			// children actually contains the offset.
			if found := FindNodeAtOffset(search, offset, includeRightBound); found != nil {
				return found
			}
			continue
		}
		if contains(search, offset, includeRightBound) {
			if found := FindNodeAtOffset(search, offset, includeRightBound); found != nil {
				return found
			}
			return search
		}
	}
	return root
}

func contains(n *parser.Node, offset int, includeRightBound bool) bool {
	if includeRightBound {
		return offset >= n.Offset && offset <= n.Offset+n.Length
	}
	return offset >= n.Offset && offset < n.Offset+n.Length
}

// GetNodePath walks parent pointers, prepending each step's property name
// or array index.
func GetNodePath(n *parser.Node) []PathSegment {
	var segments []PathSegment
	cur := n
	for cur != nil && cur.Parent != nil {
		if cur.Kind == token.KindProperty {
			if key, ok := cur.PropertyKey(); ok {
				segments = append([]PathSegment{Name(key)}, segments...)
			}
			cur = cur.Parent
			continue
		}
		parent := cur.Parent
		if parent.Kind == token.KindProperty {
			if key, ok := parent.PropertyKey(); ok {
				segments = append([]PathSegment{Name(key)}, segments...)
			}
			cur = parent.Parent
			continue
		}
		if parent.Kind == token.KindArray {
			for i, child := range parent.Children {
				if child == cur {
					segments = append([]PathSegment{Index(i)}, segments...)
					break
				}
			}
			cur = parent
			continue
		}
		cur = parent
	}
	return segments
}

// GetNodeValue materializes n's subtree into a plain value, by the same
// rules [parser.Parse] uses.
func GetNodeValue(n *parser.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case token.KindObject:
		m := make(map[string]any, len(n.Children))
		for _, child := range n.Children {
			key, ok := child.PropertyKey()
			if !ok {
				continue
			}
			if v := child.PropertyValue(); v != nil {
				m[key] = GetNodeValue(v)
			}
		}
		return m
	case token.KindArray:
		arr := make([]any, len(n.Children))
		for i, child := range n.Children {
			arr[i] = GetNodeValue(child)
		}
		return arr
	case token.KindProperty:
		if v := n.PropertyValue(); v != nil {
			return GetNodeValue(v)
		}
		return nil
	default:
		return n.Value
	}
}
