package parser

import (
	"testing"

	"github.com/mkantor/node-json5-parser/token"
)

func checkInvariants(t *testing.T, n *Node, text string) {
	t.Helper()
	if n.Offset+n.Length > len(text) {
		t.Errorf("node %s: offset+length = %d exceeds text length %d", n.Kind, n.Offset+n.Length, len(text))
	}
	for _, c := range n.Children {
		if c.Parent != n {
			t.Errorf("child %s of %s has wrong Parent", c.Kind, n.Kind)
		}
		if n.Offset > c.Offset {
			t.Errorf("parent offset %d > child offset %d", n.Offset, c.Offset)
		}
		if c.Offset+c.Length > n.Offset+n.Length {
			t.Errorf("child span [%d,%d) escapes parent span [%d,%d)", c.Offset, c.Offset+c.Length, n.Offset, n.Offset+n.Length)
		}
		checkInvariants(t, c, text)
	}
	if n.Kind == token.KindObject {
		for _, c := range n.Children {
			if c.Kind != token.KindProperty {
				t.Errorf("object child has kind %s, want property", c.Kind)
			}
		}
	}
	if n.Kind == token.KindProperty && len(n.Children) > 0 {
		if n.Children[0].Kind != token.KindString {
			t.Errorf("property's first child has kind %s, want string", n.Children[0].Kind)
		}
	}
}

func TestParseTreeNestedObject(t *testing.T) {
	text := `{ 'foo': { 'bar': NaN, "car": +0x1 } }`
	errs := &ErrorList{}
	root := ParseTree(text, errs, nil)
	if len(errs.Errors()) != 0 {
		t.Fatalf("errors = %v, want none", errs.Errors())
	}
	checkInvariants(t, root, text)

	if root.Kind != token.KindObject || len(root.Children) != 1 {
		t.Fatalf("root = %+v, want single-property object", root)
	}
	fooProp := root.Children[0]
	key, _ := fooProp.PropertyKey()
	if key != "foo" {
		t.Errorf("key = %q, want %q", key, "foo")
	}
	fooObj := fooProp.PropertyValue()
	if fooObj == nil || fooObj.Kind != token.KindObject || len(fooObj.Children) != 2 {
		t.Fatalf("foo's value = %+v, want two-property object", fooObj)
	}
}

func TestParseTreeIncompletePropertyHasNoValue(t *testing.T) {
	text := `{"a":1,"b":}`
	errs := &ErrorList{}
	root := ParseTree(text, errs, nil)
	checkInvariants(t, root, text)

	if len(root.Children) != 2 {
		t.Fatalf("root has %d children, want 2", len(root.Children))
	}
	b := root.Children[1]
	key, _ := b.PropertyKey()
	if key != "b" {
		t.Fatalf("second property key = %q, want %q", key, "b")
	}
	if b.PropertyValue() != nil {
		t.Errorf("PropertyValue() = %+v, want nil", b.PropertyValue())
	}
}

func TestParseTreeEmptyDocumentSynthesizesRoot(t *testing.T) {
	root := ParseTree(``, &ErrorList{}, &Options{AllowEmptyContent: true})
	if root == nil {
		t.Fatal("ParseTree returned nil")
	}
	if root.Kind != token.KindArray || root.Length != 0 {
		t.Errorf("root = %+v, want empty array node", root)
	}
}

func TestParseTreeCascadingEOFCloses(t *testing.T) {
	text := `{"a":[1,2`
	var objEnds, arrEnds int
	errs := &ErrorList{}
	v := &Visitor{
		OnObjectEnd: func(offset, length, line, char int) { objEnds++ },
		OnArrayEnd:  func(offset, length, line, char int) { arrEnds++ },
		OnError:     func(code token.ErrorCode, offset, length int) { errs.add(&Error{Code: code, Offset: offset, Length: length}) },
	}
	Visit(text, v, nil)
	if objEnds != 1 || arrEnds != 1 {
		t.Errorf("objEnds=%d arrEnds=%d, want 1 and 1", objEnds, arrEnds)
	}

	root := ParseTree(text, &ErrorList{}, nil)
	checkInvariants(t, root, text)
	if root.Kind != token.KindObject || len(root.Children) != 1 {
		t.Fatalf("root = %+v, want single-property object", root)
	}
	arr := root.Children[0].PropertyValue()
	if arr == nil || arr.Kind != token.KindArray || len(arr.Children) != 2 {
		t.Fatalf("a's value = %+v, want two-element array", arr)
	}
}
