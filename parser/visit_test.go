package parser

import (
	"testing"

	"github.com/mkantor/node-json5-parser/scanner"
	"github.com/mkantor/node-json5-parser/token"
)

// Scenario 1: "true false null" scanned with trivia kept.
func TestScanTrueFalseNullKeepsTrivia(t *testing.T) {
	sc := scanner.NewScanner(`true false null`, false)
	wantKinds := []token.Kind{token.True, token.Whitespace, token.False, token.Whitespace, token.Null, token.EOF}
	wantValues := []string{"true", " ", "false", " ", "null", ""}
	for i := range wantKinds {
		if k := sc.Scan(); k != wantKinds[i] {
			t.Fatalf("token %d kind = %s, want %s", i, k, wantKinds[i])
		}
		if got := sc.TokenValue(); got != wantValues[i] {
			t.Errorf("token %d value = %q, want %q", i, got, wantValues[i])
		}
	}
}

// Scenario 3: an empty property key with no following separator/value
// reports exactly one ColonExpected error, with no cascading
// ValueExpected.
func TestVisitMissingColonDoesNotCascade(t *testing.T) {
	input := `{"prop1":"foo","prop3":{"prp1":{""}}}`

	var codes []token.ErrorCode
	var props []string
	v := &Visitor{
		OnObjectProperty: func(key string, offset, length, line, char int) {
			props = append(props, key)
		},
		OnError: func(code token.ErrorCode, offset, length int) {
			codes = append(codes, code)
		},
	}
	Visit(input, v, nil)

	foundEmpty := false
	for _, p := range props {
		if p == "" {
			foundEmpty = true
		}
	}
	if !foundEmpty {
		t.Fatalf("expected an empty-key property to be emitted, got %v", props)
	}

	colonCount := 0
	valueCount := 0
	for _, c := range codes {
		switch c {
		case token.ColonExpected:
			colonCount++
		case token.ValueExpected:
			valueCount++
		}
	}
	if colonCount != 1 {
		t.Errorf("ColonExpected count = %d, want 1 (errors: %v)", colonCount, codes)
	}
	if valueCount != 0 {
		t.Errorf("ValueExpected count = %d, want 0 (no cascade), errors: %v", valueCount, codes)
	}
}

// Scenario 4: "[ 1 2, 3 ]" parses to [1, 2, 3] with a single
// CommaExpected error between 1 and 2.
func TestParseMissingCommaRecovers(t *testing.T) {
	errs := &ErrorList{}
	got := Parse(`[ 1 2, 3 ]`, errs, nil)

	arr, ok := got.([]any)
	if !ok {
		t.Fatalf("Parse returned %T, want []any", got)
	}
	want := []any{1.0, 2.0, 3.0}
	if len(arr) != len(want) {
		t.Fatalf("got %v, want %v", arr, want)
	}
	for i := range want {
		if arr[i] != want[i] {
			t.Errorf("element %d = %v, want %v", i, arr[i], want[i])
		}
	}

	commaErrors := 0
	for _, e := range errs.Errors() {
		if e.Code == token.CommaExpected {
			commaErrors++
		}
	}
	if commaErrors != 1 {
		t.Errorf("CommaExpected count = %d, want 1 (errors: %v)", commaErrors, errs.Errors())
	}
}

// Scenario 6: with DisallowComments, both a block and a line comment
// report InvalidCommentToken, but the materialized value is unaffected.
func TestParseDisallowCommentsStillMaterializes(t *testing.T) {
	input := "/* g\n */ { \"foo\": //f\n\"bar\"\n}"
	errs := &ErrorList{}
	got := Parse(input, errs, &Options{DisallowComments: true})

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Parse returned %T, want map[string]any", got)
	}
	if m["foo"] != "bar" {
		t.Errorf(`m["foo"] = %v, want "bar"`, m["foo"])
	}

	invalidCommentCount := 0
	for _, e := range errs.Errors() {
		if e.Code == token.InvalidCommentToken {
			invalidCommentCount++
		}
	}
	if invalidCommentCount != 2 {
		t.Errorf("InvalidCommentToken count = %d, want 2 (errors: %v)", invalidCommentCount, errs.Errors())
	}
}

func TestVisitEmptyContent(t *testing.T) {
	var codes []token.ErrorCode
	v := &Visitor{
		OnError: func(code token.ErrorCode, offset, length int) {
			codes = append(codes, code)
		},
	}
	Visit(``, v, nil)
	if len(codes) != 1 || codes[0] != token.ValueExpected {
		t.Errorf("errors = %v, want [ValueExpected]", codes)
	}

	codes = nil
	Visit(``, v, &Options{AllowEmptyContent: true})
	if len(codes) != 0 {
		t.Errorf("errors = %v, want none with AllowEmptyContent", codes)
	}
}

func TestVisitTrailingCommaIsAccepted(t *testing.T) {
	errs := &ErrorList{}
	got := Parse(`[1, 2, 3,]`, errs, nil)
	arr := got.([]any)
	if len(arr) != 3 {
		t.Fatalf("got %v, want 3 elements", arr)
	}
	if len(errs.Errors()) != 0 {
		t.Errorf("errors = %v, want none", errs.Errors())
	}
}

func TestVisitUnclosedContainerAtEOF(t *testing.T) {
	var codes []token.ErrorCode
	var ends int
	v := &Visitor{
		OnArrayEnd: func(offset, length, line, char int) { ends++ },
		OnError: func(code token.ErrorCode, offset, length int) {
			codes = append(codes, code)
		},
	}
	Visit(`[1, 2`, v, nil)
	if ends != 1 {
		t.Errorf("OnArrayEnd called %d times, want 1", ends)
	}
	found := false
	for _, c := range codes {
		if c == token.CloseBracketExpected {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want CloseBracketExpected", codes)
	}
}

func TestVisitTwoValuesAtRootReportsEndOfFileExpected(t *testing.T) {
	var codes []token.ErrorCode
	v := &Visitor{
		OnError: func(code token.ErrorCode, offset, length int) {
			codes = append(codes, code)
		},
	}
	Visit(`1 2`, v, nil)
	found := false
	for _, c := range codes {
		if c == token.EndOfFileExpected {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %v, want EndOfFileExpected", codes)
	}
}
