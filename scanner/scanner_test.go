package scanner

import (
	"testing"

	"github.com/mkantor/node-json5-parser/token"
)

type scanned struct {
	kind  token.Kind
	value string
	err   token.ScanError
}

func scanAll(t *testing.T, text string, ignoreTrivia bool) []scanned {
	t.Helper()
	sc := NewScanner(text, ignoreTrivia)
	var got []scanned
	for {
		k := sc.Scan()
		got = append(got, scanned{k, sc.TokenValue(), sc.TokenError()})
		if k == token.EOF {
			return got
		}
	}
}

func TestScanPunctuatorsAndKeywords(t *testing.T) {
	got := scanAll(t, "{ true, false , null:[ ]}", true)
	want := []token.Kind{
		token.OpenBrace, token.True, token.Comma, token.False, token.Comma,
		token.Null, token.Colon, token.OpenBracket, token.CloseBracket,
		token.CloseBrace, token.EOF,
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i, k := range want {
		if got[i].kind != k {
			t.Errorf("token %d = %s, want %s", i, got[i].kind, k)
		}
	}
}

func TestScanIdentifierVsKeyword(t *testing.T) {
	got := scanAll(t, "nullable", true)
	if got[0].kind != token.Identifier {
		t.Fatalf("scanning %q: got %s, want Identifier", "nullable", got[0].kind)
	}
	if got[0].value != "nullable" {
		t.Errorf("value = %q, want %q", got[0].value, "nullable")
	}
}

func TestScanStringEscapes(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`'it\'s'`, "it's"},
		{`"A"`, "A"},
		{`"\x41"`, "A"},
		{"\"line\\\ncontinued\"", "linecontinued"},
	}
	for _, c := range cases {
		got := scanAll(t, c.in, true)
		if got[0].kind != token.String {
			t.Fatalf("scanning %q: got kind %s, want String", c.in, got[0].kind)
		}
		if got[0].value != c.want {
			t.Errorf("scanning %q: value = %q, want %q", c.in, got[0].value, c.want)
		}
	}
}

func TestScanUnterminatedString(t *testing.T) {
	got := scanAll(t, `"abc`, true)
	if got[0].kind != token.String {
		t.Fatalf("got kind %s, want String", got[0].kind)
	}
	if got[0].err != token.UnexpectedEndOfString {
		t.Errorf("err = %s, want UnexpectedEndOfString", got[0].err)
	}
	if got[0].value != "abc" {
		t.Errorf("value = %q, want %q", got[0].value, "abc")
	}
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	got := scanAll(t, "/* abc", false)
	if got[0].kind != token.BlockComment {
		t.Fatalf("got kind %s, want BlockComment", got[0].kind)
	}
	if got[0].err != token.UnexpectedEndOfComment {
		t.Errorf("err = %s, want UnexpectedEndOfComment", got[0].err)
	}
}

func TestScanInvalidCharacterResync(t *testing.T) {
	got := scanAll(t, "@ #", true)
	if got[0].kind != token.Unknown || got[0].err != token.InvalidCharacter {
		t.Fatalf("token 0 = %+v, want Unknown/InvalidCharacter", got[0])
	}
	if got[1].kind != token.Unknown || got[1].err != token.InvalidCharacter {
		t.Fatalf("token 1 = %+v, want Unknown/InvalidCharacter", got[1])
	}
	if got[2].kind != token.EOF {
		t.Fatalf("token 2 = %+v, want EOF", got[2])
	}
}

func TestScanLineAndBlockComments(t *testing.T) {
	got := scanAll(t, "// line\n/* block */42", false)
	var kinds []token.Kind
	for _, g := range got {
		kinds = append(kinds, g.kind)
	}
	want := []token.Kind{
		token.LineComment, token.LineBreak, token.BlockComment, token.Number, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestSetPositionRestartsScanning(t *testing.T) {
	text := `{"a":1,"b":2}`
	sc := NewScanner(text, true)
	sc.Scan() // '{'
	sc.Scan() // "a"
	mid := sc.Position()

	// Scan the rest normally.
	var fromMid []token.Kind
	for {
		k := sc.Scan()
		fromMid = append(fromMid, k)
		if k == token.EOF {
			break
		}
	}

	// Rewind and rescan from the same position; results must match.
	sc.SetPosition(mid)
	var rescanned []token.Kind
	for {
		k := sc.Scan()
		rescanned = append(rescanned, k)
		if k == token.EOF {
			break
		}
	}

	if len(fromMid) != len(rescanned) {
		t.Fatalf("rescans diverge in length: %v vs %v", fromMid, rescanned)
	}
	for i := range fromMid {
		if fromMid[i] != rescanned[i] {
			t.Errorf("token %d: got %s after rewind, want %s", i, rescanned[i], fromMid[i])
		}
	}
}

func TestScanUnicodeIdentifier(t *testing.T) {
	// ZWNJ (U+200C) and ZWJ (U+200D) are valid identifier continuation
	// characters; a NBSP (U+00A0) is whitespace, not part of an
	// identifier.
	got := scanAll(t, "a‌b ", true)
	if got[0].kind != token.Identifier {
		t.Fatalf("got kind %s, want Identifier", got[0].kind)
	}
	if got[0].value != "a‌b" {
		t.Errorf("value = %q, want %q", got[0].value, "a‌b")
	}
}
