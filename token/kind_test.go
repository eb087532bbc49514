package token

import "testing"

func TestKindString(t *testing.T) {
	cases := []struct {
		k    Kind
		want string
	}{
		{EOF, "EOF"},
		{OpenBrace, "OpenBrace"},
		{String, "String"},
		{NaN, "NaN"},
		{Kind(999), "Kind(999)"},
	}
	for _, c := range cases {
		if got := c.k.String(); got != c.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(c.k), got, c.want)
		}
	}
}

func TestKindIsTrivia(t *testing.T) {
	trivia := []Kind{Whitespace, LineBreak, LineComment, BlockComment}
	for _, k := range trivia {
		if !k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = false, want true", k)
		}
	}
	substantive := []Kind{EOF, String, Number, OpenBrace, Identifier}
	for _, k := range substantive {
		if k.IsTrivia() {
			t.Errorf("%s.IsTrivia() = true, want false", k)
		}
	}
}
