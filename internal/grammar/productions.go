package grammar

import (
	"unicode"
	"unicode/utf8"

	"github.com/mkantor/node-json5-parser/token"
)

// This file realizes spec.md §4.2: the JSON5 lexical productions, built by
// composing the combinators in combinator.go. Matchers operate on the
// UTF-8 byte encoding of the input and report lengths in bytes — the
// "simplest portable choice" spec.md §9 allows for a target language whose
// native string representation isn't UTF-16.

func isDigit(b byte) bool      { return b >= '0' && b <= '9' }
func isNonZeroDigit(b byte) bool { return b >= '1' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// DecimalDigit, HexDigit, NonZeroDigit.
var (
	decimalDigit  = Rune(isDigit)
	hexDigit      = Rune(isHexDigit)
	nonZeroDigit  = Rune(isNonZeroDigit)
	decimalDigits = OneOrMore(decimalDigit)
	hexDigits     = OneOrMore(hexDigit)
)

// decimalIntegerLiteral := '0' | NonZeroDigit DecimalDigit*
var decimalIntegerLiteral = Or(
	Literal("0"),
	And(nonZeroDigit, ZeroOrMore(decimalDigit)),
)

// exponentPart := ('e'|'E') ('+'|'-')? DecimalDigits
var exponentPart = And(
	Or(Literal("e"), Literal("E")),
	Optional(Or(Literal("+"), Literal("-"))),
	decimalDigits,
)

// decimalLiteral covers the three forms of a JSON5 decimal number,
// including a leading or trailing decimal point.
var decimalLiteral = Or(
	And(decimalIntegerLiteral, Literal("."), Optional(decimalDigits), Optional(exponentPart)),
	And(Literal("."), decimalDigits, Optional(exponentPart)),
	And(decimalIntegerLiteral, Optional(exponentPart)),
)

// hexIntegerLiteral := ('0x'|'0X') HexDigit+
var hexIntegerLiteral = And(Or(Literal("0x"), Literal("0X")), hexDigits)

var numericLiteral = Or(hexIntegerLiteral, decimalLiteral)

var infinityLiteral = Literal("Infinity")
var nanLiteral = Literal("NaN")

// json5NumericLiteral := NumericLiteral | Infinity | NaN
var json5NumericLiteral = Or(numericLiteral, infinityLiteral, nanLiteral)

// JSON5Number matches the full signed production, stamping its kind.
var JSON5Number = WithKind(token.Number, And(
	Optional(Or(Literal("+"), Literal("-"))),
	json5NumericLiteral,
))

// --- identifiers & keywords -------------------------------------------------

func isIdentifierStart(r rune) bool {
	if r == '$' || r == '_' {
		return true
	}
	switch unicode.In(r, unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl) {
	case true:
		return true
	}
	return false
}

func isIdentifierPart(r rune) bool {
	if isIdentifierStart(r) {
		return true
	}
	if r == '‌' || r == '‍' { // ZWNJ, ZWJ
		return true
	}
	switch {
	case unicode.In(r, unicode.Mn, unicode.Mc): // combining marks
		return true
	case unicode.In(r, unicode.Nd): // decimal number
		return true
	case unicode.In(r, unicode.Pc): // connector punctuation
		return true
	}
	return false
}

func runeMatcher(pred func(rune) bool) Matcher {
	return func(s string) Result {
		if len(s) == 0 {
			return fail(0)
		}
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && n <= 1 {
			return fail(0)
		}
		if pred(r) {
			return Result{Success: true, Length: n}
		}
		return fail(0)
	}
}

// unicodeEscape := '\u' HexDigit HexDigit HexDigit HexDigit
var unicodeEscapeIdent = And(Literal(`\u`), hexDigit, hexDigit, hexDigit, hexDigit)

var identifierStart = Or(runeMatcher(isIdentifierStart), unicodeEscapeIdent)
var identifierPart = Or(runeMatcher(isIdentifierPart), unicodeEscapeIdent)

var identifierName = And(identifierStart, ZeroOrMore(identifierPart))

// json5Identifier := longest(Identifier, null, true, false, Infinity, NaN).
// Longest already prefers whichever alternative consumes the most input,
// so "true1" lexes as a single longer Identifier rather than the keyword
// "true"; keywords are listed first so that an exact-length tie (the
// keyword text alone) resolves in their favor rather than the generic
// identifier production's.
var JSON5Identifier = Longest(
	WithKind(token.Null, Literal("null")),
	WithKind(token.True, Literal("true")),
	WithKind(token.False, Literal("false")),
	WithKind(token.Infinity, Literal("Infinity")),
	WithKind(token.NaN, Literal("NaN")),
	WithKind(token.Identifier, identifierName),
)

// --- punctuators -------------------------------------------------------------

var JSON5Punctuator = Or(
	WithKind(token.OpenBrace, Literal("{")),
	WithKind(token.CloseBrace, Literal("}")),
	WithKind(token.OpenBracket, Literal("[")),
	WithKind(token.CloseBracket, Literal("]")),
	WithKind(token.Comma, Literal(",")),
	WithKind(token.Colon, Literal(":")),
)

// --- strings -----------------------------------------------------------------

// lineTerminatorSequence recognizes LF, CR (with CR+LF collapsed), LS, PS
// and increments the shared line-break counter.
var lineTerminatorSequence Matcher = func(s string) Result {
	if len(s) == 0 {
		return fail(0)
	}
	switch {
	case s[0] == '\n':
		return Result{Success: true, Length: 1, LineBreaks: 1, LastLineBreakEnd: 1}
	case s[0] == '\r':
		if len(s) > 1 && s[1] == '\n' {
			return Result{Success: true, Length: 2, LineBreaks: 1, LastLineBreakEnd: 2}
		}
		return Result{Success: true, Length: 1, LineBreaks: 1, LastLineBreakEnd: 1}
	}
	if r, n := utf8.DecodeRuneInString(s); r == ' ' || r == ' ' {
		return Result{Success: true, Length: n, LineBreaks: 1, LastLineBreakEnd: n}
	}
	return fail(0)
}

var hexEscapeSequence = And(Literal(`\x`), hexDigit, hexDigit)
var unicodeEscapeSequence = And(Literal(`\u`), hexDigit, hexDigit, hexDigit, hexDigit)

var singleEscapeChar = Or(
	Literal(`\'`), Literal(`\"`), Literal(`\\`), Literal(`\/`),
	Literal(`\b`), Literal(`\f`), Literal(`\n`), Literal(`\r`),
	Literal(`\t`), Literal(`\v`),
)

// nulEscape := '\0' (lookahead not DecimalDigit)
var nulEscape = LookaheadNot(Literal(`\0`), decimalDigit)

// lineContinuation := '\' LineTerminatorSequence
var lineContinuation = And(Literal(`\`), lineTerminatorSequence)

// any other backslash escape: '\' followed by one source character that
// isn't one of the forms above -- the escaped character is kept literally.
var anyEscape = And(Literal(`\`), runeMatcher(func(r rune) bool { return true }))

var escapeSequence = Or(
	hexEscapeSequence,
	unicodeEscapeSequence,
	nulEscape,
	singleEscapeChar,
	lineContinuation,
	anyEscape,
)

func stringChar(quote byte) Matcher {
	notQuoteOrBackslashOrLF := runeMatcher(func(r rune) bool {
		if r == rune(quote) || r == '\\' {
			return false
		}
		return r != '\n' && r != '\r'
	})
	return Or(escapeSequence, notQuoteOrBackslashOrLF)
}

func quotedString(quote byte) Matcher {
	q := string(quote)
	return And(Literal(q), ZeroOrMore(stringChar(quote)), Literal(q))
}

// JSON5String matches a whole single- or double-quoted string lexeme. An
// unterminated string (EOF or a raw newline before the closing quote) is a
// failed match whose Length covers the lexeme up to that point; the scanner
// turns that partial match into a String token carrying
// UnexpectedEndOfString.
var JSON5String = WithKind(token.String, Or(quotedString('"'), quotedString('\'')))

// --- trivia ------------------------------------------------------------------

func isWhitespaceByte(b byte) bool {
	switch b {
	case '\t', '\v', '\f', ' ':
		return true
	}
	return false
}

var whiteSpaceChar = Or(
	Rune(isWhitespaceByte),
	runeMatcher(func(r rune) bool {
		return r == 0xFEFF || r == ' ' || unicode.In(r, unicode.Zs)
	}),
)

var WhiteSpace = WithKind(token.Whitespace, OneOrMore(whiteSpaceChar))

var LineBreakTrivia = WithKind(token.LineBreak, lineTerminatorSequence)

var lineComment = And(Literal("//"), ZeroOrMore(runeMatcher(func(r rune) bool {
	return r != '\n' && r != '\r' && r != ' ' && r != ' '
})))

var blockComment = And(
	Literal("/*"),
	ZeroOrMore(butNotCommentEnd),
	Literal("*/"),
)

var butNotCommentEnd = ButNot(
	runeMatcher(func(r rune) bool { return true }),
	Literal("*/"),
)

// Comment matches either comment form, tagging the composed kind itself
// since the two alternatives carry different kinds.
var Comment = Or(
	WithKind(token.LineComment, lineComment),
	WithKind(token.BlockComment, blockComment),
)

// Json5Token := Identifier | Punctuator | String | Number
var Json5Token = Or(JSON5Identifier, JSON5Punctuator, JSON5String, JSON5Number)

// Json5InputElement is the scanner's single top-level production.
var Json5InputElement = Or(WhiteSpace, LineBreakTrivia, Comment, Json5Token)
