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

// Package scanner implements a restartable scanner for JSON5 source text.
// It takes a string as source which can then be tokenized through repeated
// calls to Scan. Unlike a conventional one-pass lexer, the cursor can be
// moved with SetPosition, so scanning can restart from any offset of the
// input.
package scanner

import (
	"fmt"
	"unicode/utf8"

	"github.com/mkantor/node-json5-parser/internal/grammar"
	"github.com/mkantor/node-json5-parser/token"
)

// A Scanner holds the scanner's internal state while processing a given
// text. It must be constructed via NewScanner before use.
type Scanner interface {
	// SetPosition moves the cursor to pos; a subsequent Scan reads the
	// next token starting there. Panics if pos is out of [0, len(text)].
	SetPosition(pos int)
	// Scan reads and returns the kind of the next token. When the
	// scanner was constructed with ignoreTrivia, trivia tokens
	// (whitespace, line breaks, comments) are skipped and never
	// returned.
	Scan() token.Kind
	// Position returns the cursor's current offset (the position Scan
	// will resume from next).
	Position() int

	Token() token.Kind
	// TokenValue returns the decoded value of a String token, or the
	// raw lexeme for every other kind.
	TokenValue() string
	TokenOffset() int
	TokenLength() int
	TokenStartLine() int
	TokenStartCharacter() int
	TokenError() token.ScanError
}

type scanner struct {
	text string

	pos int // next code unit Scan will read from

	ignoreTrivia bool

	tokenKind   token.Kind
	tokenOffset int
	tokenLength int
	tokenValue  string
	tokenError  token.ScanError

	lineNumber               int
	tokenLineStartOffset     int
	prevTokenLineStartOffset int
}

// NewScanner returns a cursor over text. When ignoreTrivia is true, Scan
// skips whitespace, line breaks and comments and returns the first
// substantive token.
func NewScanner(text string, ignoreTrivia bool) Scanner {
	return &scanner{text: text, ignoreTrivia: ignoreTrivia}
}

func (s *scanner) SetPosition(pos int) {
	if pos < 0 || pos > len(s.text) {
		panic(fmt.Sprintf("scanner: position %d out of range [0, %d]", pos, len(s.text)))
	}
	s.pos = pos
	// A fresh SetPosition loses exact knowledge of the enclosing line: the
	// line counters reset to line 0 starting at offset 0, so
	// TokenStartCharacter stays >= 0, but after a seek past offset 0
	// TokenStartLine and TokenStartCharacter are not the token's real line
	// and column.
	s.lineNumber = 0
	s.tokenLineStartOffset = 0
	s.prevTokenLineStartOffset = 0
}

func (s *scanner) Position() int { return s.pos }

func (s *scanner) Token() token.Kind           { return s.tokenKind }
func (s *scanner) TokenValue() string          { return s.tokenValue }
func (s *scanner) TokenOffset() int            { return s.tokenOffset }
func (s *scanner) TokenLength() int            { return s.tokenLength }
func (s *scanner) TokenStartLine() int         { return s.lineNumber }
func (s *scanner) TokenError() token.ScanError { return s.tokenError }

func (s *scanner) TokenStartCharacter() int {
	return s.tokenOffset - s.prevTokenLineStartOffset
}

func (s *scanner) Scan() token.Kind {
	for {
		k := s.scanOne()
		if !s.ignoreTrivia || !k.IsTrivia() {
			return k
		}
	}
}

// scanOne scans exactly one token (trivia or not) starting at s.pos.
func (s *scanner) scanOne() token.Kind {
	s.prevTokenLineStartOffset = s.tokenLineStartOffset
	s.tokenOffset = s.pos
	s.tokenError = token.NoScanError

	if s.pos >= len(s.text) {
		s.tokenKind = token.EOF
		s.tokenLength = 0
		s.tokenValue = ""
		return token.EOF
	}

	rest := s.text[s.pos:]
	r := grammar.Json5InputElement(rest)

	if r.Success && r.Length > 0 {
		s.advanceLines(r)
		lexeme := rest[:r.Length]
		s.tokenLength = r.Length
		s.tokenKind = r.Kind
		s.pos += r.Length

		switch r.Kind {
		case token.String:
			value, scanErr := decodeString(lexeme)
			s.tokenValue = value
			s.tokenError = scanErr
		case token.BlockComment:
			s.tokenValue = lexeme
			if len(lexeme) < 4 || lexeme[len(lexeme)-2:] != "*/" {
				s.tokenError = token.UnexpectedEndOfComment
			}
		default:
			s.tokenValue = lexeme
		}
		return s.tokenKind
	}

	// A full production failed to match here, or matched a partial
	// lexeme and then hit EOF/a bad continuation (e.g. an unterminated
	// string or block comment): the per-character resync policy from
	// spec.md §4.3 takes over. If the failed match already consumed a
	// meaningful prefix (an unterminated string or comment), emit that
	// prefix as the token it was trying to be, tagged with the
	// appropriate scan error, rather than resyncing one character at a
	// time.
	if r.Length > 0 {
		if kind, scanErr, ok := partialTokenKind(rest, r); ok {
			s.advanceLines(r)
			lexeme := rest[:r.Length]
			s.tokenLength = r.Length
			s.tokenKind = kind
			s.tokenValue = decodeBestEffort(kind, lexeme)
			s.tokenError = scanErr
			s.pos += r.Length
			return kind
		}
	}

	ch, width := utf8.DecodeRuneInString(rest)
	if ch == utf8.RuneError && width <= 1 {
		width = 1
	}
	s.tokenLength = width
	s.tokenKind = token.Unknown
	s.tokenValue = rest[:width]
	s.tokenError = token.InvalidCharacter
	s.pos += width
	return token.Unknown
}

// partialTokenKind classifies a failed-but-nonempty grammar match as one of
// the "emit what we have, with an error" cases: unterminated strings and
// unterminated block comments. Everything else resyncs one character.
func partialTokenKind(rest string, r grammar.Result) (token.Kind, token.ScanError, bool) {
	if len(rest) == 0 {
		return 0, 0, false
	}
	switch rest[0] {
	case '"', '\'':
		return token.String, token.UnexpectedEndOfString, true
	}
	if len(rest) >= 2 && rest[0] == '/' && rest[1] == '*' {
		return token.BlockComment, token.UnexpectedEndOfComment, true
	}
	return 0, 0, false
}

func decodeBestEffort(kind token.Kind, lexeme string) string {
	if kind == token.String {
		v, _ := decodeString(lexeme)
		return v
	}
	return lexeme
}

func (s *scanner) advanceLines(r grammar.Result) {
	if r.LineBreaks > 0 {
		s.lineNumber += r.LineBreaks
		s.tokenLineStartOffset = s.pos + r.LastLineBreakEnd
	}
}
