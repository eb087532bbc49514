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

// Package parser implements the fault-tolerant JSON5 parser: a
// visitor-style driver (Visit) over the scanner's token stream, a value
// materializer (Parse) and a tree builder (ParseTree), plus the Node type
// they both produce trees of.
package parser

import (
	"github.com/mkantor/node-json5-parser/scanner"
	"github.com/mkantor/node-json5-parser/token"
)

// Visit drives a scanner over text and invokes v's callbacks in document
// order, recovering from syntax errors by reporting them to v.OnError and
// resynchronizing rather than aborting (spec.md §4.4, §7). It never
// panics on malformed input.
func Visit(text string, v *Visitor, opts *Options) {
	if v == nil {
		v = &Visitor{}
	}
	if opts == nil {
		opts = &Options{}
	}
	p := &parseState{
		sc:   scanner.NewScanner(text, false),
		v:    v,
		opts: *opts,
	}
	p.advance()

	if p.tok == token.EOF {
		if !p.opts.AllowEmptyContent {
			p.reportError(token.ValueExpected, 0, 0)
		}
		return
	}

	if !p.parseValue() {
		p.reportError(token.ValueExpected, p.offset, p.length)
	}

	if p.tok != token.EOF {
		p.reportError(token.EndOfFileExpected, p.offset, p.length)
	}
}

// parseState is the mutable cursor the recursive-descent driver threads
// through a single Visit call. There is no shared state between calls:
// each Visit allocates its own scanner and parseState, matching spec.md
// §5's "no shared mutable state between parses" guarantee.
type parseState struct {
	sc   scanner.Scanner
	v    *Visitor
	opts Options

	tok            token.Kind
	offset, length int
	line, char     int
	value          string
	scanErr        token.ScanError
}

// advance fetches the next significant (non-whitespace, non-line-break)
// token, forwarding any comments and scan errors to the visitor/error list
// along the way.
func (p *parseState) advance() {
	for {
		k := p.sc.Scan()
		switch k {
		case token.Whitespace, token.LineBreak:
			continue
		case token.LineComment, token.BlockComment:
			p.handleComment(k)
			continue
		}
		p.tok = k
		p.offset = p.sc.TokenOffset()
		p.length = p.sc.TokenLength()
		p.line = p.sc.TokenStartLine()
		p.char = p.sc.TokenStartCharacter()
		p.value = p.sc.TokenValue()
		p.scanErr = p.sc.TokenError()
		if p.scanErr != token.NoScanError {
			p.reportError(token.FromScanError(p.scanErr), p.offset, p.length)
		}
		return
	}
}

func (p *parseState) handleComment(k token.Kind) {
	offset, length := p.sc.TokenOffset(), p.sc.TokenLength()
	line, char := p.sc.TokenStartLine(), p.sc.TokenStartCharacter()
	scanErr := p.sc.TokenError()

	if p.opts.DisallowComments {
		p.reportError(token.InvalidCommentToken, offset, length)
		return
	}
	if scanErr == token.UnexpectedEndOfComment {
		p.reportError(token.ErrUnexpectedEndOfComment, offset, length)
	}
	if p.v.OnComment != nil {
		p.v.OnComment(offset, length, line, char)
	}
}

func (p *parseState) reportError(code token.ErrorCode, offset, length int) {
	if p.v.OnError != nil {
		p.v.OnError(code, offset, length)
	}
}

// skipTo advances past tokens until the current token is one of stop, is
// EOF, or an unmatched closing delimiter is reached at the starting
// nesting depth -- the "recovery follow-set" search of spec.md §4.4, kept
// depth-aware so skipping never escapes a nested container early.
func (p *parseState) skipTo(stop ...token.Kind) {
	depth := 0
	for {
		if p.tok == token.EOF {
			return
		}
		if depth == 0 {
			for _, k := range stop {
				if p.tok == k {
					return
				}
			}
		}
		switch p.tok {
		case token.OpenBrace, token.OpenBracket:
			depth++
		case token.CloseBrace, token.CloseBracket:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}

// parseValue parses value := object | array | literal at the current
// token, reporting true iff a value was actually consumed and emitted.
func (p *parseState) parseValue() bool {
	switch p.tok {
	case token.OpenBrace:
		p.parseObject()
		return true
	case token.OpenBracket:
		p.parseArray()
		return true
	case token.String, token.Number, token.True, token.False, token.Null,
		token.Infinity, token.NaN:
		p.emitLiteral()
		return true
	default:
		return false
	}
}

func (p *parseState) emitLiteral() {
	offset, length, line, char := p.offset, p.length, p.line, p.char
	value := decodeLiteral(p.tok, p.value)
	if p.v.OnLiteralValue != nil {
		p.v.OnLiteralValue(value, offset, length, line, char)
	}
	p.advance()
}

func decodeLiteral(k token.Kind, raw string) any {
	switch k {
	case token.String:
		return raw // already decoded by the scanner
	case token.Number:
		return scanner.DecodeNumber(raw)
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
		return nil
	}
}

// parseObject parses object := '{' (property (',' property)* ','?)? '}'.
func (p *parseState) parseObject() {
	beginOffset, beginLine, beginChar := p.offset, p.line, p.char
	if p.v.OnObjectBegin != nil {
		p.v.OnObjectBegin(beginOffset, p.length, beginLine, beginChar)
	}
	p.advance() // consume '{'

	first := true
	for p.tok != token.CloseBrace {
		if !first {
			if p.tok == token.Comma {
				p.emitSeparator(',')
				p.advance()
				if p.tok == token.CloseBrace {
					break // trailing comma
				}
			} else {
				p.reportError(token.CommaExpected, p.offset, p.length)
				// continue as if the comma were present
			}
		}

		if p.tok == token.String || p.tok == token.Identifier {
			keyOffset, keyLength, keyLine, keyChar := p.offset, p.length, p.line, p.char
			key := p.value
			if p.v.OnObjectProperty != nil {
				p.v.OnObjectProperty(key, keyOffset, keyLength, keyLine, keyChar)
			}
			p.advance()

			if p.tok == token.Colon {
				p.emitSeparator(':')
				p.advance()
				if !p.parseValue() {
					if p.tok == token.Comma || p.tok == token.CloseBrace {
						p.reportError(token.ValueExpected, p.offset, p.length)
					} else {
						p.reportError(token.ValueExpected, p.offset, p.length)
						p.skipTo(token.Comma, token.CloseBrace)
					}
				}
			} else {
				// Missing separator: report once and move on without
				// also demanding a value at the same offending token
				// (spec.md §8 scenario 3).
				p.reportError(token.ColonExpected, p.offset, p.length)
				p.parseValue()
			}
		} else {
			p.reportError(token.PropertyNameExpected, p.offset, p.length)
			p.skipTo(token.Comma, token.CloseBrace)
		}

		first = false
		if p.tok == token.EOF {
			p.reportError(token.CloseBraceExpected, p.offset, p.length)
			if p.v.OnObjectEnd != nil {
				p.v.OnObjectEnd(p.offset, 0, p.line, p.char)
			}
			return
		}
	}

	endOffset, endLength, endLine, endChar := p.offset, p.length, p.line, p.char
	p.advance() // consume '}'
	if p.v.OnObjectEnd != nil {
		p.v.OnObjectEnd(endOffset, endLength, endLine, endChar)
	}
}

// parseArray parses array := '[' (value (',' value)* ','?)? ']'.
func (p *parseState) parseArray() {
	beginOffset, beginLine, beginChar := p.offset, p.line, p.char
	if p.v.OnArrayBegin != nil {
		p.v.OnArrayBegin(beginOffset, p.length, beginLine, beginChar)
	}
	p.advance() // consume '['

	first := true
	for p.tok != token.CloseBracket {
		if !first {
			if p.tok == token.Comma {
				p.emitSeparator(',')
				p.advance()
				if p.tok == token.CloseBracket {
					break // trailing comma
				}
			} else {
				p.reportError(token.CommaExpected, p.offset, p.length)
			}
		}

		if !p.parseValue() {
			p.reportError(token.ValueExpected, p.offset, p.length)
			if p.tok != token.Comma && p.tok != token.CloseBracket {
				p.skipTo(token.Comma, token.CloseBracket)
			}
		}

		first = false
		if p.tok == token.EOF {
			p.reportError(token.CloseBracketExpected, p.offset, p.length)
			if p.v.OnArrayEnd != nil {
				p.v.OnArrayEnd(p.offset, 0, p.line, p.char)
			}
			return
		}
	}

	endOffset, endLength, endLine, endChar := p.offset, p.length, p.line, p.char
	p.advance() // consume ']'
	if p.v.OnArrayEnd != nil {
		p.v.OnArrayEnd(endOffset, endLength, endLine, endChar)
	}
}

func (p *parseState) emitSeparator(c byte) {
	if p.v.OnSeparator != nil {
		p.v.OnSeparator(c, p.offset, p.length, p.line, p.char)
	}
}
