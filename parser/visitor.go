package parser

import "github.com/mkantor/node-json5-parser/token"

// Visitor is the set of structural callbacks Visit drives in document
// order (spec.md §4.4). Any subset may be supplied; a nil field is a
// no-op. Every callback receives the source span and start line/character
// of the construct it reports; key/value/separator callbacks additionally
// receive that value as their first argument.
type Visitor struct {
	OnObjectBegin func(offset, length, startLine, startCharacter int)
	OnObjectProperty func(key string, offset, length, startLine, startCharacter int)
	OnObjectEnd func(offset, length, startLine, startCharacter int)

	OnArrayBegin func(offset, length, startLine, startCharacter int)
	OnArrayEnd   func(offset, length, startLine, startCharacter int)

	OnLiteralValue func(value any, offset, length, startLine, startCharacter int)
	OnSeparator    func(char byte, offset, length, startLine, startCharacter int)
	OnComment      func(offset, length, startLine, startCharacter int)
	OnError        func(code token.ErrorCode, offset, length int)
}
