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

package token

// ScanError is the scan-level fault a single token may carry. At most one
// scan error attaches to a token; the token is still emitted alongside it.
type ScanError int

const (
	NoScanError ScanError = iota
	UnexpectedEndOfComment
	UnexpectedEndOfString
	UnexpectedEndOfNumber
	InvalidUnicode
	InvalidEscapeCharacter
	InvalidCharacter
)

var scanErrorNames = [...]string{
	NoScanError:            "None",
	UnexpectedEndOfComment: "UnexpectedEndOfComment",
	UnexpectedEndOfString:  "UnexpectedEndOfString",
	UnexpectedEndOfNumber:  "UnexpectedEndOfNumber",
	InvalidUnicode:         "InvalidUnicode",
	InvalidEscapeCharacter: "InvalidEscapeCharacter",
	InvalidCharacter:       "InvalidCharacter",
}

func (e ScanError) String() string {
	if int(e) >= 0 && int(e) < len(scanErrorNames) {
		return scanErrorNames[e]
	}
	return "ScanError(?)"
}

// ErrorCode is the closed set of parse-error codes that [parser.Visit]
// reports through its visitor's OnError callback and that [parser.Parse] and
// [parser.ParseTree] append to a caller-supplied error list.
type ErrorCode int

const (
	InvalidSymbol ErrorCode = iota
	InvalidNumberFormat
	PropertyNameExpected
	ValueExpected
	ColonExpected
	CommaExpected
	CloseBraceExpected
	CloseBracketExpected
	EndOfFileExpected
	InvalidCommentToken
	ErrUnexpectedEndOfComment
	ErrUnexpectedEndOfString
	ErrUnexpectedEndOfNumber
	ErrInvalidUnicode
	ErrInvalidEscapeCharacter
	ErrInvalidCharacter
)

var errorCodeNames = [...]string{
	InvalidSymbol:             "InvalidSymbol",
	InvalidNumberFormat:       "InvalidNumberFormat",
	PropertyNameExpected:      "PropertyNameExpected",
	ValueExpected:             "ValueExpected",
	ColonExpected:             "ColonExpected",
	CommaExpected:             "CommaExpected",
	CloseBraceExpected:        "CloseBraceExpected",
	CloseBracketExpected:      "CloseBracketExpected",
	EndOfFileExpected:         "EndOfFileExpected",
	InvalidCommentToken:       "InvalidCommentToken",
	ErrUnexpectedEndOfComment: "UnexpectedEndOfComment",
	ErrUnexpectedEndOfString:  "UnexpectedEndOfString",
	ErrUnexpectedEndOfNumber:  "UnexpectedEndOfNumber",
	ErrInvalidUnicode:         "InvalidUnicode",
	ErrInvalidEscapeCharacter: "InvalidEscapeCharacter",
	ErrInvalidCharacter:       "InvalidCharacter",
}

func (c ErrorCode) String() string {
	if int(c) >= 0 && int(c) < len(errorCodeNames) {
		return errorCodeNames[c]
	}
	return "ErrorCode(?)"
}

// FromScanError maps a scanner-level fault onto the parse error code used to
// report it, per the table in spec.md §4.4.
func FromScanError(e ScanError) ErrorCode {
	switch e {
	case UnexpectedEndOfComment:
		return ErrUnexpectedEndOfComment
	case UnexpectedEndOfString:
		return ErrUnexpectedEndOfString
	case UnexpectedEndOfNumber:
		return ErrUnexpectedEndOfNumber
	case InvalidUnicode:
		return ErrInvalidUnicode
	case InvalidEscapeCharacter:
		return ErrInvalidEscapeCharacter
	case InvalidCharacter:
		return ErrInvalidCharacter
	default:
		return ErrInvalidCharacter
	}
}

// NodeKind tags the variant of a tree-builder [parser.Node].
type NodeKind int

const (
	KindObject NodeKind = iota
	KindArray
	KindProperty
	KindString
	KindNumber
	KindBoolean
	KindNull
)

var nodeKindNames = [...]string{
	KindObject:   "object",
	KindArray:    "array",
	KindProperty: "property",
	KindString:   "string",
	KindNumber:   "number",
	KindBoolean:  "boolean",
	KindNull:     "null",
}

func (k NodeKind) String() string {
	if int(k) >= 0 && int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}
