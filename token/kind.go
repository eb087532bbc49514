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

// Package token defines the closed tag sets shared by the scanner and the
// parser: token kinds, scan errors and parse error codes.
package token

import "strconv"

// Kind is the category of a single lexical token produced by the scanner.
type Kind int

const (
	EOF Kind = iota
	Unknown

	OpenBrace
	CloseBrace
	OpenBracket
	CloseBracket
	Comma
	Colon

	Null
	True
	False
	String
	Number
	Identifier
	Infinity
	NaN

	LineComment
	BlockComment
	LineBreak
	Whitespace
)

var kindNames = [...]string{
	EOF:          "EOF",
	Unknown:      "Unknown",
	OpenBrace:    "OpenBrace",
	CloseBrace:   "CloseBrace",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	Comma:        "Comma",
	Colon:        "Colon",
	Null:         "Null",
	True:         "True",
	False:        "False",
	String:       "String",
	Number:       "Number",
	Identifier:   "Identifier",
	Infinity:     "Infinity",
	NaN:          "NaN",
	LineComment:  "LineComment",
	BlockComment: "BlockComment",
	LineBreak:    "LineBreak",
	Whitespace:   "Whitespace",
}

// String returns the name of the kind, or "Kind(n)" for an out-of-range value.
func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// IsTrivia reports whether k is whitespace, a line break or a comment —
// the set of kinds a scanner constructed with ignoreTrivia=true will skip.
func (k Kind) IsTrivia() bool {
	switch k {
	case LineComment, BlockComment, LineBreak, Whitespace:
		return true
	default:
		return false
	}
}
