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

package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mkantor/node-json5-parser/token"
)

// Error is a single fault-tolerant parse error: a code plus the source span
// it was detected at. It is data, not control flow -- spec.md §7 -- and is
// never the mechanism by which a parse is aborted.
type Error struct {
	Code   token.ErrorCode
	Offset int
	Length int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d (length %d)", e.Code, e.Offset, e.Length)
}

// ErrorList is an append-only accumulator of parse [Error]s, modeled on
// cue/errors.List: sortable by position and rendered as a single bounded
// error string so editor and CLI callers don't have to range over the
// slice themselves.
type ErrorList struct {
	errs []*Error
}

// add appends e. It is safe to call on a nil *ErrorList, which discards e:
// passing nil as the errs argument to [Parse] or [ParseTree] simply
// discards errors.
func (l *ErrorList) add(e *Error) {
	if l == nil {
		return
	}
	l.errs = append(l.errs, e)
}

// Errors returns the accumulated errors in the order they were reported.
func (l *ErrorList) Errors() []*Error {
	if l == nil {
		return nil
	}
	return l.errs
}

// Len implements sort.Interface.
func (l *ErrorList) Len() int { return len(l.errs) }

// Less implements sort.Interface, ordering by source offset.
func (l *ErrorList) Less(i, j int) bool { return l.errs[i].Offset < l.errs[j].Offset }

// Swap implements sort.Interface.
func (l *ErrorList) Swap(i, j int) { l.errs[i], l.errs[j] = l.errs[j], l.errs[i] }

// Sort orders the accumulated errors by source offset.
func (l *ErrorList) Sort() { sort.Sort(l) }

const maxErrorsRendered = 10

// Error implements the error interface, rendering up to maxErrorsRendered
// messages joined by newlines plus a count of any remaining.
func (l *ErrorList) Error() string {
	if l == nil || len(l.errs) == 0 {
		return ""
	}
	var b strings.Builder
	n := len(l.errs)
	shown := n
	if shown > maxErrorsRendered {
		shown = maxErrorsRendered
	}
	for i := 0; i < shown; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(l.errs[i].Error())
	}
	if n > shown {
		fmt.Fprintf(&b, "\n... and %d more errors", n-shown)
	}
	return b.String()
}
