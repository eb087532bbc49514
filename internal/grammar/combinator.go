// Package grammar implements the JSON5 lexical grammar as a family of pure,
// composable matchers over a string prefix. Each matcher inspects the start
// of its input and reports how much of it belongs to the production it
// implements; it never mutates its input or allocates a token.
//
// This mirrors the reference combinator library described in spec.md §4.1:
// and/or/longest/optional/zeroOrMore/oneOrMore/butNot/lookaheadNot compose
// into the full set of JSON5 productions in productions.go, and the scanner
// in package scanner drives the top-level production one token at a time.
package grammar

import "github.com/mkantor/node-json5-parser/token"

// Result is what a matcher reports about a prefix of its input.
type Result struct {
	Success bool
	// Length is the number of code units consumed. On failure, Length is
	// the amount already matched by a preceding part of the production
	// before the failing continuation — used by Or to rank alternatives
	// by how much input they covered.
	Length int
	// LineBreaks is incremented only by the lineTerminatorSequence
	// production; the scanner reads it to advance its line counter.
	LineBreaks int
	// LastLineBreakEnd is the offset, relative to the start of this
	// match, of the first code unit after the last line terminator
	// sequence matched.
	LastLineBreakEnd int
	// Kind is the composed lexical category of the match. Matchers that
	// don't categorize their result leave it at its zero value
	// (token.EOF, meaningless here) and rely on a surrounding WithKind.
	Kind token.Kind
}

// Matcher matches a prefix of s, starting at offset 0 of s.
type Matcher func(s string) Result

func fail(length int) Result { return Result{Success: false, Length: length} }

func empty() Result { return Result{Success: true} }

// Literal matches the input iff it begins with exactly lit.
func Literal(lit string) Matcher {
	return func(s string) Result {
		if len(s) >= len(lit) && s[:len(lit)] == lit {
			return Result{Success: true, Length: len(lit)}
		}
		n := 0
		for n < len(lit) && n < len(s) && s[n] == lit[n] {
			n++
		}
		return fail(n)
	}
}

// Rune matches a single code unit satisfying pred.
func Rune(pred func(r byte) bool) Matcher {
	return func(s string) Result {
		if len(s) > 0 && pred(s[0]) {
			return Result{Success: true, Length: 1}
		}
		return fail(0)
	}
}

// And sequences matchers; it fails as soon as one child fails, carrying the
// aggregate length already matched by the earlier children plus whatever
// the failing child partially matched.
func And(ms ...Matcher) Matcher {
	return func(s string) Result {
		var total Result
		total.Success = true
		off := 0
		for _, m := range ms {
			r := m(s[off:])
			total.Length += r.Length
			total.LineBreaks += r.LineBreaks
			if r.LineBreaks > 0 {
				total.LastLineBreakEnd = off + r.LastLineBreakEnd
			}
			off += r.Length
			if !r.Success {
				total.Success = false
				return total
			}
			if r.Length > 0 {
				total.Kind = composeKind(total.Kind, r.Kind, len(ms) == 1)
			}
		}
		return total
	}
}

// composeKind implements "the child's kind if the other sibling was empty;
// otherwise Unknown" from spec.md §4.1.
func composeKind(acc, next token.Kind, onlyChild bool) token.Kind {
	if onlyChild {
		return next
	}
	if acc == 0 && next != 0 {
		return next
	}
	if acc != 0 && next == 0 {
		return acc
	}
	if acc == next {
		return acc
	}
	return token.Unknown
}

// Or tries each alternative in order and returns the first success. On
// total failure, it returns the alternative that consumed the most input
// (ties keep the first).
func Or(ms ...Matcher) Matcher {
	return func(s string) Result {
		var best Result
		haveBest := false
		for _, m := range ms {
			r := m(s)
			if r.Success {
				return r
			}
			if !haveBest || r.Length > best.Length {
				best = r
				haveBest = true
			}
		}
		return best
	}
}

// Longest behaves like Or on failure, but on success prefers whichever
// alternative consumed more input (ties keep the first) — used to make
// keywords outrank the generic identifier production on an exact-length
// tie, while a longer identifier match still wins.
func Longest(ms ...Matcher) Matcher {
	return func(s string) Result {
		var best Result
		haveSuccess := false
		haveBest := false
		for _, m := range ms {
			r := m(s)
			if r.Success {
				if !haveSuccess || r.Length > best.Length {
					best = r
					haveSuccess = true
				}
				continue
			}
			if !haveSuccess && (!haveBest || r.Length > best.Length) {
				best = r
				haveBest = true
			}
		}
		return best
	}
}

// ZeroOrMore repeats m greedily; it always succeeds (possibly with Length 0).
func ZeroOrMore(m Matcher) Matcher {
	return func(s string) Result {
		var total Result
		total.Success = true
		off := 0
		for off < len(s) {
			r := m(s[off:])
			if !r.Success || r.Length == 0 {
				break
			}
			total.Length += r.Length
			total.LineBreaks += r.LineBreaks
			if r.LineBreaks > 0 {
				total.LastLineBreakEnd = off + r.LastLineBreakEnd
			}
			off += r.Length
		}
		return total
	}
}

// OneOrMore requires at least one match of m, then behaves like ZeroOrMore.
func OneOrMore(m Matcher) Matcher {
	return func(s string) Result {
		first := m(s)
		if !first.Success || first.Length == 0 {
			return fail(first.Length)
		}
		rest := ZeroOrMore(m)(s[first.Length:])
		return Result{
			Success:          true,
			Length:           first.Length + rest.Length,
			LineBreaks:       first.LineBreaks + rest.LineBreaks,
			LastLineBreakEnd: pickLastBreak(first, rest),
		}
	}
}

func pickLastBreak(first, rest Result) int {
	if rest.LineBreaks > 0 {
		return first.Length + rest.LastLineBreakEnd
	}
	if first.LineBreaks > 0 {
		return first.LastLineBreakEnd
	}
	return 0
}

// Optional always succeeds; it returns m's result if m succeeds, otherwise
// the empty success (Length 0).
func Optional(m Matcher) Matcher {
	return func(s string) Result {
		if r := m(s); r.Success {
			return r
		}
		return empty()
	}
}

// ButNot succeeds with a iff b would fail on the same input.
func ButNot(a, b Matcher) Matcher {
	return func(s string) Result {
		ra := a(s)
		if !ra.Success {
			return ra
		}
		if rb := b(s); rb.Success {
			return fail(0)
		}
		return ra
	}
}

// LookaheadNot succeeds with a iff b would fail on the input following a's match.
func LookaheadNot(a, b Matcher) Matcher {
	return func(s string) Result {
		ra := a(s)
		if !ra.Success {
			return ra
		}
		if rb := b(s[ra.Length:]); rb.Success {
			return fail(ra.Length)
		}
		return ra
	}
}

// WithKind overrides the Kind of any successful result with k.
func WithKind(k token.Kind, m Matcher) Matcher {
	return func(s string) Result {
		r := m(s)
		if r.Success {
			r.Kind = k
		}
		return r
	}
}
