package parser

import "github.com/mkantor/node-json5-parser/token"

// Parse materializes text into a plain Go value (map[string]any,
// []any, string, float64, bool, or nil) using the same visitor events
// ParseTree consumes, per spec.md §4.5. Errors encountered during parsing
// are appended to errs (if non-nil) rather than aborting the parse; the
// best-effort value is always returned.
func Parse(text string, errs *ErrorList, opts *Options) any {
	m := &materializer{}
	v := &Visitor{
		OnObjectBegin: func(offset, length, line, char int) {
			m.push(make(map[string]any))
		},
		OnObjectProperty: func(key string, offset, length, line, char int) {
			m.key = key
		},
		OnObjectEnd: func(offset, length, line, char int) {
			m.pop()
		},
		OnArrayBegin: func(offset, length, line, char int) {
			m.push(&arrayBox{})
		},
		OnArrayEnd: func(offset, length, line, char int) {
			m.pop()
		},
		OnLiteralValue: func(value any, offset, length, line, char int) {
			m.assign(value)
		},
		OnError: func(code token.ErrorCode, offset, length int) {
			errs.add(&Error{Code: code, Offset: offset, Length: length})
		},
	}
	Visit(text, v, opts)
	return unbox(m.root)
}

// arrayBox gives an in-progress array stable identity on the materializer
// stack: a parent container holds the *arrayBox pointer itself, so
// appending an element (which reassigns the boxed slice header) stays
// visible to the parent without having to walk back up and replace
// anything.
type arrayBox struct {
	items []any
}

// materializer tracks the stack of in-progress containers as the visitor
// drives it; it mirrors the tree builder's push/assign/pop shape in
// tree.go but assembles plain values instead of Nodes.
type materializer struct {
	root  any
	stack []any // each entry is a map[string]any or *arrayBox
	key   string
}

func (m *materializer) push(container any) {
	if len(m.stack) == 0 {
		m.root = container
	} else {
		m.assignInto(m.stack[len(m.stack)-1], container)
	}
	m.stack = append(m.stack, container)
}

func (m *materializer) pop() {
	m.stack = m.stack[:len(m.stack)-1]
}

func (m *materializer) assign(value any) {
	if len(m.stack) == 0 {
		m.root = value
		return
	}
	m.assignInto(m.stack[len(m.stack)-1], value)
}

// assignInto places value into the current container: under m.key for an
// object (duplicate keys overwrite earlier ones), or appended for an
// array.
func (m *materializer) assignInto(container, value any) {
	switch c := container.(type) {
	case map[string]any:
		c[m.key] = value
	case *arrayBox:
		c.items = append(c.items, value)
	}
}

// unbox recursively converts the internal *arrayBox representation into
// plain []any values for the materialized result.
func unbox(v any) any {
	switch c := v.(type) {
	case *arrayBox:
		out := make([]any, len(c.items))
		for i, item := range c.items {
			out[i] = unbox(item)
		}
		return out
	case map[string]any:
		for k, item := range c {
			c[k] = unbox(item)
		}
		return c
	default:
		return v
	}
}
