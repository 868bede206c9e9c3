// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over a parsed value tree.
package cursor

import (
	"fmt"

	"github.com/creachadair/jparse/ast"
)

// Path traverses a sequential path into the structure of v where path elements
// are as documented for the Cursor.Down method. This is a convenience wrapper
// for creating a cursor, applying path, and retrieving its value.
func Path[T ast.Value](v ast.Value, path ...any) (T, error) {
	c := New(v).Down(path...)
	var zero T
	if err := c.Err(); err != nil {
		return zero, err
	}
	out, ok := c.Value().(T)
	if !ok {
		return zero, fmt.Errorf("wrong value type %T", c.Value())
	}
	return out, nil
}

// A Cursor is a pointer that navigates into the structure of an ast.Value.
type Cursor struct {
	org ast.Value
	stk []ast.Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin ast.Value) *Cursor { return &Cursor{org: origin} }

// Origin returns the origin value of c.
func (c *Cursor) Origin() ast.Value { return c.org }

// AtOrigin reports whether c is at its origin.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the current value under the cursor.
func (c *Cursor) Value() ast.Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Path reports the complete sequence of values from the origin to the current
// location in c.
func (c *Cursor) Path() []ast.Value {
	return append([]ast.Value{c.org}, c.stk...)
}

// Err reports the error from the most recent traversal operation, if any.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor one position upward in the structure, if possible.
// It returns c to permit chaining.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset resets the cursor to its origin and clears its error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are strings (denoting object keys),
// integers (denoting offsets), functions (see below), or nil. If the path
// cannot be completely consumed, traversal stops at the last value reached and
// an error is recorded. Use Err to recover the error.
//
// If a path element is a string, the corresponding value must be an object,
// and the string selects the value of the member with that key.
//
// If a path element is an integer, the corresponding value must be an array or
// object, and the integer resolves to an index in the array, or in the keys
// of the object taken in sorted order. Negative indices count backward from
// the end (-1 is last, -2 second last). An error is reported if the index is
// out of bounds.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(ast.Value) (ast.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
//
// A nil path element is ignored.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		if elt == nil {
			continue
		}
		next, err := step(cur, elt)
		if err != nil {
			c.err = err
			break
		}
		c.stk = append(c.stk, next)
		cur = next
	}
	return c
}

// step resolves a single path element relative to cur.
func step(cur ast.Value, elt any) (ast.Value, error) {
	switch t := elt.(type) {
	case string:
		obj, ok := cur.(ast.Object)
		if !ok {
			return nil, fmt.Errorf("cannot select key %q from %s", t, kindOf(cur))
		} else if v, ok := obj.Find(t); ok {
			return v, nil
		}
		return nil, fmt.Errorf("key %q not found", t)

	case int:
		switch e := cur.(type) {
		case ast.Array:
			if i, ok := resolveIndex(len(e), t); ok {
				return e[i], nil
			}
			return nil, fmt.Errorf("array index %d out of bounds (n=%d)", t, len(e))
		case ast.Object:
			if i, ok := resolveIndex(len(e), t); ok {
				return e[e.Keys()[i]], nil
			}
			return nil, fmt.Errorf("object index %d out of bounds (n=%d)", t, len(e))
		}
		return nil, fmt.Errorf("cannot index %s with %d", kindOf(cur), t)

	case func(ast.Value) (ast.Value, error):
		return t(cur)
	}
	return nil, fmt.Errorf("invalid path element %T", elt)
}

func kindOf(v ast.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

// resolveIndex maps i, which may be negative, to an offset in a sequence of
// length n, and reports whether the result is in range.
func resolveIndex(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
