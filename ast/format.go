// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Style is a set of functions used to decorate the parts of a formatted
// value, for example with terminal color escapes. Each function has the
// signature of fmt.Sprintf. A nil field leaves its text undecorated.
type Style struct {
	Label  func(string, ...any) string // "Object", "Array", and braces
	Key    func(string, ...any) string // object member keys
	String func(string, ...any) string // string content
	Number func(string, ...any) string // numeric values
	Bool   func(string, ...any) string // Boolean values
	Type   func(string, ...any) string // scalar type names
}

func apply(f func(string, ...any) string, s string) string {
	if f == nil {
		return s
	}
	return f("%s", s)
}

// FormatOptions control the rendering of Format. A nil *FormatOptions is
// ready for use and renders plain text with a two-space indent.
type FormatOptions struct {
	// Indent is the indentation added per level of nesting. If empty, two
	// spaces are used.
	Indent string

	// Style decorates the rendered text.
	Style Style
}

// Format writes a human-readable rendering of v to w.
//
// Each scalar is rendered on one line as its type name and value:
//
//	string "text"
//	number 25
//	boolean true
//
// An object or array is rendered as a labelled block, with one element per
// line indented one level deeper than the label. Object members are prefixed
// by their key, and are rendered in key order:
//
//	Object {
//	  name: string "x"
//	  list: Array {
//	    number 1
//	  }
//	}
func Format(w io.Writer, v Value, opts *FormatOptions) error {
	f := &formatter{w: bufio.NewWriter(w), indent: "  "}
	if opts != nil {
		if opts.Indent != "" {
			f.indent = opts.Indent
		}
		f.style = opts.Style
	}
	f.value(v, 0)
	f.w.WriteByte('\n')
	return f.w.Flush()
}

// FormatToString renders v as Format does with default options, and returns
// the result as a string.
func FormatToString(v Value) string {
	var sb strings.Builder
	Format(&sb, v, nil) // writing to a strings.Builder does not fail
	return sb.String()
}

type formatter struct {
	w      *bufio.Writer
	indent string
	style  Style
}

func (f *formatter) pad(depth int) {
	for range depth {
		f.w.WriteString(f.indent)
	}
}

// value renders v with its first line starting at the current position, and
// subsequent lines indented to depth.
func (f *formatter) value(v Value, depth int) {
	switch t := v.(type) {
	case Object:
		f.w.WriteString(apply(f.style.Label, "Object {"))
		for _, key := range t.Keys() {
			f.w.WriteByte('\n')
			f.pad(depth + 1)
			f.w.WriteString(apply(f.style.Key, key))
			f.w.WriteString(": ")
			f.value(t[key], depth+1)
		}
		f.close(depth)
	case Array:
		f.w.WriteString(apply(f.style.Label, "Array {"))
		for _, elt := range t {
			f.w.WriteByte('\n')
			f.pad(depth + 1)
			f.value(elt, depth+1)
		}
		f.close(depth)
	case String:
		f.scalar("string", f.style.String, `"`+string(t)+`"`)
	case Number:
		f.scalar("number", f.style.Number, formatNumber(float64(t)))
	case Bool:
		f.scalar("boolean", f.style.Bool, fmt.Sprint(bool(t)))
	default:
		fmt.Fprintf(f.w, "<invalid %T>", v)
	}
}

func (f *formatter) close(depth int) {
	f.w.WriteByte('\n')
	f.pad(depth)
	f.w.WriteString(apply(f.style.Label, "}"))
}

func (f *formatter) scalar(kind string, style func(string, ...any) string, text string) {
	f.w.WriteString(apply(f.style.Type, kind))
	f.w.WriteByte(' ')
	f.w.WriteString(apply(style, text))
}
