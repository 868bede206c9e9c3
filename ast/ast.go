// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a tree representation for parsed values, and a
// recursive-descent parser that constructs trees from source text.
package ast

import (
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/creachadair/jparse"
)

// Kind identifies the concrete type of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	StringKind Kind = iota + 1
	NumberKind
	BoolKind
	ObjectKind
	ArrayKind
)

var kindStr = [...]string{
	StringKind: "string",
	NumberKind: "number",
	BoolKind:   "boolean",
	ObjectKind: "object",
	ArrayKind:  "array",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindStr) {
		return "invalid"
	}
	return kindStr[k]
}

// A Value is a node of a parsed tree. The concrete type is one of String,
// Number, Bool, Object, or Array.
type Value interface {
	// Kind reports the kind of the value.
	Kind() Kind

	// JSON renders the value as compact JSON text.
	JSON() string

	isValue()
}

// A String is a string value. Its content is the verbatim source text between
// the quotation marks.
type String string

func (String) Kind() Kind { return StringKind }

// JSON satisfies the Value interface.
func (s String) JSON() string { return jparse.Quote(string(s)) }

func (String) isValue() {}

// A Number is a numeric value. The grammar admits only integers, but all
// numbers are stored as float64.
type Number float64

func (Number) Kind() Kind { return NumberKind }

// JSON satisfies the Value interface.
func (n Number) JSON() string { return formatNumber(float64(n)) }

func (Number) isValue() {}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() Kind { return BoolKind }

// JSON satisfies the Value interface.
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (Bool) isValue() {}

// An Object is a collection of key-value members. Keys are unique.
type Object map[string]Value

func (Object) Kind() Kind { return ObjectKind }

// JSON satisfies the Value interface. Members are rendered in key order.
func (o Object) JSON() string { return string(o.appendJSON(nil)) }

func (Object) isValue() {}

// Len reports the number of members in o.
func (o Object) Len() int { return len(o) }

// Find reports the value of the member of o with the given key, if present.
func (o Object) Find(key string) (Value, bool) {
	v, ok := o[key]
	return v, ok
}

// Keys returns the keys of o in lexicographic order.
func (o Object) Keys() []string { return slices.Sorted(maps.Keys(o)) }

func (o Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, key := range o.Keys() {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = jparse.AppendQuote(buf, key)
		buf = append(buf, ':')
		buf = appendJSON(buf, o[key])
	}
	return append(buf, '}')
}

// An Array is a sequence of values.
type Array []Value

func (Array) Kind() Kind { return ArrayKind }

// JSON satisfies the Value interface.
func (a Array) JSON() string { return string(a.appendJSON(nil)) }

func (Array) isValue() {}

// Len reports the number of elements in a.
func (a Array) Len() int { return len(a) }

func (a Array) appendJSON(buf []byte) []byte {
	buf = append(buf, '[')
	for i, v := range a {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = appendJSON(buf, v)
	}
	return append(buf, ']')
}

func appendJSON(buf []byte, v Value) []byte {
	switch t := v.(type) {
	case Object:
		return t.appendJSON(buf)
	case Array:
		return t.appendJSON(buf)
	case String:
		return jparse.AppendQuote(buf, string(t))
	default:
		return append(buf, v.JSON()...)
	}
}

// formatNumber renders f in the shortest decimal form with no exponent.
func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// ToValue converts a Go value into a Value. It accepts strings, Booleans,
// built-in integer and floating-point types, map[string]any, []any, and values
// that already implement Value. Composite arguments are converted
// recursively. ToValue panics if v or any of its elements has some other type.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Number(t)
	case int8:
		return Number(t)
	case int16:
		return Number(t)
	case int32:
		return Number(t)
	case int64:
		return Number(t)
	case uint:
		return Number(t)
	case uint8:
		return Number(t)
	case uint16:
		return Number(t)
	case uint32:
		return Number(t)
	case uint64:
		return Number(t)
	case float32:
		return Number(t)
	case float64:
		return Number(t)
	case map[string]any:
		obj := make(Object, len(t))
		for key, elt := range t {
			obj[key] = ToValue(elt)
		}
		return obj
	case []any:
		arr := make(Array, len(t))
		for i, elt := range t {
			arr[i] = ToValue(elt)
		}
		return arr
	default:
		panic(fmt.Sprintf("unsupported value type %T", v))
	}
}

// ToAny converts v into plain Go values: a String becomes a string, a Number
// a float64, a Bool a bool, an Object a map[string]any, and an Array an []any.
// It is the inverse of ToValue, and is useful for handing a tree to encoders
// that work on ordinary Go values.
func ToAny(v Value) any {
	switch t := v.(type) {
	case String:
		return string(t)
	case Number:
		return float64(t)
	case Bool:
		return bool(t)
	case Object:
		m := make(map[string]any, len(t))
		for key, elt := range t {
			m[key] = ToAny(elt)
		}
		return m
	case Array:
		out := make([]any, len(t))
		for i, elt := range t {
			out[i] = ToAny(elt)
		}
		return out
	default:
		return nil
	}
}
