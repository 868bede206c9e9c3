// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/creachadair/jparse/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a \t b"), `"a \t b"`},
		{ast.String(`back\slash`), `"back\\slash"`},

		{ast.Number(0), `0`},
		{ast.Number(15), `15`},
		{ast.Number(2147483647), `2147483647`},
		{ast.Number(-0.25), `-0.25`},

		{ast.Array{}, `[]`},
		{ast.Array{ast.Bool(false)}, `[false]`},
		{ast.Array{ast.Bool(true), ast.Number(199)}, `[true,199]`},
		{ast.Array{
			ast.String("free"),
			ast.String("your"),
			ast.String("mind"),
		}, `["free","your","mind"]`},

		{ast.Object{}, `{}`},
		{ast.Object{
			"name":  ast.String("Dennis"),
			"age":   ast.Number(37),
			"isOld": ast.Bool(false),
		}, `{"age":37,"isOld":false,"name":"Dennis"}`},
		{ast.Object{
			"values": ast.Array{ast.Number(5), ast.Number(10), ast.Bool(true)},
			"page": ast.Object{
				"token": ast.String("xyz-pdq-zvm"),
				"count": ast.Number(100),
			},
		}, `{"page":{"count":100,"token":"xyz-pdq-zvm"},"values":[5,10,true]}`},
		{ast.Object{`"q"`: ast.Array{ast.Object{}}}, `{"\"q\"":[{}]}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  ast.Kind
		name  string
	}{
		{ast.String("x"), ast.StringKind, "string"},
		{ast.Number(1), ast.NumberKind, "number"},
		{ast.Bool(true), ast.BoolKind, "boolean"},
		{ast.Object{}, ast.ObjectKind, "object"},
		{ast.Array{}, ast.ArrayKind, "array"},
	}
	for _, tc := range tests {
		if got := tc.input.Kind(); got != tc.want {
			t.Errorf("Kind %v: got %v, want %v", tc.input, got, tc.want)
		}
		if got := tc.want.String(); got != tc.name {
			t.Errorf("String %d: got %q, want %q", tc.want, got, tc.name)
		}
	}
	if got := ast.Kind(0).String(); got != "invalid" {
		t.Errorf("String 0: got %q, want invalid", got)
	}
}

func TestObject(t *testing.T) {
	obj := ast.Object{"b": ast.Number(2), "a": ast.Number(1), "c": ast.Array{}}
	if diff := cmp.Diff([]string{"a", "b", "c"}, obj.Keys()); diff != "" {
		t.Errorf("Keys: (-want, +got)\n%s", diff)
	}
	if v, ok := obj.Find("b"); !ok || v != ast.Number(2) {
		t.Errorf("Find b: got %v, %v; want 2, true", v, ok)
	}
	if v, ok := obj.Find("nonesuch"); ok {
		t.Errorf("Find nonesuch: got %v, want not found", v)
	}
	if obj.Len() != 3 {
		t.Errorf("Len: got %d, want 3", obj.Len())
	}
}

func TestToValue(t *testing.T) {
	got := ast.ToValue(map[string]any{
		"s":   "text",
		"b":   true,
		"i":   int64(-3),
		"u8":  uint8(200),
		"f":   1.5,
		"arr": []any{1, "two", false, []any{}},
		"obj": map[string]any{"nested": ast.String("v")},
	})
	want := ast.Object{
		"s":   ast.String("text"),
		"b":   ast.Bool(true),
		"i":   ast.Number(-3),
		"u8":  ast.Number(200),
		"f":   ast.Number(1.5),
		"arr": ast.Array{ast.Number(1), ast.String("two"), ast.Bool(false), ast.Array{}},
		"obj": ast.Object{"nested": ast.String("v")},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToValue: (-want, +got)\n%s", diff)
	}

	t.Run("Unsupported", func(t *testing.T) {
		mtest.MustPanic(t, func() { ast.ToValue(nil) })
		mtest.MustPanic(t, func() { ast.ToValue([]bool{true}) })
		mtest.MustPanic(t, func() { ast.ToValue(func() {}) })
		mtest.MustPanic(t, func() { ast.ToValue(make(chan struct{})) })
		mtest.MustPanic(t, func() { ast.ToValue([]any{1, struct{}{}}) })
	})
}

func TestToAny(t *testing.T) {
	in := ast.Object{
		"s":   ast.String("text"),
		"n":   ast.Number(25),
		"b":   ast.Bool(false),
		"arr": ast.Array{ast.Number(1), ast.Array{}, ast.Object{}},
	}
	got := ast.ToAny(in)
	want := map[string]any{
		"s":   "text",
		"n":   25.0,
		"b":   false,
		"arr": []any{1.0, []any{}, map[string]any{}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToAny: (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff(in, ast.ToValue(got)); diff != "" {
		t.Errorf("ToValue(ToAny): (-want, +got)\n%s", diff)
	}
	if got := ast.ToAny(nil); got != nil {
		t.Errorf("ToAny(nil): got %v, want nil", got)
	}
}
