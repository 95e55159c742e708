// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/creachadair/jtok"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		input string
		want  jtok.Value
	}{
		{"", jtok.String("")},

		// Constants match without case sensitivity.
		{"true", jtok.Bool(true)},
		{"TRUE", jtok.Bool(true)},
		{"True", jtok.Bool(true)},
		{"false", jtok.Bool(false)},
		{"FALSE", jtok.Bool(false)},
		{"null", jtok.Null{}},
		{"NULL", jtok.Null{}},
		{"Null", jtok.Null{}},

		// Near misses are strings, not errors.
		{"nul", jtok.String("nul")},
		{"truth", jtok.String("truth")},
		{"falsehood", jtok.String("falsehood")},

		// Integers.
		{"0", jtok.Int(0)},
		{"123", jtok.Int(123)},
		{"-45", jtok.Int(-45)},
		{"+5", jtok.Int(5)},
		{"007", jtok.Int(7)},
		{"9223372036854775807", jtok.Int(math.MaxInt64)},
		{"-9223372036854775808", jtok.Int(math.MinInt64)},

		// Hexadecimal integers.
		{"0x1f", jtok.Int(31)},
		{"0XFF", jtok.Int(255)},

		// Floats.
		{"123.5", jtok.Float(123.5)},
		{".5", jtok.Float(0.5)},
		{"-2.5e3", jtok.Float(-2500)},
		{"1E3", jtok.Float(1000)},
		{"0.0", jtok.Float(0)},

		// Text that begins like a number but does not parse as one, or that
		// overflows, is kept verbatim.
		{"12x", jtok.String("12x")},
		{"1..2", jtok.String("1..2")},
		{"0x", jtok.String("0x")},
		{"0xzz", jtok.String("0xzz")},
		{"-0x10", jtok.String("-0x10")},
		{"1e999", jtok.String("1e999")},
		{"9223372036854775808", jtok.String("9223372036854775808")},
		{"NaN", jtok.String("NaN")},
		{"Infinity", jtok.String("Infinity")},

		{"hello", jtok.String("hello")},
		{"two words", jtok.String("two words")},
	}
	for _, test := range tests {
		got := jtok.ParseLiteral(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nValue: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestValueStrings(t *testing.T) {
	tests := []struct {
		val  jtok.Value
		json string
		str  string
	}{
		{jtok.String(""), `""`, ""},
		{jtok.String("a\tb"), `"a\tb"`, "a\tb"},
		{jtok.String(`say "hi"`), `"say \"hi\""`, `say "hi"`},
		{jtok.Int(0), "0", "0"},
		{jtok.Int(-17), "-17", "-17"},
		{jtok.Float(0.25), "0.25", "0.25"},
		{jtok.Float(-2500), "-2500", "-2500"},
		{jtok.Float(1e21), "1e+21", "1e+21"},
		{jtok.Bool(true), "true", "true"},
		{jtok.Bool(false), "false", "false"},
		{jtok.Null{}, "null", "null"},
		{&jtok.Array{}, "[]", "[]"},
		{&jtok.Object{}, "{}", "{}"},
		{&jtok.Array{Values: []jtok.Value{
			jtok.Int(1), jtok.String("two"), jtok.Null{},
		}}, `[1,"two",null]`, `[1,"two",null]`},
		{&jtok.Object{Members: []*jtok.Member{
			jtok.Field("a", 1),
			jtok.Field("b", "x"),
			jtok.Field("c", nil),
		}}, `{"a":1,"b":"x","c":null}`, `{"a":1,"b":"x","c":null}`},
	}
	for _, test := range tests {
		if got := test.val.JSON(); got != test.json {
			t.Errorf("Value %+v JSON: got %#q, want %#q", test.val, got, test.json)
		}
		if got := test.val.String(); got != test.str {
			t.Errorf("Value %+v String: got %#q, want %#q", test.val, got, test.str)
		}
	}
}

func TestNonFiniteJSON(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		v := mtest.MustPanic(t, func() { jtok.Float(bad).JSON() })
		if got, ok := v.(string); !ok || !strings.Contains(got, "non-finite") {
			t.Errorf("Float(%v).JSON panic: got %v, want non-finite message", bad, v)
		}
	}
}

func TestToValue(t *testing.T) {
	tests := []struct {
		input any
		want  jtok.Value
	}{
		{nil, jtok.Null{}},
		{"pear", jtok.String("pear")},
		{true, jtok.Bool(true)},
		{42, jtok.Int(42)},
		{int64(-7), jtok.Int(-7)},
		{1.5, jtok.Float(1.5)},
		{jtok.Int(3), jtok.Int(3)},
		{jtok.Null{}, jtok.Null{}},
	}
	for _, test := range tests {
		got := jtok.ToValue(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %v\nValue: (-want, +got)\n%s", test.input, diff)
		}
	}

	t.Run("Invalid", func(t *testing.T) {
		v := mtest.MustPanic(t, func() { jtok.ToValue(uint(1)) })
		if got := fmt.Sprint(v); !strings.Contains(got, "uint") {
			t.Errorf("ToValue panic: got %v, want a type complaint", v)
		}
	})
}

func TestObjectFind(t *testing.T) {
	obj := &jtok.Object{Members: []*jtok.Member{
		jtok.Field("alpha", 1),
		jtok.Field("bravo", "two"),
	}}
	if obj.Len() != 2 {
		t.Errorf("Len: got %d, want 2", obj.Len())
	}
	if m := obj.Find("bravo"); m == nil {
		t.Error(`Find("bravo"): got nil, want a member`)
	} else if got := m.Value.JSON(); got != `"two"` {
		t.Errorf(`Find("bravo"): got value %#q, want "two"`, got)
	}
	if m := obj.Find("charlie"); m != nil {
		t.Errorf(`Find("charlie"): got %+v, want nil`, m)
	}
}

func TestMemberJSON(t *testing.T) {
	m := jtok.Field("key", "</b>")
	const want = `"key":"<\/b>"`
	if got := m.JSON(); got != want {
		t.Errorf("Member JSON: got %#q, want %#q", got, want)
	}
	if got := m.String(); got != want {
		t.Errorf("Member String: got %#q, want %#q", got, want)
	}
}
