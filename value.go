// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Value is a JSON value: a string, integer, float, Boolean, null, object,
// or array.  The JSON method renders the value as compact JSON text.  The
// String method renders the plain text form, which for strings is the
// undecorated text and for all other values equals the JSON form.
type Value interface {
	JSON() string
	String() string
}

// Parse reads a single value from the beginning of r.  Input after the first
// complete value is left unread and is not validated.
func Parse(r io.Reader) (Value, error) { return New(r).NextValue() }

// ParseString reads a single value from the beginning of s.
func ParseString(s string) (Value, error) { return Parse(strings.NewReader(s)) }

// A String is a string value.
type String string

// JSON renders s as a quoted JSON string.
func (s String) JSON() string { return Quote(string(s)) }

// String returns the text of s without quotation.
func (s String) String() string { return string(s) }

// An Int is a 64-bit integer value.
type Int int64

func (z Int) JSON() string { return strconv.FormatInt(int64(z), 10) }

func (z Int) String() string { return z.JSON() }

// A Float is a 64-bit floating-point value.
type Float float64

// JSON renders f in the shortest form that parses back to the same value.
// It panics if f is not finite, which has no JSON representation.
func (f Float) JSON() string {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		panic("JSON does not allow non-finite numbers.")
	}
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) String() string { return f.JSON() }

// A Bool is a Boolean constant, true or false.
type Bool bool

func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }

func (b Bool) String() string { return b.JSON() }

// Null represents the explicit null value.  It is distinct from a member or
// element that is absent entirely.
type Null struct{}

func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }

// ParseLiteral converts the text of an unquoted literal into a Value.  The
// constants true, false, and null are matched without case sensitivity; text
// that plausibly begins a number is converted to an Int or Float when it
// parses as one; all other text, including near misses such as "nul" or
// "12x", is kept verbatim as a String.  ParseLiteral never fails.
func ParseLiteral(text string) Value {
	if text == "" {
		return String("")
	}
	if strings.EqualFold(text, "true") {
		return Bool(true)
	}
	if strings.EqualFold(text, "false") {
		return Bool(false)
	}
	if strings.EqualFold(text, "null") {
		return Null{}
	}

	// A number must begin with a digit, a sign, or a decimal point; nothing
	// else is ever mistaken for one.
	if b := text[0]; (b >= '0' && b <= '9') || b == '-' || b == '+' || b == '.' {
		if v, ok := parseNumber(text); ok {
			return v
		}
	}
	return String(text)
}

// parseNumber reports the numeric Value of text, if it has one.  Integers
// take a hexadecimal form with an 0x prefix or a decimal form; a decimal
// point or exponent marker makes the text a Float.  Values that overflow and
// floats that are not finite are rejected, not approximated.
func parseNumber(text string) (Value, bool) {
	if len(text) > 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X') {
		v, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			return nil, false
		}
		return Int(v), true
	}
	if strings.ContainsAny(text, ".eE") {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
			return nil, false
		}
		return Float(f), true
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, false
	}
	return Int(v), true
}

// ToValue converts a string, int, int64, float64, bool, nil, or Value into a
// Value.  It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	}
	panic(fmt.Sprintf("invalid value of type %T", v))
}
