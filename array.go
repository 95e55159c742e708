// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import "strings"

// An Array is an ordered sequence of values.
type Array struct {
	Values []Value
}

// Len reports the number of elements of a.
func (a *Array) Len() int { return len(a.Values) }

func (a *Array) JSON() string {
	if len(a.Values) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(a.Values[0].JSON())
	for _, v := range a.Values[1:] {
		sb.WriteByte(',')
		sb.WriteString(v.JSON())
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a *Array) String() string { return a.JSON() }

// ParseArray parses an array from s.  The scanner must be positioned at the
// opening bracket, or at whitespace preceding it.
//
// The accepted syntax is a permissive superset of JSON arrays: the element
// separator may be ; as well as ,, a trailing separator before the closing
// bracket is allowed, and an elided element (a separator with no value
// before it) is recorded as an explicit null.
func ParseArray(s *Scanner) (*Array, error) {
	if c, err := s.NextNonSpace(); err != nil {
		return nil, err
	} else if c != '[' {
		return nil, s.SyntaxError("A JSONArray text must start with '['")
	}
	arr := new(Array)
	c, err := s.NextNonSpace()
	if err != nil {
		return nil, err
	}
	if c == 0 {
		return nil, s.SyntaxError("Expected a ',' or ']'")
	}
	if c == ']' {
		return arr, nil
	}
	if err := s.Back(); err != nil {
		return nil, err
	}
	for {
		c, err := s.NextNonSpace()
		if err != nil {
			return nil, err
		}
		if c == ',' {
			// An elided element stands for null.  The separator is rewound
			// so the switch below sees it again.
			if err := s.Back(); err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, Null{})
		} else {
			if err := s.Back(); err != nil {
				return nil, err
			}
			v, err := s.NextValue()
			if err != nil {
				return nil, err
			}
			arr.Values = append(arr.Values, v)
		}

		c, err = s.NextNonSpace()
		if err != nil {
			return nil, err
		}
		switch c {
		case 0:
			return nil, s.SyntaxError("Expected a ',' or ']'")
		case ';', ',':
			c, err := s.NextNonSpace()
			if err != nil {
				return nil, err
			}
			if c == 0 {
				return nil, s.SyntaxError("Expected a ',' or ']'")
			}
			if c == ']' {
				return arr, nil
			}
			if err := s.Back(); err != nil {
				return nil, err
			}
		case ']':
			return arr, nil
		default:
			return nil, s.SyntaxError("Expected a ',' or ']'")
		}
	}
}
