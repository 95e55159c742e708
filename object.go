// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"fmt"
	"strings"
)

// An Object is an ordered collection of key-value members.  Members keep the
// order in which they appeared in the input.
type Object struct {
	Members []*Member
}

// Find returns the first member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Len reports the number of members of o.
func (o *Object) Len() int { return len(o.Members) }

func (o *Object) JSON() string {
	if len(o.Members) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o.Members[0].JSON())
	for _, m := range o.Members[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.JSON())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o *Object) String() string { return o.JSON() }

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m *Member) JSON() string {
	k := Quote(m.Key)
	v := m.Value.JSON()
	buf := make([]byte, len(k)+len(v)+1)
	n := copy(buf, k)
	buf[n] = ':'
	copy(buf[n+1:], v)
	return string(buf)
}

func (m *Member) String() string { return m.JSON() }

// Field constructs an object member with the given key and value.  The value
// must be a string, int, int64, float64, bool, nil, or Value; any other type
// panics.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ParseObject parses an object from s.  The scanner must be positioned at
// the opening brace, or at whitespace preceding it.
//
// The accepted syntax is a permissive superset of JSON objects: keys may be
// unquoted or single-quoted, the key separator may be = or => as well as :,
// the pair separator may be ; as well as ,, and a trailing separator before
// the closing brace is allowed.  Duplicate keys are an error.
func ParseObject(s *Scanner) (*Object, error) {
	if c, err := s.NextNonSpace(); err != nil {
		return nil, err
	} else if c != '{' {
		return nil, s.SyntaxError("A JSONObject text must begin with '{'")
	}
	obj := new(Object)
	for {
		c, err := s.NextNonSpace()
		if err != nil {
			return nil, err
		}
		switch c {
		case 0:
			return nil, s.SyntaxError("A JSONObject text must end with '}'")
		case '}':
			return obj, nil
		}
		if err := s.Back(); err != nil {
			return nil, err
		}
		kv, err := s.NextValue()
		if err != nil {
			return nil, err
		}
		key := kv.String()

		// The key separator is ordinarily a colon, but a lone = or an =>
		// arrow are also accepted.
		c, err = s.NextNonSpace()
		if err != nil {
			return nil, err
		}
		if c == '=' {
			nc, err := s.Next()
			if err != nil {
				return nil, err
			}
			if nc != '>' {
				if err := s.Back(); err != nil {
					return nil, err
				}
			}
		} else if c != ':' {
			return nil, s.SyntaxError("Expected a ':' after a key")
		}
		val, err := s.NextValue()
		if err != nil {
			return nil, err
		}
		if obj.Find(key) != nil {
			return nil, s.SyntaxError(fmt.Sprintf("Duplicate key %q", key))
		}
		obj.Members = append(obj.Members, &Member{Key: key, Value: val})

		// Pairs are ordinarily separated by commas, but semicolons are also
		// accepted, and a trailing separator before the close is allowed.
		c, err = s.NextNonSpace()
		if err != nil {
			return nil, err
		}
		switch c {
		case ';', ',':
			c, err := s.NextNonSpace()
			if err != nil {
				return nil, err
			}
			if c == 0 {
				return nil, s.SyntaxError("A JSONObject text must end with '}'")
			}
			if c == '}' {
				return obj, nil
			}
			if err := s.Back(); err != nil {
				return nil, err
			}
		case 0:
			return nil, s.SyntaxError("A JSONObject text must end with '}'")
		case '}':
			return obj, nil
		default:
			return nil, s.SyntaxError("Expected a ',' or '}'")
		}
	}
}
