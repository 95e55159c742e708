// Package jptr implements JSON Pointer (RFC 6901) resolution over value
// trees produced by the jtok package.
package jptr

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/creachadair/jtok"
)

// A Pointer is a parsed JSON Pointer, a sequence of reference tokens that
// select a value within a document.  An empty Pointer selects the document
// itself.
type Pointer []string

// Parse parses s as a JSON Pointer.  The empty string and "#" denote the
// whole document.  A pointer otherwise begins with "/" and separates its
// reference tokens with "/", with ~1 standing for "/" and ~0 for "~" inside
// a token.  The URI fragment form beginning with "#/" is also accepted; its
// tokens are percent-decoded before the ~ escapes are applied.
func Parse(s string) (Pointer, error) {
	if s == "" || s == "#" {
		return nil, nil
	}
	var fragment bool
	if t, ok := strings.CutPrefix(s, "#"); ok {
		fragment, s = true, t
	}
	t, ok := strings.CutPrefix(s, "/")
	if !ok {
		return nil, errors.New("a pointer must start with '/' or '#/'")
	}
	parts := strings.Split(t, "/")
	toks := make(Pointer, len(parts))
	for i, part := range parts {
		if fragment {
			dec, err := url.PathUnescape(part)
			if err != nil {
				return nil, fmt.Errorf("invalid token %q: %w", part, err)
			}
			part = dec
		}
		toks[i] = strings.ReplaceAll(strings.ReplaceAll(part, "~1", "/"), "~0", "~")
	}
	return toks, nil
}

// String renders p in its canonical text form, with "~" and "/" inside
// tokens escaped.  The canonical form of an empty pointer is "".
func (p Pointer) String() string {
	var sb strings.Builder
	for _, tok := range p {
		sb.WriteByte('/')
		sb.WriteString(strings.ReplaceAll(strings.ReplaceAll(tok, "~", "~0"), "/", "~1"))
	}
	return sb.String()
}

// Eval resolves p against root and returns the value it selects.  Objects
// are traversed by member key and arrays by decimal element index; a missing
// key, an index that is not a decimal number in range, or a traversal into a
// non-composite value is an error.
func (p Pointer) Eval(root jtok.Value) (jtok.Value, error) {
	cur := root
	for _, tok := range p {
		switch t := cur.(type) {
		case *jtok.Object:
			m := t.Find(tok)
			if m == nil {
				return nil, fmt.Errorf("key %q not found", tok)
			}
			cur = m.Value
		case *jtok.Array:
			i, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("invalid array index %q", tok)
			}
			if i < 0 || i >= t.Len() {
				return nil, fmt.Errorf("array index %d out of bounds (%d elements)", i, t.Len())
			}
			cur = t.Values[i]
		default:
			return nil, fmt.Errorf("cannot traverse %T with token %q", cur, tok)
		}
	}
	return cur, nil
}

// Find parses s as a pointer and resolves it against root.
func Find(root jtok.Value, s string) (jtok.Value, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, err
	}
	return p.Eval(root)
}
