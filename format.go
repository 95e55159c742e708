// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// A Formatter carries the settings for pretty-printing values.
// A zero value is ready for use with default settings.
type Formatter struct{}

func (f Formatter) indent() string { return "  " }

func (f Formatter) maxLineItems() int { return 3 }

// Format renders a pretty-printed representation of v to w with default
// settings.
func Format(w io.Writer, v Value) error {
	var f Formatter
	return f.Format(w, v)
}

// FormatToString formats v to a string with default settings.
// In case of error in formatting, it returns an empty string.
func FormatToString(v Value) string {
	var buf bytes.Buffer
	if Format(&buf, v) != nil {
		return ""
	}
	return buf.String()
}

// Format renders a pretty-printed representation of v to w using the
// settings from f.  The output is valid JSON for any value constructed by
// the parser.  Writes are buffered; an error from w is reported when the
// buffer is flushed at the end.
func (f Formatter) Format(w io.Writer, v Value) error {
	bw := bufio.NewWriter(w)
	f.formatValue(bw, v, "", "")
	return bw.Flush()
}

// formatValue writes a representation of v to w, with init preceding the
// first line and indent preceding continuation lines.
func (f Formatter) formatValue(w *bufio.Writer, v Value, init, indent string) {
	switch t := v.(type) {
	case *Array:
		f.formatArray(w, t, init, indent)
	case *Object:
		f.formatObject(w, t, init, indent)
	default:
		fmt.Fprint(w, init, t.JSON())
	}
}

func (f Formatter) formatArray(w *bufio.Writer, a *Array, init, indent string) {
	if f.isBoring(a) {
		fmt.Fprint(w, init, "[")
		for i, v := range a.Values {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			f.formatValue(w, v, "", "")
		}
		io.WriteString(w, "]")
		return
	}

	fmt.Fprint(w, init, "[\n")
	adent := indent + f.indent()
	for i, v := range a.Values {
		f.formatValue(w, v, adent, adent)
		if i+1 < len(a.Values) {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	fmt.Fprint(w, indent, "]")
}

func (f Formatter) formatObject(w *bufio.Writer, o *Object, init, indent string) {
	if f.isBoring(o) {
		fmt.Fprint(w, init, "{")
		for i, m := range o.Members {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			fmt.Fprint(w, Quote(m.Key), ": ")
			f.formatValue(w, m.Value, "", "")
		}
		io.WriteString(w, "}")
		return
	}

	fmt.Fprint(w, init, "{\n")
	mdent := indent + f.indent()
	for i, m := range o.Members {
		fmt.Fprint(w, mdent, Quote(m.Key), ": ")
		f.formatValue(w, m.Value, "", mdent)
		if i+1 < len(o.Members) {
			io.WriteString(w, ",")
		}
		io.WriteString(w, "\n")
	}
	fmt.Fprint(w, indent, "}")
}

// isBoring reports whether v has a simple enough structure that it can be
// rendered on one line.
func (f Formatter) isBoring(v Value) bool {
	switch t := v.(type) {
	case *Array:
		for i, v := range t.Values {
			if !f.isBoring(v) || i >= f.maxLineItems() {
				return false
			}
		}
		return true
	case *Object:
		if len(t.Members) == 1 {
			return f.isBoring(t.Members[0].Value)
		}
		return len(t.Members) == 0
	default:
		return true
	}
}
