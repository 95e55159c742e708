// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import "fmt"

// A Pos describes a position in the input stream.
type Pos struct {
	Index  int // count of characters consumed, 0-based
	Line   int // line number, 1-based
	Column int // column on the line; reset to 0 after a line break
}

// String renders p in the form "at 12 [character 3 line 2]".
func (p Pos) String() string {
	return fmt.Sprintf("at %d [character %d line %d]", p.Index, p.Column, p.Line)
}
