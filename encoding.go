// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"github.com/creachadair/jtok/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value.  The contents are escaped and
// double quotation marks are added.  A slash directly following "<" is
// escaped so that closing tags cannot occur in the output, making the result
// safe to embed in HTML and XML text.
func Quote(src string) string { return string(escape.AppendQuote(nil, mem.S(src))) }
