// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles the quoted encoding of JSON strings.
package escape

import (
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

const hexDigits = "0123456789abcdef"

// AppendQuote appends the JSON quoted form of src to dst, including the
// enclosing double quotation marks, and returns the extended slice.
//
// Quotation marks and backslashes are escaped, a slash is escaped when it
// directly follows "<" so that "</" cannot appear in the output, the named
// control escapes are used where they exist, and other control characters as
// well as those in the ranges U+0080..U+009F and U+2000..U+20FF are written
// as \uXXXX escapes.
func AppendQuote(dst []byte, src mem.RO) []byte {
	dst = append(dst, '"')
	var prev rune
	for src.Len() > 0 {
		r, n := mem.DecodeRune(src)
		src = src.SliceFrom(n)
		switch r {
		case '"', '\\':
			dst = append(dst, '\\', byte(r))
		case '/':
			if prev == '<' {
				dst = append(dst, '\\')
			}
			dst = append(dst, '/')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			if r < ' ' || (r >= 0x80 && r < 0xa0) || (r >= 0x2000 && r < 0x2100) {
				dst = append(dst, '\\', 'u',
					hexDigits[r>>12&15], hexDigits[r>>8&15], hexDigits[r>>4&15], hexDigits[r&15])
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
		prev = r
	}
	return append(dst, '"')
}

// ParseHex decodes data as a string of hexadecimal digits.
func ParseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += int64(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += int64(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += int64(b - 'A' + 10)
		} else {
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
