// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements a character-level scanner and value parser for a
// permissive superset of JSON.
//
// # Scanning
//
// The Scanner type reads an input stream one character at a time, tracking
// the index, line, and column of its position.  Construct a scanner from an
// io.Reader and call Next to read characters.  The end of input is reported
// as the character 0, not as an error:
//
//	s := jtok.New(input)
//	for {
//	   ch, err := s.Next()
//	   if err != nil {
//	      log.Fatalf("Read failed: %v", err)
//	   } else if ch == 0 {
//	      break
//	   }
//	   // ...
//	}
//
// A single step of rewind is available through Back, after which the next
// read delivers the most recent character again.  On top of these, the
// scanner provides the lexical primitives of the JSON family: NextNonSpace
// skips whitespace (and optionally comments), NextString decodes a quoted
// string body, NextTo and NextToAny collect text up to a delimiter, SkipTo
// searches ahead without losing the current position on failure, and
// NextValue reads a complete value.
//
// # Values
//
// Values are represented by the Value interface and its concrete types
// String, Int, Float, Bool, Null, *Object, and *Array.  Every value renders
// itself as compact JSON text via its JSON method.  Use Parse or ParseString
// to read a document:
//
//	v, err := jtok.ParseString(`{"name": "aster", "bloom": 9}`)
//	if err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//	fmt.Println(v.JSON())
//
// Objects preserve the order of their members, and an explicit null in the
// input is represented by the Null type, distinct from an absent member.
//
// # Permissive syntax
//
// The parser accepts a superset of JSON: strings may use single quotes, keys
// and simple values may be unquoted, the key separator may be = or => as
// well as a colon, object pairs and array elements may be separated by
// semicolons as well as commas, trailing separators are allowed, and an
// elided array element denotes null.  Unquoted literals that do not parse as
// numbers or constants are kept as strings.  With AllowComments enabled the
// scanner also skips //, /* ... */, and # comments.
//
// Errors from scanning and parsing have concrete type *Error; syntax errors
// include the position at which the problem was detected.
//
// # Formatting
//
// The JSON methods render compact output.  Format and the Formatter type
// produce an indented rendering, keeping small composite values on a single
// line:
//
//	if err := jtok.Format(os.Stdout, v); err != nil {
//	   log.Fatalf("Format failed: %v", err)
//	}
package jtok
