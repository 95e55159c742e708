// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/creachadair/jtok/internal/escape"
	"go4.org/mem"
)

// DefaultLookahead is the default size in bytes of the search window used by
// SkipTo. It can be adjusted with SetLookahead.
const DefaultLookahead = 1 << 20

// valueDelims are the characters that terminate an unquoted literal in
// NextValue.
const valueDelims = ",:]}/\\\"[{;=#"

// Fixed messages reported for stream-level failures.
const (
	msgReadFailed = "Unable to read the next character from the stream"
	msgNoPreserve = "Unable to preserve stream position"
	msgDoubleBack = "Stepping back two steps is not supported"
)

// A Scanner reads characters and values from an input stream.  It tracks the
// character index, line, and column of its position, supports a one-step
// rewind so a caller can push back the most recently read character, and
// understands a permissive superset of JSON syntax.
//
// A NUL character (U+0000) in the input is treated as end of input, and end
// of input is reported as the character 0 rather than as an error.  A Scanner
// is not safe for concurrent use.
type Scanner struct {
	src       *bufio.Reader
	comments  bool // skip comments in NextNonSpace
	lookahead int  // size in bytes of the SkipTo search window

	index   int  // count of characters consumed
	line    int  // current line, 1-based
	column  int  // current column; reset to 0 after a line break
	colPrev int  // column at the end of the previous line, for rewinds
	last    rune // most recently delivered character
	width   int  // size in bytes of the last physical read
	pending bool // a rewind is in effect; replay last on the next read
	eof     bool // end of input was observed
}

// New constructs a Scanner that consumes input from r.  If r is already a
// *bufio.Reader it is used directly; otherwise it is wrapped.  The scanner
// reads from r exclusively for its lifetime but does not close it.
func New(r io.Reader) *Scanner {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Scanner{src: br, line: 1, column: 1, lookahead: DefaultLookahead}
}

// AllowComments configures the scanner to skip (true) or deliver (false)
// comments when scanning past whitespace.  Comments are a non-standard
// extension of the JSON spec.  If enabled, C++ style block comments
// (/* ... */) and line comments (// ...) as well as shell style line
// comments (# ...) are skipped by NextNonSpace.
func (s *Scanner) AllowComments(ok bool) { s.comments = ok }

// SetLookahead sets the size in bytes of the search window used by SkipTo.
// A search that does not resolve within the window fails rather than consume
// input it cannot restore.
func (s *Scanner) SetLookahead(n int) { s.lookahead = n }

// Next returns the next character of the input.  At the end of input it
// returns (0, nil); a NUL character in the input is treated the same way.
// If a rewind is in effect, the rewound character is replayed.  An error is
// reported only if the underlying stream fails.
func (s *Scanner) Next() (rune, error) {
	var ch rune
	if s.pending {
		s.pending = false
		ch = s.last
	} else {
		c, nb, err := s.src.ReadRune()
		if err == io.EOF {
			s.eof = true
			return 0, nil
		} else if err != nil {
			return 0, ioError(msgReadFailed, err)
		} else if c == 0 {
			s.eof = true
			return 0, nil
		}
		s.width = nb
		ch = c
	}
	s.advance(ch)
	s.last = ch
	return ch, nil
}

// advance updates the position counters for delivering ch.  It runs before
// s.last is updated, for both fresh reads and rewind replays, so a rewind
// followed by a read restores the counters exactly.
func (s *Scanner) advance(ch rune) {
	s.index++
	switch {
	case ch == '\r':
		s.line++
		s.colPrev = s.column
		s.column = 0
	case ch == '\n':
		if s.last != '\r' { // a CRLF pair counts as one line break
			s.line++
			s.colPrev = s.column
		}
		s.column = 0
	default:
		s.column++
	}
}

// Back rewinds the scanner by one character, so that the next read delivers
// the most recently read character again.  Only a single step of rewind is
// supported: it is an error to call Back twice without an intervening read,
// or before anything has been read.  Rewinding after end of input is allowed
// and replays the last real character.
func (s *Scanner) Back() error {
	if s.pending || s.index <= 0 {
		return &Error{Msg: msgDoubleBack}
	}
	s.index--
	if s.last == '\r' || s.last == '\n' {
		s.line--
		s.column = s.colPrev
	} else if s.column > 0 {
		s.column--
	}
	s.pending = true
	s.eof = false
	return nil
}

// More reports whether another character is available.  It peeks without
// consuming input, so calling More repeatedly gives the same answer and a
// subsequent Next still delivers the peeked character.
func (s *Scanner) More() (bool, error) {
	if s.pending {
		return true, nil
	}
	buf, err := s.src.Peek(1)
	if len(buf) == 0 {
		if err == nil || err == io.EOF {
			s.eof = true
			return false, nil
		}
		return false, ioError(msgReadFailed, err)
	}
	if buf[0] == 0 {
		s.eof = true
		return false, nil
	}
	return true, nil
}

// End reports whether the scanner has observed the end of its input and has
// no rewound character left to deliver.
func (s *Scanner) End() bool { return s.eof && !s.pending }

// Expect reads the next character and reports an error unless it is want.
func (s *Scanner) Expect(want rune) (rune, error) {
	ch, err := s.Next()
	if err != nil {
		return 0, err
	}
	if ch != want {
		if ch > 0 {
			return 0, s.SyntaxError(fmt.Sprintf("Expected '%c' and instead saw '%c'", want, ch))
		}
		return 0, s.SyntaxError(fmt.Sprintf("Expected '%c' and instead saw ''", want))
	}
	return ch, nil
}

// NextN reads exactly n characters and returns them as a string.  If the end
// of input occurs before n characters have been read, NextN reports an error.
func (s *Scanner) NextN(n int) (string, error) {
	if n == 0 {
		return "", nil
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		ch, err := s.Next()
		if err != nil {
			return "", err
		}
		if s.End() {
			return "", s.SyntaxError("Substring bounds error")
		}
		sb.WriteRune(ch)
	}
	return sb.String(), nil
}

// NextNonSpace returns the next character that is not whitespace, treating
// every character at or below U+0020 as whitespace.  At the end of input it
// returns 0.  If comments are enabled, comments are skipped as whitespace.
func (s *Scanner) NextNonSpace() (rune, error) {
	for {
		ch, err := s.Next()
		if err != nil {
			return 0, err
		}
		if s.comments {
			if ch == '/' {
				ok, err := s.skipSlashComment()
				if err != nil {
					return 0, err
				}
				if !ok {
					return '/', nil
				}
				continue
			} else if ch == '#' {
				if err := s.skipLineComment(); err != nil {
					return 0, err
				}
				continue
			}
		}
		if ch == 0 || ch > ' ' {
			return ch, nil
		}
	}
}

// skipSlashComment handles a "/" seen while skipping whitespace.  It reports
// true if a comment was consumed, or false if the "/" did not open a comment,
// in which case no input beyond the "/" is consumed.
func (s *Scanner) skipSlashComment() (bool, error) {
	ch, err := s.Next()
	if err != nil {
		return false, err
	}
	switch ch {
	case '/':
		return true, s.skipLineComment()
	case '*':
		for {
			ch, err := s.Next()
			if err != nil {
				return false, err
			}
			if ch == 0 {
				return false, s.SyntaxError("Unclosed comment.")
			}
			if ch == '*' {
				ch, err := s.Next()
				if err != nil {
					return false, err
				}
				if ch == 0 {
					return false, s.SyntaxError("Unclosed comment.")
				}
				if ch == '/' {
					return true, nil
				}
				if err := s.Back(); err != nil {
					return false, err
				}
			}
		}
	default:
		if err := s.Back(); err != nil {
			return false, err
		}
		return false, nil
	}
}

// skipLineComment consumes input through the next line break or the end of
// input.
func (s *Scanner) skipLineComment() error {
	for {
		ch, err := s.Next()
		if err != nil {
			return err
		}
		if ch == '\n' || ch == '\r' || ch == 0 {
			return nil
		}
	}
}

// NextString returns the decoded body of a quoted string whose opening quote,
// given as quote, has already been consumed.  The closing quote is consumed
// but not included.  Backslash escapes are decoded, including \uXXXX escapes;
// an adjacent pair of \u escapes that encodes a UTF-16 surrogate pair is
// combined into a single character, and unpairable surrogate halves decode to
// U+FFFD.  A raw line break or the end of input inside the string is an
// error.
func (s *Scanner) NextString(quote rune) (string, error) {
	var sb strings.Builder
	for {
		ch, err := s.Next()
		if err != nil {
			return "", err
		}
		switch ch {
		case 0, '\n', '\r':
			return "", s.SyntaxError("Unterminated string")
		case '\\':
			ch, err := s.Next()
			if err != nil {
				return "", err
			}
			switch ch {
			case 'b':
				sb.WriteByte('\b')
			case 't':
				sb.WriteByte('\t')
			case 'n':
				sb.WriteByte('\n')
			case 'f':
				sb.WriteByte('\f')
			case 'r':
				sb.WriteByte('\r')
			case 'u':
				if err := s.writeUnicodeEscape(&sb); err != nil {
					return "", err
				}
			case '"', '\'', '\\', '/':
				sb.WriteRune(ch)
			default:
				return "", s.SyntaxError("Illegal escape.")
			}
		default:
			if ch == quote {
				return sb.String(), nil
			}
			sb.WriteRune(ch)
		}
	}
}

// writeUnicodeEscape decodes the four hex digits following a \u escape and
// appends the resulting character to sb.  A high surrogate followed directly
// by another \u escape holding a low surrogate is combined into the character
// the pair encodes; surrogate halves that cannot be paired become U+FFFD.
func (s *Scanner) writeUnicodeEscape(sb *strings.Builder) error {
	ch, err := s.readHex4()
	if err != nil {
		return err
	}
	for utf16.IsSurrogate(ch) && ch < 0xDC00 {
		pfx, _ := s.src.Peek(2)
		if len(pfx) < 2 || pfx[0] != '\\' || pfx[1] != 'u' {
			break
		}
		for i := 0; i < 2; i++ {
			if _, err := s.Next(); err != nil {
				return err
			}
		}
		next, err := s.readHex4()
		if err != nil {
			return err
		}
		if r := utf16.DecodeRune(ch, next); r != utf8.RuneError {
			sb.WriteRune(r)
			return nil
		}
		sb.WriteRune(utf8.RuneError)
		ch = next
	}
	if utf16.IsSurrogate(ch) {
		ch = utf8.RuneError
	}
	sb.WriteRune(ch)
	return nil
}

// readHex4 reads the four hex digit characters of a \u escape.
func (s *Scanner) readHex4() (rune, error) {
	four, err := s.NextN(4)
	if err != nil {
		return 0, err
	}
	v, err := escape.ParseHex(mem.S(four))
	if err != nil {
		return 0, s.syntaxCause("Illegal escape.", err)
	}
	return rune(v), nil
}

// NextTo returns the characters up to but not including the next occurrence
// of delim, a line break, or the end of input.  The terminating character is
// rewound so that a subsequent read delivers it.  The result is trimmed of
// leading and trailing whitespace.
func (s *Scanner) NextTo(delim rune) (string, error) {
	return s.nextUntil(func(ch rune) bool { return ch == delim })
}

// NextToAny is as NextTo, but stops at any character of delims.
func (s *Scanner) NextToAny(delims string) (string, error) {
	return s.nextUntil(func(ch rune) bool { return strings.ContainsRune(delims, ch) })
}

func (s *Scanner) nextUntil(stop func(rune) bool) (string, error) {
	var sb strings.Builder
	for {
		ch, err := s.Next()
		if err != nil {
			return "", err
		}
		if stop(ch) || ch == 0 || ch == '\n' || ch == '\r' {
			if ch != 0 {
				if err := s.Back(); err != nil {
					return "", err
				}
			}
			return trim(sb.String()), nil
		}
		sb.WriteRune(ch)
	}
}

// SkipTo searches forward for the next occurrence of target and returns it,
// positioned so that the next read delivers target.  If the end of input is
// reached first, SkipTo returns 0 and the scanner's position is unchanged.
// The search is bounded by the scanner's lookahead window (DefaultLookahead
// unless changed by SetLookahead); a search that exceeds the window fails
// without consuming input.
func (s *Scanner) SkipTo(target rune) (rune, error) {
	save := s.state()
	if s.pending {
		if s.last == target {
			return target, nil
		}
		if _, err := s.Next(); err != nil {
			return 0, err
		}
	}
	if s.src.Size() < s.lookahead {
		s.src = bufio.NewReaderSize(s.src, s.lookahead)
	}
	enc := utf8.AppendRune(nil, target)
	for w := 64; ; w *= 2 {
		if w > s.lookahead {
			w = s.lookahead
		}
		win, err := s.src.Peek(w)
		tpos := bytes.Index(win, enc)
		npos := bytes.IndexByte(win, 0)
		if tpos >= 0 && (npos < 0 || tpos < npos) {
			// Consume through the target so the counters update normally,
			// then rewind one step so the target is the next character read.
			for n := 0; n <= tpos; {
				if _, err := s.Next(); err != nil {
					return 0, err
				}
				n += s.width
			}
			if err := s.Back(); err != nil {
				return 0, err
			}
			return target, nil
		}
		if npos >= 0 || err == io.EOF {
			s.restore(save)
			return 0, nil
		}
		if err != nil || w == s.lookahead {
			s.restore(save)
			if err == nil {
				err = bufio.ErrBufferFull
			}
			return 0, ioError(msgNoPreserve, err)
		}
	}
}

// A scanState records the restorable portion of a Scanner's state.  The
// reader itself is not part of it: SkipTo only consumes input on success, so
// restoring the counters is enough to undo a failed search.
type scanState struct {
	index, line, column, colPrev int
	last                         rune
	pending, eof                 bool
}

func (s *Scanner) state() scanState {
	return scanState{s.index, s.line, s.column, s.colPrev, s.last, s.pending, s.eof}
}

func (s *Scanner) restore(st scanState) {
	s.index, s.line, s.column, s.colPrev = st.index, st.line, st.column, st.colPrev
	s.last, s.pending, s.eof = st.last, st.pending, st.eof
}

// NextValue returns the next complete value from the input: a quoted string
// (single or double quotes), an object, an array, or an unquoted literal
// converted by ParseLiteral.  An unquoted literal runs until whitespace or
// one of the reserved characters ,:]}/\"[{;=# and the terminator is rewound.
func (s *Scanner) NextValue() (Value, error) {
	ch, err := s.NextNonSpace()
	if err != nil {
		return nil, err
	}
	switch ch {
	case '"', '\'':
		text, err := s.NextString(ch)
		if err != nil {
			return nil, err
		}
		return String(text), nil
	case '{':
		if err := s.Back(); err != nil {
			return nil, err
		}
		return ParseObject(s)
	case '[':
		if err := s.Back(); err != nil {
			return nil, err
		}
		return ParseArray(s)
	}

	var sb strings.Builder
	for ch >= ' ' && !strings.ContainsRune(valueDelims, ch) {
		sb.WriteRune(ch)
		ch, err = s.Next()
		if err != nil {
			return nil, err
		}
	}
	if err := s.Back(); err != nil {
		return nil, err
	}
	text := trim(sb.String())
	if text == "" {
		return nil, s.SyntaxError("Missing value")
	}
	return ParseLiteral(text), nil
}

// Pos reports the scanner's current position.
func (s *Scanner) Pos() Pos { return Pos{Index: s.index, Line: s.line, Column: s.column} }

// SyntaxError returns an *Error describing malformed input at the scanner's
// current position.
func (s *Scanner) SyntaxError(msg string) *Error {
	return &Error{Msg: msg, Pos: s.Pos()}
}

func (s *Scanner) syntaxCause(msg string, cause error) *Error {
	return &Error{Msg: msg, Pos: s.Pos(), Err: cause}
}

func ioError(msg string, cause error) *Error {
	return &Error{Msg: msg, Err: cause}
}

// trim removes leading and trailing characters at or below U+0020, the same
// rule the scanner uses for whitespace.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
}
