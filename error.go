// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jtok

// An Error is the concrete type of all errors reported by a Scanner and the
// value builders.  Syntax errors carry the position where they were detected;
// stream and usage errors have a zero Pos.  When the failure was caused by
// another error, that error is recorded and can be recovered with errors.As
// and errors.Is through the Unwrap method.
type Error struct {
	Msg string // description of the failure
	Pos Pos    // position of the failure; zero if not applicable
	Err error  // underlying cause, or nil
}

func (e *Error) Error() string {
	msg := e.Msg
	if e.Pos != (Pos{}) {
		msg += " " + e.Pos.String()
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause of e, if any.
func (e *Error) Unwrap() error { return e.Err }
