// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"fmt"

	"github.com/creachadair/jparse"
)

// ErrorKind classifies a ParseError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	// ErrParsing is a generic grammar violation.
	ErrParsing ErrorKind = iota

	// ErrCommaEndingObject reports a close brace where an object key was
	// expected. Inside an object this ends the object; it is never reported
	// to the caller of Parse.
	ErrCommaEndingObject

	// ErrArrayEnd reports a close bracket where a value was expected.  Inside
	// an array this ends the array; at the top level it is reported to the
	// caller of Parse.
	ErrArrayEnd
)

var errorStr = [...]string{
	ErrParsing:           "Parse Error",
	ErrCommaEndingObject: "Comma Ending Object",
	ErrArrayEnd:          "Array End",
}

func (k ErrorKind) String() string {
	if int(k) >= len(errorStr) {
		return errorStr[ErrParsing]
	}
	return errorStr[k]
}

// Sentinel errors for use with errors.Is. A *ParseError matches the sentinel
// of the same kind.
var (
	ErrParse     = &ParseError{Kind: ErrParsing}
	ErrEndObject = &ParseError{Kind: ErrCommaEndingObject}
	ErrEndArray  = &ParseError{Kind: ErrArrayEnd}
)

// ParseError is the concrete type of errors reported by the parser.
type ParseError struct {
	Kind     ErrorKind
	Location jparse.LineCol // where the offending token begins
	Message  string         // optional description of the problem

	err error
}

// Error satisfies the error interface. The text is determined by the kind of
// the error alone; see Detail for a description including the location.
func (e *ParseError) Error() string { return e.Kind.String() }

// Detail returns a human-readable description of e including its location
// and message, if any.
func (e *ParseError) Detail() string {
	msg := fmt.Sprintf("at %s: %s", e.Location, e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Is reports whether target is a *ParseError with the same kind as e.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

// Unwrap supports error wrapping. If the error was caused by an illegal token,
// Unwrap returns the *jparse.ScanError describing it.
func (e *ParseError) Unwrap() error { return e.err }
